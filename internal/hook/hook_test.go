package hook

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestNew(t *testing.T) {
	t.Parallel()

	h := New(PrePush)
	if h.Type != PrePush {
		t.Errorf("Type = %v, want pre-push", h.Type)
	}
	if !h.Empty() {
		t.Errorf("new hook should be empty, got %d commands", len(h.Commands))
	}
}

func TestHook_Add(t *testing.T) {
	t.Parallel()

	h := New(PreCommit)
	if err := h.Add(Command{ID: "format", Command: "cargo fmt -- --check"}); err != nil {
		t.Fatalf("Add format: %v", err)
	}
	if err := h.Add(Command{ID: "test", Command: "cargo test", Description: "Run tests"}); err != nil {
		t.Fatalf("Add test: %v", err)
	}

	if got := h.IDs(); !slices.Equal(got, []string{"format", "test"}) {
		t.Errorf("IDs() = %v, want [format test]", got)
	}
}

func TestHook_AddDuplicate(t *testing.T) {
	t.Parallel()

	h := New(PreCommit)
	if err := h.Add(Command{ID: "lint", Command: "make lint"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	err := h.Add(Command{ID: "lint", Command: "golangci-lint run"})
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("Add duplicate error = %v, want ErrDuplicateID", err)
	}
	if !strings.Contains(err.Error(), `"lint" already exists in hook "pre-commit"`) {
		t.Errorf("unexpected message: %v", err)
	}
	if len(h.Commands) != 1 || h.Commands[0].Command != "make lint" {
		t.Errorf("hook changed after failed add: %+v", h.Commands)
	}
}

func TestHook_AddInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cmd  Command
		want string
	}{
		{"missing id", Command{Command: "make"}, "id is required"},
		{"missing command", Command{ID: "x"}, "command is required"},
		{"multi-line id", Command{ID: "a\nb", Command: "make"}, "id must not contain line breaks"},
		{"multi-line description", Command{ID: "a", Command: "make", Description: "one\ntwo"}, "description must not contain line breaks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := New(PreCommit)
			err := h.Add(tt.cmd)
			if !errors.Is(err, ErrInvalidCommand) {
				t.Fatalf("Add error = %v, want ErrInvalidCommand", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should contain %q", err, tt.want)
			}
			if !h.Empty() {
				t.Error("hook should stay empty")
			}
		})
	}
}

func TestHook_Remove(t *testing.T) {
	t.Parallel()

	h := New(PreCommit)
	for _, id := range []string{"a", "b", "c"} {
		if err := h.Add(Command{ID: id, Command: "echo " + id}); err != nil {
			t.Fatalf("Add %s: %v", id, err)
		}
	}

	removed, err := h.Remove("b")
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if removed.Command != "echo b" {
		t.Errorf("removed = %+v", removed)
	}
	if got := h.IDs(); !slices.Equal(got, []string{"a", "c"}) {
		t.Errorf("IDs() = %v, want [a c]", got)
	}
}

func TestHook_RemoveMissing(t *testing.T) {
	t.Parallel()

	h := New(CommitMsg)
	if err := h.Add(Command{ID: "test", Command: "go test ./..."}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	_, err := h.Remove("tset")
	if !errors.Is(err, ErrCommandNotFound) {
		t.Fatalf("Remove error = %v, want ErrCommandNotFound", err)
	}
	var cerr *CommandError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *CommandError, got %T", err)
	}
	if cerr.Hook != CommitMsg || cerr.ID != "tset" {
		t.Errorf("CommandError = %+v", cerr)
	}
	if len(h.Commands) != 1 {
		t.Errorf("hook changed after failed remove: %+v", h.Commands)
	}
}

func TestHook_Validate(t *testing.T) {
	t.Parallel()

	h := &Hook{Type: PreCommit, Commands: []Command{
		{ID: "a", Command: "x"},
		{ID: "a", Command: "y"},
	}}
	if err := h.Validate(); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("Validate duplicate = %v, want ErrDuplicateID", err)
	}

	h = &Hook{Type: PreCommit, Commands: []Command{{ID: "a"}}}
	if err := h.Validate(); !errors.Is(err, ErrInvalidCommand) {
		t.Errorf("Validate missing command = %v, want ErrInvalidCommand", err)
	}
}

// TestHookMutationInvariants checks that IDs stay unique and insertion order
// is preserved across arbitrary add/remove sequences.
func TestHookMutationInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		h := New(PreCommit)
		var model []string

		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			id := rapid.SampledFrom([]string{"fmt", "lint", "test", "vet", "build"}).Draw(t, "id")

			if rapid.Bool().Draw(t, "add") {
				err := h.Add(Command{ID: id, Command: "run " + id})
				if slices.Contains(model, id) {
					if !errors.Is(err, ErrDuplicateID) {
						t.Fatalf("expected duplicate error for %q, got %v", id, err)
					}
				} else {
					if err != nil {
						t.Fatalf("Add(%q): %v", id, err)
					}
					model = append(model, id)
				}
			} else {
				_, err := h.Remove(id)
				if i := slices.Index(model, id); i >= 0 {
					if err != nil {
						t.Fatalf("Remove(%q): %v", id, err)
					}
					model = slices.Delete(model, i, i+1)
				} else if !errors.Is(err, ErrCommandNotFound) {
					t.Fatalf("expected not-found for %q, got %v", id, err)
				}
			}

			if !slices.Equal(h.IDs(), model) {
				t.Fatalf("IDs() = %v, model = %v", h.IDs(), model)
			}
		}
	})
}

package prompt

import (
	"errors"
	"strings"
	"testing"
)

func TestTextInputModel_Update(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
		want decision
	}{
		{"enter submits", "enter", answeredYes},
		{"esc cancels", "esc", aborted},
		{"ctrl+c cancels", "ctrl+c", aborted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := newTextInputModel("Command ID:", "golangci-lint", nil)
			updated, cmd := m.Update(keyPress(tt.key))
			if got := updated.(textInputModel).decision; got != tt.want {
				t.Errorf("decision = %v, want %v", got, tt.want)
			}
			if cmd == nil {
				t.Error("expected quit command")
			}
		})
	}
}

func TestTextInputModel_ValidateBlocksSubmit(t *testing.T) {
	t.Parallel()

	errTaken := errors.New(`command with ID "lint" already exists`)
	m := newTextInputModel("Command ID:", "", func(v string) error {
		if v == "lint" {
			return errTaken
		}
		return nil
	})
	m.input.SetValue("  lint ")

	updated, cmd := m.Update(keyPress("enter"))
	um := updated.(textInputModel)
	if um.decision != undecided || cmd != nil {
		t.Fatalf("decision = %v, want prompt to stay open", um.decision)
	}
	if got := um.render(); !strings.Contains(got, errTaken.Error()) {
		t.Errorf("render() = %q, want validation error", got)
	}

	um.input.SetValue("lint-fix")
	updated, cmd = um.Update(keyPress("enter"))
	if updated.(textInputModel).decision != answeredYes || cmd == nil {
		t.Error("valid value should submit")
	}
}

func TestTextInputModel_Render(t *testing.T) {
	t.Parallel()

	m := newTextInputModel("Command ID:", "golangci-lint", nil)
	if got := m.render(); !strings.HasPrefix(got, "Command ID:\n") {
		t.Errorf("render() = %q, want prompt on first line", got)
	}
	m.decision = aborted
	if got := m.render(); got != "" {
		t.Errorf("render() = %q, want empty once done", got)
	}
}

package hook

import (
	"fmt"
	"slices"
)

// Command is one shell command bound to a hook.
// The command text is opaque: it is emitted verbatim into the generated script.
type Command struct {
	ID          string `toml:"id" json:"id" yaml:"id" validate:"required,singleline"`
	Command     string `toml:"command" json:"command" yaml:"command" validate:"required"`
	Description string `toml:"description,omitempty" json:"description,omitempty" yaml:"description,omitempty" validate:"singleline"`
}

// Hook is the ordered command list of one hook type.
type Hook struct {
	Type     Type      `toml:"-" json:"hook" yaml:"hook"`
	Commands []Command `toml:"commands" json:"commands" yaml:"commands"`
}

// New returns an empty hook of the given type.
func New(t Type) *Hook {
	return &Hook{Type: t, Commands: []Command{}}
}

// Empty reports whether the hook has no commands.
func (h *Hook) Empty() bool {
	return len(h.Commands) == 0
}

// Find returns the command with the given ID.
func (h *Hook) Find(id string) (Command, bool) {
	i := h.index(id)
	if i < 0 {
		return Command{}, false
	}
	return h.Commands[i], true
}

// IDs returns the command IDs in execution order.
func (h *Hook) IDs() []string {
	ids := make([]string, len(h.Commands))
	for i, c := range h.Commands {
		ids[i] = c.ID
	}
	return ids
}

// Add appends cmd to the hook. The hook is left unchanged if cmd is invalid
// or its ID is already taken.
func (h *Hook) Add(cmd Command) error {
	if err := cmd.Validate(); err != nil {
		return &CommandError{Hook: h.Type, ID: cmd.ID, Err: err}
	}
	if h.index(cmd.ID) >= 0 {
		return &CommandError{Hook: h.Type, ID: cmd.ID, Err: ErrDuplicateID}
	}
	h.Commands = append(h.Commands, cmd)
	return nil
}

// Remove deletes the command with the given ID and returns it.
// The relative order of the remaining commands is preserved.
func (h *Hook) Remove(id string) (Command, error) {
	i := h.index(id)
	if i < 0 {
		return Command{}, &CommandError{
			Hook:        h.Type,
			ID:          id,
			Err:         ErrCommandNotFound,
			Suggestions: suggest(id, h.IDs()),
		}
	}
	removed := h.Commands[i]
	h.Commands = slices.Delete(h.Commands, i, i+1)
	return removed, nil
}

// Validate checks every command and the uniqueness of IDs.
func (h *Hook) Validate() error {
	seen := make(map[string]struct{}, len(h.Commands))
	for i, c := range h.Commands {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("commands[%d]: %w", i, err)
		}
		if _, dup := seen[c.ID]; dup {
			return &CommandError{Hook: h.Type, ID: c.ID, Err: ErrDuplicateID}
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}

func (h *Hook) index(id string) int {
	return slices.IndexFunc(h.Commands, func(c Command) bool { return c.ID == id })
}

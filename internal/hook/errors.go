package hook

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownType indicates a hook name outside the supported set.
	ErrUnknownType = errors.New("unknown hook type")

	// ErrDuplicateID indicates a command ID already used in the hook.
	ErrDuplicateID = errors.New("duplicate command id")

	// ErrCommandNotFound indicates no command with the given ID exists in the hook.
	ErrCommandNotFound = errors.New("command not found")

	// ErrInvalidCommand indicates a command record that fails validation.
	ErrInvalidCommand = errors.New("invalid command")
)

// ParseError is returned by ParseType for names outside the supported set.
type ParseError struct {
	Input       string
	Suggestions []string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unknown hook type %q%s", e.Input, didYouMean(e.Suggestions))
}

// Unwrap returns ErrUnknownType.
func (e *ParseError) Unwrap() error {
	return ErrUnknownType
}

// CommandError describes a failed lookup or mutation of a hook's commands.
type CommandError struct {
	Hook        Type
	ID          string
	Err         error
	Suggestions []string
}

func (e *CommandError) Error() string {
	var msg string
	switch {
	case errors.Is(e.Err, ErrDuplicateID):
		msg = fmt.Sprintf("command with ID %q already exists in hook %q", e.ID, e.Hook)
	case errors.Is(e.Err, ErrCommandNotFound):
		msg = fmt.Sprintf("command with ID %q not found in hook %q", e.ID, e.Hook)
	default:
		msg = fmt.Sprintf("command %q in hook %q: %v", e.ID, e.Hook, e.Err)
	}
	return msg + didYouMean(e.Suggestions)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInitialized indicates the .hookman directory does not exist.
	ErrNotInitialized = errors.New("hookman not initialized. Run 'hookman init' first")

	// ErrMalformed indicates a persisted record that can't be decoded or
	// violates the record invariants.
	ErrMalformed = errors.New("malformed record")
)

// FormatError reports a malformed record file.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed record %s: %v", e.Path, e.Err)
}

// Unwrap exposes both ErrMalformed and the underlying cause.
func (e *FormatError) Unwrap() []error {
	return []error{ErrMalformed, e.Err}
}

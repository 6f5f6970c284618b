package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrNoteNotFound is returned when an operation references a note that is
	// not in the working set.
	ErrNoteNotFound = errors.New("note not found")
	// ErrFolderNotFound is returned when an operation references a folder
	// that is not in the working set.
	ErrFolderNotFound = errors.New("folder not found")
)

// ValidationError represents a validation error with a field name. It is
// surfaced synchronously to the caller before any I/O happens.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

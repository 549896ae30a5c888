package apperr

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates a lookup for an unknown identifier.
var ErrNotFound = errors.New("record not found")

// ValidationError reports missing or malformed caller input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidation creates a validation error with a caller-facing message
func NewValidation(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// IsValidation reports whether err is a validation failure
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StorageError wraps a persistence failure. The cause is logged server-side;
// callers only ever see a generic message.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorage wraps a persistence error with the failing operation
func NewStorage(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

// IsStorage reports whether err is a persistence failure
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

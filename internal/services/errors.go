package services

import (
	"errors"
)

// Messages returned to callers for rejected input
const (
	MsgMissingIDOrName = "Missing id or name"
	MsgMissingID       = "Missing id"
)

// ValidationError reports missing or malformed input. It is always detected
// before the store is called.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError with the given client-facing message
func NewValidationError(message string, err error) *ValidationError {
	return &ValidationError{Message: message, Err: err}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

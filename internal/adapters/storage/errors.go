package storage

import (
	"errors"
	"fmt"
)

// Common storage error types
var (
	ErrInvalidKey         = errors.New("invalid item key")
	ErrInvalidItem        = errors.New("invalid item")
	ErrStorageUnavailable = errors.New("storage service unavailable")
	ErrClosed             = errors.New("storage is closed")
)

// StorageError represents a storage operation error with additional context
type StorageError struct {
	Op  string // Operation that failed ("Put" or "Get")
	Key string // Item ID involved in the operation
	Err error  // Underlying error
}

func (e *StorageError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("storage %s operation failed for key '%s': %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("storage %s operation failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Description returns the backend's own message, without the operation prefix.
// It is empty when the backend gave no readable message.
func (e *StorageError) Description() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// NewStorageError creates a new StorageError
func NewStorageError(op, key string, err error) *StorageError {
	return &StorageError{
		Op:  op,
		Key: key,
		Err: err,
	}
}

// IsStorageError returns true if err came out of an ItemStore
func IsStorageError(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr)
}

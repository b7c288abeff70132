package handlers

import (
	"errors"
	"strings"

	"hockeystats-api/internal/adapters/storage"
)

// MsgUnexpectedError replaces store errors that carry no readable message
const MsgUnexpectedError = "An unexpected error occurred"

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse represents a non-error status message
type MessageResponse struct {
	Message string `json:"message"`
}

// errorMessage picks the text shown to callers for a failed store call:
// the backend's own description when there is one, otherwise a fixed
// fallback.
func errorMessage(err error) string {
	if err == nil {
		return MsgUnexpectedError
	}

	msg := err.Error()
	var storageErr *storage.StorageError
	if errors.As(err, &storageErr) {
		msg = storageErr.Description()
	}

	if strings.TrimSpace(msg) == "" {
		return MsgUnexpectedError
	}
	return msg
}

package services

import (
	"errors"

	"nextgen/interview-coach/internal/repositories"
)

var (
	// ErrNetwork covers transport failures and error payloads from the model endpoint.
	ErrNetwork = errors.New("generation request failed")
	// ErrParse covers model text that holds no usable result.
	ErrParse = errors.New("invalid response format")

	ErrPermission = errors.New("permission denied")
	ErrBusy       = errors.New("operation already in progress")
	ErrNotFound   = repositories.ErrNotFound
	ErrValidation = errors.New("validation failed")
)

// ValidationError carries a user-facing message and matches ErrValidation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

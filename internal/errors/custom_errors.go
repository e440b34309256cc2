package errors

import (
	"fmt"
)

// AppError represents a structured CLI error with user-friendly and technical details.
type AppError struct {
	TechnicalMessage string
	UserMessage      string
	Code             string
	ExitCode         int
	OriginalError    error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %v", e.UserMessage, e.OriginalError)
}

// Unwrap returns the original error for error chaining.
func (e *AppError) Unwrap() error {
	return e.OriginalError
}

// Common error codes
const (
	ErrCodeInvalidArgument      = "INVALID_ARGUMENT"
	ErrCodeAuthenticationFailed = "AUTHENTICATION_FAILED"
	ErrCodeRequestFailed        = "REQUEST_FAILED"
	ErrCodeTransport            = "TRANSPORT_ERROR"
	ErrCodeInternal             = "INTERNAL_ERROR"
)

// Process exit codes, one per error code.
const (
	ExitInternal             = 1
	ExitInvalidArgument      = 2
	ExitAuthenticationFailed = 3
	ExitRequestFailed        = 4
	ExitTransport            = 5
)

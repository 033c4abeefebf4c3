package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for common provider failures.
var (
	ErrConnection     = errors.New("cannot reach model endpoint")
	ErrAuthentication = errors.New("authentication failed")
	ErrInvalidModel   = errors.New("invalid model")
	ErrContentBlocked = errors.New("content blocked by safety filters")
	ErrInvalidRequest = errors.New("invalid request")
	ErrEmptyResponse  = errors.New("model returned an empty response")
)

// ErrorCode represents a provider error code.
type ErrorCode string

const (
	ErrorCodeConnection     ErrorCode = "connection_failed"
	ErrorCodeAuth           ErrorCode = "authentication_failed"
	ErrorCodeInvalidModel   ErrorCode = "invalid_model"
	ErrorCodeContentBlocked ErrorCode = "content_blocked"
	ErrorCodeInvalidRequest ErrorCode = "invalid_request"
	ErrorCodeEmptyResponse  ErrorCode = "empty_response"
)

// ProviderError wraps transport-level failures with additional context.
// Unlike tool errors, these terminate the dispatch loop.
type ProviderError struct {
	Code       ErrorCode
	Message    string
	Underlying error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Underlying)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *ProviderError) Unwrap() error {
	return e.Underlying
}

package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies tool failures so the model can react to them.
// Kinds are stable wire values, serialized into tool-result turns.
type ErrorKind string

const (
	KindTraversal               ErrorKind = "traversal"
	KindForbiddenPath           ErrorKind = "forbidden_path"
	KindNotFound                ErrorKind = "not_found"
	KindTooLarge                ErrorKind = "too_large"
	KindNotText                 ErrorKind = "not_text"
	KindExtensionNotAllowed     ErrorKind = "extension_not_allowed"
	KindExistsNeedsConfirmation ErrorKind = "exists_needs_confirmation"
	KindBackupFailed            ErrorKind = "backup_failed"
	KindWriteFailed             ErrorKind = "write_failed"
	KindUnknownTool             ErrorKind = "unknown_tool"
	KindUnexpected              ErrorKind = "unexpected"
)

// ToolError is the structured error every tool function returns.
// It never escapes the dispatch loop as a fault; the orchestrator
// serializes it into the conversation instead.
type ToolError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

// Error implements the error interface.
func (e *ToolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error.
func (e *ToolError) Unwrap() error {
	return e.Err
}

// NewToolError creates a ToolError with the given kind and message.
func NewToolError(kind ErrorKind, format string, args ...any) *ToolError {
	return &ToolError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapToolError creates a ToolError that wraps an underlying error.
func WrapToolError(kind ErrorKind, err error, format string, args ...any) *ToolError {
	return &ToolError{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the ErrorKind from an error, or KindUnexpected if the
// error is not a ToolError.
func KindOf(err error) ErrorKind {
	var te *ToolError
	if errors.As(err, &te) {
		return te.Kind
	}
	return KindUnexpected
}

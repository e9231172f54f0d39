// Package errors provides structured error types for cargo-bitbake.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and library packages
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - MISSING_*: Required input not present
//   - UNRESOLVED_*: Translation failures
//   - OUTPUT_*: Recipe file write failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMissingLockfile, "no Cargo.lock next to %s", path)
//	if errors.Is(err, errors.ErrCodeMissingLockfile) {
//	    // Handle missing lockfile
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeOutputWrite, origErr, "unable to write recipe %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidManifest Code = "INVALID_MANIFEST"
	ErrCodeInvalidLockfile Code = "INVALID_LOCKFILE"
	ErrCodeInvalidPackage  Code = "INVALID_PACKAGE"

	// Required input not present
	ErrCodeMissingManifest Code = "MISSING_MANIFEST"
	ErrCodeMissingLockfile Code = "MISSING_LOCKFILE"
	ErrCodeMissingHomepage Code = "MISSING_HOMEPAGE"

	// Translation failures
	ErrCodeUnresolvedRevision Code = "UNRESOLVED_REVISION"

	// Repository introspection failures (recoverable at call sites)
	ErrCodeGitIntrospection Code = "GIT_INTROSPECTION"

	// Recipe file write failures
	ErrCodeOutputOpen  Code = "OUTPUT_OPEN"
	ErrCodeOutputWrite Code = "OUTPUT_WRITE"

	// Unexpected internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

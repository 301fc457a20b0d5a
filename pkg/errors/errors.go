// Package errors provides structured error types for polygrid.
//
// Errors carry a machine-readable [Code] so the CLI can tell configuration
// problems (fail fast, nothing generated) apart from output problems (the
// artifact could not be written).
//
// # Error Codes
//
//   - INVALID_*: configuration rejected before any generation work
//   - OUTPUT_ERROR: writing the artifact failed
//   - INTERNAL_ERROR: unexpected internal failure
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidGrid, "rows must be at least 1, got %d", rows)
//	if errors.IsConfig(err) {
//	    // print usage hint
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeOutput, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration errors
	ErrCodeInvalidConfig     Code = "INVALID_CONFIG"
	ErrCodeInvalidDimensions Code = "INVALID_DIMENSIONS"
	ErrCodeInvalidGrid       Code = "INVALID_GRID"
	ErrCodeInvalidJitter     Code = "INVALID_JITTER"
	ErrCodeInvalidColor      Code = "INVALID_COLOR"
	ErrCodeInvalidPalette    Code = "INVALID_PALETTE"
	ErrCodeInvalidFormat     Code = "INVALID_FORMAT"
	ErrCodeInvalidPath       Code = "INVALID_PATH"

	// Output errors
	ErrCodeOutput Code = "OUTPUT_ERROR"

	// Internal errors
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

// IsConfig reports whether err is a configuration error.
func IsConfig(err error) bool {
	return strings.HasPrefix(string(GetCode(err)), "INVALID_")
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
		if e.Cause != nil {
			return e.Message + ": " + e.Cause.Error()
		}
		return e.Message
	}
	return err.Error()
}

// Package errors provides structured error types for gridlock.
//
// Errors carry a machine-readable [Code] so callers can tell recoverable
// conditions apart from fatal ones without string matching:
//   - CONFIGURATION / INVALID_SEED: bad configuration values; callers fall
//     back to known-good defaults and log a warning.
//   - UNKNOWN_MODE: a command asked for a mode that is not registered; the
//     command fails and the previous artwork stays current.
//   - GENERATION_EXHAUSTED: the pattern generator ran out of attempts; this
//     is absorbed by emitting the fallback shape and only surfaces in logs.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownMode, "unknown mode %q", name)
//	if errors.Is(err, errors.ErrCodeUnknownMode) {
//	    // keep the previous state
//	}
//
//	err := errors.Wrap(errors.ErrCodeConfiguration, cause, "read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration errors (recoverable via defaults)
	ErrCodeConfiguration Code = "CONFIGURATION"
	ErrCodeInvalidSeed   Code = "INVALID_SEED"
	ErrCodeInvalidTheme  Code = "INVALID_THEME"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Generation errors
	ErrCodeUnknownMode         Code = "UNKNOWN_MODE"
	ErrCodeGenerationExhausted Code = "GENERATION_EXHAUSTED"

	// Resource errors
	ErrCodeNotFound Code = "NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// configurationCodes are the codes treated as ConfigurationError.
var configurationCodes = map[Code]bool{
	ErrCodeConfiguration: true,
	ErrCodeInvalidSeed:   true,
	ErrCodeInvalidTheme:  true,
}

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

// IsConfiguration reports whether err is a recoverable configuration error
// (bad seed, bad theme, malformed config value).
func IsConfiguration(err error) bool {
	return configurationCodes[GetCode(err)]
}

// IsUnknownMode reports whether err names a mode missing from the registry.
func IsUnknownMode(err error) bool {
	return Is(err, ErrCodeUnknownMode)
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

// Package errors provides the coded error types returned by the augmentation
// and initialization packages.
//
// Codes are machine-readable so callers can branch on the failure class
// without matching message text:
//
//	w, err := nn.KaimingUniform[float32](rng, 4, 8, backend, nn.Config{Nonlinearity: "tanh"})
//	if errors.Is(err, errors.ErrCodeUnsupported) {
//	    // fall back to another scheme
//	}
//
// None of these errors are transient; retrying the same call fails the same way.
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// ErrCodeInvalidInput marks constructor or call arguments outside their domain.
	ErrCodeInvalidInput Code = "INVALID_INPUT"

	// ErrCodeInvalidShape marks tensors whose rank or dimensions break a contract.
	ErrCodeInvalidShape Code = "INVALID_SHAPE"

	// ErrCodeUnsupported marks valid requests the implementation does not serve.
	ErrCodeUnsupported Code = "UNSUPPORTED"
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

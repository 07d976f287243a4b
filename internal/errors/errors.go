// Package errors provides standardized domain errors with codes for the FitFi core.
//
// Usage:
//
//	// In services - return typed errors
//	if locked {
//	    return errors.Locked("embedding already locked")
//	}
//
//	// In callers - check with errors.Is
//	if errors.Is(err, errors.ErrLocked) {
//	    // surface as a conflict, do not retry
//	}
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	Join   = errors.Join
)

// Code represents a machine-readable error code.
type Code string

// Error codes used throughout the application.
const (
	CodeNotFound    Code = "NOT_FOUND"
	CodeConflict    Code = "CONFLICT"
	CodeLocked      Code = "LOCKED"
	CodeValidation  Code = "VALIDATION"
	CodeRateLimited Code = "RATE_LIMITED"
	CodeUnavailable Code = "UNAVAILABLE"
	CodeInternal    Code = "INTERNAL"
)

// Error is a domain error with a code, message, and optional details.
type Error struct {
	Code    Code              `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
	Err     error             `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target carries the same code.
// This lets errors.Is(err, ErrLocked) match any LOCKED error regardless of message.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// WithCause returns a copy wrapping an underlying error.
func (e *Error) WithCause(err error) *Error {
	return &Error{Code: e.Code, Message: e.Message, Details: e.Details, Err: err}
}

// Sentinel errors for errors.Is checks.
var (
	ErrNotFound    = &Error{Code: CodeNotFound, Message: "resource not found"}
	ErrConflict    = &Error{Code: CodeConflict, Message: "conflict"}
	ErrLocked      = &Error{Code: CodeLocked, Message: "resource is locked"}
	ErrValidation  = &Error{Code: CodeValidation, Message: "validation failed"}
	ErrRateLimited = &Error{Code: CodeRateLimited, Message: "rate limit exceeded"}
	ErrUnavailable = &Error{Code: CodeUnavailable, Message: "store unavailable"}
	ErrInternal    = &Error{Code: CodeInternal, Message: "internal error"}
)

// NotFound creates a NOT_FOUND error with a custom message.
func NotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg}
}

// Conflict creates a CONFLICT error with a custom message.
func Conflict(msg string) *Error {
	return &Error{Code: CodeConflict, Message: msg}
}

// Locked creates a LOCKED error with a custom message.
func Locked(msg string) *Error {
	return &Error{Code: CodeLocked, Message: msg}
}

// Validation creates a VALIDATION error with a custom message.
func Validation(msg string) *Error {
	return &Error{Code: CodeValidation, Message: msg}
}

// ValidationWithDetails creates a VALIDATION error carrying per-field messages.
func ValidationWithDetails(msg string, details map[string]string) *Error {
	return &Error{Code: CodeValidation, Message: msg, Details: details}
}

// RateLimited creates a RATE_LIMITED error with a custom message.
func RateLimited(msg string) *Error {
	return &Error{Code: CodeRateLimited, Message: msg}
}

// Unavailable creates an UNAVAILABLE error with a custom message.
func Unavailable(msg string) *Error {
	return &Error{Code: CodeUnavailable, Message: msg}
}

// Internal creates an INTERNAL error wrapping a cause.
func Internal(msg string, err error) *Error {
	return &Error{Code: CodeInternal, Message: msg, Err: err}
}

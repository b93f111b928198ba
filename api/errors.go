// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-stl.

package api

import (
	"fmt"

	"github.com/pkg/errors"
)

// Common errors used across the library.
//
// Range and lookup errors are recoverable and returned to the caller.
// ErrAllocationFailed is fatal: containers panic with it instead of
// returning it.
var (
	ErrOutOfRange       = errors.New("index out of range")
	ErrEmpty            = emptyError{}
	ErrAllocationFailed = errors.New("allocation failed")
	ErrLengthExceeded   = errors.New("length exceeds allocator max size")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrNotFound         = errors.New("key not found")
)

// emptyError reports front/back access on an empty container. It is also an
// out-of-range error, so errors.Is(ErrEmpty, ErrOutOfRange) holds.
type emptyError struct{}

func (emptyError) Error() string { return "container is empty" }

func (emptyError) Unwrap() error { return ErrOutOfRange }

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeResourceExhausted
	ErrCodeLengthExceeded
	ErrCodeOutOfRange
	ErrCodeNotFound
	ErrCodeInternal
)

func (c ErrorCode) String() string {
	switch c {
	case ErrCodeOK:
		return "ok"
	case ErrCodeInvalidArgument:
		return "invalid_argument"
	case ErrCodeResourceExhausted:
		return "resource_exhausted"
	case ErrCodeLengthExceeded:
		return "length_exceeded"
	case ErrCodeOutOfRange:
		return "out_of_range"
	case ErrCodeNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap maps the code onto the matching sentinel so that errors.Is works
// against the package-level error values.
func (e *Error) Unwrap() error {
	switch e.Code {
	case ErrCodeInvalidArgument:
		return ErrInvalidArgument
	case ErrCodeResourceExhausted:
		return ErrAllocationFailed
	case ErrCodeLengthExceeded:
		return ErrLengthExceeded
	case ErrCodeOutOfRange:
		return ErrOutOfRange
	case ErrCodeNotFound:
		return ErrNotFound
	default:
		return nil
	}
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// OutOfRange wraps ErrOutOfRange with the offending index and the size.
func OutOfRange(index, size int) error {
	return errors.Wrapf(ErrOutOfRange, "index %d, size %d", index, size)
}

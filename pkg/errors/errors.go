// Package errors provides structured error types for relgraph.
//
// Every failure that crosses a library boundary carries a [Code] so the CLI
// and the HTTP service can classify it without string matching. Codes
// prefixed INVALID_ are caller mistakes; codes ending in NOT_FOUND name
// missing files, formats or nodes.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", f)
//	if errors.Is(err, errors.ErrCodeInvalidFormat) {
//	    ...
//	}
//
//	err = errors.Wrap(errors.ErrCodeInvalidGraph, cause, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code is a machine-readable error category.
type Code string

const (
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidGraph    Code = "INVALID_GRAPH"
	ErrCodeInvalidRenderer Code = "INVALID_RENDERER"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"
	ErrCodeInvalidPath     Code = "INVALID_PATH"

	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Invalid reports whether c marks a caller mistake.
func (c Code) Invalid() bool { return strings.HasPrefix(string(c), "INVALID_") }

// NotFound reports whether c marks a missing resource.
func (c Code) NotFound() bool { return strings.HasSuffix(string(c), "NOT_FOUND") }

// Error pairs a Code with a message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.detail()
}

func (e *Error) Unwrap() error { return e.Cause }

// detail is the message plus cause, without the code.
func (e *Error) detail() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

// New returns an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an Error whose Cause is cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Cause = cause
	return e
}

// find returns the outermost *Error in err's chain.
func find(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode returns the code of the outermost *Error in err's chain, or "".
func GetCode(err error) Code {
	if e, ok := find(err); ok {
		return e.Code
	}
	return ""
}

// UserMessage returns err's text without the code prefix.
func UserMessage(err error) string {
	if e, ok := find(err); ok {
		return e.detail()
	}
	return err.Error()
}

// IsInvalid reports whether err carries one of the INVALID_ codes.
func IsInvalid(err error) bool { return GetCode(err).Invalid() }

// IsNotFound reports whether err carries a NOT_FOUND code.
func IsNotFound(err error) bool { return GetCode(err).NotFound() }

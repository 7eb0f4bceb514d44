// Package domainerrors classifies errors crossing package boundaries with
// stable codes so callers can branch on error kind without string matching.
// Import aliased as dErrors.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code identifies the kind of failure.
type Code string

const (
	// CodeInvalidValue marks a rejected write to a validated field. Errors
	// carrying this code also carry the field name and the rejected value.
	CodeInvalidValue Code = "invalid_value"
	// CodeInternal marks states that should be unreachable. Kept for
	// parity with the rest of the error ladder; nothing emits it today.
	CodeInternal Code = "internal"
)

// Error is the concrete error type behind every classified error.
type Error struct {
	code  Code
	msg   string
	field string
	value any
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.cause }

// Code returns the classification of this error.
func (e *Error) Code() Code { return e.code }

// New creates a classified error with a static message.
func New(code Code, msg string) error {
	return &Error{code: code, msg: msg}
}

// Newf creates a classified error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, args...)}
}

// Wrap classifies an underlying error while preserving it for errors.Is/As.
func Wrap(err error, code Code, msg string) error {
	return &Error{code: code, msg: msg, cause: err}
}

// InvalidValue reports a validated-field write rejected by its predicate.
// The field name and the rejected value stay programmatically accessible
// through Field and RejectedValue.
func InvalidValue(field string, value any) error {
	return &Error{
		code:  CodeInvalidValue,
		msg:   fmt.Sprintf("invalid value for %s: %v", field, value),
		field: field,
		value: value,
	}
}

// HasCode reports whether any error in the chain carries the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.code == code
}

// Is is a readability alias for HasCode, for call sites of the form
// dErrors.Is(err, dErrors.CodeInvalidValue).
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// Field returns the field name attached to the nearest classified error in
// the chain, or "" when none carries one.
func Field(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.field
}

// RejectedValue returns the rejected value attached to the nearest classified
// error in the chain. The second return is false when none carries one.
func RejectedValue(err error) (any, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return nil, false
	}
	if e.code != CodeInvalidValue {
		return nil, false
	}
	return e.value, true
}

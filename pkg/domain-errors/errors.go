// Package domainerrors provides coded errors for domain logic. Services
// attach a Code so callers can branch on the failure class without string
// matching, while the message stays human-readable.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies a domain failure.
type Code string

const (
	// CodeValidation marks input that failed a domain validation rule.
	CodeValidation Code = "validation"
	// CodeInvalidInput marks input that could not be interpreted at all
	// (malformed shape, unparseable fields).
	CodeInvalidInput Code = "invalid_input"
	// CodeConflict marks an operation that would violate a uniqueness rule.
	CodeConflict Code = "conflict"
	// CodeNotFound marks a lookup for an entity that does not exist.
	CodeNotFound Code = "not_found"
	// CodeInvariantViolation marks an entity state that breaks a documented
	// invariant.
	CodeInvariantViolation Code = "invariant_violation"
	// CodeBadRequest marks a request that is structurally unusable.
	CodeBadRequest Code = "bad_request"
	// CodeInternal marks unexpected infrastructure failures.
	CodeInternal Code = "internal"
)

// Error is a coded domain error. It wraps an optional cause.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// New builds a coded error with no cause.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Newf builds a coded error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error. The cause stays
// reachable through errors.Is/As.
func Wrap(err error, code Code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, cause: err}
}

// HasCode reports whether err (or anything it wraps) is a domain error with
// the given code.
func HasCode(err error, code Code) bool {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// CodeOf returns the code of err, or CodeInternal if err carries none.
func CodeOf(err error) Code {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return CodeInternal
}

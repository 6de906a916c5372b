// Package serrors tags park errors with a category so the CLI can tell a bad
// configuration from a ride asked of an attraction that cannot answer it.
package serrors

import (
	"errors"
	"fmt"
)

// Kind names an error category. Kinds compare by value.
type Kind interface {
	error
	isKind()
}

type kind string

func (k kind) Error() string { return string(k) }
func (k kind) isKind()       {}

var (
	// ErrInvalidArgument marks input the park cannot use, such as an
	// unreadable config file.
	ErrInvalidArgument Kind = kind("INVALID_ARGUMENT")
	// ErrFailedPrecondition marks an operation asked of an entity that does
	// not support it, e.g. eligibility on an attraction without a rule.
	ErrFailedPrecondition Kind = kind("FAILED_PRECONDITION")
)

// Error carries a Kind, a message and an optional cause.
type Error struct {
	kind  Kind
	msg   string
	cause error
}

// With returns an error of kind k with a formatted message and no cause.
func With(k Kind, format string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(format, args...)}
}

// Wrap returns an error of kind k that reads "<msg>: <cause>".
func Wrap(k Kind, cause error, msg string) *Error {
	return &Error{kind: k, msg: msg, cause: cause}
}

func (e *Error) Error() string {
	if e.cause == nil {
		return e.msg
	}

	return e.msg + ": " + e.cause.Error()
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *Error) Unwrap() error { return e.cause }

// Is matches the error's own kind. Causes are matched by errors.Is through
// Unwrap.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)

	return ok && k == e.kind
}

// Kind returns the category of e.
func (e *Error) Kind() Kind { return e.kind }

// KindOf returns the kind of the outermost *Error in err's chain, or nil.
func KindOf(err error) Kind {
	var e *Error
	if !errors.As(err, &e) {
		return nil
	}

	return e.kind
}

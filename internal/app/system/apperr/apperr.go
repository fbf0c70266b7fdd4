// Package apperr defines the error kinds the service surfaces and maps them
// to HTTP responses. Every failure path returns one of these kinds; nothing
// is swallowed into an empty success.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for callers and the HTTP layer.
type Kind int

const (
	// Validation: missing or malformed input. No partial write occurred.
	Validation Kind = iota + 1
	// NotFound: an update/delete matched zero records. Distinct from
	// Validation so callers can show "already removed" instead of "bad input".
	NotFound
	// UnauthorizedScope: a client caller supplied no tenant id. Always
	// fails closed.
	UnauthorizedScope
	// Storage: the backing store is unreachable or timed out. Transient;
	// the caller may retry the whole request.
	Storage
	// Conflict: the request collides with existing state (duplicate email,
	// illegal status transition).
	Conflict
)

// Error carries a kind, a caller-facing message, and an optional cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// New creates an error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf creates an error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap creates an error of the given kind around a cause.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf extracts the kind from an error chain. Unclassified errors are
// reported as Storage, the conservative default for unexpected failures.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Storage
}

// Message returns the caller-facing message for an error chain.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return "internal error"
}

// Package common contains the error taxonomy and small helpers shared by
// the campuspark client core. Failures cross package boundaries as *Error
// values tagged with a Kind; callers dispatch on the tag via IsKind and
// never on message text.
package common

import (
	"errors"
	"fmt"
)

// Kind identifies one failure class of the client core. The set is closed:
// every error surfaced to a caller of the core carries exactly one Kind.
type Kind int

const (
	// KindConnectivity: no reachable backend (transport error, timeout, DNS).
	KindConnectivity Kind = iota + 1
	// KindInvalidCredentials: the server explicitly rejected a login.
	KindInvalidCredentials
	// KindInvalidEndpoint: a configured base URL failed validation.
	KindInvalidEndpoint
	// KindDuplicateStudentID: demo registration collided on student id.
	KindDuplicateStudentID
	// KindNotFound: profile/history absent from both backend and fallback.
	KindNotFound
	// KindTopUpFailure: a money-moving call failed; never recovered silently.
	KindTopUpFailure
	// KindServer: the backend answered with a status the operation cannot
	// interpret. Produced by the api layer; operations either map it to a
	// public kind or recover via the fallback dataset.
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindConnectivity:
		return "connectivity"
	case KindInvalidCredentials:
		return "invalid credentials"
	case KindInvalidEndpoint:
		return "invalid endpoint"
	case KindDuplicateStudentID:
		return "duplicate student id"
	case KindNotFound:
		return "not found"
	case KindTopUpFailure:
		return "top-up failure"
	case KindServer:
		return "server error"
	}
	return "unknown"
}

// Error is a tagged failure variant. Status carries the originating HTTP
// status code when the server reported the failure, zero otherwise.
// Message is human-readable; a server-supplied message takes precedence
// over a generic one at the point the Error is built.
type Error struct {
	Kind    Kind
	Message string
	Status  int
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Err.Error())
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

// NewError builds a tagged error with a formatted message.
func NewError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError tags an underlying error, keeping it reachable via errors.Is/As.
func WrapError(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// IsKind reports whether err (or anything it wraps) is a tagged *Error of
// the given kind.
func IsKind(err error, kind Kind) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Kind == kind
}

// ErrorStatus extracts the server status code from a tagged error, or zero.
func ErrorStatus(err error) int {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Status
	}
	return 0
}

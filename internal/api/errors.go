package api

import (
	"errors"
	"fmt"
)

// Kind classifies a failed call so views can decide presentation without
// string-matching.
type Kind int

const (
	// KindNetwork covers dial, timeout, and transport failures.
	KindNetwork Kind = iota
	// KindStatus is a non-2xx response other than 401.
	KindStatus
	// KindUnauthorized is a 401; the session has already been cleared by the
	// time the caller sees it.
	KindUnauthorized
	// KindDecode means the backend replied 2xx with a body the typed
	// contract could not parse.
	KindDecode
)

var (
	ErrUnauthorized = errors.New("session expired")
	ErrDecode       = errors.New("malformed response")
)

// Error is the typed failure returned by every client call.
type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindUnauthorized:
		return "unauthorized"
	case KindStatus:
		if e.Message != "" {
			return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
		}
		return fmt.Sprintf("backend returned %d", e.Status)
	case KindDecode:
		return "malformed response: " + e.Message
	default:
		return "request failed: " + e.Message
	}
}

// Is lets callers match sentinel errors with errors.Is while still receiving
// the full *Error value.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Kind == KindUnauthorized
	case ErrDecode:
		return e.Kind == KindDecode
	}
	return false
}

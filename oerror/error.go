package oerror

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedBox is returned when a bounding box has a minimum corner above its maximum corner on
	// some axis, or a corner that is not finite.
	ErrMalformedBox = errors.New("malformed bounding box")
	// ErrNonFinite is returned when a position, velocity or movement contains NaN or an infinity.
	ErrNonFinite = errors.New("non-finite vector")
	// ErrStaleEntity is returned when an entity ID refers to a slot that has since been released.
	ErrStaleEntity = errors.New("stale entity id")
)

// KineticError is an error raised by the movement core. It optionally wraps a sentinel so callers can
// match it with errors.Is.
type KineticError struct {
	Err  string
	Kind error
}

// New returns a KineticError formatted with the given arguments.
func New(format string, args ...any) *KineticError {
	return &KineticError{Err: fmt.Sprintf(format, args...)}
}

// Wrap returns a KineticError that formats the message and reports kind from Unwrap.
func Wrap(kind error, format string, args ...any) *KineticError {
	return &KineticError{Err: fmt.Sprintf(format, args...), Kind: kind}
}

func (e *KineticError) Error() string {
	if e.Kind != nil {
		return e.Kind.Error() + ": " + e.Err
	}
	return e.Err
}

func (e *KineticError) Unwrap() error {
	return e.Kind
}

// Package errs defines the closed set of error kinds the core analysis
// engine can raise, per the error-handling design of the specification.
//
// Fatal kinds (InvalidInput, DegenerateGeometry, Singular) always propagate
// to the orchestration boundary as an error and abort the current analysis.
// NotConverged and Cancelled are never returned as errors: callers observe
// them through a result's Converged flag and Notes, never through Unwrap.
package errs

import (
	"fmt"

	"github.com/cpmech/gosl/io"
)

// Kind is the closed variant of failure categories the core can report.
type Kind int

const (
	// InvalidInput marks a missing or non-physical parameter caught during
	// validation, before any solve begins.
	InvalidInput Kind = iota
	// DegenerateGeometry marks an embedment too short to discretise.
	DegenerateGeometry
	// Singular marks a banded solve that could not be factored.
	Singular
	// NotConverged marks an iteration-limit exit. Never wrapped in Error;
	// reported via a result's Converged=false and a note instead.
	NotConverged
	// Cancelled marks a caller-requested stop between iterations. Never
	// wrapped in Error; reported the same way as NotConverged.
	Cancelled
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case DegenerateGeometry:
		return "DegenerateGeometry"
	case Singular:
		return "Singular"
	case NotConverged:
		return "NotConverged"
	case Cancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Error is the error type returned at package boundaries for fatal kinds.
type Error struct {
	Kind  Kind
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return io.Sf("%s: %s: %v", e.Kind, e.Msg, e.Cause)
	}
	return io.Sf("%s: %s", e.Kind, e.Msg)
}

// Unwrap lets errors.Is/errors.As see through to a wrapped cause.
func (e *Error) Unwrap() error { return e.Cause }

// Is lets errors.Is(err, errs.ErrInvalidInput) work by kind comparison; Kind
// is not itself an error, so we compare against other *Error values.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New builds a fatal Error of the given kind, formatted the way
// github.com/cpmech/gosl/chk.Err formats its messages.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds a fatal Error of the given kind around a lower-level cause.
func Wrap(kind Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Cause: cause}
}

// Sentinel values usable with errors.Is(err, errs.ErrSingular) and similar,
// matching each fatal Kind with a zero-message Error.
var (
	ErrInvalidInput      = &Error{Kind: InvalidInput}
	ErrDegenerateGeometry = &Error{Kind: DegenerateGeometry}
	ErrSingular          = &Error{Kind: Singular}
)

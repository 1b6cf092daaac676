// Package pcperr defines the shared error taxonomy used across the
// branch-and-price solver: InputError, SolverError, Timeout, and
// InvariantViolation, per the propagation policy of spec §7.
//
// Callers branch on kind with errors.As, never on message text.
package pcperr

import (
	"errors"
	"fmt"
)

// Kind classifies a solver-level failure.
type Kind int

const (
	// KindInput marks a parse/validation failure detected before any search begins.
	KindInput Kind = iota
	// KindSolver marks an LP/MIP infeasibility or unboundedness where feasibility was required.
	KindSolver
	// KindTimeout marks a deadline overrun; recovered at the controller, not fatal.
	KindTimeout
	// KindInvariant marks a debug-mode assertion failure (e.g. reduced-cost mismatch).
	KindInvariant
)

// String renders a human-readable label for the kind.
func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindSolver:
		return "solver"
	case KindTimeout:
		return "timeout"
	case KindInvariant:
		return "invariant"
	default:
		return "unknown"
	}
}

// Error is the structured error type carried through the solver. Method
// identifies the component that raised it (e.g. "ParsePCP", "RMP.Solve");
// Cause is the wrapped underlying sentinel or error.
type Error struct {
	Kind   Kind
	Method string
	Cause  error
}

// Error implements the error interface as "<method>: <kind>: <cause>".
func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Method, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Method, e.Kind, e.Cause)
}

// Unwrap exposes the wrapped cause to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Cause }

// Wrap builds a *Error of the given kind, attributed to method, around cause.
func Wrap(kind Kind, method string, cause error) *Error {
	return &Error{Kind: kind, Method: method, Cause: cause}
}

// Input is a convenience constructor for KindInput errors.
func Input(method string, cause error) *Error { return Wrap(KindInput, method, cause) }

// Solver is a convenience constructor for KindSolver errors.
func Solver(method string, cause error) *Error { return Wrap(KindSolver, method, cause) }

// Timeout is a convenience constructor for KindTimeout errors.
func Timeout(method string, cause error) *Error { return Wrap(KindTimeout, method, cause) }

// Invariant is a convenience constructor for KindInvariant errors.
func Invariant(method string, cause error) *Error { return Wrap(KindInvariant, method, cause) }

// Is reports whether err carries the given Kind, looking through wrapping.
func Is(err error, kind Kind) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind == kind
	}
	return false
}

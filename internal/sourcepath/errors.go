package sourcepath

import (
	"errors"
	"fmt"
)

// Sentinel error kinds for path resolution. Callers match them with
// errors.Is; the concrete error is always a *PathError.
var (
	// ErrEmptyInput is returned when an empty path string is supplied.
	ErrEmptyInput = errors.New("empty path")

	// ErrInvalidPath is returned when relative resolution would escape the
	// tree root, or when an absolute form is malformed for the requested
	// result (e.g. a file path that resolves to a bare root).
	ErrInvalidPath = errors.New("invalid path")

	// ErrNullPath is returned when an operation requires a non-null path
	// value but received one.
	ErrNullPath = errors.New("null path")
)

// PathError annotates a resolution failure with the offending input and an
// opaque blame value supplied by the caller. The blame value is never
// inspected here; it exists so that higher layers can point the user at the
// build-file location that produced the bad path.
type PathError struct {
	Err   error // one of the sentinel kinds above
	Input string
	Blame any
}

func (e *PathError) Error() string {
	if e.Blame != nil {
		return fmt.Sprintf("%v: %q (%v)", e.Err, e.Input, e.Blame)
	}
	return fmt.Sprintf("%v: %q", e.Err, e.Input)
}

func (e *PathError) Unwrap() error { return e.Err }

package labelvec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState is wrapped by *InvalidStateError.
	ErrInvalidState = errors.New("operation not allowed while a subset is active")
	// ErrPrecondition is wrapped by *PreconditionError.
	ErrPrecondition = errors.New("precondition violated")
	// ErrFormat is wrapped by *FormatError.
	ErrFormat = errors.New("label is not an integer")
	// ErrInvalidLabels is returned when a label vector fails validation.
	ErrInvalidLabels = errors.New("invalid labels")
)

// InvalidStateError reports a whole-vector operation attempted under a subset.
type InvalidStateError struct {
	Op string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, ErrInvalidState)
}

func (e *InvalidStateError) Unwrap() error { return ErrInvalidState }

// PreconditionError reports misuse: empty storage or an index outside the
// logical range. Accessors that return a value panic with it.
type PreconditionError struct {
	Op     string
	Index  int
	Len    int
	Reason string
}

func (e *PreconditionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %v: %s", e.Op, ErrPrecondition, e.Reason)
	}
	return fmt.Sprintf("%s: %v: index %d out of range [0, %d)", e.Op, ErrPrecondition, e.Index, e.Len)
}

func (e *PreconditionError) Unwrap() error { return ErrPrecondition }

// FormatError reports a stored value that is not an exact int32.
type FormatError struct {
	Index int
	Value float64
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("label %d = %v: %v", e.Index, e.Value, ErrFormat)
}

func (e *FormatError) Unwrap() error { return ErrFormat }

package sqlite

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a label set does not exist.
var ErrNotFound = errors.New("label set not found")

// StoreError records the operation that failed.
type StoreError struct {
	Op  string
	Set string
	Err error
}

func (e *StoreError) Error() string {
	if e.Set == "" {
		return fmt.Sprintf("sqlite: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("sqlite: %s %q: %v", e.Op, e.Set, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func wrapError(op, set string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Set: set, Err: err}
}

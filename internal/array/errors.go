package array

import (
	"errors"
	"fmt"
)

// ErrReadonly is returned (or carried by panics in scalar setters) when a
// mutation is attempted on a read-only array.
var ErrReadonly = errors.New("array is read-only")

// ValidationError reports a caller contract violation, naming the attribute
// that was violated. It is never recovered internally.
type ValidationError struct {
	Attr string
	Msg  string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Attr, e.Msg)
}

// NewValidationError builds a ValidationError for the given attribute.
func NewValidationError(attr, format string, args ...any) *ValidationError {
	return &ValidationError{Attr: attr, Msg: fmt.Sprintf(format, args...)}
}

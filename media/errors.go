package media

import (
	"errors"
	"fmt"
)

// Causes carried by a ValidationError. Match them with errors.Is.
var (
	ErrMissingField    = errors.New("missing required field")
	ErrWrongType       = errors.New("wrong type")
	ErrEmptyField      = errors.New("must not be empty")
	ErrInvalidDuration = errors.New("must be a non-negative number")
)

// ValidationError reports why a record or field set could not become a
// MediaItem. Index is the record's position in its batch, or -1 when the
// item was built from explicit fields.
type ValidationError struct {
	Index int
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("record %d: %s: %v", e.Index, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(index int, field string, err error) *ValidationError {
	return &ValidationError{Index: index, Field: field, Err: err}
}

package services

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced entity does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError reports malformed input. In batch operations it is
// scoped to the offending item; the rest of the batch proceeds.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// ConflictError reports a uniqueness violation that get-or-create could
// not absorb, e.g. a manual duplicate creation attempt.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates blank text: nothing typed, or a file whose text
	// is only whitespace.
	ErrEmptyInput = errors.New("input text is required")

	// ErrInvalidInput is matched by every *ValidationError.
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError reports a request field with an unacceptable value, such as
// a sentence count outside the slider range. Message is shown to users, so it
// is phrased as a complete predicate ("must be between 1 and 10").
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Unwrap lets errors.Is match ErrInvalidInput.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

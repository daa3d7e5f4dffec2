package entity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "sentence count",
			field:    "sentences",
			message:  "must be between 1 and 10",
			expected: "invalid sentences: must be between 1 and 10",
		},
		{
			name:     "empty field name",
			field:    "",
			message:  "test message",
			expected: "invalid : test message",
		},
		{
			name:     "empty message",
			field:    "text",
			message:  "",
			expected: "invalid text: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &ValidationError{Field: tt.field, Message: tt.message}
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestValidationError_MatchesErrInvalidInput(t *testing.T) {
	var err error = &ValidationError{Field: "sentences", Message: "out of range"}
	wrapped := fmt.Errorf("summarize: %w", err)

	assert.True(t, errors.Is(wrapped, ErrInvalidInput))

	var vErr *ValidationError
	assert.True(t, errors.As(wrapped, &vErr))
	assert.Equal(t, "sentences", vErr.Field)
}

func TestSentinelErrors(t *testing.T) {
	assert.EqualError(t, ErrEmptyInput, "input text is required")
	assert.EqualError(t, ErrInvalidInput, "invalid input")
	assert.False(t, errors.Is(ErrEmptyInput, ErrInvalidInput))
}

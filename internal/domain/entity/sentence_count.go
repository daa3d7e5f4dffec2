package entity

import "fmt"

const (
	// MinSentenceCount is the smallest summary a user can request.
	MinSentenceCount = 1
	// MaxSentenceCount is the largest summary a user can request.
	MaxSentenceCount = 10
	// DefaultSentenceCount is the initial slider position.
	DefaultSentenceCount = 3
)

// ValidateSentenceCount checks that n lies within [lo, hi].
// Returns a ValidationError if it does not.
func ValidateSentenceCount(n, lo, hi int) error {
	if n < lo || n > hi {
		return &ValidationError{
			Field:   "sentences",
			Message: fmt.Sprintf("must be between %d and %d", lo, hi),
		}
	}
	return nil
}

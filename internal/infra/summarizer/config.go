package summarizer

import (
	"fmt"

	"textsum/internal/infra/tokenizer"
)

const (
	// DefaultThreshold is the minimum cosine similarity for two sentences to be linked.
	DefaultThreshold = 0.1

	// DefaultEpsilon is the convergence bound of the power method.
	DefaultEpsilon = 0.1

	// DefaultMaxIterations bounds the power method when it fails to converge.
	DefaultMaxIterations = 10000
)

// Config holds summarizer tuning. The zero value is not valid; start from DefaultConfig.
type Config struct {
	// Algorithm selects the summarization strategy.
	Algorithm Algorithm

	// Language names the tokenizer language.
	Language string

	// Threshold is the similarity above which two sentences share an edge.
	// Valid range: [0, 1).
	Threshold float64

	// Epsilon stops the power method once the L2 change between iterations
	// is at or below it. Must be positive.
	Epsilon float64

	// MaxIterations caps the power method. Must be positive.
	MaxIterations int
}

// DefaultConfig returns the LexRank configuration used by the web UI.
func DefaultConfig() Config {
	return Config{
		Algorithm:     AlgorithmLexRank,
		Language:      tokenizer.DefaultLanguage,
		Threshold:     DefaultThreshold,
		Epsilon:       DefaultEpsilon,
		MaxIterations: DefaultMaxIterations,
	}
}

// Validate checks every field and returns the first problem found.
func (c Config) Validate() error {
	if _, err := ParseAlgorithm(string(c.Algorithm)); err != nil {
		return err
	}
	if err := tokenizer.ValidateLanguage(c.Language); err != nil {
		return err
	}
	if c.Threshold < 0 || c.Threshold >= 1 {
		return fmt.Errorf("threshold %v must be in [0, 1)", c.Threshold)
	}
	if c.Epsilon <= 0 {
		return fmt.Errorf("epsilon %v must be positive", c.Epsilon)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("max iterations %d must be positive", c.MaxIterations)
	}
	return nil
}

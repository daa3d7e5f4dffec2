// Package summarizer provides extractive text summarization.
// Summaries are built only from sentences of the input text; nothing is generated.
// The default algorithm is LexRank, which scores sentences by their centrality in a
// cosine-similarity graph. A lead baseline is available for comparison.
package summarizer

import (
	"context"
	"fmt"
	"strings"

	"textsum/internal/domain/entity"
)

// Algorithm names a summarization strategy.
type Algorithm string

const (
	// AlgorithmLexRank ranks sentences by graph centrality.
	AlgorithmLexRank Algorithm = "lexrank"
	// AlgorithmLead keeps the leading sentences of the document.
	AlgorithmLead Algorithm = "lead"
)

// Algorithms lists every supported algorithm.
var Algorithms = []Algorithm{AlgorithmLexRank, AlgorithmLead}

// ParseAlgorithm resolves a configuration value to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Algorithms {
		if a == known {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Summarizer selects up to count sentences from text.
type Summarizer interface {
	Summarize(ctx context.Context, text string, count int) (entity.Summary, error)
}

// New builds the summarizer named by cfg.Algorithm.
func New(cfg Config, tok Tokenizer, recorder SummaryMetricsRecorder) (Summarizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if recorder == nil {
		recorder = NoOpMetrics{}
	}
	switch cfg.Algorithm {
	case AlgorithmLead:
		return NewLead(tok, recorder), nil
	default:
		return NewLexRank(cfg, tok, recorder), nil
	}
}

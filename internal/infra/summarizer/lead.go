package summarizer

import (
	"context"
	"strings"
	"time"

	"textsum/internal/domain/entity"
)

// Lead is a baseline summarizer that keeps the first sentences of the document.
// It shares the plain-text document model with LexRank, so headings are skipped.
type Lead struct {
	tok             Tokenizer
	metricsRecorder SummaryMetricsRecorder
}

// NewLead creates a Lead summarizer.
func NewLead(tok Tokenizer, recorder SummaryMetricsRecorder) *Lead {
	if recorder == nil {
		recorder = NoOpMetrics{}
	}
	return &Lead{tok: tok, metricsRecorder: recorder}
}

// Summarize returns the first count sentences of input.
func (l *Lead) Summarize(_ context.Context, input string, count int) (entity.Summary, error) {
	if count < 1 {
		return entity.Summary{}, ErrInvalidCount
	}
	if strings.TrimSpace(input) == "" {
		return entity.Summary{}, ErrEmptyText
	}

	start := time.Now()
	sentences := parseDocument(input, l.tok)
	n := min(count, len(sentences))
	out := make([]string, n)
	for i := range out {
		out[i] = sentences[i].text
	}

	l.metricsRecorder.RecordDuration(string(AlgorithmLead), time.Since(start))
	l.metricsRecorder.RecordSentences(n)
	if len(sentences) < count {
		l.metricsRecorder.RecordShortDocument(string(AlgorithmLead))
	}

	return entity.Summary{
		Sentences:      out,
		Algorithm:      string(AlgorithmLead),
		TotalSentences: len(sentences),
	}, nil
}

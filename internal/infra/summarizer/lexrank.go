package summarizer

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"textsum/internal/domain/entity"
	"textsum/internal/observability/tracing"
	"textsum/internal/utils/text"
)

// LexRank implements Summarizer using the LexRank centrality algorithm
// (Erkan and Radev, 2004) over TF-IDF cosine similarity.
type LexRank struct {
	tok             Tokenizer
	threshold       float64
	epsilon         float64
	maxIterations   int
	metricsRecorder SummaryMetricsRecorder
}

// NewLexRank creates a LexRank summarizer from cfg. cfg is assumed to be valid.
func NewLexRank(cfg Config, tok Tokenizer, recorder SummaryMetricsRecorder) *LexRank {
	if recorder == nil {
		recorder = NoOpMetrics{}
	}
	return &LexRank{
		tok:             tok,
		threshold:       cfg.Threshold,
		epsilon:         cfg.Epsilon,
		maxIterations:   cfg.MaxIterations,
		metricsRecorder: recorder,
	}
}

// Summarize returns at most count sentences of text with the highest centrality,
// in the order they appear in text. When the document has count sentences or
// fewer, all of them are returned.
func (l *LexRank) Summarize(ctx context.Context, input string, count int) (entity.Summary, error) {
	if count < 1 {
		return entity.Summary{}, ErrInvalidCount
	}
	if strings.TrimSpace(input) == "" {
		return entity.Summary{}, ErrEmptyText
	}

	ctx, span := tracing.GetTracer().Start(ctx, "summarizer.LexRank")
	defer span.End()

	start := time.Now()
	inputLength := text.CountRunes(input)

	sentences := parseDocument(input, l.tok)
	span.SetAttributes(
		attribute.Int("summary.requested", count),
		attribute.Int("summary.sentences_total", len(sentences)),
	)

	scores, err := l.rank(ctx, sentences)
	if err != nil {
		span.RecordError(err)
		return entity.Summary{}, err
	}

	selected := topSentences(sentences, scores, count)
	duration := time.Since(start)

	l.metricsRecorder.RecordDuration(string(AlgorithmLexRank), duration)
	l.metricsRecorder.RecordInputLength(inputLength)
	l.metricsRecorder.RecordSentences(len(selected))
	if len(sentences) < count {
		l.metricsRecorder.RecordShortDocument(string(AlgorithmLexRank))
	}

	slog.DebugContext(ctx, "lexrank summary selected",
		slog.Int("input_length", inputLength),
		slog.Int("sentences_total", len(sentences)),
		slog.Int("sentences_selected", len(selected)),
		slog.Duration("duration", duration))

	return entity.Summary{
		Sentences:      selected,
		Algorithm:      string(AlgorithmLexRank),
		TotalSentences: len(sentences),
	}, nil
}

// rank returns one score per sentence. Duplicate sentences share the score of
// their last occurrence.
func (l *LexRank) rank(ctx context.Context, sentences []sentence) ([]float64, error) {
	if len(sentences) == 0 {
		return nil, nil
	}

	words := make([][]string, len(sentences))
	for i, s := range sentences {
		words[i] = s.words
	}

	tf := make([]termWeights, len(words))
	for i, w := range words {
		tf[i] = termFrequencies(w)
	}
	idf := inverseDocumentFrequencies(words)
	matrix := l.adjacency(tf, idf)

	vector, err := l.powerMethod(ctx, matrix)
	if err != nil {
		return nil, err
	}

	byText := make(map[string]float64, len(sentences))
	for i, s := range sentences {
		byText[s.text] = vector[i]
	}
	scores := make([]float64, len(sentences))
	for i, s := range sentences {
		scores[i] = byText[s.text]
	}
	return scores, nil
}

// termWeights keeps the distinct terms of a sentence in first-occurrence order
// together with their normalized frequencies. The ordered slice keeps floating
// point sums deterministic.
type termWeights struct {
	terms []string
	tf    map[string]float64
}

// termFrequencies returns each term's count divided by the highest count in the sentence.
func termFrequencies(words []string) termWeights {
	counts := make(map[string]int, len(words))
	var terms []string
	maxCount := 0
	for _, w := range words {
		if counts[w] == 0 {
			terms = append(terms, w)
		}
		counts[w]++
		if counts[w] > maxCount {
			maxCount = counts[w]
		}
	}

	tf := make(map[string]float64, len(counts))
	for term, c := range counts {
		tf[term] = float64(c) / float64(maxCount)
	}
	return termWeights{terms: terms, tf: tf}
}

// inverseDocumentFrequencies returns ln(N / (1 + n)) for every term, where N is the
// number of sentences and n the number of sentences containing the term.
func inverseDocumentFrequencies(sentences [][]string) map[string]float64 {
	containing := make(map[string]int)
	for _, words := range sentences {
		seen := make(map[string]struct{}, len(words))
		for _, w := range words {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			containing[w]++
		}
	}

	n := float64(len(sentences))
	idf := make(map[string]float64, len(containing))
	for term, c := range containing {
		idf[term] = math.Log(n / float64(1+c))
	}
	return idf
}

// adjacency builds the row-stochastic similarity graph. An edge exists when the
// cosine similarity is strictly above the threshold; each row is divided by its degree.
func (l *LexRank) adjacency(tf []termWeights, idf map[string]float64) [][]float64 {
	n := len(tf)
	matrix := make([][]float64, n)
	for row := 0; row < n; row++ {
		matrix[row] = make([]float64, n)
		degree := 0
		for col := 0; col < n; col++ {
			if cosineSimilarity(tf[row], tf[col], idf) > l.threshold {
				matrix[row][col] = 1
				degree++
			}
		}
		if degree == 0 {
			degree = 1
		}
		for col := range matrix[row] {
			matrix[row][col] /= float64(degree)
		}
	}
	return matrix
}

// cosineSimilarity computes the TF-IDF cosine of two sentences. Sentences without
// weighted terms have similarity 0.
func cosineSimilarity(a, b termWeights, idf map[string]float64) float64 {
	var numerator float64
	for _, term := range a.terms {
		if tfB, ok := b.tf[term]; ok {
			numerator += a.tf[term] * tfB * idf[term] * idf[term]
		}
	}

	var denomA, denomB float64
	for _, term := range a.terms {
		w := a.tf[term] * idf[term]
		denomA += w * w
	}
	for _, term := range b.terms {
		w := b.tf[term] * idf[term]
		denomB += w * w
	}

	if denomA > 0 && denomB > 0 {
		return numerator / (math.Sqrt(denomA) * math.Sqrt(denomB))
	}
	return 0
}

// powerMethod finds the stationary distribution of the transposed matrix, starting
// from the uniform vector.
func (l *LexRank) powerMethod(ctx context.Context, matrix [][]float64) ([]float64, error) {
	n := len(matrix)
	p := make([]float64, n)
	for i := range p {
		p[i] = 1 / float64(n)
	}

	next := make([]float64, n)
	for iteration := 1; ; iteration++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		for col := 0; col < n; col++ {
			var sum float64
			for row := 0; row < n; row++ {
				sum += matrix[row][col] * p[row]
			}
			next[col] = sum
		}

		var delta float64
		for i := range p {
			d := next[i] - p[i]
			delta += d * d
		}
		p, next = next, p

		if math.Sqrt(delta) <= l.epsilon {
			return p, nil
		}
		if iteration >= l.maxIterations {
			slog.WarnContext(ctx, "lexrank power method did not converge",
				slog.Int("iterations", iteration),
				slog.Float64("delta", math.Sqrt(delta)))
			return p, nil
		}
	}
}

// topSentences picks the count best scored sentences, favouring earlier ones on
// ties, and returns them in document order.
func topSentences(sentences []sentence, scores []float64, count int) []string {
	order := make([]int, len(sentences))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})
	if count < len(order) {
		order = order[:count]
	}
	sort.Ints(order)

	out := make([]string, len(order))
	for i, idx := range order {
		out[i] = sentences[idx].text
	}
	return out
}

package summarizer

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SummaryMetricsRecorder records summarization metrics. Implementations must be
// safe for concurrent use.
//
// Tests can inject a recorder that keeps the observed values:
//
//	type recordingMetrics struct {
//	    sentences []int
//	}
//
//	func (m *recordingMetrics) RecordSentences(n int) {
//	    m.sentences = append(m.sentences, n)
//	}
type SummaryMetricsRecorder interface {
	// RecordSentences records the number of sentences in a summary.
	RecordSentences(count int)

	// RecordInputLength records the input size in Unicode runes.
	RecordInputLength(runes int)

	// RecordShortDocument counts documents with fewer sentences than requested.
	RecordShortDocument(algorithm string)

	// RecordDuration records the time taken to produce a summary.
	RecordDuration(algorithm string, duration time.Duration)
}

// PrometheusSummaryMetrics implements SummaryMetricsRecorder with Prometheus collectors.
type PrometheusSummaryMetrics struct {
	sentencesHistogram prometheus.Histogram
	inputHistogram     prometheus.Histogram
	shortCounter       *prometheus.CounterVec
	durationHistogram  *prometheus.HistogramVec
}

var (
	prometheusMetricsInstance *PrometheusSummaryMetrics
	prometheusMetricsOnce     sync.Once
)

// getOrCreateHistogram returns the registered histogram for opts, registering it if needed.
func getOrCreateHistogram(opts prometheus.HistogramOpts) prometheus.Histogram {
	h := prometheus.NewHistogram(opts)
	if err := prometheus.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Histogram)
		}
		return promauto.NewHistogram(opts)
	}
	return h
}

func getOrCreateHistogramVec(opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	h := prometheus.NewHistogramVec(opts, labels)
	if err := prometheus.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.HistogramVec)
		}
		return promauto.NewHistogramVec(opts, labels)
	}
	return h
}

func getOrCreateCounterVec(opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	c := prometheus.NewCounterVec(opts, labels)
	if err := prometheus.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.CounterVec)
		}
		return promauto.NewCounterVec(opts, labels)
	}
	return c
}

// NewPrometheusSummaryMetrics returns the process-wide recorder, registering its
// collectors with the default registry on first use.
func NewPrometheusSummaryMetrics() *PrometheusSummaryMetrics {
	prometheusMetricsOnce.Do(func() {
		prometheusMetricsInstance = &PrometheusSummaryMetrics{
			sentencesHistogram: getOrCreateHistogram(prometheus.HistogramOpts{
				Name:    "textsum_summary_sentences",
				Help:    "Number of sentences in generated summaries",
				Buckets: []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			}),
			inputHistogram: getOrCreateHistogram(prometheus.HistogramOpts{
				Name:    "textsum_summary_input_runes",
				Help:    "Size of summarized input in Unicode runes",
				Buckets: prometheus.ExponentialBuckets(100, 4, 8),
			}),
			shortCounter: getOrCreateCounterVec(prometheus.CounterOpts{
				Name: "textsum_summary_short_documents_total",
				Help: "Documents with fewer sentences than requested",
			}, []string{"algorithm"}),
			durationHistogram: getOrCreateHistogramVec(prometheus.HistogramOpts{
				Name:    "textsum_summarization_duration_seconds",
				Help:    "Time taken to rank and select summary sentences",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
			}, []string{"algorithm"}),
		}
	})
	return prometheusMetricsInstance
}

// RecordSentences implements SummaryMetricsRecorder.RecordSentences
func (p *PrometheusSummaryMetrics) RecordSentences(count int) {
	p.sentencesHistogram.Observe(float64(count))
}

// RecordInputLength implements SummaryMetricsRecorder.RecordInputLength
func (p *PrometheusSummaryMetrics) RecordInputLength(runes int) {
	p.inputHistogram.Observe(float64(runes))
}

// RecordShortDocument implements SummaryMetricsRecorder.RecordShortDocument
func (p *PrometheusSummaryMetrics) RecordShortDocument(algorithm string) {
	p.shortCounter.WithLabelValues(algorithm).Inc()
}

// RecordDuration implements SummaryMetricsRecorder.RecordDuration
func (p *PrometheusSummaryMetrics) RecordDuration(algorithm string, duration time.Duration) {
	p.durationHistogram.WithLabelValues(algorithm).Observe(duration.Seconds())
}

// NoOpMetrics discards all observations.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordSentences(int)                  {}
func (NoOpMetrics) RecordInputLength(int)                {}
func (NoOpMetrics) RecordShortDocument(string)           {}
func (NoOpMetrics) RecordDuration(string, time.Duration) {}

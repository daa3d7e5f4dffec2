package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Document extraction metrics
var (
	// ExtractionsTotal counts extraction attempts by format and result (success, failure).
	ExtractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "textsum_extractions_total",
			Help: "Total number of document text extractions",
		},
		[]string{"format", "result"},
	)

	// ExtractionDuration tracks how long text extraction takes per format.
	// PDF parsing dominates the upper buckets.
	ExtractionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "textsum_extraction_duration_seconds",
			Help:    "Time taken to extract text from an uploaded document",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"format"},
	)

	// ExtractedTextSize tracks the size of extracted text in bytes.
	ExtractedTextSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "textsum_extracted_text_bytes",
			Help: "Size of extracted document text in bytes",
			Buckets: []float64{
				100, 400, 1600, 6400, 25600, 102400,
				409600, 1638400, 6553600, // up to ~6MB
			},
		},
	)
)

// Summary request metrics
var (
	// SummaryRequestsTotal counts summary requests by source (manual, file) and
	// status (success, empty, failure).
	SummaryRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "textsum_summary_requests_total",
			Help: "Total number of summary requests",
		},
		[]string{"source", "status"},
	)

	// SummaryRequestedSentences tracks the sentence count users ask for.
	SummaryRequestedSentences = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "textsum_summary_requested_sentences",
			Help:    "Number of sentences requested per summary",
			Buckets: []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		},
	)

	// DownloadsTotal counts summary downloads by source.
	DownloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "textsum_downloads_total",
			Help: "Total number of summary downloads",
		},
		[]string{"source"},
	)
)

package metrics

import "time"

// Summary request statuses.
const (
	StatusSuccess = "success"
	StatusEmpty   = "empty"
	StatusFailure = "failure"
)

// RecordExtraction records one extraction attempt. size is ignored on failure.
func RecordExtraction(format string, success bool, duration time.Duration, size int) {
	result := "success"
	if !success {
		result = "failure"
	}
	ExtractionsTotal.WithLabelValues(format, result).Inc()
	ExtractionDuration.WithLabelValues(format).Observe(duration.Seconds())
	if success {
		ExtractedTextSize.Observe(float64(size))
	}
}

// RecordSummaryRequest records the outcome of a summary request.
func RecordSummaryRequest(source, status string, requested int) {
	SummaryRequestsTotal.WithLabelValues(source, status).Inc()
	if status == StatusSuccess {
		SummaryRequestedSentences.Observe(float64(requested))
	}
}

// RecordDownload records a summary download.
func RecordDownload(source string) {
	DownloadsTotal.WithLabelValues(source).Inc()
}

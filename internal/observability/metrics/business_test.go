package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func histogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, h.Write(&m))
	return m.GetHistogram().GetSampleCount()
}

func TestRecordExtraction(t *testing.T) {
	successBefore := testutil.ToFloat64(ExtractionsTotal.WithLabelValues("pdf", "success"))
	failureBefore := testutil.ToFloat64(ExtractionsTotal.WithLabelValues("pdf", "failure"))

	RecordExtraction("pdf", true, 20*time.Millisecond, 2048)
	RecordExtraction("pdf", false, 5*time.Millisecond, 0)

	assert.Equal(t, successBefore+1, testutil.ToFloat64(ExtractionsTotal.WithLabelValues("pdf", "success")))
	assert.Equal(t, failureBefore+1, testutil.ToFloat64(ExtractionsTotal.WithLabelValues("pdf", "failure")))
}

func TestRecordSummaryRequest(t *testing.T) {
	tests := []struct {
		name   string
		source string
		status string
	}{
		{name: "manual success", source: "manual", status: StatusSuccess},
		{name: "manual empty", source: "manual", status: StatusEmpty},
		{name: "file failure", source: "file", status: StatusFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := SummaryRequestsTotal.WithLabelValues(tt.source, tt.status)
			before := testutil.ToFloat64(counter)

			RecordSummaryRequest(tt.source, tt.status, 3)

			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}
}

func TestRecordDownload(t *testing.T) {
	before := testutil.ToFloat64(DownloadsTotal.WithLabelValues("file"))

	RecordDownload("file")

	assert.Equal(t, before+1, testutil.ToFloat64(DownloadsTotal.WithLabelValues("file")))
}

func TestRecordSummaryRequest_RequestedSentencesOnlyOnSuccess(t *testing.T) {
	before := histogramCount(t, SummaryRequestedSentences)

	RecordSummaryRequest("manual", StatusEmpty, 3)
	RecordSummaryRequest("manual", StatusFailure, 3)
	assert.Equal(t, before, histogramCount(t, SummaryRequestedSentences))

	RecordSummaryRequest("manual", StatusSuccess, 3)
	assert.Equal(t, before+1, histogramCount(t, SummaryRequestedSentences))
}

func TestRecordExtraction_SizeOnlyOnSuccess(t *testing.T) {
	before := histogramCount(t, ExtractedTextSize)

	RecordExtraction("txt", false, time.Millisecond, 500)
	assert.Equal(t, before, histogramCount(t, ExtractedTextSize))

	RecordExtraction("txt", true, time.Millisecond, 500)
	assert.Equal(t, before+1, histogramCount(t, ExtractedTextSize))
}

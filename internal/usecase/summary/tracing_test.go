package summary_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	sumUC "textsum/internal/usecase/summary"
)

func recordSpans(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter)))
	t.Cleanup(func() { otel.SetTracerProvider(sdktrace.NewTracerProvider()) })
	return exporter
}

func spanNames(spans tracetest.SpanStubs) []string {
	names := make([]string, 0, len(spans))
	for _, s := range spans {
		names = append(names, s.Name)
	}
	return names
}

func TestService_SummarizeFile_Spans(t *testing.T) {
	exporter := recordSpans(t)
	svc := newService(&stubExtractor{text: "Hello there."}, &stubSummarizer{})

	_, _, err := svc.SummarizeFile(context.Background(), "notes.txt", strings.NewReader("x"), 2)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"summary.Extract", "summary.Summarize"}, spanNames(exporter.GetSpans()))
}

func TestService_Extract_FailureMarksSpan(t *testing.T) {
	exporter := recordSpans(t)
	svc := newService(&stubExtractor{err: sumUC.ErrExtractionFailed}, &stubSummarizer{})

	_, err := svc.Extract(context.Background(), "bad.pdf", strings.NewReader("x"))
	require.Error(t, err)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
}

func TestService_Summarize_BlankInputCreatesNoSpan(t *testing.T) {
	exporter := recordSpans(t)
	svc := newService(&stubExtractor{}, &stubSummarizer{})

	_, err := svc.SummarizeText(context.Background(), "   ", 3)
	require.ErrorIs(t, err, sumUC.ErrEmptyInput)

	assert.Empty(t, exporter.GetSpans())
}

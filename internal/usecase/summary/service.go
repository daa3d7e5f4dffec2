package summary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"textsum/internal/domain/entity"
	"textsum/internal/observability/metrics"
	"textsum/internal/observability/tracing"
)

// Extractor reads the text of an uploaded file. The format is chosen from the
// filename extension.
//
// Errors:
//   - ErrUnsupportedFormat: the extension is not supported
//   - ErrFileTooLarge: the content exceeds the size limit
//   - ErrExtractionFailed (or ErrNoText): the content could not be read
type Extractor interface {
	Extract(ctx context.Context, filename string, r io.Reader) (entity.Document, error)
}

// Summarizer selects up to count sentences from text.
type Summarizer interface {
	Summarize(ctx context.Context, text string, count int) (entity.Summary, error)
}

// Service runs text acquisition and summarization for one request at a time.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	Extractor  Extractor
	Summarizer Summarizer

	// MinSentences and MaxSentences bound the requested sentence count.
	MinSentences int
	MaxSentences int
}

// ValidateCount checks count against the configured bounds.
func (s *Service) ValidateCount(count int) error {
	return entity.ValidateSentenceCount(count, s.MinSentences, s.MaxSentences)
}

// SummarizeText summarizes text entered directly by the user.
// Blank text returns ErrEmptyInput without invoking the summarizer.
func (s *Service) SummarizeText(ctx context.Context, text string, count int) (entity.Summary, error) {
	return s.Summarize(ctx, entity.NewManualDocument(text), count)
}

// Summarize summarizes an already acquired document.
func (s *Service) Summarize(ctx context.Context, doc entity.Document, count int) (entity.Summary, error) {
	if err := s.ValidateCount(count); err != nil {
		return entity.Summary{}, err
	}
	if doc.IsBlank() {
		metrics.RecordSummaryRequest(string(doc.Source), metrics.StatusEmpty, count)
		return entity.Summary{}, ErrEmptyInput
	}

	ctx, span := tracing.GetTracer().Start(ctx, "summary.Summarize")
	defer span.End()
	span.SetAttributes(
		attribute.String("document.source", string(doc.Source)),
		attribute.String("document.format", doc.Format),
		attribute.Int("summary.requested", count),
	)

	start := time.Now()
	sum, err := s.Summarizer.Summarize(ctx, doc.Text, count)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "summarize failed")
		metrics.RecordSummaryRequest(string(doc.Source), metrics.StatusFailure, count)
		return entity.Summary{}, fmt.Errorf("summarize %s: %w", doc.Name, err)
	}

	metrics.RecordSummaryRequest(string(doc.Source), metrics.StatusSuccess, count)
	slog.InfoContext(ctx, "summary created",
		slog.String("source", string(doc.Source)),
		slog.String("algorithm", sum.Algorithm),
		slog.Int("requested", count),
		slog.Int("selected", sum.Len()),
		slog.Int("total_sentences", sum.TotalSentences),
		slog.Duration("duration", time.Since(start)))

	return sum, nil
}

// Extract reads the text of an uploaded file.
func (s *Service) Extract(ctx context.Context, filename string, r io.Reader) (entity.Document, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "summary.Extract")
	defer span.End()
	span.SetAttributes(attribute.String("document.name", filename))

	doc, err := s.Extractor.Extract(ctx, filename, r)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "extract failed")
		if !errors.Is(err, ErrUnsupportedFormat) &&
			!errors.Is(err, ErrFileTooLarge) &&
			!errors.Is(err, ErrExtractionFailed) {
			err = fmt.Errorf("%w: %v", ErrExtractionFailed, err)
		}
		slog.WarnContext(ctx, "text extraction failed",
			slog.String("filename", filename),
			slog.Any("error", err))
		return entity.Document{}, err
	}
	if doc.IsBlank() {
		return entity.Document{}, ErrNoText
	}

	span.SetAttributes(attribute.String("document.format", doc.Format))
	return doc, nil
}

// SummarizeFile extracts the text of an uploaded file and summarizes it.
// The sentence count is validated before the file is read.
func (s *Service) SummarizeFile(ctx context.Context, filename string, r io.Reader, count int) (entity.Document, entity.Summary, error) {
	if err := s.ValidateCount(count); err != nil {
		return entity.Document{}, entity.Summary{}, err
	}

	doc, err := s.Extract(ctx, filename, r)
	if err != nil {
		metrics.RecordSummaryRequest(string(entity.SourceFile), metrics.StatusFailure, count)
		return entity.Document{}, entity.Summary{}, err
	}

	sum, err := s.Summarize(ctx, doc, count)
	if err != nil {
		return doc, entity.Summary{}, err
	}
	return doc, sum, nil
}

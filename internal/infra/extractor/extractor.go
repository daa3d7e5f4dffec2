// Package extractor reads the text of uploaded documents.
//
// Each Format maps to one extraction function in a fixed table. Content is
// sniffed before extraction so that, for example, a renamed image is rejected
// as an extraction failure instead of reaching the PDF parser. All failures wrap
// the sentinel errors of the summary use case.
package extractor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"textsum/internal/domain/entity"
	"textsum/internal/observability/metrics"
	"textsum/internal/observability/tracing"
	sumUC "textsum/internal/usecase/summary"
)

// DefaultMaxBytes is the default upload size limit (10MB).
const DefaultMaxBytes int64 = 10 << 20

// extractFunc returns the text of a document in one format.
type extractFunc func(ctx context.Context, data []byte) (string, error)

// extractors is the dispatch table. Every Format must have an entry.
var extractors = map[Format]extractFunc{
	FormatText: extractText,
	FormatPDF:  extractPDF,
	FormatDocx: extractDocx,
	FormatHTML: extractHTML,
}

// Config configures an Extractor.
type Config struct {
	// MaxBytes is the largest accepted upload. Zero means DefaultMaxBytes.
	MaxBytes int64

	// Formats restricts the accepted formats. Empty means all formats.
	Formats []Format
}

// Extractor implements the summary use case's Extractor port.
// It is safe for concurrent use.
type Extractor struct {
	maxBytes int64
	enabled  map[Format]bool
}

// New creates an Extractor from cfg.
func New(cfg Config) *Extractor {
	maxBytes := cfg.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	formats := cfg.Formats
	if len(formats) == 0 {
		formats = Formats
	}
	enabled := make(map[Format]bool, len(formats))
	for _, f := range formats {
		enabled[f] = true
	}
	return &Extractor{maxBytes: maxBytes, enabled: enabled}
}

// MaxBytes returns the upload size limit.
func (e *Extractor) MaxBytes() int64 {
	return e.maxBytes
}

// Enabled returns the accepted formats in display order.
func (e *Extractor) Enabled() []Format {
	out := make([]Format, 0, len(e.enabled))
	for _, f := range Formats {
		if e.enabled[f] {
			out = append(out, f)
		}
	}
	return out
}

// AcceptAttribute returns the extensions of the accepted formats for the
// accept attribute of a file input, e.g. ".txt,.pdf,.docx".
func (e *Extractor) AcceptAttribute() string {
	var exts []string
	for _, f := range e.Enabled() {
		exts = append(exts, "."+f.String())
		if f == FormatHTML {
			exts = append(exts, ".htm")
		}
	}
	return strings.Join(exts, ",")
}

// Extract reads r fully and returns its text as a file Document named filename.
// The text is returned as extracted, without trimming.
func (e *Extractor) Extract(ctx context.Context, filename string, r io.Reader) (entity.Document, error) {
	format, err := FormatFromFilename(filename)
	if err != nil {
		return entity.Document{}, err
	}
	if !e.enabled[format] {
		return entity.Document{}, fmt.Errorf("%w: %s is disabled", sumUC.ErrUnsupportedFormat, format)
	}

	data, err := io.ReadAll(io.LimitReader(r, e.maxBytes+1))
	if err != nil {
		return entity.Document{}, fmt.Errorf("%w: read upload: %v", sumUC.ErrExtractionFailed, err)
	}
	if int64(len(data)) > e.maxBytes {
		return entity.Document{}, fmt.Errorf("%w: limit is %d bytes", sumUC.ErrFileTooLarge, e.maxBytes)
	}

	ctx, span := tracing.GetTracer().Start(ctx, "extractor.Extract")
	defer span.End()
	span.SetAttributes(
		attribute.String("document.format", format.String()),
		attribute.Int("document.bytes", len(data)),
	)

	start := time.Now()
	text, err := e.extract(ctx, format, data)
	duration := time.Since(start)
	if err != nil {
		span.RecordError(err)
		metrics.RecordExtraction(format.String(), false, duration, 0)
		return entity.Document{}, err
	}
	metrics.RecordExtraction(format.String(), true, duration, len(text))

	slog.DebugContext(ctx, "text extracted",
		slog.String("filename", filename),
		slog.String("format", format.String()),
		slog.Int("input_bytes", len(data)),
		slog.Int("text_bytes", len(text)),
		slog.Duration("duration", duration))

	return entity.Document{
		Name:   filename,
		Format: format.String(),
		Source: entity.SourceFile,
		Text:   text,
	}, nil
}

func (e *Extractor) extract(ctx context.Context, format Format, data []byte) (string, error) {
	if err := checkContent(format, data); err != nil {
		return "", err
	}

	fn, ok := extractors[format]
	if !ok {
		return "", fmt.Errorf("%w: no extractor for %s", sumUC.ErrUnsupportedFormat, format)
	}
	text, err := fn(ctx, data)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", sumUC.ErrExtractionFailed, format, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w in %s document", sumUC.ErrNoText, format)
	}
	return text, nil
}

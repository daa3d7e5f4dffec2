package summary_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textsum/internal/domain/entity"
	sumUC "textsum/internal/usecase/summary"
)

/* ───────── stubs ───────── */

type stubSummarizer struct {
	calls    int
	gotText  string
	gotCount int
	err      error
}

func (s *stubSummarizer) Summarize(_ context.Context, text string, count int) (entity.Summary, error) {
	s.calls++
	s.gotText = text
	s.gotCount = count
	if s.err != nil {
		return entity.Summary{}, s.err
	}
	return entity.Summary{Sentences: []string{"first."}, Algorithm: "stub", TotalSentences: 1}, nil
}

type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) Extract(_ context.Context, filename string, r io.Reader) (entity.Document, error) {
	if s.err != nil {
		return entity.Document{}, s.err
	}
	if _, err := io.ReadAll(r); err != nil {
		return entity.Document{}, err
	}
	return entity.Document{Name: filename, Format: "txt", Source: entity.SourceFile, Text: s.text}, nil
}

func newService(ex sumUC.Extractor, sum sumUC.Summarizer) *sumUC.Service {
	return &sumUC.Service{
		Extractor:    ex,
		Summarizer:   sum,
		MinSentences: entity.MinSentenceCount,
		MaxSentences: entity.MaxSentenceCount,
	}
}

/* ───────── SummarizeText ───────── */

func TestService_SummarizeText(t *testing.T) {
	stub := &stubSummarizer{}
	svc := newService(&stubExtractor{}, stub)

	sum, err := svc.SummarizeText(context.Background(), "Some text here.", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"first."}, sum.Sentences)
	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, "Some text here.", stub.gotText)
	assert.Equal(t, 3, stub.gotCount)
}

func TestService_SummarizeText_EmptyInputSkipsSummarizer(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t"} {
		stub := &stubSummarizer{}
		svc := newService(&stubExtractor{}, stub)

		_, err := svc.SummarizeText(context.Background(), input, 3)
		assert.ErrorIs(t, err, sumUC.ErrEmptyInput)
		assert.Equal(t, 0, stub.calls, "summarizer must not be called for %q", input)
	}
}

func TestService_SummarizeText_InvalidCount(t *testing.T) {
	for _, count := range []int{0, 11, -1} {
		stub := &stubSummarizer{}
		svc := newService(&stubExtractor{}, stub)

		_, err := svc.SummarizeText(context.Background(), "Text.", count)

		var vErr *entity.ValidationError
		require.True(t, errors.As(err, &vErr), "count=%d", count)
		assert.Equal(t, "sentences", vErr.Field)
		assert.Equal(t, 0, stub.calls)
	}
}

func TestService_SummarizeText_SummarizerError(t *testing.T) {
	boom := errors.New("boom")
	svc := newService(&stubExtractor{}, &stubSummarizer{err: boom})

	_, err := svc.SummarizeText(context.Background(), "Text.", 2)
	assert.ErrorIs(t, err, boom)
}

/* ───────── Extract ───────── */

func TestService_Extract(t *testing.T) {
	svc := newService(&stubExtractor{text: "Body text."}, &stubSummarizer{})

	doc, err := svc.Extract(context.Background(), "notes.txt", strings.NewReader("Body text."))
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", doc.Name)
	assert.Equal(t, entity.SourceFile, doc.Source)
	assert.Equal(t, "Body text.", doc.Text)
}

func TestService_Extract_Errors(t *testing.T) {
	tests := []struct {
		name    string
		ex      *stubExtractor
		wantErr error
	}{
		{
			name:    "unsupported format passes through",
			ex:      &stubExtractor{err: sumUC.ErrUnsupportedFormat},
			wantErr: sumUC.ErrUnsupportedFormat,
		},
		{
			name:    "too large passes through",
			ex:      &stubExtractor{err: sumUC.ErrFileTooLarge},
			wantErr: sumUC.ErrFileTooLarge,
		},
		{
			name:    "unknown error becomes extraction failure",
			ex:      &stubExtractor{err: errors.New("zip: not a valid zip file")},
			wantErr: sumUC.ErrExtractionFailed,
		},
		{
			name:    "blank text is an extraction failure",
			ex:      &stubExtractor{text: "  \n "},
			wantErr: sumUC.ErrExtractionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(tt.ex, &stubSummarizer{})

			_, err := svc.Extract(context.Background(), "file.pdf", strings.NewReader("x"))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestErrNoText_IsExtractionFailure(t *testing.T) {
	assert.ErrorIs(t, sumUC.ErrNoText, sumUC.ErrExtractionFailed)
}

/* ───────── SummarizeFile ───────── */

func TestService_SummarizeFile(t *testing.T) {
	stub := &stubSummarizer{}
	svc := newService(&stubExtractor{text: "File body."}, stub)

	doc, sum, err := svc.SummarizeFile(context.Background(), "a.txt", strings.NewReader("File body."), 2)
	require.NoError(t, err)
	assert.Equal(t, "File body.", doc.Text)
	assert.Equal(t, []string{"first."}, sum.Sentences)
	assert.Equal(t, "File body.", stub.gotText)
}

func TestService_SummarizeFile_ExtractionFailureSkipsSummarizer(t *testing.T) {
	stub := &stubSummarizer{}
	svc := newService(&stubExtractor{err: errors.New("corrupt")}, stub)

	_, _, err := svc.SummarizeFile(context.Background(), "a.pdf", strings.NewReader("x"), 2)
	assert.ErrorIs(t, err, sumUC.ErrExtractionFailed)
	assert.Equal(t, 0, stub.calls)
}

func TestService_SummarizeFile_ValidatesCountFirst(t *testing.T) {
	stub := &stubSummarizer{}
	svc := newService(&stubExtractor{err: errors.New("should not be reached")}, stub)

	_, _, err := svc.SummarizeFile(context.Background(), "a.pdf", strings.NewReader("x"), 0)
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
}

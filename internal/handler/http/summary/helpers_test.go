package summary_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"textsum/internal/domain/entity"
	sumHTTP "textsum/internal/handler/http/summary"
	"textsum/internal/infra/extractor"
	sumUC "textsum/internal/usecase/summary"
)

/* ───────── stubs ───────── */

// countingSummarizer returns the first count sentences split on ". ".
type countingSummarizer struct {
	mu    sync.Mutex
	calls int
	texts []string
}

func (s *countingSummarizer) Summarize(_ context.Context, text string, count int) (entity.Summary, error) {
	s.mu.Lock()
	s.calls++
	s.texts = append(s.texts, text)
	s.mu.Unlock()

	var sentences []string
	for _, part := range strings.Split(strings.TrimSpace(text), ". ") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !strings.HasSuffix(part, ".") {
			part += "."
		}
		sentences = append(sentences, part)
	}
	total := len(sentences)
	if count < len(sentences) {
		sentences = sentences[:count]
	}
	return entity.Summary{Sentences: sentences, Algorithm: "stub", TotalSentences: total}, nil
}

func (s *countingSummarizer) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

/* ───────── fixtures ───────── */

type fixture struct {
	mux        *http.ServeMux
	summarizer *countingSummarizer
	view       *sumHTTP.View
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWith(t, &countingSummarizer{})
}

func newFixtureWith(t *testing.T, sum sumUC.Summarizer) *fixture {
	t.Helper()

	ex := extractor.New(extractor.Config{MaxBytes: 1 << 20})
	svc := &sumUC.Service{
		Extractor:    ex,
		Summarizer:   sum,
		MinSentences: entity.MinSentenceCount,
		MaxSentences: entity.MaxSentenceCount,
	}
	view, err := sumHTTP.NewView(sumHTTP.PageConfig{
		MinSentences:     entity.MinSentenceCount,
		MaxSentences:     entity.MaxSentenceCount,
		DefaultSentences: entity.DefaultSentenceCount,
		Accept:           ex.AcceptAttribute(),
		MaxUploadBytes:   ex.MaxBytes(),
	})
	require.NoError(t, err)

	mux := http.NewServeMux()
	sumHTTP.Register(mux, svc, view, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)

	f := &fixture{mux: mux, view: view}
	if cs, ok := sum.(*countingSummarizer); ok {
		f.summarizer = cs
	}
	return f
}

func (f *fixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, req)
	return rec
}

func formRequest(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func jsonRequest(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// uploadRequest builds a multipart request with an optional file part and
// extra fields.
func uploadRequest(t *testing.T, path, filename string, content []byte, fields map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

// Package summary serves the summarizer page and its form and JSON endpoints.
//
// Every POST route answers with HTML by default and with JSON when the client
// sends a JSON body or asks for application/json in Accept.
package summary

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"textsum/internal/domain/entity"
)

// Service is the subset of the summary use case the handlers call.
type Service interface {
	Summarize(ctx context.Context, doc entity.Document, count int) (entity.Summary, error)
	Extract(ctx context.Context, filename string, r io.Reader) (entity.Document, error)
	SummarizeFile(ctx context.Context, filename string, r io.Reader, count int) (entity.Document, entity.Summary, error)
}

// Register mounts the page, the static assets and the POST routes on mux.
// limit wraps the CPU-heavy routes; pass nil for no limiting.
func Register(mux *http.ServeMux, svc Service, view *View, logger *slog.Logger, limit func(http.Handler) http.Handler) {
	if limit == nil {
		limit = func(h http.Handler) http.Handler { return h }
	}

	mux.Handle("GET /{$}", PageHandler{View: view})
	mux.Handle("GET /static/", StaticHandler())

	mux.Handle("POST /summarize", limit(SummarizeHandler{Svc: svc, View: view, Logger: logger}))
	mux.Handle("POST /extract", limit(ExtractHandler{Svc: svc, View: view, Logger: logger}))
	mux.Handle("POST /summarize/file", limit(SummarizeFileHandler{Svc: svc, View: view, Logger: logger}))
	mux.Handle("POST /download", DownloadHandler{View: view, Logger: logger})
}

package summary

import (
	"log/slog"
	"net/http"
	"strings"

	"textsum/internal/domain/entity"
	"textsum/internal/handler/http/respond"
	"textsum/internal/observability/metrics"
)

const downloadContentType = "text/plain; charset=utf-8"

// DownloadHandler returns a summary as a text file. The body is the summary
// text byte for byte, apart from form line breaks which are sent as LF.
//
// The filename depends on where the summarized text came from:
// summarized_text.txt for typed text, summarized_file_text.txt for uploads.
type DownloadHandler struct {
	View   *View
	Logger *slog.Logger
}

func (h DownloadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var summary, rawSource string

	if isJSONBody(r) {
		var body DownloadRequest
		if err := decodeJSON(r, &body); err != nil {
			fail(w, r, h.View, h.Logger, err, h.View.newPage())
			return
		}
		summary, rawSource = body.Summary, body.Source
	} else {
		if err := parseForm(r); err != nil {
			fail(w, r, h.View, h.Logger, err, h.View.newPage())
			return
		}
		summary = normalizeNewlines(r.PostFormValue("summary"))
		rawSource = r.PostFormValue("source")
	}

	src, err := parseSource(rawSource)
	if err != nil {
		fail(w, r, h.View, h.Logger, err, h.View.newPage())
		return
	}
	if strings.TrimSpace(summary) == "" {
		fail(w, r, h.View, h.Logger,
			&entity.ValidationError{Field: "summary", Message: "must not be empty"}, h.View.newPage())
		return
	}

	metrics.RecordDownload(string(src))
	respond.Attachment(w, downloadContentType, src.DownloadFilename(), []byte(summary))
}

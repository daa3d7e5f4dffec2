package summary

import (
	"log/slog"
	"net/http"

	"textsum/internal/domain/entity"
	"textsum/internal/handler/http/respond"
)

// SummarizeFileHandler extracts an uploaded file and summarizes it in one
// request. Form fields: file, sentences.
type SummarizeFileHandler struct {
	Svc    Service
	View   *View
	Logger *slog.Logger
}

func (h SummarizeFileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	page := h.View.newPage()

	f, filename, err := uploadedFile(r)
	if err != nil {
		fail(w, r, h.View, h.Logger, err, page)
		return
	}
	defer func() { _ = f.Close() }()

	count, err := parseSentences(r.PostFormValue("sentences"), page.Sentences)
	if err != nil {
		fail(w, r, h.View, h.Logger, err, page)
		return
	}
	page.Sentences = count

	doc, sum, err := h.Svc.SummarizeFile(r.Context(), filename, f, count)
	if doc.Text != "" {
		page.Extracted = &extractedView{Name: doc.Name, Format: doc.Format, Text: doc.Text}
	}
	if err != nil {
		fail(w, r, h.View, h.Logger, err, page)
		return
	}

	if wantsJSON(r) {
		dto := toSummaryDTO(sum, entity.SourceFile, count)
		dto.Document = toDocumentDTO(doc)
		respond.JSON(w, http.StatusOK, dto)
		return
	}
	page.Summary = toSummaryView(sum, entity.SourceFile)
	h.View.render(w, http.StatusOK, page)
}

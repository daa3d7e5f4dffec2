package summary

import (
	"log/slog"
	"net/http"

	"textsum/internal/handler/http/respond"
)

// ExtractHandler reads the text of an uploaded file and shows it as
// "Extracted Content", ready to be summarized.
type ExtractHandler struct {
	Svc    Service
	View   *View
	Logger *slog.Logger
}

func (h ExtractHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	page := h.View.newPage()

	f, filename, err := uploadedFile(r)
	if err != nil {
		fail(w, r, h.View, h.Logger, err, page)
		return
	}
	defer func() { _ = f.Close() }()

	if n, perr := parseSentences(r.PostFormValue("sentences"), page.Sentences); perr == nil {
		page.Sentences = n
	}

	doc, err := h.Svc.Extract(r.Context(), filename, f)
	if err != nil {
		fail(w, r, h.View, h.Logger, err, page)
		return
	}

	if wantsJSON(r) {
		respond.JSON(w, http.StatusOK, toDocumentDTO(doc))
		return
	}
	page.Extracted = &extractedView{Name: doc.Name, Format: doc.Format, Text: doc.Text}
	h.View.render(w, http.StatusOK, page)
}

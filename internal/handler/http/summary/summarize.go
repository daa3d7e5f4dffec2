package summary

import (
	"log/slog"
	"net/http"

	"textsum/internal/domain/entity"
	"textsum/internal/handler/http/respond"
)

// SummarizeHandler summarizes text from the text area or a JSON body.
//
// Form fields: text, sentences, and optionally source=file with name when the
// text came from the "Extracted Content" box.
type SummarizeHandler struct {
	Svc    Service
	View   *View
	Logger *slog.Logger
}

func (h SummarizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	page := h.View.newPage()

	req, err := h.parse(r)
	if err != nil {
		fail(w, r, h.View, h.Logger, err, page)
		return
	}
	page.Sentences = req.count

	doc := entity.NewManualDocument(req.text)
	if req.source == entity.SourceFile {
		doc.Source = entity.SourceFile
		if req.name != "" {
			doc.Name = req.name
		}
		page.Extracted = &extractedView{Name: req.name, Text: req.text}
	} else {
		page.Text = req.text
	}

	sum, err := h.Svc.Summarize(r.Context(), doc, req.count)
	if err != nil {
		fail(w, r, h.View, h.Logger, err, page)
		return
	}

	if wantsJSON(r) {
		respond.JSON(w, http.StatusOK, toSummaryDTO(sum, doc.Source, req.count))
		return
	}
	page.Summary = toSummaryView(sum, doc.Source)
	h.View.render(w, http.StatusOK, page)
}

type summarizeInput struct {
	text   string
	count  int
	source entity.Source
	name   string
}

func (h SummarizeHandler) parse(r *http.Request) (summarizeInput, error) {
	def := h.View.Config().DefaultSentences

	if isJSONBody(r) {
		var body SummarizeRequest
		if err := decodeJSON(r, &body); err != nil {
			return summarizeInput{}, err
		}
		src, err := parseSource(body.Source)
		if err != nil {
			return summarizeInput{}, err
		}
		count := def
		if body.Sentences != nil {
			count = *body.Sentences
		}
		return summarizeInput{text: body.Text, count: count, source: src, name: body.Name}, nil
	}

	if err := parseForm(r); err != nil {
		return summarizeInput{}, err
	}
	count, err := parseSentences(r.PostFormValue("sentences"), def)
	if err != nil {
		return summarizeInput{}, err
	}
	src, err := parseSource(r.PostFormValue("source"))
	if err != nil {
		return summarizeInput{}, err
	}
	return summarizeInput{
		text:   normalizeNewlines(r.PostFormValue("text")),
		count:  count,
		source: src,
		name:   r.PostFormValue("name"),
	}, nil
}

package summary

import "net/http"

// PageHandler renders the empty summarizer page.
type PageHandler struct {
	View *View
}

func (h PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.View.render(w, http.StatusOK, h.View.newPage())
}

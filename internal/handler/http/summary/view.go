package summary

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"textsum/internal/domain/entity"
)

//go:embed templates/index.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// PageConfig holds the settings the page is rendered with.
type PageConfig struct {
	MinSentences     int
	MaxSentences     int
	DefaultSentences int

	// Accept is the file input's accept attribute, e.g. ".txt,.pdf,.docx".
	Accept string
	// MaxUploadBytes is shown to users and enforced by the extractor.
	MaxUploadBytes int64
}

// View renders the summarizer page.
type View struct {
	tmpl *template.Template
	cfg  PageConfig
}

// NewView parses the embedded page template.
func NewView(cfg PageConfig) (*View, error) {
	tmpl, err := template.New("index.html").Funcs(template.FuncMap{
		"megabytes": func(n int64) int64 { return (n + (1<<20 - 1)) >> 20 },
	}).ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, err
	}
	return &View{tmpl: tmpl, cfg: cfg}, nil
}

// Config returns the page settings.
func (v *View) Config() PageConfig {
	return v.cfg
}

// pageData is the template's view model.
type pageData struct {
	Config PageConfig

	// Sentences is the slider position.
	Sentences int

	// Text is the manual input echoed back into the text area.
	Text string

	// Extracted holds the text read from an upload, shown as "Extracted Content".
	Extracted *extractedView

	Summary *summaryView

	Warning string
	Error   string
}

type extractedView struct {
	Name   string
	Format string
	Text   string
}

type summaryView struct {
	Text     string
	Count    int
	Total    int
	Source   entity.Source
	Filename string
}

func (v *View) newPage() pageData {
	return pageData{Config: v.cfg, Sentences: v.cfg.DefaultSentences}
}

// render executes the template into a buffer first so a template error never
// leaves a half-written page.
func (v *View) render(w http.ResponseWriter, code int, data pageData) {
	var buf bytes.Buffer
	if err := v.tmpl.Execute(&buf, data); err != nil {
		slog.Default().Error("render page", slog.Any("error", err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(code)
	_, _ = buf.WriteTo(w)
}

// StaticHandler serves the page's stylesheet and script. The embedded tree is
// rooted at the package directory, so request paths map onto it unchanged.
// Directory paths are answered with 404 rather than a listing.
func StaticHandler() http.Handler {
	files := http.FileServerFS(staticFS)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", "public, max-age=3600")
		files.ServeHTTP(w, r)
	})
}

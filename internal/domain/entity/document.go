// Package entity defines the core domain entities and validation logic for the application.
// It contains the request-scoped values the summarizer works on (Document, Summary and
// the sentence count), along with their validation rules and domain-specific errors.
package entity

import "strings"

// Source identifies how a document entered the system.
type Source string

const (
	// SourceManual is text typed or pasted into the page.
	SourceManual Source = "manual"
	// SourceFile is text extracted from an uploaded file.
	SourceFile Source = "file"
)

// Valid reports whether s is a known source.
func (s Source) Valid() bool {
	return s == SourceManual || s == SourceFile
}

// DownloadFilename returns the name offered for the downloaded summary.
func (s Source) DownloadFilename() string {
	if s == SourceFile {
		return "summarized_file_text.txt"
	}
	return "summarized_text.txt"
}

// Document is a raw text document, either entered directly or extracted from a file.
// It lives for a single request and is never stored.
type Document struct {
	// Name identifies the document: the uploaded filename, or "input" for manual text.
	Name string
	// Format is the extraction format ("txt", "pdf", "docx", "html"), empty for manual text.
	Format string
	Source Source
	Text   string
}

// NewManualDocument wraps text entered by the user.
func NewManualDocument(text string) Document {
	return Document{Name: "input", Source: SourceManual, Text: text}
}

// IsBlank reports whether the document has no content after trimming whitespace.
func (d Document) IsBlank() bool {
	return strings.TrimSpace(d.Text) == ""
}

package entity

import "strings"

// Summary is the ordered list of sentences selected from a Document.
type Summary struct {
	Sentences []string
	// Algorithm names the summarizer that produced the sentences.
	Algorithm string
	// TotalSentences is the number of rankable sentences in the source document.
	TotalSentences int
}

// Text joins the summary sentences with newlines, the form shown to users and downloaded.
func (s Summary) Text() string {
	return strings.Join(s.Sentences, "\n")
}

// Len returns the number of sentences in the summary.
func (s Summary) Len() int {
	return len(s.Sentences)
}

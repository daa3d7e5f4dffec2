package summary

import "textsum/internal/domain/entity"

// SummarizeRequest is the JSON body of POST /summarize.
type SummarizeRequest struct {
	Text string `json:"text"`
	// Sentences defaults to the configured default when omitted.
	Sentences *int   `json:"sentences,omitempty"`
	Source    string `json:"source,omitempty"`
	// Name labels a file-sourced document in logs and traces.
	Name string `json:"name,omitempty"`
}

// DownloadRequest is the JSON body of POST /download.
type DownloadRequest struct {
	Summary string `json:"summary"`
	Source  string `json:"source"`
}

// DocumentDTO describes extracted text.
type DocumentDTO struct {
	Name   string `json:"name"`
	Format string `json:"format"`
	Text   string `json:"text"`
}

// SummaryDTO is the JSON form of a summary.
type SummaryDTO struct {
	Summary          string   `json:"summary"`
	Sentences        []string `json:"sentences"`
	Count            int      `json:"count"`
	Requested        int      `json:"requested"`
	TotalSentences   int      `json:"total_sentences"`
	Algorithm        string   `json:"algorithm"`
	Source           string   `json:"source"`
	DownloadFilename string   `json:"download_filename"`

	// Document is set when the summary came from an upload.
	Document *DocumentDTO `json:"document,omitempty"`
}

func toDocumentDTO(doc entity.Document) *DocumentDTO {
	return &DocumentDTO{Name: doc.Name, Format: doc.Format, Text: doc.Text}
}

func toSummaryDTO(sum entity.Summary, src entity.Source, requested int) SummaryDTO {
	sentences := sum.Sentences
	if sentences == nil {
		sentences = []string{}
	}
	return SummaryDTO{
		Summary:          sum.Text(),
		Sentences:        sentences,
		Count:            sum.Len(),
		Requested:        requested,
		TotalSentences:   sum.TotalSentences,
		Algorithm:        sum.Algorithm,
		Source:           string(src),
		DownloadFilename: src.DownloadFilename(),
	}
}

func toSummaryView(sum entity.Summary, src entity.Source) *summaryView {
	return &summaryView{
		Text:     sum.Text(),
		Count:    sum.Len(),
		Total:    sum.TotalSentences,
		Source:   src,
		Filename: src.DownloadFilename(),
	}
}

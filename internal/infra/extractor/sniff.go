package extractor

import (
	"fmt"

	"github.com/gabriel-vasile/mimetype"

	sumUC "textsum/internal/usecase/summary"
)

// expectedTypes lists, per binary format, the MIME types its content may sniff
// as. A docx file is a zip archive, so a generic zip is accepted too. Text-based
// formats are not sniffed.
var expectedTypes = map[Format][]string{
	FormatPDF: {"application/pdf"},
	FormatDocx: {
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"application/zip",
	},
}

// checkContent verifies that data looks like format.
func checkContent(format Format, data []byte) error {
	allowed, ok := expectedTypes[format]
	if !ok {
		return nil
	}

	detected := mimetype.Detect(data)
	for m := detected; m != nil; m = m.Parent() {
		for _, want := range allowed {
			if m.Is(want) {
				return nil
			}
		}
	}
	return fmt.Errorf("%w: content is %s, not %s", sumUC.ErrExtractionFailed, detected.String(), format)
}

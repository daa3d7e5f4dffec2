package extractor

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	sumUC "textsum/internal/usecase/summary"
)

// Format is a supported upload format.
type Format int

const (
	FormatText Format = iota + 1
	FormatPDF
	FormatDocx
	FormatHTML
)

// Formats lists every supported format in the order they are offered to users.
var Formats = []Format{FormatText, FormatPDF, FormatDocx, FormatHTML}

var formatNames = map[Format]string{
	FormatText: "txt",
	FormatPDF:  "pdf",
	FormatDocx: "docx",
	FormatHTML: "html",
}

var formatExtensions = map[string]Format{
	".txt":  FormatText,
	".pdf":  FormatPDF,
	".docx": FormatDocx,
	".html": FormatHTML,
	".htm":  FormatHTML,
}

// String returns the short name of the format, as used in configuration.
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Extensions returns the filename extensions of f, with leading dots.
func (f Format) Extensions() []string {
	var exts []string
	for ext, format := range formatExtensions {
		if format == f {
			exts = append(exts, ext)
		}
	}
	sort.Strings(exts)
	return exts
}

// ParseFormat resolves a configuration name such as "pdf" to a Format.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "."))
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	if f, ok := formatExtensions["."+name]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", sumUC.ErrUnsupportedFormat, name)
}

// FormatFromFilename returns the format for the extension of filename.
// Matching is case-insensitive.
func FormatFromFilename(filename string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if f, ok := formatExtensions[ext]; ok {
		return f, nil
	}
	if ext == "" {
		return 0, fmt.Errorf("%w: %q has no extension", sumUC.ErrUnsupportedFormat, filename)
	}
	return 0, fmt.Errorf("%w: %s", sumUC.ErrUnsupportedFormat, ext)
}

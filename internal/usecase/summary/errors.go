// Package summary provides the use cases behind the summarizer page: acquiring
// text from direct input or an uploaded file and reducing it to its most central
// sentences.
package summary

import (
	"errors"
	"fmt"

	"textsum/internal/domain/entity"
)

// Sentinel errors for summary use case operations.
var (
	// ErrEmptyInput indicates that there is no text to summarize.
	// The summarizer is never invoked for blank input.
	ErrEmptyInput = entity.ErrEmptyInput

	// ErrUnsupportedFormat indicates that an uploaded file has an extension
	// outside the supported formats.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrExtractionFailed indicates that text could not be read from an uploaded file.
	// Corrupt files, content that does not match the extension, invalid UTF-8 and
	// files without any text all end up here.
	ErrExtractionFailed = errors.New("could not extract text from the file")

	// ErrNoText indicates that a file was read successfully but contained no text.
	// It matches ErrExtractionFailed with errors.Is.
	ErrNoText = fmt.Errorf("%w: no text found", ErrExtractionFailed)

	// ErrFileTooLarge indicates that an upload exceeds the configured size limit.
	ErrFileTooLarge = errors.New("file exceeds the upload size limit")
)

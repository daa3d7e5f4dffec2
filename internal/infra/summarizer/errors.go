package summarizer

import "errors"

var (
	// ErrEmptyText is returned when the input contains no text to summarize.
	ErrEmptyText = errors.New("text is empty")

	// ErrInvalidCount is returned when the requested sentence count is below one.
	ErrInvalidCount = errors.New("sentence count must be at least 1")

	// ErrUnknownAlgorithm is returned for an unrecognized algorithm name.
	ErrUnknownAlgorithm = errors.New("unknown summarization algorithm")
)

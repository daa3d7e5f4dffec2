package extractor

import (
	"context"
	"errors"
	"unicode/utf8"
)

var errInvalidUTF8 = errors.New("text is not valid UTF-8")

// extractText decodes data as UTF-8 verbatim. A byte order mark is kept.
func extractText(_ context.Context, data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errInvalidUTF8
	}
	return string(data), nil
}

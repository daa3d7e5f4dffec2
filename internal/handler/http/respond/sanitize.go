package respond

import (
	"regexp"
	"unicode/utf8"
)

// maxLoggedErrorBytes bounds error text written to logs. Parser errors can
// quote large slices of an uploaded document.
const maxLoggedErrorBytes = 512

var (
	// multipart and os.CreateTemp spill files
	tempPathPattern = regexp.MustCompile(`(?:/tmp|/var/folders|/private/var)/[^\s:"']+`)

	homePathPattern = regexp.MustCompile(`/(?:home|Users)/[^/\s:"']+`)
)

// SanitizeError returns err's message with temporary file paths and user home
// directories masked, truncated to a bounded length.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = tempPathPattern.ReplaceAllString(msg, "<tmp>")
	msg = homePathPattern.ReplaceAllString(msg, "/<home>")

	if len(msg) > maxLoggedErrorBytes {
		cut := maxLoggedErrorBytes
		for cut > 0 && !utf8.RuneStart(msg[cut]) {
			cut--
		}
		msg = msg[:cut] + "...(truncated)"
	}
	return msg
}

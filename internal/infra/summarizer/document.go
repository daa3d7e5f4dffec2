package summarizer

import (
	"strings"
	"unicode"
)

// Tokenizer splits text into sentences and sentences into normalized words.
type Tokenizer interface {
	Sentences(text string) []string
	Words(sentence string) []string
}

// sentence is a rankable unit of the document.
type sentence struct {
	text  string
	words []string
}

// parseDocument applies the plain-text document model: lines are trimmed, all
// upper-case lines are headings and never ranked, and a blank line closes a
// paragraph. The lines of each paragraph are joined with spaces before sentence
// splitting, so hard-wrapped text is handled.
func parseDocument(text string, tok Tokenizer) []sentence {
	var (
		out       []sentence
		paragraph []string
	)
	flush := func() {
		if len(paragraph) == 0 {
			return
		}
		for _, s := range tok.Sentences(strings.Join(paragraph, " ")) {
			out = append(out, sentence{text: s, words: tok.Words(s)})
		}
		paragraph = paragraph[:0]
	}

	for _, line := range splitLines(text) {
		line = strings.TrimSpace(line)
		switch {
		case isHeading(line):
			flush()
		case line == "":
			flush()
		default:
			paragraph = append(paragraph, line)
		}
	}
	flush()
	return out
}

// isHeading reports whether line has at least one cased letter and no lower-case ones.
func isHeading(line string) bool {
	cased := false
	for _, r := range line {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// splitLines splits on every line boundary: \n, \r\n, \r, vertical tab, form feed,
// the file/group/record separators, NEL and the Unicode line and paragraph separators.
func splitLines(text string) []string {
	var (
		lines []string
		start int
	)
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '\n', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
			lines = append(lines, string(runes[start:i]))
			start = i + 1
		case '\r':
			lines = append(lines, string(runes[start:i]))
			if i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(runes) {
		lines = append(lines, string(runes[start:]))
	}
	return lines
}

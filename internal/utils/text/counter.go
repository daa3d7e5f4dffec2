// Package text holds small helpers for measuring input text.
package text

import "unicode/utf8"

// CountRunes returns the number of Unicode code points in s. Input sizes are
// reported in runes so that non-ASCII documents are not over-counted.
//
//	CountRunes("hello")    // 5
//	CountRunes("naïve")    // 5
//	CountRunes("日本語")    // 3
func CountRunes(s string) int {
	return utf8.RuneCountInString(s)
}

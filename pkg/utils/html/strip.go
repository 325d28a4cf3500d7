// ABOUTME: Text helpers for turning extracted HTML text into compact excerpts
// ABOUTME: Collapses whitespace and truncates on rune boundaries

package html

import (
	"strings"
	"unicode/utf8"
)

// CollapseWhitespace trims the text and replaces every run of whitespace
// (spaces, tabs, newlines, non-breaking spaces) with a single space
func CollapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Truncate returns at most max characters of text. Multi-byte characters are
// never split.
func Truncate(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= max {
		return text
	}

	count := 0
	for i := range text {
		if count == max {
			return text[:i]
		}
		count++
	}
	return text
}

// Excerpt collapses whitespace and truncates to max characters
func Excerpt(text string, max int) string {
	return Truncate(CollapseWhitespace(text), max)
}

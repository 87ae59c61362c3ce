// Package textutils provides small text manipulation helpers.
package textutils

import "strings"

// CollapseWhitespace replaces newlines and tabs with spaces, squeezes runs
// of spaces down to one, and trims the result.
func CollapseWhitespace(text string) string {
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ReplaceAll(text, "\t", " ")
	text = strings.TrimSpace(text)
	for strings.Contains(text, "  ") {
		text = strings.ReplaceAll(text, "  ", " ")
	}
	return text
}

// Truncate shortens text to at most limit runes, appending an ellipsis
// marker when anything was cut. Used to keep log lines bounded.
func Truncate(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

package expression

import (
	"strings"
)

// ParseKeywords splits a comma or line delimited list into trimmed, non-empty keywords.
// Order is kept, repeated keywords (case-insensitive) are dropped.
func ParseKeywords(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})
	return cleanKeywords(fields)
}

// FormatKeywords joins keywords for display in a single-line settings field
func FormatKeywords(keywords []string) string {
	return strings.Join(cleanKeywords(keywords), ", ")
}

// Package strcase converts Go identifiers to the key styles used in output.
package strcase

import (
	"strings"
	"unicode"
)

// ToLowerSnake converts an identifier such as "MaxWorkers" or "HTTPTimeout"
// to snake_case ("max_workers", "http_timeout").
func ToLowerSnake(s string) string {
	if s == "" {
		return ""
	}

	runes := []rune(s)

	var b strings.Builder
	b.Grow(len(s) + 4)

	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && wordBoundary(runes, i) {
			b.WriteRune('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// wordBoundary reports whether an upper-case rune at i starts a new word:
// after a lower-case letter or digit (userID), or at the end of an acronym
// followed by a lower-case letter (HTTPServer).
func wordBoundary(runes []rune, i int) bool {
	prev := runes[i-1]
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}

	return unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

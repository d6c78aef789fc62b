// Package textutil cleans user supplied text before it is parsed.
package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Squish returns s NFC-normalized with every run of whitespace collapsed
// into a single space and both ends trimmed.
// It reports false if s is not valid UTF-8.
func Squish(s string) (string, bool) {
	if !utf8.ValidString(s) {
		return "", false
	}
	s = norm.NFC.String(s)
	return strings.Join(strings.FieldsFunc(s, isSpace), " "), true
}

// isSpace extends [unicode.IsSpace] with the invisible characters that
// commonly leak into copied numbers.
func isSpace(r rune) bool {
	switch r {
	case '\uFEFF', '\u200B', '\u3164', '\u1160':
		return true
	}
	return unicode.IsSpace(r)
}

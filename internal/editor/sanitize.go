package editor

import (
	"strings"
	"unicode"
	"unicode/utf16"
)

// SanitizePaste reduces clipboard content to plain text: line endings become
// \n, invalid UTF-8 is dropped, and control characters other than newline
// and tab are removed together with bidi embedding and override controls.
// Joiners such as ZWNJ are kept since Persian words depend on them.
func SanitizePaste(s string) string {
	s = strings.ToValidUTF8(s, "")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t':
			return r
		case unicode.IsControl(r):
			return -1
		case isBidiControl(r):
			return -1
		}
		return r
	}, s)
}

func isBidiControl(r rune) bool {
	return (r >= '\u202a' && r <= '\u202e') || (r >= '\u2066' && r <= '\u2069')
}

// CodeUnits is the length of s in UTF-16 code units, the unit MaxLength
// counts in. Runes outside the BMP count as two.
func CodeUnits(s string) int {
	n := 0
	for _, r := range s {
		n += max(1, utf16.RuneLen(r))
	}
	return n
}

// TruncateUnits cuts s to at most n UTF-16 code units. A rune whose
// surrogate pair would straddle the limit is dropped whole.
func TruncateUnits(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i, r := range s {
		count += max(1, utf16.RuneLen(r))
		if count > n {
			return s[:i]
		}
	}
	return s
}

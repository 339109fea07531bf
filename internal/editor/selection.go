package editor

import (
	"unicode"
	"unicode/utf8"
)

// Selection is a range of byte offsets into the surface text. Anchor is where
// the selection started and Focus is the caret; they are equal when nothing
// is selected.
type Selection struct {
	Anchor int
	Focus  int
}

func Caret(pos int) Selection { return Selection{Anchor: pos, Focus: pos} }

func (s Selection) Collapsed() bool { return s.Anchor == s.Focus }

// Ordered returns the selection bounds with start <= end.
func (s Selection) Ordered() (start, end int) {
	if s.Anchor <= s.Focus {
		return s.Anchor, s.Focus
	}
	return s.Focus, s.Anchor
}

func (s Selection) clamp(text string) Selection {
	return Selection{
		Anchor: clampToRuneBoundary(text, s.Anchor),
		Focus:  clampToRuneBoundary(text, s.Focus),
	}
}

// Surface is the editing capability a Field drives: the text shown to the
// user and the selection inside it.
type Surface interface {
	Text() string
	SetText(text string)
	Selection() Selection
	Select(sel Selection)
}

func clampToRuneBoundary(text string, pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(text) {
		pos = len(text)
	}
	for pos > 0 && pos < len(text) && !utf8.RuneStart(text[pos]) {
		pos--
	}
	return pos
}

func previousRuneBoundary(text string, pos int) int {
	pos = clampToRuneBoundary(text, pos)
	if pos == 0 {
		return 0
	}
	_, size := utf8.DecodeLastRuneInString(text[:pos])
	if size <= 0 {
		size = 1
	}
	return pos - size
}

func nextRuneBoundary(text string, pos int) int {
	pos = clampToRuneBoundary(text, pos)
	if pos >= len(text) {
		return len(text)
	}
	_, size := utf8.DecodeRuneInString(text[pos:])
	if size <= 0 {
		size = 1
	}
	return pos + size
}

func previousWordBoundary(text string, pos int) int {
	pos = clampToRuneBoundary(text, pos)
	for pos > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:pos])
		if isWordRune(r) {
			break
		}
		pos -= max(size, 1)
	}
	for pos > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:pos])
		if !isWordRune(r) {
			break
		}
		pos -= max(size, 1)
	}
	return clampToRuneBoundary(text, pos)
}

func nextWordBoundary(text string, pos int) int {
	pos = clampToRuneBoundary(text, pos)
	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if isWordRune(r) {
			break
		}
		pos += max(size, 1)
	}
	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if !isWordRune(r) {
			break
		}
		pos += max(size, 1)
	}
	return clampToRuneBoundary(text, pos)
}

func lineStart(text string, pos int) int {
	for pos > 0 && text[pos-1] != '\n' {
		pos--
	}
	return pos
}

func lineEnd(text string, pos int) int {
	for pos < len(text) && text[pos] != '\n' {
		pos++
	}
	return pos
}

// Persian letters are unicode.IsLetter, so word movement works across scripts.
// ZWNJ joins parts of one Persian word.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '\u200c'
}

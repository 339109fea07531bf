package editor

import "strings"

// The editing operations below are pure: they take the surface text and
// selection and return the new ones. Movement without extend drops the
// selection and moves from the caret.

func move(text string, sel Selection, extend bool, to func(string, int) int) Selection {
	sel = sel.clamp(text)
	next := to(text, sel.Focus)
	if extend {
		return Selection{Anchor: sel.Anchor, Focus: next}
	}
	return Caret(next)
}

func MoveLeft(text string, sel Selection, extend bool) Selection {
	return move(text, sel, extend, previousRuneBoundary)
}

func MoveRight(text string, sel Selection, extend bool) Selection {
	return move(text, sel, extend, nextRuneBoundary)
}

func MoveWordLeft(text string, sel Selection, extend bool) Selection {
	return move(text, sel, extend, previousWordBoundary)
}

func MoveWordRight(text string, sel Selection, extend bool) Selection {
	return move(text, sel, extend, nextWordBoundary)
}

func MoveLineStart(text string, sel Selection, extend bool) Selection {
	return move(text, sel, extend, lineStart)
}

func MoveLineEnd(text string, sel Selection, extend bool) Selection {
	return move(text, sel, extend, lineEnd)
}

func SelectAll(text string) Selection {
	return Selection{Anchor: 0, Focus: len(text)}
}

func SelectedText(text string, sel Selection) string {
	start, end := sel.clamp(text).Ordered()
	return text[start:end]
}

// InsertText replaces the selection with input and leaves the caret after it.
func InsertText(text string, sel Selection, input string) (string, Selection) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	start, end := sel.clamp(text).Ordered()
	out := text[:start] + input + text[end:]
	return out, Caret(start + len(input))
}

func deleteRange(text string, start, end int) (string, Selection) {
	return text[:start] + text[end:], Caret(start)
}

func Backspace(text string, sel Selection) (string, Selection) {
	sel = sel.clamp(text)
	if !sel.Collapsed() {
		start, end := sel.Ordered()
		return deleteRange(text, start, end)
	}
	if sel.Focus == 0 {
		return text, sel
	}
	return deleteRange(text, previousRuneBoundary(text, sel.Focus), sel.Focus)
}

func DeleteForward(text string, sel Selection) (string, Selection) {
	sel = sel.clamp(text)
	if !sel.Collapsed() {
		start, end := sel.Ordered()
		return deleteRange(text, start, end)
	}
	if sel.Focus >= len(text) {
		return text, sel
	}
	return deleteRange(text, sel.Focus, nextRuneBoundary(text, sel.Focus))
}

func DeleteWordBackward(text string, sel Selection) (string, Selection) {
	sel = sel.clamp(text)
	if !sel.Collapsed() {
		return Backspace(text, sel)
	}
	return deleteRange(text, previousWordBoundary(text, sel.Focus), sel.Focus)
}

func DeleteWordForward(text string, sel Selection) (string, Selection) {
	sel = sel.clamp(text)
	if !sel.Collapsed() {
		return DeleteForward(text, sel)
	}
	return deleteRange(text, sel.Focus, nextWordBoundary(text, sel.Focus))
}

package editor

import "testing"

func TestInsertAndDelete(t *testing.T) {
	b := NewBuffer("abcd")
	b.SetCaret(2)
	b.InsertTextAtCaret("X")
	if got := b.Text(); got != "abXcd" {
		t.Fatalf("unexpected insert result: %q", got)
	}
	b.DeleteForward()
	if got := b.Text(); got != "abXd" {
		t.Fatalf("unexpected delete result: %q", got)
	}
	b.Backspace()
	if got := b.Text(); got != "abd" || b.CaretByte() != 2 {
		t.Fatalf("unexpected backspace result: %q caret %d", got, b.CaretByte())
	}
}

func TestInsertMultilineKeepsSingleText(t *testing.T) {
	b := NewBuffer("abc")
	b.SetCaret(1)
	b.InsertTextAtCaret("X\r\nY")
	if got := b.Text(); got != "aX\nYbc" {
		t.Fatalf("unexpected text: %q", got)
	}
	if b.CaretByte() != len("aX\nY") {
		t.Fatalf("unexpected caret: %d", b.CaretByte())
	}
}

func TestBackspaceRemovesWholeRune(t *testing.T) {
	b := NewBuffer("سلام")
	b.Backspace()
	if got := b.Text(); got != "سلا" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestCaretClampsToRuneBoundary(t *testing.T) {
	b := NewBuffer("aب")
	b.SetCaret(2)
	if b.CaretByte() != 1 {
		t.Fatalf("caret inside rune not clamped: %d", b.CaretByte())
	}
	b.SetCaret(99)
	if b.CaretByte() != len("aب") {
		t.Fatalf("caret past end not clamped: %d", b.CaretByte())
	}
}

func TestSelectionReplace(t *testing.T) {
	b := NewBuffer("hello world")
	b.Select(Selection{Anchor: 11, Focus: 6})
	if got := b.SelectedText(); got != "world" {
		t.Fatalf("unexpected selection: %q", got)
	}
	b.InsertTextAtCaret("there")
	if got := b.Text(); got != "hello there" {
		t.Fatalf("unexpected replace result: %q", got)
	}
	if b.HasSelection() {
		t.Fatalf("selection should collapse after insert")
	}
}

func TestShiftMovementExtendsSelection(t *testing.T) {
	b := NewBuffer("abc")
	b.SetCaret(0)
	b.MoveCaretRight(true)
	b.MoveCaretRight(true)
	if got := b.SelectedText(); got != "ab" {
		t.Fatalf("unexpected selection: %q", got)
	}
	b.MoveCaretRight(false)
	if b.HasSelection() || b.CaretByte() != 3 {
		t.Fatalf("plain move should drop selection, caret %d", b.CaretByte())
	}
}

func TestWordMovement(t *testing.T) {
	b := NewBuffer("hello brave world")
	b.MoveCaretWordLeft(false)
	if b.CaretByte() != len("hello brave ") {
		t.Fatalf("unexpected first word-left caret: %d", b.CaretByte())
	}
	b.MoveCaretWordLeft(false)
	if b.CaretByte() != len("hello ") {
		t.Fatalf("unexpected second word-left caret: %d", b.CaretByte())
	}
	b.MoveCaretWordRight(false)
	if b.CaretByte() != len("hello brave") {
		t.Fatalf("unexpected word-right caret: %d", b.CaretByte())
	}
}

func TestWordMovementPersian(t *testing.T) {
	b := NewBuffer("سلام دنیا")
	b.MoveCaretWordLeft(false)
	if b.CaretByte() != len("سلام ") {
		t.Fatalf("unexpected caret: %d", b.CaretByte())
	}
	b.DeleteWordBackward()
	if got := b.Text(); got != "دنیا" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestDeleteWordForward(t *testing.T) {
	b := NewBuffer("one two")
	b.SetCaret(0)
	b.DeleteWordForward()
	if got := b.Text(); got != " two" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestSelectAll(t *testing.T) {
	b := NewBuffer("abc\ndef")
	b.SelectAll()
	if got := b.SelectedText(); got != "abc\ndef" {
		t.Fatalf("unexpected selection: %q", got)
	}
	b.Backspace()
	if b.Text() != "" {
		t.Fatalf("expected empty text, got %q", b.Text())
	}
}

func TestLineStartEnd(t *testing.T) {
	text := "ab\ncd"
	sel := MoveLineStart(text, Caret(4), false)
	if sel.Focus != 3 {
		t.Fatalf("unexpected line start: %d", sel.Focus)
	}
	sel = MoveLineEnd(text, Caret(0), false)
	if sel.Focus != 2 {
		t.Fatalf("unexpected line end: %d", sel.Focus)
	}
}

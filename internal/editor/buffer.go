package editor

// Buffer is the in-memory Surface used by notes on the board.
type Buffer struct {
	text string
	sel  Selection
}

func NewBuffer(text string) *Buffer {
	return &Buffer{text: text, sel: Caret(len(text))}
}

func (b *Buffer) Text() string         { return b.text }
func (b *Buffer) Selection() Selection { return b.sel }
func (b *Buffer) CaretByte() int       { return b.sel.Focus }
func (b *Buffer) HasSelection() bool   { return !b.sel.Collapsed() }

func (b *Buffer) SetText(text string) {
	b.text = text
	b.sel = b.sel.clamp(text)
}

func (b *Buffer) Select(sel Selection) {
	b.sel = sel.clamp(b.text)
}

func (b *Buffer) SetCaret(pos int) { b.Select(Caret(pos)) }

func (b *Buffer) InsertTextAtCaret(input string) {
	b.text, b.sel = InsertText(b.text, b.sel, input)
}

func (b *Buffer) Backspace()          { b.text, b.sel = Backspace(b.text, b.sel) }
func (b *Buffer) DeleteForward()      { b.text, b.sel = DeleteForward(b.text, b.sel) }
func (b *Buffer) DeleteWordBackward() { b.text, b.sel = DeleteWordBackward(b.text, b.sel) }
func (b *Buffer) DeleteWordForward()  { b.text, b.sel = DeleteWordForward(b.text, b.sel) }

func (b *Buffer) MoveCaretLeft(extend bool)      { b.sel = MoveLeft(b.text, b.sel, extend) }
func (b *Buffer) MoveCaretRight(extend bool)     { b.sel = MoveRight(b.text, b.sel, extend) }
func (b *Buffer) MoveCaretWordLeft(extend bool)  { b.sel = MoveWordLeft(b.text, b.sel, extend) }
func (b *Buffer) MoveCaretWordRight(extend bool) { b.sel = MoveWordRight(b.text, b.sel, extend) }

func (b *Buffer) SelectAll()           { b.sel = SelectAll(b.text) }
func (b *Buffer) SelectedText() string { return SelectedText(b.text, b.sel) }

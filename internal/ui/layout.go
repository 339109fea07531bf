package ui

import (
	"notetab/internal/geom"
	"notetab/internal/i18n"
)

// NoteLayout is where the parts of one note sit on screen.
type NoteLayout struct {
	Frame    geom.Rect
	Content  geom.Rect
	Swatches []geom.Rect
	Delete   geom.Rect
}

func (t Theme) NoteSize() geom.Size {
	return geom.Size{W: t.NoteWidth, H: t.NoteHeight}
}

// ContentWidth is the wrapping width of note text.
func (t Theme) ContentWidth() int {
	return t.NoteWidth - 2*t.NotePadding
}

// LayoutNote places a note at origin. The text block of textHeight is
// centered vertically inside the padding.
func (t Theme) LayoutNote(origin geom.Point, textHeight int, swatches int) NoteLayout {
	frame := geom.RectAt(origin, t.NoteSize())
	inner := t.NoteHeight - 2*t.NotePadding
	textHeight = min(textHeight, inner)
	content := geom.Rect{
		X: frame.X + t.NotePadding,
		Y: frame.Y + t.NotePadding + (inner-textHeight)/2,
		W: t.ContentWidth(),
		H: textHeight,
	}

	bottom := frame.Y + frame.H - t.ControlInset - t.SwatchSize
	sw := make([]geom.Rect, swatches)
	for i := range sw {
		sw[i] = geom.Rect{
			X: frame.X + t.ControlInset + i*(t.SwatchSize+t.SwatchGap),
			Y: bottom,
			W: t.SwatchSize,
			H: t.SwatchSize,
		}
	}
	del := geom.Rect{
		X: frame.X + frame.W - t.ControlInset - t.DeleteSize,
		Y: frame.Y + frame.H - t.ControlInset - t.DeleteSize,
		W: t.DeleteSize,
		H: t.DeleteSize,
	}
	return NoteLayout{Frame: frame, Content: content, Swatches: sw, Delete: del}
}

// ViewportLayout holds the board-level controls.
type ViewportLayout struct {
	Title     geom.Rect
	Language  geom.Rect
	AddButton geom.Rect
	Empty     geom.Rect
}

// LayoutViewport places the header block (title above the language button)
// centered in a column no wider than HeaderMaxWidth, aligned to the start
// edge for dir, and the add button in the bottom-right corner.
func (t Theme) LayoutViewport(v geom.Size, dir i18n.Direction) ViewportLayout {
	colW := min(t.HeaderMaxWidth, v.W)
	colX := (v.W - colW) / 2
	blockH := t.TitleHeight + t.HeaderGap + t.IconSize
	top := (v.H - blockH) / 2

	title := geom.Rect{X: colX, Y: top, W: colW, H: t.TitleHeight}
	lang := geom.Rect{X: colX + 5, Y: top + t.TitleHeight + t.HeaderGap, W: t.IconSize, H: t.IconSize}
	if dir == i18n.RTL {
		lang.X = colX + colW - 5 - t.IconSize
	}

	add := geom.Rect{
		X: v.W - t.AddButtonInset - t.AddButtonSize,
		Y: v.H - t.AddButtonInset - t.AddButtonSize,
		W: t.AddButtonSize,
		H: t.AddButtonSize,
	}
	empty := geom.Rect{X: colX, Y: top + blockH + t.HeaderGap, W: colW, H: t.LineHeight}
	return ViewportLayout{Title: title, Language: lang, AddButton: add, Empty: empty}
}

// ModalLayout is the locale switcher panel.
type ModalLayout struct {
	Dir      i18n.Direction
	Panel    geom.Rect
	Title    geom.Rect
	Options  []geom.Rect
	Footnote geom.Rect
	Close    geom.Rect
}

// LayoutModal centers the panel and lays out count options in one row,
// in reading order for dir.
func (t Theme) LayoutModal(v geom.Size, dir i18n.Direction, count int) ModalLayout {
	w := max(0, min(t.ModalMaxWidth, v.W-2*t.ControlInset))
	h := 2*t.ModalPadding + t.ModalTitleH + t.ModalGap + t.OptionHeight + 2*t.OptionGap + t.FooterHeight
	panel := geom.Rect{X: (v.W - w) / 2, Y: (v.H - h) / 2, W: w, H: h}

	inner := geom.Rect{X: panel.X + t.ModalPadding, Y: panel.Y + t.ModalPadding, W: w - 2*t.ModalPadding}
	title := geom.Rect{X: inner.X, Y: inner.Y, W: inner.W, H: t.ModalTitleH}

	optY := title.Y + title.H + t.ModalGap
	opts := make([]geom.Rect, count)
	if count > 0 {
		optW := (inner.W - (count-1)*t.OptionGap) / count
		for i := range opts {
			slot := i
			if dir == i18n.RTL {
				slot = count - 1 - i
			}
			opts[i] = geom.Rect{X: inner.X + slot*(optW+t.OptionGap), Y: optY, W: optW, H: t.OptionHeight}
		}
	}

	footY := optY + t.OptionHeight + 2*t.OptionGap
	closeBtn := geom.Rect{X: inner.X + inner.W - t.CloseWidth, Y: footY, W: t.CloseWidth, H: t.FooterHeight}
	note := geom.Rect{X: inner.X, Y: footY, W: inner.W - t.CloseWidth - t.OptionGap, H: t.FooterHeight}
	if dir == i18n.RTL {
		closeBtn.X = inner.X
		note.X = inner.X + t.CloseWidth + t.OptionGap
	}
	return ModalLayout{Dir: dir, Panel: panel, Title: title, Options: opts, Footnote: note, Close: closeBtn}
}

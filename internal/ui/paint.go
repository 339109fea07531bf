package ui

import (
	"image/color"

	"notetab/internal/geom"
	"notetab/internal/i18n"
	"notetab/internal/notes"
	"notetab/internal/render"
)

func (t Theme) PaintBackground(fb *render.FrameBuffer) {
	fb.Clear(t.Background)
}

// PaintNote draws the note body and its footer controls. Text is drawn by
// the caller on top.
func (t Theme) PaintNote(fb *render.FrameBuffer, l NoteLayout, c notes.Color, focused bool) {
	fill := NoteFill(c)
	fb.FillRect(l.Frame, fill)
	border := fill
	if focused {
		border = t.Border
		border.A = 0x40
	}
	fb.StrokeRect(l.Frame, t.NoteBorder, border)

	for i, r := range l.Swatches {
		if i >= len(notes.Palette) {
			break
		}
		swFill, ring := SwatchColors(notes.Palette[i])
		fb.FillCircle(r, swFill)
		fb.StrokeCircle(r, 2, ring)
		if notes.Palette[i] == c {
			fb.FillCircle(r.Inset(8), ring)
		}
	}
	t.paintDelete(fb, l.Delete)
}

// paintDelete draws an X inside r.
func (t Theme) paintDelete(fb *render.FrameBuffer, r geom.Rect) {
	ic := t.Icon
	fb.StrokeCircle(r, 1, t.Border)
	pad := r.W / 4
	n := r.W - 2*pad
	for i := 0; i < n; i++ {
		fb.FillRect(geom.Rect{X: r.X + pad + i, Y: r.Y + pad + i, W: 2, H: 2}, ic)
		fb.FillRect(geom.Rect{X: r.X + r.W - pad - i - 2, Y: r.Y + pad + i, W: 2, H: 2}, ic)
	}
}

// PaintAddButton draws the round add-note button with a plus.
func (t Theme) PaintAddButton(fb *render.FrameBuffer, r geom.Rect) {
	fb.FillCircle(r, t.Border)
	fb.StrokeCircle(r, 2, t.Border)
	arm := r.W / 4
	mid := geom.Rect{X: r.X + r.W/2 - 1, Y: r.Y + r.H/2 - 1}
	fb.FillRect(geom.Rect{X: mid.X - arm, Y: mid.Y, W: 2 * arm, H: 2}, t.Icon)
	fb.FillRect(geom.Rect{X: mid.X, Y: mid.Y - arm, W: 2, H: 2 * arm}, t.Icon)
}

// PaintGlobe draws the language icon: a ring with an equator and meridian.
func (t Theme) PaintGlobe(fb *render.FrameBuffer, r geom.Rect, c color.RGBA) {
	fb.StrokeCircle(r, 2, c)
	fb.FillRect(geom.Rect{X: r.X + 1, Y: r.Y + r.H/2 - 1, W: r.W - 2, H: 2}, c)
	fb.FillRect(geom.Rect{X: r.X + r.W/2 - 1, Y: r.Y + 1, W: 2, H: r.H - 2}, c)
}

// PaintModal draws the backdrop and panel. selected is the index of the
// current language option, or -1.
func (t Theme) PaintModal(fb *render.FrameBuffer, l ModalLayout, selected int) {
	fb.FillRect(geom.Rect{W: fb.W, H: fb.H}, t.Overlay)
	fb.FillRect(l.Panel, t.Panel)
	fb.StrokeRect(l.Panel, 2, t.PrimarySoft)

	for i, r := range l.Options {
		border := t.Border
		iconColor := t.MutedText
		if i == selected {
			fb.FillRect(r, t.PrimarySoft)
			border = t.Primary
			border.A = 0x1A
			iconColor = t.Primary
		}
		fb.StrokeRect(r, 1, border)
		t.PaintGlobe(fb, t.optionIcon(r, l.Dir), iconColor)
	}
	fb.StrokeRect(l.Close, 1, t.Border)
}

// PaintCaret draws a caret of CaretWidth at the top of a text line.
func (t Theme) PaintCaret(fb *render.FrameBuffer, at geom.Point) {
	fb.FillRect(geom.Rect{X: at.X, Y: at.Y, W: t.CaretWidth, H: t.LineHeight}, t.Caret)
}

func (t Theme) PaintSelection(fb *render.FrameBuffer, rects []geom.Rect) {
	for _, r := range rects {
		fb.FillRect(r, t.Selection)
	}
}

func (t Theme) optionIcon(r geom.Rect, dir i18n.Direction) geom.Rect {
	icon := geom.Rect{X: r.X + 10, Y: r.Y + (r.H-t.IconSize)/2, W: t.IconSize, H: t.IconSize}
	if dir == i18n.RTL {
		icon.X = r.X + r.W - 10 - t.IconSize
	}
	return icon
}

// OptionLabel is the text area of option r beside its globe.
func (t Theme) OptionLabel(r geom.Rect, dir i18n.Direction) geom.Rect {
	w := r.W - t.IconSize - 30
	if dir == i18n.RTL {
		return geom.Rect{X: r.X + 10, Y: r.Y, W: w, H: r.H}
	}
	return geom.Rect{X: r.X + t.IconSize + 20, Y: r.Y, W: w, H: r.H}
}

package board

import (
	"unicode/utf8"

	"notetab/internal/editor"
	"notetab/internal/geom"
	"notetab/internal/i18n"
)

// textLayout is the wrapped text of one note and the window of lines that
// fits in its field.
type textLayout struct {
	lines []editor.Line
	first int
	rows  int
	box   geom.Rect
	rtl   bool
	lineH int
}

func (b *Board) layoutText(v *noteView, text string) textLayout {
	box := v.layout().Content
	lh := max(1, b.theme.LineHeight)
	tl := textLayout{
		lines: editor.Wrap(text, box.W, b.measurer),
		rows:  max(1, box.H/lh),
		box:   box,
		rtl:   v.field.Direction() == i18n.RTL,
		lineH: lh,
	}
	if v.field.Editing() {
		caret := editor.LineOf(tl.lines, v.buffer.Selection().Focus)
		tl.first = max(0, caret-tl.rows+1)
	}
	tl.first = min(tl.first, max(0, len(tl.lines)-tl.rows))
	return tl
}

func (tl textLayout) visible() []editor.Line {
	end := min(len(tl.lines), tl.first+tl.rows)
	return tl.lines[tl.first:end]
}

// lineBox returns the left edge and width of line i as drawn: flush left in
// a left-to-right field, flush right otherwise.
func (b *Board) lineBox(tl textLayout, i int) (x, width int) {
	width = b.measurer.Advance(tl.lines[i].Text)
	if tl.rtl {
		return tl.box.X + tl.box.W - width, width
	}
	return tl.box.X, width
}

func (tl textLayout) lineY(i int) int {
	return tl.box.Y + (i-tl.first)*tl.lineH
}

// xOf is the screen x of byte offset pos inside line i. Offsets are measured
// from the start edge, so mixed-direction lines are approximate.
func (b *Board) xOf(tl textLayout, i, pos int) int {
	l := tl.lines[i]
	pos = min(max(pos, l.Start), l.End)
	adv := b.measurer.Advance(l.Text[:pos-l.Start])
	x, w := b.lineBox(tl, i)
	if tl.rtl {
		return x + w - adv
	}
	return x + adv
}

// caretAt maps a pointer position inside a note's text to the nearest byte
// offset between runes.
func (b *Board) caretAt(v *noteView, p geom.Point) int {
	tl := b.layoutText(v, v.field.DisplayText())
	last := min(len(tl.lines), tl.first+tl.rows) - 1
	row := tl.first + (p.Y-tl.box.Y)/tl.lineH
	row = min(max(row, tl.first), last)
	l := tl.lines[row]

	x, w := b.lineBox(tl, row)
	dx := p.X - x
	if tl.rtl {
		dx = x + w - p.X
	}
	best, bestDist := 0, abs(dx)
	for i := 0; i < len(l.Text); {
		_, size := utf8.DecodeRuneInString(l.Text[i:])
		i += size
		if d := abs(b.measurer.Advance(l.Text[:i]) - dx); d < bestDist {
			best, bestDist = i, d
		}
	}
	return l.Start + best
}

// selectionRects covers [start, end) on each visible line it touches.
func (b *Board) selectionRects(tl textLayout, start, end int) []geom.Rect {
	var out []geom.Rect
	for i := tl.first; i < min(len(tl.lines), tl.first+tl.rows); i++ {
		l := tl.lines[i]
		from, to := max(start, l.Start), min(end, l.End)
		if from > to || (from == to && !(end > l.End && i < len(tl.lines)-1)) {
			continue
		}
		x0, x1 := b.xOf(tl, i, from), b.xOf(tl, i, to)
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		// A selected line break shows as a sliver.
		if end > l.End && i < len(tl.lines)-1 {
			if tl.rtl {
				x0 -= 4
			} else {
				x1 += 4
			}
		}
		out = append(out, geom.Rect{X: x0, Y: tl.lineY(i), W: x1 - x0, H: tl.lineH})
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

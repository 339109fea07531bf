package editor

import (
	"strings"
	"unicode/utf8"
)

// Measurer reports the advance width of a string in pixels.
type Measurer interface {
	Advance(s string) int
}

// Metrics are the vertical metrics of a field.
type Metrics struct {
	LineHeight    int
	PaddingTop    int
	PaddingBottom int
}

func (m Metrics) padding() int { return m.PaddingTop + m.PaddingBottom }

// Bounds are the row limits a height is clamped to. MaxRows <= 0 means no
// upper limit.
type Bounds struct {
	MinRows int
	Metrics
	MaxRows int
}

func (b Bounds) MinHeight() int {
	return max(b.MinRows, 1)*b.LineHeight + b.padding()
}

func (b Bounds) MaxHeight() (int, bool) {
	if b.MaxRows <= 0 {
		return 0, false
	}
	return b.MaxRows*b.LineHeight + b.padding(), true
}

// ComputeHeight clamps the intrinsic content height to the row bounds.
func ComputeHeight(contentHeight int, b Bounds) int {
	h := max(contentHeight, b.MinHeight())
	if hi, ok := b.MaxHeight(); ok {
		h = min(h, hi)
	}
	return h
}

// Line is one visual line of wrapped text. Start and End are byte offsets
// into the wrapped text; Text excludes the newline that ended the line.
type Line struct {
	Start int
	End   int
	Text  string
}

// Wrap breaks text into lines no wider than width: hard breaks at '\n',
// soft breaks after spaces, and words wider than a line are split between
// runes. Empty text is one empty line.
func Wrap(text string, width int, m Measurer) []Line {
	var lines []Line
	offset := 0
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(para, offset, width, m)...)
		offset += len(para) + 1
	}
	return lines
}

func wrapParagraph(para string, offset, width int, m Measurer) []Line {
	if para == "" {
		return []Line{{Start: offset, End: offset}}
	}
	var (
		lines     []Line
		lineStart = 0
		lineEnd   = 0
	)
	flush := func() {
		lines = append(lines, Line{Start: offset + lineStart, End: offset + lineEnd, Text: para[lineStart:lineEnd]})
		lineStart = lineEnd
	}
	for _, tok := range tokens(para) {
		tokEnd := lineEnd + len(tok)
		if width <= 0 || m.Advance(para[lineStart:tokEnd]) <= width {
			lineEnd = tokEnd
			continue
		}
		if lineEnd > lineStart {
			flush()
		}
		// The token alone may still be too wide.
		for i := 0; i < len(tok); {
			_, size := utf8.DecodeRuneInString(tok[i:])
			next := lineEnd + size
			if lineEnd > lineStart && m.Advance(para[lineStart:next]) > width {
				flush()
			}
			lineEnd = next
			i += size
		}
	}
	if lineEnd > lineStart || len(lines) == 0 {
		flush()
	}
	return lines
}

// tokens splits a paragraph into words with their trailing spaces attached.
func tokens(para string) []string {
	var out []string
	start := 0
	inSpace := false
	for i, r := range para {
		if r == ' ' {
			inSpace = true
			continue
		}
		if inSpace {
			out = append(out, para[start:i])
			start = i
			inSpace = false
		}
	}
	return append(out, para[start:])
}

func ContentHeight(text string, width int, metrics Metrics, m Measurer) int {
	return len(Wrap(text, width, m))*metrics.LineHeight + metrics.padding()
}

// LineOf returns the index of the line holding byte offset pos. A caret at a
// soft break belongs to the following line.
func LineOf(lines []Line, pos int) int {
	for i, l := range lines {
		if pos < l.End || (pos == l.End && (i == len(lines)-1 || lines[i+1].Start > pos)) {
			if pos >= l.Start {
				return i
			}
		}
	}
	return len(lines) - 1
}

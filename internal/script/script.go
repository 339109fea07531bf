// Package script splits text into runs of a single script family so each run
// can be drawn with its own face.
package script

import (
	"iter"
	"slices"
	"strings"
	"unicode/utf8"
)

type Script uint8

const (
	Default Script = iota
	RTL
)

func (s Script) String() string {
	if s == RTL {
		return "rtl"
	}
	return "default"
}

// Persian/Arabic block.
const (
	rtlBlockFirst = 0x0600
	rtlBlockLast  = 0x06FF
)

type Run struct {
	Text   string
	Script Script
}

func Classify(r rune) Script {
	if r >= rtlBlockFirst && r <= rtlBlockLast {
		return RTL
	}
	return Default
}

// Segments yields the maximal same-script runs of text in order. Invalid
// UTF-8 bytes are carried through unchanged in the Default script.
func Segments(text string) iter.Seq[Run] {
	return func(yield func(Run) bool) {
		start := 0
		var current Script
		for i := 0; i < len(text); {
			r, size := utf8.DecodeRuneInString(text[i:])
			cls := Default
			if r != utf8.RuneError || size > 1 {
				cls = Classify(r)
			}
			if i > start && cls != current {
				if !yield(Run{Text: text[start:i], Script: current}) {
					return
				}
				start = i
			}
			current = cls
			i += size
		}
		if start < len(text) {
			yield(Run{Text: text[start:], Script: current})
		}
	}
}

func Segment(text string) []Run {
	return slices.Collect(Segments(text))
}

func Join(runs []Run) string {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// HasRTL reports whether any rune of text belongs to the RTL block.
func HasRTL(text string) bool {
	for _, r := range text {
		if Classify(r) == RTL {
			return true
		}
	}
	return false
}

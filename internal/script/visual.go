package script

import "slices"

// VisualOrder returns the runs of one line in the order they are placed from
// left to right. In a right-to-left paragraph the run order is reversed.
// Run text stays in logical order; the shaper lays RTL runs out right to
// left and joins their letters.
func VisualOrder(runs []Run, rtlParagraph bool) []Run {
	out := slices.Clone(runs)
	if rtlParagraph {
		slices.Reverse(out)
	}
	return out
}

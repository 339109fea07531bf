package script

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSegmentMixedScripts(t *testing.T) {
	runs := Segment("Hi سلام")
	require.Equal(t, []Run{
		{Text: "Hi ", Script: Default},
		{Text: "سلام", Script: RTL},
	}, runs)
}

func TestSegmentEdgeCases(t *testing.T) {
	assert.Empty(t, Segment(""))
	assert.Equal(t, []Run{{Text: "a", Script: Default}}, Segment("a"))
	assert.Equal(t, []Run{{Text: "س", Script: RTL}}, Segment("س"))

	runs := Segment("ab سلام cd")
	require.Len(t, runs, 3)
	assert.Equal(t, " cd", runs[2].Text)
}

func TestSegmentsIsRestartable(t *testing.T) {
	seq := Segments("one دو three")
	var first, second []Run
	for r := range seq {
		first = append(first, r)
	}
	for r := range seq {
		second = append(second, r)
	}
	assert.Equal(t, first, second)
}

func TestSegmentsStopsEarly(t *testing.T) {
	count := 0
	for range Segments("a ب c د") {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestClassifyBlockBounds(t *testing.T) {
	assert.Equal(t, RTL, Classify('؀'))
	assert.Equal(t, RTL, Classify('ۿ'))
	assert.Equal(t, Default, Classify('׿'))
	assert.Equal(t, Default, Classify('܀'))
}

func mixedText() *rapid.Generator[string] {
	return rapid.StringOf(rapid.RuneFrom([]rune{' ', '\n', '!'}, unicode.Latin, unicode.Arabic, unicode.Digit))
}

func TestSegmentRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := mixedText().Draw(t, "text")
		runs := Segment(s)
		if Join(runs) != s {
			t.Fatalf("join mismatch: %q", s)
		}
		for i, r := range runs {
			if r.Text == "" {
				t.Fatalf("empty run at %d", i)
			}
			if i > 0 && runs[i-1].Script == r.Script {
				t.Fatalf("adjacent runs %d and %d share a script", i-1, i)
			}
		}
	})
}

func TestSegmentInvalidUTF8RoundTrip(t *testing.T) {
	s := "a\xffب"
	assert.Equal(t, s, Join(Segment(s)))
}

func TestVisualOrder(t *testing.T) {
	runs := Segment("ab سلام")

	ltr := VisualOrder(runs, false)
	assert.Equal(t, []Run{{Text: "ab ", Script: Default}, {Text: "سلام", Script: RTL}}, ltr)

	rtl := VisualOrder(runs, true)
	assert.Equal(t, []Run{{Text: "سلام", Script: RTL}, {Text: "ab ", Script: Default}}, rtl)

	// input untouched
	assert.Equal(t, "ab ", runs[0].Text)
}

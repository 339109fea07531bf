package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeHeight(t *testing.T) {
	b := Bounds{MinRows: 1, MaxRows: 5, Metrics: Metrics{LineHeight: 24, PaddingTop: 4, PaddingBottom: 4}}
	assert.Equal(t, 32, ComputeHeight(0, b))
	assert.Equal(t, 80, ComputeHeight(80, b))
	assert.Equal(t, 128, ComputeHeight(1000, b))

	b.MaxRows = 0
	assert.Equal(t, 1000, ComputeHeight(1000, b))
}

func TestWrapHardAndSoftBreaks(t *testing.T) {
	lines := Wrap("aaa bbb\ncc", 50, fixedWidth(10))
	assert.Equal(t, []Line{
		{Start: 0, End: 4, Text: "aaa "},
		{Start: 4, End: 7, Text: "bbb"},
		{Start: 8, End: 10, Text: "cc"},
	}, lines)
}

func TestWrapSplitsLongWords(t *testing.T) {
	lines := Wrap("abcdefg", 30, fixedWidth(10))
	assert.Equal(t, []string{"abc", "def", "g"}, texts(lines))
}

func TestWrapEmptyAndTrailingNewline(t *testing.T) {
	assert.Len(t, Wrap("", 100, fixedWidth(10)), 1)
	lines := Wrap("a\n", 100, fixedWidth(10))
	assert.Equal(t, []string{"a", ""}, texts(lines))
}

func TestLineOf(t *testing.T) {
	lines := Wrap("aaa bbb\ncc", 50, fixedWidth(10))
	assert.Equal(t, 0, LineOf(lines, 0))
	assert.Equal(t, 1, LineOf(lines, 4))
	assert.Equal(t, 1, LineOf(lines, 7))
	assert.Equal(t, 2, LineOf(lines, 8))
	assert.Equal(t, 2, LineOf(lines, 10))
}

func TestOptionsNormalize(t *testing.T) {
	assert.Equal(t, DefaultOptions(), Options{}.Normalize())
	assert.Equal(t, Options{MinRows: 4, MaxRows: 4, MaxLength: 10}, Options{MinRows: 4, MaxRows: 2, MaxLength: 10}.Normalize())
}

func TestSanitizePasteKeepsZWNJ(t *testing.T) {
	assert.Equal(t, "می\u200cخواهم", SanitizePaste("می\u200cخواهم"))
	assert.Equal(t, "a\tb\nc", SanitizePaste("a\tb\rc"))
}

func texts(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

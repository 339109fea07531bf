package notes

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a note background written as #RRGGBB.
type Color string

const (
	Teal   Color = "#14B8A6"
	Coral  Color = "#FF9B73"
	Yellow Color = "#FFE135"
	White  Color = "#FFFFFF"

	DefaultColor = White
)

// Palette is the swatch order shown on every note.
var Palette = []Color{Teal, Coral, Yellow, White}

func (c Color) Valid() bool {
	_, err := c.RGBA()
	return err == nil
}

func (c Color) RGBA() (color.RGBA, error) {
	s := string(c)
	if len(s) != 7 || !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("notes: malformed color %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("notes: malformed color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// Package render rasterizes the board's flat shapes into an RGBA buffer that
// the shell uploads once per frame. Text is drawn separately.
package render

import (
	"image/color"

	"notetab/internal/geom"
)

type FrameBuffer struct {
	W      int
	H      int
	Pixels []uint8 // RGBA, row-major
}

func NewFrameBuffer(w, h int) *FrameBuffer {
	fb := &FrameBuffer{}
	fb.Resize(w, h)
	return fb
}

// Resize reallocates only when the dimensions change.
func (fb *FrameBuffer) Resize(w, h int) {
	w, h = max(1, w), max(1, h)
	if fb.W == w && fb.H == h && fb.Pixels != nil {
		return
	}
	fb.W, fb.H = w, h
	fb.Pixels = make([]uint8, w*h*4)
}

func (fb *FrameBuffer) Clear(c color.RGBA) {
	for i := 0; i < len(fb.Pixels); i += 4 {
		fb.set(i, c)
	}
}

// At returns the pixel at (x, y), or transparent outside the buffer.
func (fb *FrameBuffer) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= fb.W || y >= fb.H {
		return color.RGBA{}
	}
	i := (y*fb.W + x) * 4
	return color.RGBA{R: fb.Pixels[i], G: fb.Pixels[i+1], B: fb.Pixels[i+2], A: fb.Pixels[i+3]}
}

func (fb *FrameBuffer) FillRect(r geom.Rect, c color.RGBA) {
	x0, y0 := max(0, r.X), max(0, r.Y)
	x1, y1 := min(fb.W, r.X+r.W), min(fb.H, r.Y+r.H)
	for y := y0; y < y1; y++ {
		row := y * fb.W
		for x := x0; x < x1; x++ {
			fb.blend((row+x)*4, c)
		}
	}
}

func (fb *FrameBuffer) StrokeRect(r geom.Rect, line int, c color.RGBA) {
	line = max(1, line)
	fb.FillRect(geom.Rect{X: r.X, Y: r.Y, W: r.W, H: line}, c)
	fb.FillRect(geom.Rect{X: r.X, Y: r.Y + r.H - line, W: r.W, H: line}, c)
	fb.FillRect(geom.Rect{X: r.X, Y: r.Y + line, W: line, H: r.H - 2*line}, c)
	fb.FillRect(geom.Rect{X: r.X + r.W - line, Y: r.Y + line, W: line, H: r.H - 2*line}, c)
}

// FillCircle fills the disc inscribed in r.
func (fb *FrameBuffer) FillCircle(r geom.Rect, c color.RGBA) {
	fb.disc(r, 0, c)
}

// StrokeCircle draws a ring of the given width inscribed in r.
func (fb *FrameBuffer) StrokeCircle(r geom.Rect, line int, c color.RGBA) {
	fb.disc(r, max(1, line), c)
}

// disc works in doubled coordinates so pixel centers land on integers.
func (fb *FrameBuffer) disc(r geom.Rect, ring int, c color.RGBA) {
	d := min(r.W, r.H)
	if d <= 0 {
		return
	}
	cx, cy := 2*r.X+d, 2*r.Y+d
	outer := d * d
	inner := -1
	if ring > 0 && 2*ring < d {
		in := d - 2*ring
		inner = in * in
	}
	x0, y0 := max(0, r.X), max(0, r.Y)
	x1, y1 := min(fb.W, r.X+d), min(fb.H, r.Y+d)
	for y := y0; y < y1; y++ {
		dy := 2*y + 1 - cy
		for x := x0; x < x1; x++ {
			dx := 2*x + 1 - cx
			dist := dx*dx + dy*dy
			if dist > outer || dist < inner {
				continue
			}
			fb.blend((y*fb.W+x)*4, c)
		}
	}
}

func (fb *FrameBuffer) set(i int, c color.RGBA) {
	fb.Pixels[i+0] = c.R
	fb.Pixels[i+1] = c.G
	fb.Pixels[i+2] = c.B
	fb.Pixels[i+3] = c.A
}

// blend composites straight-alpha c over the pixel at i.
func (fb *FrameBuffer) blend(i int, c color.RGBA) {
	switch c.A {
	case 0xff:
		fb.set(i, c)
		return
	case 0:
		return
	}
	a := uint32(c.A)
	inv := 0xff - a
	mix := func(src uint8, dst uint8) uint8 {
		return uint8((uint32(src)*a + uint32(dst)*inv + 0x7f) / 0xff)
	}
	fb.Pixels[i+0] = mix(c.R, fb.Pixels[i+0])
	fb.Pixels[i+1] = mix(c.G, fb.Pixels[i+1])
	fb.Pixels[i+2] = mix(c.B, fb.Pixels[i+2])
	fb.Pixels[i+3] = uint8(min(0xff, a+uint32(fb.Pixels[i+3])*inv/0xff))
}

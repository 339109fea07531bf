package render

import (
	"image/color"
	"testing"

	"notetab/internal/geom"
)

var (
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black = color.RGBA{A: 0xff}
)

func TestFillRectClipsToBuffer(t *testing.T) {
	fb := NewFrameBuffer(4, 3)
	fb.FillRect(geom.Rect{X: -2, Y: 1, W: 4, H: 10}, white)

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			want := y >= 1 && x < 2
			if got := fb.At(x, y) == white; got != want {
				t.Fatalf("pixel (%d,%d) filled=%v want %v", x, y, got, want)
			}
		}
	}
}

func TestFillRectEmptyIsNoop(t *testing.T) {
	fb := NewFrameBuffer(2, 2)
	fb.FillRect(geom.Rect{X: 0, Y: 0, W: 0, H: 2}, white)
	fb.FillRect(geom.Rect{X: 5, Y: 5, W: 2, H: 2}, white)
	for i, v := range fb.Pixels {
		if v != 0 {
			t.Fatalf("byte %d = %d after empty fills", i, v)
		}
	}
}

func TestStrokeRectLeavesInteriorUntouched(t *testing.T) {
	fb := NewFrameBuffer(5, 5)
	fb.Clear(black)
	fb.StrokeRect(geom.Rect{W: 5, H: 5}, 1, white)

	if fb.At(0, 0) != white || fb.At(4, 4) != white || fb.At(0, 2) != white {
		t.Fatalf("border not drawn")
	}
	if fb.At(2, 2) != black {
		t.Fatalf("interior changed: %v", fb.At(2, 2))
	}
}

func TestFillCircle(t *testing.T) {
	fb := NewFrameBuffer(10, 10)
	fb.FillCircle(geom.Rect{W: 10, H: 10}, white)

	if fb.At(5, 5) != white {
		t.Fatalf("center not filled")
	}
	if fb.At(0, 0) == white || fb.At(9, 9) == white {
		t.Fatalf("corners should stay outside the disc")
	}
	if fb.At(0, 5) != white || fb.At(9, 4) != white {
		t.Fatalf("disc should touch the edges at mid height")
	}
}

func TestStrokeCircleIsRing(t *testing.T) {
	fb := NewFrameBuffer(24, 24)
	fb.StrokeCircle(geom.Rect{W: 24, H: 24}, 2, white)
	if fb.At(12, 12) == white {
		t.Fatalf("ring interior filled")
	}
	if fb.At(0, 12) != white {
		t.Fatalf("ring edge missing")
	}
}

func TestBlendHalfAlpha(t *testing.T) {
	fb := NewFrameBuffer(1, 1)
	fb.Clear(black)
	fb.FillRect(geom.Rect{W: 1, H: 1}, color.RGBA{R: 0xff, A: 0x80})

	got := fb.At(0, 0)
	if got.R < 0x7f || got.R > 0x81 || got.G != 0 || got.A != 0xff {
		t.Fatalf("blend = %+v", got)
	}
}

func TestResizeKeepsBufferWhenUnchanged(t *testing.T) {
	fb := NewFrameBuffer(0, -3)
	if fb.W != 1 || fb.H != 1 {
		t.Fatalf("size = %dx%d, want 1x1", fb.W, fb.H)
	}
	fb.Resize(3, 2)
	fb.Clear(white)
	fb.Resize(3, 2)
	if fb.At(2, 1) != white {
		t.Fatalf("same-size resize dropped pixels")
	}
	fb.Resize(4, 2)
	if len(fb.Pixels) != 4*2*4 {
		t.Fatalf("pixels = %d", len(fb.Pixels))
	}
}

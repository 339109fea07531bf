package app

import (
	"bytes"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/text/language"

	"notetab/internal/fonts"
	"notetab/internal/script"
)

// shaper shapes Persian runs so letters join and flow right to left. Latin
// runs keep the Go font faces of the bank.
type shaper struct {
	source *text.GoTextFaceSource
	faces  map[int]*text.GoTextFace
	xfaces map[font.Face]*text.GoXFace
}

func newShaper(ttf []byte) (*shaper, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("load persian face source: %w", err)
	}
	return &shaper{
		source: src,
		faces:  map[int]*text.GoTextFace{},
		xfaces: map[font.Face]*text.GoXFace{},
	}, nil
}

func (s *shaper) rtlFace(size float64) *text.GoTextFace {
	key := int(math.Round(size * 64))
	if f, ok := s.faces[key]; ok {
		return f
	}
	f := &text.GoTextFace{
		Source:    s.source,
		Direction: text.DirectionRightToLeft,
		Size:      size,
		Language:  language.Persian,
	}
	s.faces[key] = f
	return f
}

func (s *shaper) RTLAdvance(str string, size float64) float64 {
	return text.Advance(str, s.rtlFace(size))
}

// face is what run r is drawn with at m's size and weight.
func (s *shaper) face(m fonts.Measurer, r script.Run) text.Face {
	if r.Script == script.RTL {
		return s.rtlFace(m.Size())
	}
	xf := m.RunFace(r)
	if f, ok := s.xfaces[xf]; ok {
		return f
	}
	f := text.NewGoXFace(xf)
	s.xfaces[xf] = f
	return f
}

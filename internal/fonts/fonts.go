// Package fonts loads the faces the board draws with and measures text the
// same way it is drawn: run by run, each run in the face for its script.
package fonts

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"notetab/internal/script"
)

//go:embed assets/NotoSansArabic-Regular.ttf
var notoSansArabic []byte

type faceKey struct {
	persian bool
	bold    bool
	size    int // in 1/64 pt
}

// Shaper measures right-to-left text after shaping, so joined letters are
// measured the way they are drawn.
type Shaper interface {
	RTLAdvance(s string, size float64) float64
}

type Bank struct {
	regular    *opentype.Font
	bold       *opentype.Font
	persian    *opentype.Font
	persianTTF []byte
	shaper     Shaper
	cache      map[faceKey]font.Face
	log        *zap.Logger
}

// NewBank parses the Go fonts and the Persian font for RTL runs: the file at
// persianPath when it loads, the bundled Noto Sans Arabic otherwise.
func NewBank(persianPath string, log *zap.Logger) (*Bank, error) {
	if log == nil {
		log = zap.NewNop()
	}
	b := &Bank{cache: map[faceKey]font.Face{}, log: log}
	var err error
	if b.regular, err = opentype.Parse(goregular.TTF); err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	if b.bold, err = opentype.Parse(gobold.TTF); err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	if persianPath != "" {
		data, f, err := loadFont(persianPath)
		if err == nil {
			b.persianTTF, b.persian = data, f
			return b, nil
		}
		log.Warn("persian font unavailable, using bundled font", zap.String("path", persianPath), zap.Error(err))
	}
	if b.persian, err = opentype.Parse(notoSansArabic); err != nil {
		return nil, fmt.Errorf("parse bundled persian font: %w", err)
	}
	b.persianTTF = notoSansArabic
	return b, nil
}

func loadFont(path string) ([]byte, *opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, nil, err
	}
	return data, f, nil
}

// PersianTTF is the raw font RTL runs are drawn with.
func (b *Bank) PersianTTF() []byte { return b.persianTTF }

// SetShaper makes every measurer of the bank measure RTL runs shaped.
func (b *Bank) SetShaper(s Shaper) { b.shaper = s }

func (b *Bank) HasPersian() bool { return b.persian != nil }

// Face returns a cached face of size points for runs of script s.
func (b *Bank) Face(s script.Script, size float64, bold bool) font.Face {
	key := faceKey{
		persian: s == script.RTL && b.persian != nil,
		bold:    bold,
		size:    int(math.Round(size * 64)),
	}
	if f, ok := b.cache[key]; ok {
		return f
	}
	base := b.regular
	switch {
	case key.persian:
		base = b.persian
	case bold:
		base = b.bold
	}
	face, err := opentype.NewFace(base, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		b.log.Warn("font face creation failed", zap.Float64("size", size), zap.Error(err))
		return basicfont.Face7x13
	}
	b.cache[key] = face
	return face
}

// MeasureString is the advance of s in whole pixels.
func MeasureString(face font.Face, s string) int {
	if face == nil || s == "" {
		return 0
	}
	return max(0, (int(font.MeasureString(face, s))+32)>>6)
}

// Measurer measures mixed-script text in one size and weight.
type Measurer struct {
	bank *Bank
	size float64
	bold bool
}

func (b *Bank) Measurer(size float64, bold bool) Measurer {
	return Measurer{bank: b, size: size, bold: bold}
}

func (m Measurer) Size() float64 { return m.size }

func (m Measurer) Advance(s string) int {
	w := 0
	for run := range script.Segments(s) {
		w += m.RunAdvance(run)
	}
	return w
}

// RunAdvance is the width of one run as drawn.
func (m Measurer) RunAdvance(r script.Run) int {
	if r.Script == script.RTL && m.bank.shaper != nil {
		return max(0, int(math.Round(m.bank.shaper.RTLAdvance(r.Text, m.size))))
	}
	return MeasureString(m.RunFace(r), r.Text)
}

// RunFace is the face a run is drawn with.
func (m Measurer) RunFace(r script.Run) font.Face {
	return m.bank.Face(r.Script, m.size, m.bold)
}

// Baseline returns the y of the baseline that vertically centers a line of
// height lineHeight whose top is at top.
func (m Measurer) Baseline(top, lineHeight int) int {
	metrics := m.bank.Face(script.Default, m.size, m.bold).Metrics()
	ascent, descent := metrics.Ascent.Round(), metrics.Descent.Round()
	return top + (lineHeight+ascent-descent)/2
}

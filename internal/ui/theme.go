// Package ui holds the board's look: colors, metrics, where every control
// sits, and how flat shapes are painted into a frame buffer.
package ui

import (
	"image/color"

	"notetab/internal/notes"
)

type Theme struct {
	Background  color.RGBA
	Text        color.RGBA
	MutedText   color.RGBA
	Placeholder color.RGBA
	Icon        color.RGBA
	Border      color.RGBA
	Primary     color.RGBA
	PrimarySoft color.RGBA
	Overlay     color.RGBA
	Panel       color.RGBA
	Caret       color.RGBA
	Selection   color.RGBA
	Danger      color.RGBA

	NoteWidth      int
	NoteHeight     int
	NotePadding    int
	NoteBorder     int
	LineHeight     int
	SwatchSize     int
	SwatchGap      int
	ControlInset   int
	DeleteSize     int
	AddButtonSize  int
	AddButtonInset int
	HeaderMaxWidth int
	TitleHeight    int
	HeaderGap      int
	IconSize       int
	ModalMaxWidth  int
	ModalPadding   int
	ModalTitleH    int
	ModalGap       int
	OptionHeight   int
	OptionGap      int
	FooterHeight   int
	CloseWidth     int
	CaretWidth     int
}

func DefaultTheme() Theme {
	return Theme{
		Background:  color.RGBA{0xFA, 0xFA, 0xFA, 0xFF},
		Text:        color.RGBA{0x27, 0x27, 0x2A, 0xFF},
		MutedText:   color.RGBA{0x4F, 0x4F, 0x4F, 0xFF},
		Placeholder: color.RGBA{0x27, 0x27, 0x2A, 0x80},
		Icon:        color.RGBA{0x52, 0x52, 0x5B, 0xCC},
		Border:      color.RGBA{0x27, 0x27, 0x2A, 0x14},
		Primary:     color.RGBA{0xEA, 0x58, 0x0C, 0xFF},
		PrimarySoft: color.RGBA{0xEA, 0x58, 0x0C, 0x0D},
		Overlay:     color.RGBA{0x00, 0x00, 0x00, 0x26},
		Panel:       color.RGBA{0xFF, 0xFF, 0xFF, 0xCC},
		Caret:       color.RGBA{0x27, 0x27, 0x2A, 0xFF},
		Selection:   color.RGBA{0x3B, 0x82, 0xF6, 0x4D},
		Danger:      color.RGBA{0xDC, 0x26, 0x26, 0xFF},

		NoteWidth:      350,
		NoteHeight:     350,
		NotePadding:    30,
		NoteBorder:     2,
		LineHeight:     24,
		SwatchSize:     24,
		SwatchGap:      8,
		ControlInset:   16,
		DeleteSize:     24,
		AddButtonSize:  44,
		AddButtonInset: 32,
		HeaderMaxWidth: 1152,
		TitleHeight:    35,
		HeaderGap:      30,
		IconSize:       20,
		ModalMaxWidth:  400,
		ModalPadding:   24,
		ModalTitleH:    35,
		ModalGap:       25,
		OptionHeight:   60,
		OptionGap:      15,
		FooterHeight:   48,
		CloseWidth:     96,
		CaretWidth:     2,
	}
}

// SwatchColors returns the fill and ring of a palette swatch. White is shown
// as a faint grey disc so it stays visible on a white note.
func SwatchColors(c notes.Color) (fill, ring color.RGBA) {
	if c == notes.White {
		return color.RGBA{0x27, 0x27, 0x2A, 0x0D}, color.RGBA{0x00, 0x00, 0x00, 0x33}
	}
	rgba, err := c.RGBA()
	if err != nil {
		return color.RGBA{}, color.RGBA{}
	}
	fill = rgba
	fill.A = 0x80
	return fill, rgba
}

// NoteFill is the background of a note; unknown colors fall back to white.
func NoteFill(c notes.Color) color.RGBA {
	rgba, err := c.RGBA()
	if err != nil {
		rgba, _ = notes.DefaultColor.RGBA()
	}
	return rgba
}

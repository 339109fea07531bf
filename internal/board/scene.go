package board

import (
	"go.uber.org/zap"

	"notetab/internal/editor"
	"notetab/internal/geom"
	"notetab/internal/i18n"
	"notetab/internal/modal"
	"notetab/internal/notes"
	"notetab/internal/script"
	"notetab/internal/ui"
)

type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// Label is a piece of interface text. Runs are in drawing order, left to
// right; the shell measures them with its own face and aligns them in Rect.
type Label struct {
	Text  string
	Runs  []script.Run
	Rect  geom.Rect
	Align Align
}

// TextLine is one line of note text, already positioned with the board's
// measurer.
type TextLine struct {
	Origin geom.Point
	Width  int
	Runs   []script.Run
}

type NoteScene struct {
	ID          string
	Layout      ui.NoteLayout
	Color       notes.Color
	Focused     bool
	Dragging    bool
	Lines       []TextLine
	Placeholder bool
	Caret       *geom.Point
	Selection   []geom.Rect
}

type LocaleOption struct {
	Language i18n.Language
	Label    Label
	Current  bool
}

type ModalScene struct {
	Kind     modal.Kind
	Layout   ui.ModalLayout
	Title    Label
	Options  []LocaleOption
	Selected int
	Footnote Label
	Close    Label
}

// Scene is everything the shell draws for one frame, back to front.
type Scene struct {
	Viewport  geom.Size
	Direction i18n.Direction
	Title     Label
	Language  geom.Rect
	AddButton geom.Rect
	Empty     *Label
	Notes     []NoteScene
	Modal     *ModalScene
}

func (b *Board) startAlign() Align {
	if b.Direction() == i18n.RTL {
		return AlignRight
	}
	return AlignLeft
}

func (b *Board) label(key string, r geom.Rect, align Align) Label {
	text := b.Translate(key)
	return Label{
		Text:  text,
		Runs:  script.VisualOrder(script.Segment(text), b.Direction() == i18n.RTL),
		Rect:  r,
		Align: align,
	}
}

func (b *Board) Scene() Scene {
	dir := b.Direction()
	vl := b.theme.LayoutViewport(b.viewport, dir)
	s := Scene{
		Viewport:  b.viewport,
		Direction: dir,
		Title:     b.label("app.name", vl.Title, b.startAlign()),
		Language:  vl.Language,
		AddButton: vl.AddButton,
	}
	if !b.hasNotes {
		empty := b.label("note.empty", vl.Empty, b.startAlign())
		s.Empty = &empty
	}
	for _, n := range b.notes.Notes() {
		if v, ok := b.views[n.ID]; ok {
			s.Notes = append(s.Notes, b.noteScene(n, v))
		}
	}
	if b.modal.IsOpenFor(modal.LocaleSwitcher) {
		m := b.localeScene()
		s.Modal = &m
	}
	return s
}

func (b *Board) noteScene(n notes.Note, v *noteView) NoteScene {
	ns := NoteScene{
		ID:          n.ID,
		Layout:      v.layout(),
		Color:       n.Color,
		Focused:     v.field.Editing(),
		Dragging:    v.surface.Dragging(),
		Placeholder: v.field.ShowsPlaceholder(),
	}

	display := v.field.DisplayText()
	text := display
	if ns.Placeholder {
		text = v.field.Placeholder()
	}
	tl := b.layoutText(v, text)
	for i := tl.first; i < tl.first+len(tl.visible()); i++ {
		x, w := b.lineBox(tl, i)
		ns.Lines = append(ns.Lines, TextLine{
			Origin: geom.Point{X: x, Y: tl.lineY(i)},
			Width:  w,
			Runs:   script.VisualOrder(script.Segment(tl.lines[i].Text), tl.rtl),
		})
	}

	if !ns.Focused {
		return ns
	}
	if ns.Placeholder {
		tl = b.layoutText(v, display)
	}
	sel := v.buffer.Selection()
	caretLine := editor.LineOf(tl.lines, sel.Focus)
	caret := geom.Point{X: b.xOf(tl, caretLine, sel.Focus), Y: tl.lineY(caretLine)}
	ns.Caret = &caret
	if !sel.Collapsed() {
		start, end := sel.Ordered()
		ns.Selection = b.selectionRects(tl, start, end)
	}
	return ns
}

func (b *Board) localeOptions() []LocaleOption {
	keys := map[i18n.Language]string{
		i18n.English: "localeSwitcher.english",
		i18n.Persian: "localeSwitcher.persian",
	}
	opts := make([]LocaleOption, 0, len(i18n.Supported))
	for _, lang := range i18n.Supported {
		opts = append(opts, LocaleOption{
			Language: lang,
			Label:    b.label(keys[lang], geom.Rect{}, b.startAlign()),
			Current:  lang == b.lang,
		})
	}
	return opts
}

func (b *Board) localeScene() ModalScene {
	dir := b.Direction()
	opts := b.localeOptions()
	ml := b.theme.LayoutModal(b.viewport, dir, len(opts))
	m := ModalScene{
		Kind:     modal.LocaleSwitcher,
		Layout:   ml,
		Title:    b.label("localeSwitcher.title", ml.Title, b.startAlign()),
		Selected: -1,
		Footnote: b.label("localeSwitcher.moreLanguagesComingSoon", ml.Footnote, endAlign(dir)),
		Close:    b.label("localeSwitcher.close", ml.Close, AlignCenter),
	}
	for i := range opts {
		opts[i].Label.Rect = b.theme.OptionLabel(ml.Options[i], dir)
		if opts[i].Current {
			m.Selected = i
		}
	}
	m.Options = opts
	return m
}

func endAlign(dir i18n.Direction) Align {
	if dir == i18n.RTL {
		return AlignLeft
	}
	return AlignRight
}

// pressModal handles a press while the locale switcher is open. A press
// outside the panel dismisses it.
func (b *Board) pressModal(p geom.Point) {
	opts := b.localeOptions()
	ml := b.theme.LayoutModal(b.viewport, b.Direction(), len(opts))
	switch {
	case ml.Close.ContainsPoint(p), !ml.Panel.ContainsPoint(p):
		b.modal.Close()
		return
	}
	for i, r := range ml.Options {
		if !r.ContainsPoint(p) {
			continue
		}
		if err := b.ChooseLanguage(opts[i].Language); err != nil {
			b.log.Warn("saving language failed", zap.Error(err))
		}
		return
	}
}

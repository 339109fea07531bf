// Package board ties the notes, their drag surfaces and text fields, the
// locale switcher and the interface language into one controller. It knows
// nothing about ebiten: the shell feeds it platform events and draws the
// Scene it returns.
package board

import (
	"slices"

	"go.uber.org/zap"

	"notetab/internal/clip"
	"notetab/internal/editor"
	"notetab/internal/geom"
	"notetab/internal/i18n"
	"notetab/internal/modal"
	"notetab/internal/notes"
	"notetab/internal/platform"
	"notetab/internal/ui"
)

type Board struct {
	theme    ui.Theme
	log      *zap.Logger
	tr       *i18n.Translator
	prefs    *i18n.Preferences
	measurer editor.Measurer
	clip     clip.Clipboard
	editOpts editor.Options

	hub      *platform.Hub
	modal    *modal.Store
	notes    *notes.Collection
	views    map[string]*noteView
	lang     i18n.Language
	viewport geom.Size
	hasNotes bool
	focused  string
	idGen    notes.IDGenerator

	// selectCancels holds the hub subscriptions of a mouse text selection.
	selectCancels []func()
}

type Option func(*Board)

func WithTheme(t ui.Theme) Option { return func(b *Board) { b.theme = t } }

func WithLogger(log *zap.Logger) Option {
	return func(b *Board) {
		if log != nil {
			b.log = log
		}
	}
}

func WithClipboard(c clip.Clipboard) Option { return func(b *Board) { b.clip = c } }

func WithEditorOptions(o editor.Options) Option {
	return func(b *Board) { b.editOpts = o.Normalize() }
}

func WithViewport(size geom.Size) Option { return func(b *Board) { b.viewport = size } }

// WithLanguage overrides the stored preference for this session without
// writing it back.
func WithLanguage(lang i18n.Language) Option { return func(b *Board) { b.lang = lang } }

func WithIDGenerator(gen notes.IDGenerator) Option {
	return func(b *Board) { b.idGen = gen }
}

func New(tr *i18n.Translator, prefs *i18n.Preferences, m editor.Measurer, opts ...Option) *Board {
	b := &Board{
		theme:    ui.DefaultTheme(),
		log:      zap.NewNop(),
		tr:       tr,
		prefs:    prefs,
		measurer: m,
		clip:     clip.Memory(),
		editOpts: editor.DefaultOptions(),
		hub:      platform.NewHub(),
		modal:    modal.NewStore(),
		views:    map[string]*noteView{},
		viewport: geom.Size{W: 1280, H: 800},
	}
	for _, opt := range opts {
		opt(b)
	}
	collOpts := []notes.Option{notes.WithObserver(b), notes.WithLogger(b.log)}
	if b.idGen != nil {
		collOpts = append(collOpts, notes.WithIDGenerator(b.idGen))
	}
	b.notes = notes.NewCollection(collOpts...)
	if b.lang == "" {
		b.lang = prefs.Language()
	}
	return b
}

// NotesChanged keeps the empty-state flag current.
func (b *Board) NotesChanged(hasNotes bool) { b.hasNotes = hasNotes }

func (b *Board) Language() i18n.Language     { return b.lang }
func (b *Board) Direction() i18n.Direction   { return b.lang.Direction() }
func (b *Board) Viewport() geom.Size         { return b.viewport }
func (b *Board) Notes() []notes.Note         { return b.notes.Notes() }
func (b *Board) HasNotes() bool              { return b.hasNotes }
func (b *Board) Modal() modal.Controller     { return b.modal }
func (b *Board) Focused() string             { return b.focused }
func (b *Board) Hub() *platform.Hub          { return b.hub }
func (b *Board) Translate(key string) string { return b.tr.Translate(key, b.lang) }

// AddNote places a new empty note and returns it.
func (b *Board) AddNote() notes.Note {
	n := b.notes.Add(b.viewport, b.theme.NoteSize())
	v := newNoteView(b, n)
	b.views[n.ID] = v
	b.sync()
	return n
}

// DeleteNote removes a note and releases everything its view holds.
func (b *Board) DeleteNote(id string) {
	if v, ok := b.views[id]; ok {
		v.close()
		delete(b.views, id)
	}
	if b.focused == id {
		b.endSelection()
		b.focused = ""
	}
	b.notes.Delete(id)
}

func (b *Board) RecolorNote(id string, c notes.Color) {
	b.notes.UpdateColor(id, c)
}

// Focus starts editing the note's text and ends editing everywhere else.
func (b *Board) Focus(id string) {
	if b.focused == id {
		return
	}
	b.Blur()
	if v, ok := b.views[id]; ok {
		v.field.Focus()
		b.focused = id
	}
}

func (b *Board) Blur() {
	b.endSelection()
	if v, ok := b.views[b.focused]; ok {
		v.field.Blur()
	}
	b.focused = ""
	b.sync()
}

// Resize records the new viewport and pulls every note back inside it.
func (b *Board) Resize(w, h int) {
	b.viewport = geom.Size{W: max(0, w), H: max(0, h)}
	for _, n := range b.notes.Notes() {
		v, ok := b.views[n.ID]
		if !ok {
			continue
		}
		v.surface.SetOrigin(n.Position)
		b.notes.Move(n.ID, v.surface.Origin())
	}
}

// SetLanguage switches the interface language for this session.
func (b *Board) SetLanguage(lang i18n.Language) {
	if lang == b.lang {
		return
	}
	b.lang = lang
	b.log.Info("language applied", zap.String("language", string(lang)))
	b.sync()
}

// ChooseLanguage persists lang and applies it. Choosing the current language
// does nothing.
func (b *Board) ChooseLanguage(lang i18n.Language) error {
	if lang == b.lang {
		return nil
	}
	if err := b.prefs.SetLanguage(lang); err != nil {
		return err
	}
	b.SetLanguage(lang)
	b.modal.Close()
	return nil
}

// Paste inserts clipboard text into the focused note.
func (b *Board) Paste(text string) {
	v, ok := b.views[b.focused]
	if !ok || b.modal.IsOpen() {
		return
	}
	v.field.OnPaste(text)
	b.sync()
}

// HandleEvent applies one input event. It reports whether anything that
// affects drawing may have changed.
func (b *Board) HandleEvent(ev platform.Event) bool {
	switch ev.Type {
	case platform.EventResize:
		b.Resize(ev.Width, ev.Height)
	case platform.EventMouseDown:
		b.press(ev.Pos())
	case platform.EventMouseMove, platform.EventMouseUp:
		if b.hub.Dispatch(ev) == 0 {
			return false
		}
	case platform.EventTextInput:
		if b.modal.IsOpen() {
			return false
		}
		v, ok := b.views[b.focused]
		if !ok {
			return false
		}
		v.field.TypeRune(ev.Rune)
	case platform.EventKeyDown:
		if !b.key(ev.Key, ev.Mods) {
			return false
		}
	default:
		return false
	}
	b.sync()
	return true
}

func (b *Board) press(p geom.Point) {
	if b.modal.IsOpen() {
		b.pressModal(p)
		return
	}
	vl := b.theme.LayoutViewport(b.viewport, b.Direction())
	switch {
	case vl.AddButton.ContainsPoint(p):
		b.AddNote()
		return
	case vl.Language.ContainsPoint(p):
		b.Blur()
		b.modal.Open(modal.LocaleSwitcher)
		return
	}

	id, ok := b.noteAt(p)
	if !ok {
		b.Blur()
		return
	}
	b.notes.BringToFront(id)
	v := b.views[id]
	nl := v.layout()
	if i := slices.IndexFunc(nl.Swatches, func(r geom.Rect) bool { return r.ContainsPoint(p) }); i >= 0 {
		b.RecolorNote(id, notes.Palette[i])
		return
	}
	if nl.Delete.ContainsPoint(p) {
		b.DeleteNote(id)
		return
	}
	if nl.Content.ContainsPoint(p) {
		b.Focus(id)
		b.beginSelection(v, p)
		return
	}
	b.Blur()
	v.surface.Press(p)
}

// noteAt returns the topmost note under p.
func (b *Board) noteAt(p geom.Point) (string, bool) {
	all := b.notes.Notes()
	for i := len(all) - 1; i >= 0; i-- {
		if v, ok := b.views[all[i].ID]; ok && v.surface.Bounds().ContainsPoint(p) {
			return all[i].ID, true
		}
	}
	return "", false
}

func (b *Board) key(key string, mods platform.Modifiers) bool {
	if b.modal.IsOpen() {
		if key == platform.KeyEscape {
			b.modal.Close()
			return true
		}
		return false
	}
	v, ok := b.views[b.focused]
	if !ok {
		return false
	}
	switch key {
	case platform.KeyCopy, platform.KeyCut:
		sel := editor.SelectedText(v.buffer.Text(), v.buffer.Selection())
		if sel == "" {
			return false
		}
		if err := b.clip.WriteText(sel); err != nil {
			b.log.Warn("clipboard write failed", zap.Error(err))
			return false
		}
		if key == platform.KeyCut {
			v.field.OnKey(platform.KeyBackspace, 0)
		}
		return true
	case platform.KeyPaste:
		text, err := b.clip.ReadText()
		if err != nil {
			b.log.Warn("clipboard read failed", zap.Error(err))
			return false
		}
		v.field.OnPaste(text)
		return true
	}
	handled := v.field.OnKey(key, mods)
	if handled && !v.field.Editing() {
		b.endSelection()
		b.focused = ""
	}
	return handled
}

func (b *Board) beginSelection(v *noteView, p geom.Point) {
	b.endSelection()
	v.buffer.SetCaret(b.caretAt(v, p))
	b.selectCancels = append(b.selectCancels,
		b.hub.Subscribe(platform.EventMouseMove, func(ev platform.Event) {
			sel := v.buffer.Selection()
			sel.Focus = b.caretAt(v, ev.Pos())
			v.buffer.Select(sel)
		}),
		b.hub.Subscribe(platform.EventMouseUp, func(platform.Event) { b.endSelection() }),
	)
}

func (b *Board) endSelection() {
	for _, cancel := range b.selectCancels {
		cancel()
	}
	b.selectCancels = nil
}

// sync pushes committed values, the translated placeholder and the text
// direction into every field and recomputes their heights.
func (b *Board) sync() {
	placeholder := b.Translate("note.placeholder")
	dir := b.Direction()
	for _, n := range b.notes.Notes() {
		v, ok := b.views[n.ID]
		if !ok {
			continue
		}
		v.field.SetDirection(dir)
		v.field.Render(n.Content, placeholder, b.editOpts)
		v.field.Relayout(b.theme.ContentWidth(), b.metrics(), b.measurer)
	}
}

func (b *Board) metrics() editor.Metrics {
	return editor.Metrics{LineHeight: b.theme.LineHeight}
}

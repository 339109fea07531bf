package editor

import (
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"notetab/internal/i18n"
	"notetab/internal/platform"
)

// Optional owner hooks.
type (
	ChangeListener interface{ TextChanged(value string) }
	ContainerSizer interface{ ContainerResized(height int) }
)

// Field is an auto-sizing plain-text input bound to an external value. The
// surface holds what the user sees while the value is what has been committed
// through OnInput. While the field is being edited external value changes do
// not touch the surface.
type Field struct {
	surface     Surface
	owner       any
	log         *zap.Logger
	value       string
	placeholder string
	opts        Options
	dir         i18n.Direction
	editing     bool
	height      int
}

type FieldOption func(*Field)

func WithOwner(owner any) FieldOption {
	return func(f *Field) { f.owner = owner }
}

func WithLogger(log *zap.Logger) FieldOption {
	return func(f *Field) {
		if log != nil {
			f.log = log
		}
	}
}

func NewField(surface Surface, opts ...FieldOption) *Field {
	if surface == nil {
		surface = NewBuffer("")
	}
	f := &Field{
		surface: surface,
		log:     zap.NewNop(),
		opts:    DefaultOptions(),
		dir:     i18n.LTR,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Render binds the field to the current external value.
func (f *Field) Render(value, placeholder string, opts Options) {
	f.value = value
	f.placeholder = placeholder
	f.opts = opts.Normalize()
	if !f.editing {
		f.syncSurface()
	}
}

func (f *Field) Value() string             { return f.value }
func (f *Field) Placeholder() string       { return f.placeholder }
func (f *Field) Options() Options          { return f.opts }
func (f *Field) Editing() bool             { return f.editing }
func (f *Field) Height() int               { return f.height }
func (f *Field) Surface() Surface          { return f.surface }
func (f *Field) Direction() i18n.Direction { return f.dir }

func (f *Field) SetDirection(d i18n.Direction) { f.dir = d }

// ShowsPlaceholder reports whether the placeholder is drawn instead of text.
func (f *Field) ShowsPlaceholder() bool {
	return strings.TrimSpace(f.DisplayText()) == ""
}

// DisplayText is what the surface shows: the in-progress text while editing,
// the committed value otherwise.
func (f *Field) DisplayText() string {
	if f.editing {
		return f.surface.Text()
	}
	return f.value
}

// OnInput commits raw as the new value. Text over MaxLength is cut, the surface
// is rewritten and the caret is put at the end of the kept text.
func (f *Field) OnInput(raw string) {
	limit := f.opts.MaxLength
	units := CodeUnits(raw)
	if units <= limit {
		f.commit(raw)
		return
	}
	truncated := TruncateUnits(raw, limit)
	f.log.Debug("input truncated",
		zap.Int("max_length", limit),
		zap.Int("dropped_units", units-CodeUnits(truncated)))
	f.commit(truncated)
	f.surface.SetText(truncated)
	f.surface.Select(Caret(len(truncated)))
}

// OnPaste inserts the plain-text form of clip at the caret.
func (f *Field) OnPaste(clip string) {
	clip = SanitizePaste(clip)
	if clip == "" {
		return
	}
	f.insert(clip)
}

func (f *Field) Focus() { f.editing = true }

// Blur ends editing and shows the committed value again.
func (f *Field) Blur() {
	if !f.editing {
		return
	}
	f.editing = false
	f.syncSurface()
}

// OnKey applies an editing key and reports whether it was consumed. Enter
// and Shift+Enter insert a line break; Ctrl or Alt+Enter ends editing.
func (f *Field) OnKey(key string, mods platform.Modifiers) bool {
	if !f.editing {
		return false
	}
	word := mods.Has(platform.ModCtrl) || mods.Has(platform.ModAlt)
	extend := mods.Has(platform.ModShift)
	text, sel := f.surface.Text(), f.surface.Selection()

	switch key {
	case platform.KeyEnter:
		if word {
			f.Blur()
			return true
		}
		f.insert("\n")
	case platform.KeyTab:
		f.insert("\t")
	case platform.KeyBackspace:
		if word {
			f.edit(DeleteWordBackward(text, sel))
		} else {
			f.edit(Backspace(text, sel))
		}
	case platform.KeyDelete:
		if word {
			f.edit(DeleteWordForward(text, sel))
		} else {
			f.edit(DeleteForward(text, sel))
		}
	case platform.KeyLeft, platform.KeyRight:
		f.surface.Select(f.horizontal(key, text, sel, word, extend))
	case platform.KeyHome:
		f.surface.Select(MoveLineStart(text, sel, extend))
	case platform.KeyEnd:
		f.surface.Select(MoveLineEnd(text, sel, extend))
	case platform.KeySelectAll:
		f.surface.Select(SelectAll(text))
	case platform.KeyEscape:
		f.Blur()
	default:
		return false
	}
	return true
}

// TypeRune inserts a typed character at the caret.
func (f *Field) TypeRune(r rune) {
	if !f.editing || r < 0x20 || r == 0x7F || !utf8.ValidRune(r) {
		return
	}
	f.insert(string(r))
}

// Relayout recomputes the field height for the given text width and pushes
// it to the owning container.
func (f *Field) Relayout(width int, metrics Metrics, m Measurer) int {
	content := ContentHeight(f.DisplayText(), width, metrics, m)
	f.height = ComputeHeight(content, Bounds{MinRows: f.opts.MinRows, MaxRows: f.opts.MaxRows, Metrics: metrics})
	if s, ok := f.owner.(ContainerSizer); ok {
		s.ContainerResized(f.height)
	}
	return f.height
}

// horizontal maps arrow keys to logical movement. In a right-to-left field
// the left arrow moves forward through the text.
func (f *Field) horizontal(key, text string, sel Selection, word, extend bool) Selection {
	forward := key == platform.KeyRight
	if f.dir == i18n.RTL {
		forward = !forward
	}
	switch {
	case forward && word:
		return MoveWordRight(text, sel, extend)
	case forward:
		return MoveRight(text, sel, extend)
	case word:
		return MoveWordLeft(text, sel, extend)
	default:
		return MoveLeft(text, sel, extend)
	}
}

func (f *Field) insert(s string) {
	f.edit(InsertText(f.surface.Text(), f.surface.Selection(), s))
}

func (f *Field) edit(text string, sel Selection) {
	f.surface.SetText(text)
	f.surface.Select(sel)
	f.OnInput(text)
}

func (f *Field) commit(v string) {
	f.value = v
	if l, ok := f.owner.(ChangeListener); ok {
		l.TextChanged(v)
	}
}

func (f *Field) syncSurface() {
	if f.surface.Text() != f.value {
		f.surface.SetText(f.value)
		f.surface.Select(Caret(len(f.value)))
	}
}

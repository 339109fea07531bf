package platform

import "notetab/internal/geom"

type WindowConfig struct {
	Title       string
	WidthPx     int
	HeightPx    int
	MinWidthPx  int
	MinHeightPx int
}

type EventType int

const (
	EventUnknown EventType = iota
	EventClose
	EventResize
	EventKeyDown
	EventTextInput
	EventMouseMove
	EventMouseDown
	EventMouseUp
)

func (t EventType) String() string {
	switch t {
	case EventClose:
		return "close"
	case EventResize:
		return "resize"
	case EventKeyDown:
		return "key_down"
	case EventTextInput:
		return "text_input"
	case EventMouseMove:
		return "mouse_move"
	case EventMouseDown:
		return "mouse_down"
	case EventMouseUp:
		return "mouse_up"
	default:
		return "unknown"
	}
}

type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
)

func (m Modifiers) Has(mod Modifiers) bool { return m&mod != 0 }

// Key names carried by EventKeyDown.
const (
	KeyEnter     = "Enter"
	KeyBackspace = "Backspace"
	KeyDelete    = "Delete"
	KeyLeft      = "Left"
	KeyRight     = "Right"
	KeyArrowUp   = "Up"
	KeyArrowDown = "Down"
	KeyHome      = "Home"
	KeyEnd       = "End"
	KeyEscape    = "Escape"
	KeyTab       = "Tab"
	KeySelectAll = "SelectAll"
	KeyCopy      = "Copy"
	KeyCut       = "Cut"
	KeyPaste     = "Paste"
)

type Event struct {
	Type   EventType
	Width  int
	Height int
	Rune   rune
	X      int
	Y      int
	Key    string
	Mods   Modifiers
}

func (e Event) Pos() geom.Point { return geom.Point{X: e.X, Y: e.Y} }

func MouseDown(x, y int) Event { return Event{Type: EventMouseDown, X: x, Y: y} }
func MouseMove(x, y int) Event { return Event{Type: EventMouseMove, X: x, Y: y} }
func MouseUp(x, y int) Event   { return Event{Type: EventMouseUp, X: x, Y: y} }

func KeyDown(key string, mods Modifiers) Event {
	return Event{Type: EventKeyDown, Key: key, Mods: mods}
}

func TextInput(r rune) Event { return Event{Type: EventTextInput, Rune: r} }

func Resize(w, h int) Event { return Event{Type: EventResize, Width: w, Height: h} }

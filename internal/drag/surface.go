// Package drag implements press-move-release dragging of a rectangular surface
// inside the viewport.
package drag

import (
	"go.uber.org/zap"

	"notetab/internal/geom"
	"notetab/internal/platform"
)

type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Optional hooks. An owner implements whichever it cares about.
type (
	StartListener interface{ DragStarted() }
	MoveListener  interface{ DragMoved(origin geom.Point) }
	EndListener   interface{ DragEnded() }
)

// Viewport reports the current viewport size.
type Viewport interface {
	ViewportSize() geom.Size
}

type ViewportFunc func() geom.Size

func (f ViewportFunc) ViewportSize() geom.Size { return f() }

type Surface struct {
	hub      *platform.Hub
	viewport Viewport
	owner    any
	log      *zap.Logger

	origin geom.Point
	size   geom.Size
	state  State
	grab   geom.Point

	cancels   []func()
	closed    bool
	hasOrigin bool
}

type Option func(*Surface)

// WithOrigin places the surface at p (clamped). Without it the surface is
// centered in the viewport.
func WithOrigin(p geom.Point) Option {
	return func(s *Surface) {
		s.origin = p
		s.hasOrigin = true
	}
}

func WithOwner(owner any) Option {
	return func(s *Surface) { s.owner = owner }
}

func WithLogger(log *zap.Logger) Option {
	return func(s *Surface) {
		if log != nil {
			s.log = log
		}
	}
}

func NewSurface(hub *platform.Hub, viewport Viewport, size geom.Size, opts ...Option) *Surface {
	s := &Surface{
		hub:      hub,
		viewport: viewport,
		size:     size,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.hasOrigin {
		s.origin = Clamp(s.origin, size, viewport.ViewportSize())
	} else {
		s.origin = Center(size, viewport.ViewportSize())
	}
	return s
}

func (s *Surface) Origin() geom.Point { return s.origin }
func (s *Surface) Size() geom.Size    { return s.size }
func (s *Surface) State() State       { return s.state }
func (s *Surface) Dragging() bool     { return s.state == Dragging }
func (s *Surface) Bounds() geom.Rect  { return geom.RectAt(s.origin, s.size) }

// SetOrigin moves the surface outside of a drag, e.g. after a viewport resize.
func (s *Surface) SetOrigin(p geom.Point) {
	s.origin = Clamp(p, s.size, s.viewport.ViewportSize())
}

func (s *Surface) SetSize(size geom.Size) {
	s.size = size
	s.origin = Clamp(s.origin, s.size, s.viewport.ViewportSize())
}

// Press starts a drag at pointer p. The returned bool asks the caller to
// suppress the default action for the press (text selection, native drag).
func (s *Surface) Press(p geom.Point) bool {
	if s.closed || s.state == Dragging {
		return s.state == Dragging
	}
	s.grab = p.Sub(s.origin)
	s.state = Dragging
	s.cancels = append(s.cancels,
		s.hub.Subscribe(platform.EventMouseMove, func(ev platform.Event) { s.move(ev.Pos()) }),
		s.hub.Subscribe(platform.EventMouseUp, func(platform.Event) { s.release() }),
	)
	if l, ok := s.owner.(StartListener); ok {
		l.DragStarted()
	}
	s.log.Debug("drag started",
		zap.Int("x", s.origin.X), zap.Int("y", s.origin.Y),
		zap.Int("grab_x", s.grab.X), zap.Int("grab_y", s.grab.Y))
	return true
}

// Move is the handler behind the viewport-level move subscription; it is
// exported for callers that deliver pointer moves directly. Moves while idle
// are ignored.
func (s *Surface) Move(p geom.Point) { s.move(p) }

// Release ends an active drag. Releases while idle are ignored.
func (s *Surface) Release() { s.release() }

func (s *Surface) move(p geom.Point) {
	if s.state != Dragging {
		return
	}
	next := Clamp(p.Sub(s.grab), s.size, s.viewport.ViewportSize())
	if next == s.origin {
		return
	}
	s.origin = next
	if l, ok := s.owner.(MoveListener); ok {
		l.DragMoved(next)
	}
}

func (s *Surface) release() {
	if s.state != Dragging {
		return
	}
	s.state = Idle
	s.detach()
	if l, ok := s.owner.(EndListener); ok {
		l.DragEnded()
	}
	s.log.Debug("drag ended", zap.Int("x", s.origin.X), zap.Int("y", s.origin.Y))
}

// Close tears the surface down. Any drag in progress is abandoned without
// calling DragEnded and every viewport subscription is released.
func (s *Surface) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.state = Idle
	s.detach()
}

func (s *Surface) detach() {
	for _, cancel := range s.cancels {
		cancel()
	}
	s.cancels = s.cancels[:0]
}

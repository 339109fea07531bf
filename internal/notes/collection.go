// Package notes keeps the ordered set of sticky notes on the board. Order is
// z-order: the last note is drawn on top.
package notes

import (
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"notetab/internal/drag"
	"notetab/internal/geom"
)

// Offset is applied to a new note when the default spot is taken.
const (
	Offset             = 30
	ProximityThreshold = 50
)

type Note struct {
	ID       string
	Content  string
	Position geom.Point
	Color    Color
}

// MembershipObserver is told whether the collection has any notes after
// every add or delete.
type MembershipObserver interface {
	NotesChanged(hasNotes bool)
}

type IDGenerator func() (string, error)

func uuidV7() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

type Collection struct {
	notes    []Note
	newID    IDGenerator
	observer MembershipObserver
	log      *zap.Logger
}

type Option func(*Collection)

func WithIDGenerator(gen IDGenerator) Option {
	return func(c *Collection) { c.newID = gen }
}

func WithObserver(o MembershipObserver) Option {
	return func(c *Collection) { c.observer = o }
}

func WithLogger(log *zap.Logger) Option {
	return func(c *Collection) { c.log = log }
}

func NewCollection(opts ...Option) *Collection {
	c := &Collection{newID: uuidV7, log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DefaultPosition centers a note of noteSize in viewport.
func DefaultPosition(viewport, noteSize geom.Size) geom.Point {
	return geom.Point{X: (viewport.W - noteSize.W) / 2, Y: (viewport.H - noteSize.H) / 2}
}

// Add appends an empty white note at the front. It is centered in the
// viewport, shifted by Offset on both axes when another note already sits
// near the center, and kept inside the viewport.
func (c *Collection) Add(viewport, noteSize geom.Size) Note {
	pos := DefaultPosition(viewport, noteSize)
	if c.occupied(pos) {
		pos = pos.Add(geom.Point{X: Offset, Y: Offset})
	}
	pos = drag.Clamp(pos, noteSize, viewport)

	note := Note{ID: c.generateID(), Position: pos, Color: DefaultColor}
	c.notes = append(c.notes, note)
	c.log.Debug("note added", zap.String("id", note.ID), zap.Int("x", pos.X), zap.Int("y", pos.Y))
	c.notify()
	return note
}

func (c *Collection) occupied(p geom.Point) bool {
	return slices.ContainsFunc(c.notes, func(n Note) bool {
		return abs(n.Position.X-p.X) < ProximityThreshold && abs(n.Position.Y-p.Y) < ProximityThreshold
	})
}

func (c *Collection) generateID() string {
	for range 3 {
		id, err := c.newID()
		if err != nil {
			c.log.Warn("note id generation failed", zap.Error(err))
			continue
		}
		if c.index(id) < 0 {
			return id
		}
	}
	return uuid.NewString()
}

func (c *Collection) UpdateContent(id, content string) {
	if i := c.index(id); i >= 0 {
		c.notes[i].Content = content
	}
}

func (c *Collection) UpdateColor(id string, color Color) {
	if i := c.index(id); i >= 0 {
		c.notes[i].Color = color
	}
}

func (c *Collection) Move(id string, p geom.Point) {
	if i := c.index(id); i >= 0 {
		c.notes[i].Position = p
	}
}

// Delete removes the note. Unknown ids are ignored.
func (c *Collection) Delete(id string) {
	i := c.index(id)
	if i < 0 {
		return
	}
	c.notes = slices.Delete(c.notes, i, i+1)
	c.log.Debug("note deleted", zap.String("id", id))
	c.notify()
}

// BringToFront moves the note to the end of the order. It reports whether
// the order changed.
func (c *Collection) BringToFront(id string) bool {
	i := c.index(id)
	if i < 0 || i == len(c.notes)-1 {
		return false
	}
	n := c.notes[i]
	c.notes = append(slices.Delete(c.notes, i, i+1), n)
	return true
}

// Notes returns a copy in z-order, back to front.
func (c *Collection) Notes() []Note { return slices.Clone(c.notes) }

func (c *Collection) Get(id string) (Note, bool) {
	if i := c.index(id); i >= 0 {
		return c.notes[i], true
	}
	return Note{}, false
}

func (c *Collection) Len() int       { return len(c.notes) }
func (c *Collection) HasNotes() bool { return len(c.notes) > 0 }

func (c *Collection) Front() (Note, bool) {
	if len(c.notes) == 0 {
		return Note{}, false
	}
	return c.notes[len(c.notes)-1], true
}

func (c *Collection) index(id string) int {
	return slices.IndexFunc(c.notes, func(n Note) bool { return n.ID == id })
}

func (c *Collection) notify() {
	if c.observer != nil {
		c.observer.NotesChanged(len(c.notes) > 0)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

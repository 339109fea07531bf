package board

import (
	"go.uber.org/zap"

	"notetab/internal/drag"
	"notetab/internal/editor"
	"notetab/internal/geom"
	"notetab/internal/notes"
	"notetab/internal/ui"
)

// noteView is the on-screen half of a note: the surface it is dragged by and
// the field its text is edited in. It receives their callbacks and writes
// the results back into the collection.
type noteView struct {
	b       *Board
	id      string
	surface *drag.Surface
	field   *editor.Field
	buffer  *editor.Buffer
	height  int
}

func newNoteView(b *Board, n notes.Note) *noteView {
	v := &noteView{b: b, id: n.ID, buffer: editor.NewBuffer(n.Content)}
	log := b.log.With(zap.String("note", n.ID))
	v.surface = drag.NewSurface(b.hub, drag.ViewportFunc(func() geom.Size { return b.viewport }), b.theme.NoteSize(),
		drag.WithOrigin(n.Position), drag.WithOwner(v), drag.WithLogger(log))
	v.field = editor.NewField(v.buffer, editor.WithOwner(v), editor.WithLogger(log))
	return v
}

func (v *noteView) DragStarted()                { v.b.notes.BringToFront(v.id) }
func (v *noteView) DragMoved(origin geom.Point) { v.b.notes.Move(v.id, origin) }
func (v *noteView) TextChanged(value string)    { v.b.notes.UpdateContent(v.id, value) }
func (v *noteView) ContainerResized(h int)      { v.height = h }

func (v *noteView) layout() ui.NoteLayout {
	return v.b.theme.LayoutNote(v.surface.Origin(), v.height, len(notes.Palette))
}

func (v *noteView) close() {
	v.field.Blur()
	v.surface.Close()
}

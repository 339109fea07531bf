package board

import (
	"fmt"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notetab/internal/clip"
	"notetab/internal/editor"
	"notetab/internal/geom"
	"notetab/internal/i18n"
	"notetab/internal/notes"
	"notetab/internal/platform"
)

type fixedWidth int

func (w fixedWidth) Advance(s string) int { return utf8.RuneCountInString(s) * int(w) }

type fixture struct {
	board *Board
	prefs *i18n.Preferences
	store *i18n.MemoryStore
	clip  *clip.MemoryClipboard
}

func newFixture(t *testing.T, opts ...Option) fixture {
	t.Helper()
	tr, err := i18n.NewTranslator(nil)
	require.NoError(t, err)
	store := i18n.NewMemoryStore()
	prefs := i18n.NewPreferences(store, nil)
	cb := clip.Memory()
	n := 0
	base := []Option{
		WithViewport(geom.Size{W: 1000, H: 800}),
		WithClipboard(cb),
		WithIDGenerator(func() (string, error) {
			n++
			return fmt.Sprintf("n%d", n), nil
		}),
	}
	b := New(tr, prefs, fixedWidth(10), append(base, opts...)...)
	return fixture{board: b, prefs: prefs, store: store, clip: cb}
}

func (f fixture) click(x, y int) {
	f.board.HandleEvent(platform.MouseDown(x, y))
	f.board.HandleEvent(platform.MouseUp(x, y))
}

func (f fixture) typeText(s string) {
	for _, r := range s {
		f.board.HandleEvent(platform.TextInput(r))
	}
}

func (f fixture) note(t *testing.T, id string) notes.Note {
	t.Helper()
	for _, n := range f.board.Notes() {
		if n.ID == id {
			return n
		}
	}
	t.Fatalf("note %s not found", id)
	return notes.Note{}
}

func order(b *Board) []string {
	var out []string
	for _, n := range b.Notes() {
		out = append(out, n.ID)
	}
	return out
}

func TestEmptyBoardShowsPlaceholder(t *testing.T) {
	f := newFixture(t)
	s := f.board.Scene()
	require.NotNil(t, s.Empty)
	assert.Equal(t, f.board.Translate("note.empty"), s.Empty.Text)
	assert.Empty(t, s.Notes)
	assert.Equal(t, i18n.LTR, s.Direction)
	assert.Equal(t, AlignLeft, s.Title.Align)
}

func TestAddButtonCreatesOffsetNotes(t *testing.T) {
	f := newFixture(t)
	f.click(946, 746)
	f.click(946, 746)

	require.Equal(t, []string{"n1", "n2"}, order(f.board))
	assert.Equal(t, geom.Point{X: 325, Y: 225}, f.note(t, "n1").Position)
	assert.Equal(t, geom.Point{X: 355, Y: 255}, f.note(t, "n2").Position)
	assert.True(t, f.board.HasNotes())
	assert.Nil(t, f.board.Scene().Empty)
}

func TestDragClampsToViewport(t *testing.T) {
	f := newFixture(t)
	f.board.AddNote()

	f.board.HandleEvent(platform.MouseDown(335, 235))
	f.board.HandleEvent(platform.MouseMove(110, 110))
	f.board.HandleEvent(platform.MouseUp(110, 110))
	require.Equal(t, geom.Point{X: 100, Y: 100}, f.note(t, "n1").Position)
	assert.Equal(t, 0, f.board.Hub().Len())

	f.board.HandleEvent(platform.MouseDown(110, 110))
	assert.Equal(t, 2, f.board.Hub().Len())
	f.board.HandleEvent(platform.MouseMove(110-500, 110-500))
	f.board.HandleEvent(platform.MouseUp(110-500, 110-500))

	assert.Equal(t, geom.Point{}, f.note(t, "n1").Position)
	assert.Equal(t, 0, f.board.Hub().Len())
}

func TestDragPromotesToFront(t *testing.T) {
	f := newFixture(t)
	f.board.AddNote()
	f.board.AddNote()

	f.board.HandleEvent(platform.MouseDown(330, 230))
	assert.Equal(t, []string{"n2", "n1"}, order(f.board))
	f.board.HandleEvent(platform.MouseUp(330, 230))
}

func TestPressHitsTopmostNote(t *testing.T) {
	f := newFixture(t)
	f.board.AddNote()
	f.board.AddNote()

	// Inside both notes; n2 is on top and must be the one dragged.
	f.board.HandleEvent(platform.MouseDown(365, 265))
	f.board.HandleEvent(platform.MouseMove(375, 265))
	f.board.HandleEvent(platform.MouseUp(375, 265))

	assert.Equal(t, geom.Point{X: 325, Y: 225}, f.note(t, "n1").Position)
	assert.Equal(t, geom.Point{X: 365, Y: 255}, f.note(t, "n2").Position)
}

func TestIdleMovesAreIgnored(t *testing.T) {
	f := newFixture(t)
	f.board.AddNote()
	assert.False(t, f.board.HandleEvent(platform.MouseMove(10, 10)))
	assert.False(t, f.board.HandleEvent(platform.MouseUp(10, 10)))
}

func TestSwatchRecolors(t *testing.T) {
	f := newFixture(t)
	f.board.AddNote()
	f.click(353, 547)
	assert.Equal(t, notes.Teal, f.note(t, "n1").Color)

	f.click(353+3*32, 547)
	assert.Equal(t, notes.White, f.note(t, "n1").Color)
	assert.Equal(t, []string{"n1"}, order(f.board))
}

func TestPressOnControlsPromotesNote(t *testing.T) {
	f := newFixture(t)
	f.board.AddNote()
	f.board.AddNote()
	require.Equal(t, []string{"n1", "n2"}, order(f.board))

	// n1's first swatch lies left of n2.
	f.click(353, 547)
	assert.Equal(t, notes.Teal, f.note(t, "n1").Color)
	assert.Equal(t, []string{"n2", "n1"}, order(f.board))
}

func TestDeleteButtonRemovesNote(t *testing.T) {
	f := newFixture(t)
	f.board.AddNote()
	f.click(647, 547)

	assert.Empty(t, f.board.Notes())
	assert.False(t, f.board.HasNotes())
	assert.Empty(t, f.board.views)
	assert.NotNil(t, f.board.Scene().Empty)
}

func TestDeleteDuringDragReleasesListeners(t *testing.T) {
	f := newFixture(t)
	n := f.board.AddNote()
	f.board.HandleEvent(platform.MouseDown(335, 235))
	require.Equal(t, 2, f.board.Hub().Len())

	f.board.DeleteNote(n.ID)
	assert.Equal(t, 0, f.board.Hub().Len())
	assert.False(t, f.board.HandleEvent(platform.MouseMove(0, 0)))
}

func focusFirst(f fixture) {
	f.board.AddNote()
	f.click(360, 395)
}

func TestTypingUpdatesContent(t *testing.T) {
	f := newFixture(t)
	focusFirst(f)
	require.Equal(t, "n1", f.board.Focused())

	f.typeText("Hi")
	f.board.HandleEvent(platform.KeyDown(platform.KeyEnter, 0))
	f.typeText("سلام")
	assert.Equal(t, "Hi\nسلام", f.note(t, "n1").Content)

	s := f.board.Scene()
	require.Len(t, s.Notes, 1)
	ns := s.Notes[0]
	assert.True(t, ns.Focused)
	assert.False(t, ns.Placeholder)
	require.Len(t, ns.Lines, 2)
	require.NotNil(t, ns.Caret)
	assert.Equal(t, ns.Lines[1].Origin.Y, ns.Caret.Y)
	assert.Equal(t, ns.Lines[1].Origin.X+40, ns.Caret.X)
	assert.Equal(t, 48, ns.Layout.Content.H)
}

func TestShiftEnterKeepsEditing(t *testing.T) {
	f := newFixture(t)
	focusFirst(f)
	f.typeText("ab")
	f.board.HandleEvent(platform.KeyDown(platform.KeyEnter, platform.ModShift))
	f.typeText("cd")

	assert.Equal(t, "ab\ncd", f.note(t, "n1").Content)
	assert.Equal(t, "n1", f.board.Focused())

	f.board.HandleEvent(platform.KeyDown(platform.KeyEnter, platform.ModCtrl))
	assert.Empty(t, f.board.Focused())
}

func TestEscapeBlurs(t *testing.T) {
	f := newFixture(t)
	focusFirst(f)
	f.typeText("x")
	f.board.HandleEvent(platform.KeyDown(platform.KeyEscape, 0))
	assert.Empty(t, f.board.Focused())
	assert.False(t, f.board.HandleEvent(platform.TextInput('y')))
	assert.Equal(t, "x", f.note(t, "n1").Content)
}

func TestClickOnCanvasBlurs(t *testing.T) {
	f := newFixture(t)
	focusFirst(f)
	f.click(900, 50)
	assert.Empty(t, f.board.Focused())
}

func TestMaxLengthTruncates(t *testing.T) {
	f := newFixture(t, WithEditorOptions(editor.Options{MinRows: 1, MaxRows: 5, MaxLength: 5}))
	focusFirst(f)
	f.typeText("abcdefg")
	assert.Equal(t, "abcde", f.note(t, "n1").Content)

	f.board.Paste("xyz")
	assert.Equal(t, "abcde", f.note(t, "n1").Content)
}

func TestPasteSanitizes(t *testing.T) {
	f := newFixture(t)
	focusFirst(f)
	f.board.Paste("a\x00b\r\nc")
	assert.Equal(t, "ab\nc", f.note(t, "n1").Content)
}

func TestPasteWithoutFocusIsIgnored(t *testing.T) {
	f := newFixture(t)
	f.board.AddNote()
	f.board.Paste("hello")
	assert.Empty(t, f.note(t, "n1").Content)
}

func TestClipboardKeys(t *testing.T) {
	f := newFixture(t)
	focusFirst(f)
	f.typeText("copy me")

	f.board.HandleEvent(platform.KeyDown(platform.KeySelectAll, 0))
	assert.True(t, f.board.HandleEvent(platform.KeyDown(platform.KeyCopy, 0)))
	got, _ := f.clip.ReadText()
	assert.Equal(t, "copy me", got)

	f.board.HandleEvent(platform.KeyDown(platform.KeyCut, 0))
	assert.Empty(t, f.note(t, "n1").Content)

	require.NoError(t, f.clip.WriteText("pasted"))
	f.board.HandleEvent(platform.KeyDown(platform.KeyPaste, platform.ModCtrl))
	assert.Equal(t, "pasted", f.note(t, "n1").Content)
}

func TestMouseSelection(t *testing.T) {
	f := newFixture(t)
	focusFirst(f)
	f.typeText("abcdef")

	s := f.board.Scene()
	content := s.Notes[0].Layout.Content
	y := content.Y + 5
	f.board.HandleEvent(platform.MouseDown(content.X+10, y))
	f.board.HandleEvent(platform.MouseMove(content.X+40, y))
	f.board.HandleEvent(platform.MouseUp(content.X+40, y))

	v := f.board.views["n1"]
	assert.Equal(t, "bcd", editor.SelectedText(v.buffer.Text(), v.buffer.Selection()))
	require.Len(t, f.board.Scene().Notes[0].Selection, 1)
	assert.Equal(t, 30, f.board.Scene().Notes[0].Selection[0].W)
	assert.Equal(t, 0, f.board.Hub().Len())
}

func TestPlaceholderShownForBlankNote(t *testing.T) {
	f := newFixture(t)
	f.board.AddNote()
	ns := f.board.Scene().Notes[0]
	assert.True(t, ns.Placeholder)
	require.Len(t, ns.Lines, 1)
	assert.Nil(t, ns.Caret)
}

func TestLocaleSwitcher(t *testing.T) {
	f := newFixture(t)
	f.click(15, 432)
	require.True(t, f.board.Modal().IsOpen())

	m := f.board.Scene().Modal
	require.NotNil(t, m)
	require.Len(t, m.Options, 2)
	assert.Equal(t, 0, m.Selected)
	assert.Equal(t, "English", m.Options[0].Label.Text)
	assert.Equal(t, "Persian", m.Options[1].Label.Text)

	// The current language is not re-applied.
	f.click(400, 390)
	assert.True(t, f.board.Modal().IsOpen())

	f.click(590, 390)
	assert.False(t, f.board.Modal().IsOpen())
	assert.Equal(t, i18n.Persian, f.board.Language())
	assert.Equal(t, i18n.Persian, f.prefs.Language())

	s := f.board.Scene()
	assert.Equal(t, i18n.RTL, s.Direction)
	assert.Equal(t, AlignRight, s.Title.Align)
	assert.Equal(t, f.board.Translate("app.name"), s.Title.Text)
}

func TestLocaleLabelsFollowLanguage(t *testing.T) {
	f := newFixture(t, WithLanguage(i18n.Persian))
	f.board.Modal().Open("locale_switcher")
	m := f.board.Scene().Modal
	require.NotNil(t, m)
	assert.Equal(t, "انگلیسی", m.Options[0].Label.Text)
	assert.Equal(t, "فارسی", m.Options[1].Label.Text)
	assert.Equal(t, 1, m.Selected)
	assert.Greater(t, m.Options[0].Label.Rect.X, m.Options[1].Label.Rect.X)
	_, stored, _ := f.store.Get(i18n.LanguageKey)
	assert.False(t, stored, "override is not persisted")
}

func TestModalDismissal(t *testing.T) {
	f := newFixture(t)
	f.board.Modal().Open("locale_switcher")
	f.click(10, 10)
	assert.False(t, f.board.Modal().IsOpen())

	f.board.Modal().Open("locale_switcher")
	f.click(600, 470)
	assert.False(t, f.board.Modal().IsOpen())

	f.board.Modal().Open("locale_switcher")
	f.board.HandleEvent(platform.KeyDown(platform.KeyEscape, 0))
	assert.False(t, f.board.Modal().IsOpen())
	assert.Equal(t, i18n.English, f.board.Language())
}

func TestModalBlocksBoard(t *testing.T) {
	f := newFixture(t)
	focusFirst(f)
	f.board.Modal().Open("locale_switcher")
	assert.False(t, f.board.HandleEvent(platform.TextInput('z')))
	f.click(946, 746)
	assert.Len(t, f.board.Notes(), 1)
}

func TestStoredLanguageIsUsed(t *testing.T) {
	tr, err := i18n.NewTranslator(nil)
	require.NoError(t, err)
	store := i18n.NewMemoryStore()
	require.NoError(t, store.Set(i18n.LanguageKey, "fa"))
	b := New(tr, i18n.NewPreferences(store, nil), fixedWidth(10))
	assert.Equal(t, i18n.Persian, b.Language())
	assert.Equal(t, i18n.RTL, b.Direction())
}

func TestResizeReclampsNotes(t *testing.T) {
	f := newFixture(t)
	f.board.AddNote()
	f.board.HandleEvent(platform.Resize(400, 400))
	assert.Equal(t, geom.Point{X: 50, Y: 50}, f.note(t, "n1").Position)
	assert.Equal(t, geom.Size{W: 400, H: 400}, f.board.Viewport())
}

func TestRTLCaretStartsAtRightEdge(t *testing.T) {
	f := newFixture(t, WithLanguage(i18n.Persian))
	focusFirst(f)
	ns := f.board.Scene().Notes[0]
	require.NotNil(t, ns.Caret)
	assert.Equal(t, ns.Layout.Content.X+ns.Layout.Content.W, ns.Caret.X)

	f.typeText("سلام")
	ns = f.board.Scene().Notes[0]
	require.Len(t, ns.Lines, 1)
	assert.Equal(t, ns.Layout.Content.X+ns.Layout.Content.W-40, ns.Lines[0].Origin.X)
	assert.Equal(t, ns.Lines[0].Origin.X, ns.Caret.X)
}

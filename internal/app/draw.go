package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"notetab/internal/board"
	"notetab/internal/fonts"
	"notetab/internal/geom"
	"notetab/internal/render"
	"notetab/internal/script"
)

// The caret is shown for caretOn of every caretPeriod ticks.
const (
	caretPeriod = 60
	caretOn     = 36
)

func (a *App) Draw(screen *ebiten.Image) {
	scene := a.board.Scene()
	w, h := scene.Viewport.W, scene.Viewport.H

	if a.frameBuffer == nil {
		a.frameBuffer = render.NewFrameBuffer(w, h)
	}
	a.frameBuffer.Resize(w, h)
	if a.canvas == nil || a.canvas.Bounds().Dx() != a.frameBuffer.W || a.canvas.Bounds().Dy() != a.frameBuffer.H {
		if a.canvas != nil {
			a.canvas.Deallocate()
		}
		a.canvas = ebiten.NewImage(a.frameBuffer.W, a.frameBuffer.H)
	}

	a.theme.PaintBackground(a.frameBuffer)
	a.theme.PaintGlobe(a.frameBuffer, scene.Language, a.theme.Icon)
	a.theme.PaintAddButton(a.frameBuffer, scene.AddButton)
	a.canvas.WritePixels(a.frameBuffer.Pixels)
	screen.DrawImage(a.canvas, nil)

	title := a.fonts.Measurer(titleFontSize, true)
	a.drawLabel(screen, scene.Title, title, a.theme.Text)
	if scene.Empty != nil {
		a.drawLabel(screen, *scene.Empty, a.fonts.Measurer(labelFontSize, false), a.theme.MutedText)
	}

	for _, ns := range scene.Notes {
		a.drawNote(screen, ns)
	}
	if scene.Modal != nil {
		a.drawModal(screen, *scene.Modal, w, h)
	}

	if a.cfg.IsDevelopment() {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.0f fps  %d notes", ebiten.ActualFPS(), len(scene.Notes)), 4, h-16)
	}
}

// drawNote paints one note into its own layer so later notes cover both
// the body and the text of earlier ones.
func (a *App) drawNote(screen *ebiten.Image, ns board.NoteScene) {
	frame := ns.Layout.Frame
	layer, ok := a.noteLayers[ns.ID]
	if !ok {
		layer = &noteLayer{fb: render.NewFrameBuffer(frame.W, frame.H)}
		layer.img = ebiten.NewImage(layer.fb.W, layer.fb.H)
		a.noteLayers[ns.ID] = layer
	}

	shift := frame.Origin()
	local := ns.Layout
	local.Frame = toLocal(local.Frame, shift)
	local.Content = toLocal(local.Content, shift)
	local.Delete = toLocal(local.Delete, shift)
	local.Swatches = make([]geom.Rect, len(ns.Layout.Swatches))
	for i, r := range ns.Layout.Swatches {
		local.Swatches[i] = toLocal(r, shift)
	}

	layer.fb.Clear(color.RGBA{})
	a.theme.PaintNote(layer.fb, local, ns.Color, ns.Focused)
	if len(ns.Selection) > 0 {
		rects := make([]geom.Rect, len(ns.Selection))
		for i, r := range ns.Selection {
			rects[i] = toLocal(r, shift)
		}
		a.theme.PaintSelection(layer.fb, rects)
	}
	if ns.Caret != nil && a.frameTick%caretPeriod < caretOn {
		a.theme.PaintCaret(layer.fb, ns.Caret.Sub(shift))
	}
	layer.img.WritePixels(layer.fb.Pixels)

	clr := a.theme.Text
	if ns.Placeholder {
		clr = a.theme.Placeholder
	}
	for _, line := range ns.Lines {
		at := line.Origin.Sub(shift)
		a.drawRuns(layer.img, line.Runs, a.text, at.X, a.text.Baseline(at.Y, a.theme.LineHeight), clr)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(frame.X), float64(frame.Y))
	screen.DrawImage(layer.img, op)
}

func (a *App) drawModal(screen *ebiten.Image, m board.ModalScene, w, h int) {
	if a.overlayFB == nil {
		a.overlayFB = render.NewFrameBuffer(w, h)
	}
	a.overlayFB.Resize(w, h)
	if a.overlay == nil || a.overlay.Bounds().Dx() != a.overlayFB.W || a.overlay.Bounds().Dy() != a.overlayFB.H {
		if a.overlay != nil {
			a.overlay.Deallocate()
		}
		a.overlay = ebiten.NewImage(a.overlayFB.W, a.overlayFB.H)
	}
	a.overlayFB.Clear(color.RGBA{})
	a.theme.PaintModal(a.overlayFB, m.Layout, m.Selected)
	a.overlay.WritePixels(a.overlayFB.Pixels)
	screen.DrawImage(a.overlay, nil)

	label := a.fonts.Measurer(labelFontSize, false)
	a.drawLabel(screen, m.Title, a.fonts.Measurer(labelFontSize, true), a.theme.Text)
	for i, opt := range m.Options {
		clr := a.theme.Text
		if i == m.Selected {
			clr = a.theme.Primary
		}
		a.drawLabel(screen, opt.Label, label, clr)
	}
	small := a.fonts.Measurer(smallFontSize, false)
	a.drawLabel(screen, m.Footnote, small, a.theme.MutedText)
	a.drawLabel(screen, m.Close, label, a.theme.Text)
}

// drawLabel aligns l's runs inside its rect and centers them vertically.
func (a *App) drawLabel(dst *ebiten.Image, l board.Label, m fonts.Measurer, clr color.Color) {
	width := 0
	for _, r := range l.Runs {
		width += m.RunAdvance(r)
	}
	x := l.Rect.X
	switch l.Align {
	case board.AlignRight:
		x = l.Rect.X + l.Rect.W - width
	case board.AlignCenter:
		x = l.Rect.X + (l.Rect.W-width)/2
	}
	a.drawRuns(dst, l.Runs, m, x, m.Baseline(l.Rect.Y, l.Rect.H), clr)
}

// drawRuns draws runs left to right from x. RTL runs are shaped and drawn
// from their right edge.
func (a *App) drawRuns(dst *ebiten.Image, runs []script.Run, m fonts.Measurer, x, baseline int, clr color.Color) {
	for _, r := range runs {
		w := m.RunAdvance(r)
		face := a.shaper.face(m, r)
		left := x
		if r.Script == script.RTL {
			left += w
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(left), float64(baseline)-face.Metrics().HAscent)
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(dst, r.Text, face, op)
		x += w
	}
}

func toLocal(r geom.Rect, origin geom.Point) geom.Rect {
	r.X -= origin.X
	r.Y -= origin.Y
	return r
}

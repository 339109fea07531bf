package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"notetab/internal/geom"
	"notetab/internal/platform"
)

// Held keys repeat after repeatDelay ticks, every repeatInterval ticks.
const (
	repeatDelay    = 30
	repeatInterval = 3
)

var editingKeys = []struct {
	key  ebiten.Key
	name string
}{
	{ebiten.KeyEnter, platform.KeyEnter},
	{ebiten.KeyNumpadEnter, platform.KeyEnter},
	{ebiten.KeyBackspace, platform.KeyBackspace},
	{ebiten.KeyDelete, platform.KeyDelete},
	{ebiten.KeyArrowLeft, platform.KeyLeft},
	{ebiten.KeyArrowRight, platform.KeyRight},
	{ebiten.KeyArrowUp, platform.KeyArrowUp},
	{ebiten.KeyArrowDown, platform.KeyArrowDown},
	{ebiten.KeyHome, platform.KeyHome},
	{ebiten.KeyEnd, platform.KeyEnd},
	{ebiten.KeyEscape, platform.KeyEscape},
	{ebiten.KeyTab, platform.KeyTab},
}

var shortcutKeys = []struct {
	key  ebiten.Key
	name string
}{
	{ebiten.KeyA, platform.KeySelectAll},
	{ebiten.KeyC, platform.KeyCopy},
	{ebiten.KeyX, platform.KeyCut},
	{ebiten.KeyV, platform.KeyPaste},
}

func repeating(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0)
}

func modifiers() platform.Modifiers {
	var m platform.Modifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= platform.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta) {
		m |= platform.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= platform.ModAlt
	}
	return m
}

// pollEvents reads this tick's input as board events, pointer first.
func (a *App) pollEvents() []platform.Event {
	var events []platform.Event

	x, y := ebiten.CursorPosition()
	pos := geom.Point{X: x, Y: y}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		events = append(events, platform.MouseDown(x, y))
	}
	if pos != a.lastMouse {
		events = append(events, platform.MouseMove(x, y))
		a.lastMouse = pos
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		events = append(events, platform.MouseUp(x, y))
	}

	mods := modifiers()
	if mods.Has(platform.ModCtrl) {
		for _, k := range shortcutKeys {
			if inpututil.IsKeyJustPressed(k.key) {
				events = append(events, platform.KeyDown(k.name, mods))
			}
		}
	}
	for _, k := range editingKeys {
		if repeating(k.key) {
			events = append(events, platform.KeyDown(k.name, mods))
		}
	}
	if !mods.Has(platform.ModCtrl) {
		for _, r := range ebiten.AppendInputChars(nil) {
			events = append(events, platform.TextInput(r))
		}
	}
	return events
}

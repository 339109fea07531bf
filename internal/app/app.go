// Package app is the desktop shell: it runs the ebiten loop, turns input
// into board events and draws the board's scene.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"notetab/internal/board"
	"notetab/internal/clip"
	"notetab/internal/config"
	"notetab/internal/editor"
	"notetab/internal/fonts"
	"notetab/internal/geom"
	"notetab/internal/i18n"
	"notetab/internal/platform"
	"notetab/internal/render"
	"notetab/internal/ui"
)

const (
	titleFontSize = 28
	labelFontSize = 18
	smallFontSize = 13
)

type App struct {
	cfg    *config.Config
	log    *zap.Logger
	theme  ui.Theme
	board  *board.Board
	prefs  *i18n.Preferences
	fonts  *fonts.Bank
	shaper *shaper
	text   fonts.Measurer

	languages chan i18n.Language

	frameBuffer *render.FrameBuffer
	canvas      *ebiten.Image
	overlayFB   *render.FrameBuffer
	overlay     *ebiten.Image
	noteLayers  map[string]*noteLayer

	screenW   int
	screenH   int
	lastMouse geom.Point
	frameTick int
}

// noteLayer is the pixel buffer and texture of one note, so notes and their
// text stack in z-order.
type noteLayer struct {
	fb  *render.FrameBuffer
	img *ebiten.Image
}

func New(cfg *config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	tr, err := i18n.NewTranslator(log.Named("i18n"))
	if err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}
	bank, err := fonts.NewBank(cfg.Fonts.PersianPath, log.Named("fonts"))
	if err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}
	sh, err := newShaper(bank.PersianTTF())
	if err != nil {
		return nil, err
	}
	bank.SetShaper(sh)
	theme := ui.DefaultTheme()
	prefs := i18n.NewPreferences(i18n.NewFileStore(cfg.PrefsPath, log.Named("prefs")), log.Named("prefs"))
	measurer := bank.Measurer(cfg.Fonts.Size, false)

	opts := []board.Option{
		board.WithTheme(theme),
		board.WithLogger(log.Named("board")),
		board.WithClipboard(clip.System(log.Named("clip"))),
		board.WithViewport(geom.Size{W: cfg.Window.Width, H: cfg.Window.Height}),
		board.WithEditorOptions(editor.Options{
			MinRows:   cfg.Editor.MinRows,
			MaxRows:   cfg.Editor.MaxRows,
			MaxLength: cfg.Editor.MaxLength,
		}),
	}
	if lang, ok := i18n.ParseLanguage(cfg.Language); ok {
		opts = append(opts, board.WithLanguage(lang))
	}

	return &App{
		cfg:        cfg,
		log:        log,
		theme:      theme,
		board:      board.New(tr, prefs, measurer, opts...),
		prefs:      prefs,
		fonts:      bank,
		shaper:     sh,
		text:       measurer,
		languages:  make(chan i18n.Language, 4),
		noteLayers: map[string]*noteLayer{},
	}, nil
}

// Run blocks until the window is closed or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.cfg.Language == "" {
		err := a.prefs.Watch(ctx, func(lang i18n.Language) {
			select {
			case a.languages <- lang:
			default:
			}
		})
		if err != nil {
			a.log.Warn("language preference will not follow other windows", zap.Error(err))
		}
	}

	win := platform.WindowConfig{
		Title:       a.cfg.Window.Title,
		WidthPx:     a.cfg.Window.Width,
		HeightPx:    a.cfg.Window.Height,
		MinWidthPx:  a.theme.NoteWidth + 2*a.theme.AddButtonInset,
		MinHeightPx: a.theme.NoteHeight + 2*a.theme.AddButtonInset,
	}
	ebiten.SetWindowTitle(win.Title)
	ebiten.SetWindowSize(win.WidthPx, win.HeightPx)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(win.MinWidthPx, win.MinHeightPx, -1, -1)

	a.log.Info("starting", zap.String("language", string(a.board.Language())))
	game := &game{app: a, ctx: ctx}
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game loop: %w", err)
	}
	return nil
}

// game adapts App to ebiten.Game and stops the loop when ctx ends.
type game struct {
	app *App
	ctx context.Context
}

func (g *game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	return g.app.Update()
}

func (g *game) Draw(screen *ebiten.Image) { g.app.Draw(screen) }

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.app.Layout(outsideWidth, outsideHeight)
}

func (a *App) Update() error {
	a.frameTick++

drain:
	for {
		select {
		case lang := <-a.languages:
			a.board.SetLanguage(lang)
		default:
			break drain
		}
	}

	w, h := a.currentViewportSize()
	if vp := a.board.Viewport(); vp.W != w || vp.H != h {
		a.board.HandleEvent(platform.Resize(w, h))
	}

	for _, ev := range a.pollEvents() {
		if a.board.HandleEvent(ev) {
			a.frameTick = 0
		}
	}
	a.releaseDeletedLayers()
	return nil
}

func (a *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	a.screenW = max(1, outsideWidth)
	a.screenH = max(1, outsideHeight)
	return a.screenW, a.screenH
}

func (a *App) currentViewportSize() (int, int) {
	if a.screenW > 0 && a.screenH > 0 {
		return a.screenW, a.screenH
	}
	w, h := ebiten.WindowSize()
	if w <= 0 {
		w = a.cfg.Window.Width
	}
	if h <= 0 {
		h = a.cfg.Window.Height
	}
	return w, h
}

func (a *App) releaseDeletedLayers() {
	if len(a.noteLayers) == len(a.board.Notes()) {
		return
	}
	live := map[string]bool{}
	for _, n := range a.board.Notes() {
		live[n.ID] = true
	}
	for id, l := range a.noteLayers {
		if !live[id] {
			l.img.Deallocate()
			delete(a.noteLayers, id)
		}
	}
}

// Package ebitenhost runs a scrollverse engine in an Ebitengine window.
//
// The window is the scroll source: the mouse wheel and the arrow, page and
// home/end keys move the scroll progress, the cursor is the pointer target
// and the window size is the canvas size. Ebitengine's tick is the frame
// scheduler; each Update draws one frame into a gg raster surface and Draw
// uploads its pixels.
//
// Keys:
//
//	Space   toggle the autoplay tour
//	T       toggle the dark theme
//	P       save a screenshot (when a Capture is configured)
//	F       toggle the stats overlay
//	Escape  quit
package ebitenhost

import (
	"errors"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/scrollverse"
)

// Options configures a Game.
type Options struct {
	Title  string
	Width  int
	Height int

	// ScrollStep is the progress moved per wheel notch. Default 0.01.
	ScrollStep float64
	// Autoplay starts the tour immediately.
	Autoplay bool
	// Tour configures the autoplay tour.
	Tour scrollverse.TourConfig
	// Capture receives P-key screenshots. Nil disables them.
	Capture *scrollverse.Capture
	// ShowStats draws FPS, phase and progress in the corner.
	ShowStats bool
}

// Game implements ebiten.Game around a scrollverse engine.
type Game struct {
	engine  *scrollverse.Engine
	inputs  *scrollverse.Inputs
	surface *scrollverse.RasterSurface
	buf     *ebiten.Image
	opts    Options

	tour     *scrollverse.Tour
	autoplay bool
	scroll   float64
	dark     bool
	width    int
	height   int
}

// New returns a Game drawing engine.
func New(engine *scrollverse.Engine, opts Options) *Game {
	if opts.Width <= 0 {
		opts.Width = 1280
	}
	if opts.Height <= 0 {
		opts.Height = 720
	}
	if opts.ScrollStep <= 0 {
		opts.ScrollStep = 0.01
	}
	size := scrollverse.Size{Width: opts.Width, Height: opts.Height}
	g := &Game{
		engine:   engine,
		inputs:   engine.Inputs(),
		surface:  scrollverse.NewRasterSurface(size),
		opts:     opts,
		tour:     scrollverse.NewTour(opts.Tour),
		autoplay: opts.Autoplay,
		dark:     true,
		width:    opts.Width,
		height:   opts.Height,
	}
	g.inputs.Resize(opts.Width, opts.Height)
	g.inputs.SetDarkTheme(g.dark)
	return g
}

// Surface returns the raster surface frames are drawn into.
func (g *Game) Surface() *scrollverse.RasterSurface {
	return g.surface
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.autoplay = !g.autoplay
		if g.autoplay && g.tour.Done() {
			g.tour.Reset()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.dark = !g.dark
		g.inputs.SetDarkTheme(g.dark)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.opts.ShowStats = !g.opts.ShowStats
	}

	if delta := g.scrollDelta(); delta != 0 {
		g.autoplay = false
		g.scroll = math.Max(0, math.Min(1, g.scroll+delta))
	}
	if g.autoplay {
		p, done := g.tour.Update(1 / float64(ebiten.TPS()))
		g.scroll = p
		if done {
			g.autoplay = false
		}
	}
	g.inputs.SetScrollProgress(g.scroll)

	cx, cy := ebiten.CursorPosition()
	g.inputs.SetPointerTarget(scrollverse.PointerFromScreen(float64(cx), float64(cy), g.width, g.height))

	if err := g.engine.Frame(g.surface); err != nil {
		scrollverse.Logger().Warn("ebitenhost: dropped frame", "frame", g.engine.FrameCount(), "err", err)
	}

	if g.opts.Capture != nil && inpututil.IsKeyJustPressed(ebiten.KeyP) {
		label := fmt.Sprintf("%s_%03d", scrollverse.SelectPhase(g.scroll).Phase, int(g.scroll*1000))
		if _, err := g.opts.Capture.Save(label, g.surface.RGBA()); err != nil {
			scrollverse.Logger().Warn("ebitenhost: screenshot", "err", err)
		}
	}
	return nil
}

// scrollDelta returns the progress change requested this tick.
func (g *Game) scrollDelta() float64 {
	_, wy := ebiten.Wheel()
	d := -wy * g.opts.ScrollStep
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		d += g.opts.ScrollStep * 2
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		d -= g.opts.ScrollStep * 2
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		d += 0.25
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		d -= 0.25
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		d = -g.scroll
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		d = 1 - g.scroll
	}
	return d
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	img := g.surface.RGBA()
	b := img.Bounds()
	if g.buf == nil || g.buf.Bounds().Dx() != b.Dx() || g.buf.Bounds().Dy() != b.Dy() {
		if g.buf != nil {
			g.buf.Deallocate()
		}
		g.buf = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.buf.WritePixels(img.Pix)
	screen.DrawImage(g.buf, nil)

	if g.opts.ShowStats {
		ps := scrollverse.SelectPhase(g.scroll)
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\n%s %.2f (%.3f)",
			ebiten.ActualFPS(), ebiten.ActualTPS(), ps.Phase, ps.Local, g.scroll))
	}
}

// Layout implements ebiten.Game. The canvas follows the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.inputs.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and runs engine until it is closed or Escape is
// pressed.
func Run(engine *scrollverse.Engine, opts Options) error {
	g := New(engine, opts)
	defer g.surface.Close()

	title := opts.Title
	if title == "" {
		title = "scrollverse"
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(engine.Config().FrameRate)

	scrollverse.Logger().Info("ebitenhost: run", "width", g.width, "height", g.height)
	err := ebiten.RunGame(g)
	engine.Inputs().Detach()
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

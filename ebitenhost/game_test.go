package ebitenhost

import (
	"testing"

	"github.com/phanxgames/scrollverse"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	cfg := scrollverse.DefaultConfig()
	cfg.Seed = 3
	cfg.StarCount = 10
	cfg.NodeCount = 5
	return New(scrollverse.NewEngine(cfg, nil), Options{Width: 320, Height: 200})
}

func TestNewDefaults(t *testing.T) {
	g := New(scrollverse.NewEngine(scrollverse.DefaultConfig(), nil), Options{})
	if g.width != 1280 || g.height != 720 {
		t.Errorf("size = %dx%d, want 1280x720", g.width, g.height)
	}
	if g.opts.ScrollStep != 0.01 {
		t.Errorf("ScrollStep = %v, want 0.01", g.opts.ScrollStep)
	}
	snap := g.inputs.Snapshot(1.5)
	if snap.Size.Width != 1280 || snap.Size.Height != 720 {
		t.Errorf("inputs size = %+v, want 1280x720", snap.Size)
	}
	if !snap.Dark {
		t.Error("game should start dark")
	}
}

func TestLayoutResizesInputs(t *testing.T) {
	g := newTestGame(t)
	w, h := g.Layout(640, 480)
	if w != 640 || h != 480 {
		t.Errorf("Layout = %dx%d, want 640x480", w, h)
	}
	snap := g.inputs.Snapshot(1.5)
	if snap.Size.Width != 640 || snap.Size.Height != 480 {
		t.Errorf("inputs size = %+v, want 640x480", snap.Size)
	}
}

// Command scrollverse opens a window and plays the scroll-driven scene.
// Scroll with the mouse wheel or the arrow/page keys, press Space for the
// autoplay tour, T for the light theme, P for a screenshot.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/phanxgames/scrollverse"
	"github.com/phanxgames/scrollverse/ebitenhost"
)

const (
	windowTitle = "scrollverse"
	screenW     = 1280
	screenH     = 720
)

func main() {
	var (
		width    = flag.Int("width", screenW, "window width")
		height   = flag.Int("height", screenH, "window height")
		seed     = flag.Uint64("seed", 0, "population seed (0 = random)")
		stars    = flag.Int("stars", 500, "star count")
		nodes    = flag.Int("nodes", 50, "node count")
		autoplay = flag.Bool("autoplay", false, "start the autoplay tour")
		loop     = flag.Bool("loop", false, "loop the autoplay tour")
		shots    = flag.String("screenshots", "screenshots", "screenshot directory")
		stats    = flag.Bool("stats", false, "show FPS and phase")
		verbose  = flag.Bool("v", false, "log frame stats")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	scrollverse.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := scrollverse.DefaultConfig()
	cfg.Seed = *seed
	cfg.StarCount = *stars
	cfg.NodeCount = *nodes

	engine := scrollverse.NewEngine(cfg, nil)
	engine.SetDebugMode(*verbose)

	if err := ebitenhost.Run(engine, ebitenhost.Options{
		Title:     windowTitle,
		Width:     *width,
		Height:    *height,
		Autoplay:  *autoplay,
		Tour:      scrollverse.TourConfig{Loop: *loop},
		Capture:   scrollverse.NewCapture(*shots),
		ShowStats: *stats,
	}); err != nil {
		log.Fatal(err)
	}
}

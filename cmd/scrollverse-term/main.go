// Command scrollverse-term plays the scroll-driven scene in a truecolor
// terminal. Scroll with the mouse wheel or the arrow/page keys, Space runs
// the autoplay tour, t toggles the theme, q quits.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/phanxgames/scrollverse"
	"github.com/phanxgames/scrollverse/termhost"
)

func main() {
	var (
		seed     = flag.Uint64("seed", 0, "population seed (0 = random)")
		stars    = flag.Int("stars", 300, "star count")
		nodes    = flag.Int("nodes", 50, "node count")
		fps      = flag.Int("fps", 30, "frames per second")
		autoplay = flag.Bool("autoplay", true, "start the autoplay tour")
		loop     = flag.Bool("loop", true, "loop the autoplay tour")
		leg      = flag.Duration("leg", 4*time.Second, "tour time per phase")
		logPath  = flag.String("log", "", "write logs to this file")
	)
	flag.Parse()

	// The terminal owns stdout and stderr while running.
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		scrollverse.SetLogger(slog.New(slog.NewTextHandler(f, nil)))
	}

	cfg := scrollverse.DefaultConfig()
	cfg.Seed = *seed
	cfg.StarCount = *stars
	cfg.NodeCount = *nodes
	cfg.FrameRate = *fps

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := termhost.Run(ctx, scrollverse.NewEngine(cfg, nil), termhost.Options{
		Autoplay: *autoplay,
		Tour:     scrollverse.TourConfig{Leg: *leg, Hold: time.Second, Loop: *loop},
	})
	if err != nil {
		log.Fatal(err)
	}
}

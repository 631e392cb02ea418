package termhost

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/scrollverse"
)

// Options configures Run.
type Options struct {
	// Autoplay starts the tour running; otherwise it starts paused.
	Autoplay bool
	Tour     scrollverse.TourConfig
	// ScrollStep is the progress moved per wheel notch. Default 0.01.
	ScrollStep float64
	// Screen overrides the terminal screen (tests use a simulation screen).
	// It must not be initialized yet.
	Screen tcell.Screen
}

// Run draws engine in the terminal until ctx is cancelled or the user
// quits.
func Run(ctx context.Context, engine *scrollverse.Engine, opts Options) error {
	screen := opts.Screen
	if screen == nil {
		var err error
		if screen, err = tcell.NewScreen(); err != nil {
			return fmt.Errorf("termhost: new screen: %w", err)
		}
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("termhost: init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	surface := NewSurface(screen)
	defer surface.Close()

	tour := scrollverse.NewTour(opts.Tour)
	tour.SetPaused(!opts.Autoplay)
	input := NewInput(screen, tour, opts.ScrollStep)

	cols, rows := screen.Size()
	driver := scrollverse.NewDriver(engine, nil)
	if err := driver.Start(surface, CanvasSize(cols, rows), input, tour); err != nil {
		return err
	}
	defer driver.Stop()

	select {
	case <-ctx.Done():
	case <-input.Quit():
	}
	return nil
}

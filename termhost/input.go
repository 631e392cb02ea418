package termhost

import (
	"math"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/scrollverse"
)

// Input is a scrollverse.Listener fed by terminal events: resizes set the
// canvas size, the mouse sets the pointer target, and the wheel and keys move
// the scroll progress.
type Input struct {
	screen tcell.Screen
	tour   *scrollverse.Tour
	step   float64

	mu     sync.Mutex
	scroll float64
	dark   bool

	quit     chan struct{}
	quitOnce sync.Once
	stop     chan struct{}
	wg       sync.WaitGroup
}

// NewInput returns an input listener for screen. When tour is non-nil,
// Space toggles it and manual scrolling pauses it. step is the progress
// moved per wheel notch or arrow key; zero means 0.01.
func NewInput(screen tcell.Screen, tour *scrollverse.Tour, step float64) *Input {
	if step <= 0 {
		step = 0.01
	}
	return &Input{
		screen: screen,
		tour:   tour,
		step:   step,
		dark:   true,
		quit:   make(chan struct{}),
	}
}

// Quit is closed when the user asks to exit (q, Escape or Ctrl-C).
func (in *Input) Quit() <-chan struct{} {
	return in.quit
}

// Scroll returns the last scroll progress set by the user.
func (in *Input) Scroll() float64 {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.scroll
}

// Attach implements scrollverse.Listener.
func (in *Input) Attach(target *scrollverse.Inputs) {
	in.stop = make(chan struct{})
	events := make(chan tcell.Event, 64)

	cols, rows := in.screen.Size()
	size := CanvasSize(cols, rows)
	target.Resize(size.Width, size.Height)

	in.wg.Add(2)
	go func() {
		defer in.wg.Done()
		in.screen.ChannelEvents(events, in.stop)
	}()
	go func() {
		defer in.wg.Done()
		for {
			select {
			case <-in.stop:
				return
			case ev := <-events:
				in.handle(ev, target)
			}
		}
	}()
}

// Detach implements scrollverse.Listener.
func (in *Input) Detach() {
	if in.stop == nil {
		return
	}
	close(in.stop)
	in.wg.Wait()
	in.stop = nil
}

func (in *Input) handle(ev tcell.Event, target *scrollverse.Inputs) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		size := CanvasSize(cols, rows)
		target.Resize(size.Width, size.Height)
		in.screen.Sync()

	case *tcell.EventMouse:
		cols, rows := in.screen.Size()
		x, y := ev.Position()
		size := CanvasSize(cols, rows)
		// Cell centers in canvas pixels.
		px := (float64(x) + 0.5) * CellWidth
		py := (float64(y) + 0.5) * CellHeight
		target.SetPointerTarget(scrollverse.PointerFromScreen(px, py, size.Width, size.Height))
		switch btn := ev.Buttons(); {
		case btn&tcell.WheelDown != 0:
			in.scrollBy(in.step, target)
		case btn&tcell.WheelUp != 0:
			in.scrollBy(-in.step, target)
		}

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			in.requestQuit()
		case tcell.KeyDown:
			in.scrollBy(in.step*2, target)
		case tcell.KeyUp:
			in.scrollBy(-in.step*2, target)
		case tcell.KeyPgDn:
			in.scrollBy(0.25, target)
		case tcell.KeyPgUp:
			in.scrollBy(-0.25, target)
		case tcell.KeyHome:
			in.scrollTo(0, target)
		case tcell.KeyEnd:
			in.scrollTo(1, target)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				in.requestQuit()
			case 't':
				in.mu.Lock()
				in.dark = !in.dark
				dark := in.dark
				in.mu.Unlock()
				target.SetDarkTheme(dark)
			case ' ':
				if in.tour != nil {
					if in.tour.Done() {
						in.tour.Reset()
					}
					in.tour.SetPaused(!in.tour.Paused())
				}
			}
		}
	}
}

func (in *Input) scrollBy(d float64, target *scrollverse.Inputs) {
	in.mu.Lock()
	p := in.scroll
	in.mu.Unlock()
	if in.tour != nil && !in.tour.Paused() {
		p = in.tour.Progress()
	}
	in.scrollTo(p+d, target)
}

func (in *Input) scrollTo(p float64, target *scrollverse.Inputs) {
	if in.tour != nil {
		in.tour.SetPaused(true)
	}
	p = math.Max(0, math.Min(1, p))
	in.mu.Lock()
	in.scroll = p
	in.mu.Unlock()
	target.SetScrollProgress(p)
}

func (in *Input) requestQuit() {
	in.quitOnce.Do(func() { close(in.quit) })
}

package scrollverse

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

var (
	// ErrRunning is returned by Start when the driver is already running.
	ErrRunning = errors.New("scrollverse: driver already running")

	// ErrStopped is returned by Start after Stop; a driver runs once.
	ErrStopped = errors.New("scrollverse: driver stopped")
)

// Listener is an external input source (scroll position, pointer movement,
// surface resize, theme) bound to the engine's Inputs for the duration of a
// run. Attach is called by Start; Detach is called synchronously by Stop and
// must not return until the source has stopped writing.
type Listener interface {
	Attach(in *Inputs)
	Detach()
}

// Scheduler is the frame-pacing primitive. The driver draws one frame per
// value received from the channel returned by Start and never busy-waits.
type Scheduler interface {
	Start() <-chan time.Time
	Stop()
}

// TickerScheduler paces frames with a time.Ticker.
type TickerScheduler struct {
	Interval time.Duration
	ticker   *time.Ticker
}

// NewTickerScheduler returns a scheduler ticking rate times per second.
func NewTickerScheduler(rate int) *TickerScheduler {
	if rate <= 0 {
		rate = 60
	}
	return &TickerScheduler{Interval: time.Second / time.Duration(rate)}
}

// Start implements Scheduler.
func (s *TickerScheduler) Start() <-chan time.Time {
	s.ticker = time.NewTicker(s.Interval)
	return s.ticker.C
}

// Stop implements Scheduler.
func (s *TickerScheduler) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
	}
}

type driverState uint8

const (
	driverIdle driverState = iota
	driverRunning
	driverStopped
)

// Driver runs an Engine as a cancellable repeating task: one frame per
// scheduler tick, from clearing the surface to the last draw, on a single
// goroutine.
type Driver struct {
	engine *Engine
	sched  Scheduler

	mu        sync.Mutex
	state     driverState
	cancel    context.CancelFunc
	done      chan struct{}
	listeners []Listener

	frames  atomic.Uint64
	dropped atomic.Uint64
}

// NewDriver returns a driver for engine. When sched is nil a TickerScheduler
// at the engine's configured frame rate is used.
func NewDriver(engine *Engine, sched Scheduler) *Driver {
	if sched == nil {
		sched = NewTickerScheduler(engine.cfg.FrameRate)
	}
	return &Driver{engine: engine, sched: sched}
}

// Engine returns the driven engine.
func (d *Driver) Engine() *Engine {
	return d.engine
}

// Start attaches the listeners and begins drawing to surface at the initial
// size. A nil surface is a fatal setup error: ErrNoSurface is returned once
// and nothing is scheduled.
func (d *Driver) Start(surface Surface, initial Size, listeners ...Listener) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch d.state {
	case driverRunning:
		return ErrRunning
	case driverStopped:
		return ErrStopped
	}
	if rs, ok := surface.(*RasterSurface); surface == nil || (ok && rs == nil) {
		Logger().Error("scrollverse: start", "err", ErrNoSurface)
		return ErrNoSurface
	}

	in := d.engine.inputs
	in.Resize(initial.Width, initial.Height)
	for _, l := range listeners {
		l.Attach(in)
	}
	d.listeners = append(d.listeners[:0], listeners...)

	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.done = make(chan struct{})
	d.state = driverRunning

	ticks := d.sched.Start()
	go d.loop(ctx, ticks, surface)

	Logger().Info("scrollverse: driver started",
		"width", initial.Width, "height", initial.Height, "listeners", len(listeners))
	return nil
}

// Stop stops requesting frames, waits for the frame in flight to finish and
// detaches every listener before returning. It is idempotent and safe to call
// before Start. Stop must not be called from a Surface or Listener callback.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == driverStopped {
		return
	}
	wasRunning := d.state == driverRunning
	d.state = driverStopped

	if wasRunning {
		d.cancel()
		<-d.done
		d.sched.Stop()
	}
	for i := len(d.listeners) - 1; i >= 0; i-- {
		d.listeners[i].Detach()
	}
	d.listeners = nil
	d.engine.inputs.Detach()

	Logger().Info("scrollverse: driver stopped",
		"frames", d.frames.Load(), "dropped", d.dropped.Load())
}

// Running reports whether the driver is between Start and Stop.
func (d *Driver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state == driverRunning
}

// Frames returns the number of frames drawn.
func (d *Driver) Frames() uint64 {
	return d.frames.Load()
}

// Dropped returns the number of frames whose submission failed.
func (d *Driver) Dropped() uint64 {
	return d.dropped.Load()
}

func (d *Driver) loop(ctx context.Context, ticks <-chan time.Time, surface Surface) {
	defer close(d.done)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticks:
			// A tick that raced with cancellation is not drawn.
			if ctx.Err() != nil {
				return
			}
			d.tick(surface)
		}
	}
}

// tick draws one frame. A failing or panicking frame is dropped and logged;
// it never stops the loop.
func (d *Driver) tick(surface Surface) {
	defer func() {
		if r := recover(); r != nil {
			d.dropped.Add(1)
			Logger().Warn("scrollverse: frame panicked", "frame", d.engine.frames, "panic", fmt.Sprint(r))
		}
	}()
	if err := d.engine.Frame(surface); err != nil {
		d.dropped.Add(1)
		Logger().Warn("scrollverse: dropped frame", "frame", d.engine.frames, "err", err)
		return
	}
	d.frames.Add(1)
}

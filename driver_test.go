package scrollverse

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// manualScheduler delivers a tick only when the test sends one.
type manualScheduler struct {
	ch      chan time.Time
	started atomic.Bool
	stopped atomic.Bool
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{ch: make(chan time.Time)}
}

func (s *manualScheduler) Start() <-chan time.Time {
	s.started.Store(true)
	return s.ch
}

func (s *manualScheduler) Stop() { s.stopped.Store(true) }

// tick blocks until the driver loop has received the tick.
func (s *manualScheduler) tick() { s.ch <- time.Now() }

type recordingListener struct {
	mu       sync.Mutex
	name     string
	log      *[]string
	attached *Inputs
}

func (l *recordingListener) Attach(in *Inputs) {
	l.mu.Lock()
	l.attached = in
	*l.log = append(*l.log, "attach "+l.name)
	l.mu.Unlock()
}

func (l *recordingListener) Detach() {
	l.mu.Lock()
	*l.log = append(*l.log, "detach "+l.name)
	l.mu.Unlock()
}

type panicSurface struct{}

func (panicSurface) Begin(Size, Color) error    { panic("boom") }
func (panicSurface) Submit([]DrawCommand) error { return nil }

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestDriverNilSurface(t *testing.T) {
	d := NewDriver(newTestEngine(t), newManualScheduler())
	if err := d.Start(nil, Size{800, 600}); !errors.Is(err, ErrNoSurface) {
		t.Fatalf("Start(nil) = %v, want ErrNoSurface", err)
	}
	if d.Running() {
		t.Error("driver running after a failed start")
	}
}

func TestDriverTypedNilSurface(t *testing.T) {
	sched := newManualScheduler()
	d := NewDriver(newTestEngine(t), sched)
	var rs *RasterSurface
	if err := d.Start(rs, Size{800, 600}); !errors.Is(err, ErrNoSurface) {
		t.Fatalf("Start(nil *RasterSurface) = %v, want ErrNoSurface", err)
	}
	if d.Running() || sched.started.Load() {
		t.Error("frames scheduled for a nil raster surface")
	}
}

func TestDriverDrawsOnTicks(t *testing.T) {
	sched := newManualScheduler()
	e := newTestEngine(t)
	d := NewDriver(e, sched)
	s := &countingSurface{}
	if err := d.Start(s, Size{320, 200}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !sched.started.Load() {
		t.Fatal("scheduler not started")
	}
	for range 3 {
		sched.tick()
	}
	waitFor(t, "three frames", func() bool { return d.Frames() == 3 })
	d.Stop()

	if !sched.stopped.Load() {
		t.Error("scheduler not stopped")
	}
	if s.begins != 3 || s.submits != 3 {
		t.Errorf("begins/submits = %d/%d, want 3/3", s.begins, s.submits)
	}
	if s.lastSize != (Size{320, 200}) {
		t.Errorf("initial size not applied: %+v", s.lastSize)
	}
	if d.Dropped() != 0 {
		t.Errorf("Dropped = %d, want 0", d.Dropped())
	}
}

func TestDriverStartTwice(t *testing.T) {
	d := NewDriver(newTestEngine(t), newManualScheduler())
	if err := d.Start(&countingSurface{}, Size{10, 10}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := d.Start(&countingSurface{}, Size{10, 10}); !errors.Is(err, ErrRunning) {
		t.Errorf("second Start = %v, want ErrRunning", err)
	}
	d.Stop()
	if err := d.Start(&countingSurface{}, Size{10, 10}); !errors.Is(err, ErrStopped) {
		t.Errorf("Start after Stop = %v, want ErrStopped", err)
	}
}

func TestDriverStopIdempotent(t *testing.T) {
	e := newTestEngine(t)
	d := NewDriver(e, newManualScheduler())
	d.Stop()
	d.Stop()
	if d.Running() {
		t.Error("Running after Stop")
	}
	if !e.Inputs().Detached() {
		t.Error("inputs not detached by Stop before Start")
	}
}

func TestDriverListenersLifecycle(t *testing.T) {
	var log []string
	a := &recordingListener{name: "scroll", log: &log}
	b := &recordingListener{name: "pointer", log: &log}

	e := newTestEngine(t)
	d := NewDriver(e, newManualScheduler())
	if err := d.Start(&countingSurface{}, Size{10, 10}, a, b); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if a.attached != e.Inputs() {
		t.Error("listener attached to the wrong inputs")
	}
	d.Stop()

	want := []string{"attach scroll", "attach pointer", "detach pointer", "detach scroll"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
	// Writes after Stop never reach the engine.
	e.Inputs().SetScrollProgress(0.9)
	if p := e.Inputs().Snapshot(1.5).Progress; p != 0 {
		t.Errorf("progress = %v after Stop, want 0", p)
	}
}

func TestDriverDropsFailedFrames(t *testing.T) {
	sched := newManualScheduler()
	d := NewDriver(newTestEngine(t), sched)
	if err := d.Start(&countingSurface{err: errors.New("device lost")}, Size{10, 10}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	sched.tick()
	sched.tick()
	waitFor(t, "two dropped frames", func() bool { return d.Dropped() == 2 })
	if !d.Running() {
		t.Error("driver stopped after a failed frame")
	}
	d.Stop()
	if d.Frames() != 0 {
		t.Errorf("Frames = %d, want 0", d.Frames())
	}
}

func TestDriverRecoversPanics(t *testing.T) {
	sched := newManualScheduler()
	d := NewDriver(newTestEngine(t), sched)
	if err := d.Start(panicSurface{}, Size{10, 10}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	sched.tick()
	waitFor(t, "dropped panic frame", func() bool { return d.Dropped() == 1 })
	sched.tick()
	waitFor(t, "second dropped frame", func() bool { return d.Dropped() == 2 })
	d.Stop()
}

func TestNewDriverDefaultScheduler(t *testing.T) {
	d := NewDriver(newTestEngine(t), nil)
	ts, ok := d.sched.(*TickerScheduler)
	if !ok {
		t.Fatalf("default scheduler is %T, want *TickerScheduler", d.sched)
	}
	if ts.Interval != time.Second/60 {
		t.Errorf("Interval = %v, want %v", ts.Interval, time.Second/60)
	}
	if d.Engine() == nil {
		t.Error("Engine() = nil")
	}
}

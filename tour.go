package scrollverse

import (
	"sync"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TourConfig controls an autoplay tour.
type TourConfig struct {
	// Leg is the time spent scrolling through one phase band. Default 4s.
	Leg time.Duration
	// Hold is the pause at each band boundary. Zero disables holds.
	Hold time.Duration
	// Loop restarts the tour from the top when it reaches the end.
	Loop bool
	// Ease shapes each leg. Default ease.InOutSine.
	Ease ease.TweenFunc
	// Rate is the update frequency used while attached as a Listener.
	// Default 60.
	Rate int
}

// Tour is an autoplay scroll source: it tweens the scroll progress from 0 to
// 1 through every phase band. A host without a scrollable page drives it
// with Update, or attaches it to a Driver as a Listener and lets it tick on
// its own goroutine.
type Tour struct {
	mu       sync.Mutex
	cfg      TourConfig
	seq      *gween.Sequence
	progress float64
	done     bool
	paused   bool

	stop chan struct{}
	wg   sync.WaitGroup
}

// NewTour creates a tour positioned at progress 0.
func NewTour(cfg TourConfig) *Tour {
	if cfg.Leg <= 0 {
		cfg.Leg = 4 * time.Second
	}
	if cfg.Hold < 0 {
		cfg.Hold = 0
	}
	if cfg.Ease == nil {
		cfg.Ease = ease.InOutSine
	}
	if cfg.Rate <= 0 {
		cfg.Rate = 60
	}

	leg := float32(cfg.Leg.Seconds())
	hold := float32(cfg.Hold.Seconds())
	seq := gween.NewSequence()
	for p := PhaseStarfield; p < phaseCount; p++ {
		lo, hi := Band(p)
		seq.Add(gween.New(float32(lo), float32(hi), leg, cfg.Ease))
		if hold > 0 && p < PhaseExplosion {
			seq.Add(gween.New(float32(hi), float32(hi), hold, ease.Linear))
		}
	}
	if cfg.Loop {
		seq.SetLoop(-1)
	}
	return &Tour{cfg: cfg, seq: seq}
}

// Duration returns the length of one pass of the tour.
func (t *Tour) Duration() time.Duration {
	return time.Duration(phaseCount)*t.cfg.Leg + time.Duration(phaseCount-1)*t.cfg.Hold
}

// Update advances the tour by dt seconds and returns the new progress and
// whether a non-looping tour has finished.
func (t *Tour) Update(dt float64) (progress float64, done bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done || t.paused || !(dt > 0) {
		return t.progress, t.done
	}
	v, _, complete := t.seq.Update(float32(dt))
	t.progress = clamp01(float64(v))
	if complete && !t.cfg.Loop {
		t.progress = 1
		t.done = true
	}
	return t.progress, t.done
}

// Progress returns the current progress.
func (t *Tour) Progress() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.progress
}

// Done reports whether a non-looping tour has reached the end.
func (t *Tour) Done() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.done
}

// SetPaused pauses or resumes the tour.
func (t *Tour) SetPaused(paused bool) {
	t.mu.Lock()
	t.paused = paused
	t.mu.Unlock()
}

// Paused reports whether the tour is paused.
func (t *Tour) Paused() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.paused
}

// Reset rewinds the tour to progress 0.
func (t *Tour) Reset() {
	t.mu.Lock()
	t.seq.Reset()
	t.progress = 0
	t.done = false
	t.mu.Unlock()
}

// Attach implements Listener: it writes the tour's progress to in at the
// configured rate until Detach. Nothing is written while paused.
func (t *Tour) Attach(in *Inputs) {
	t.mu.Lock()
	if t.stop != nil {
		t.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	t.stop = stop
	t.mu.Unlock()

	if !t.Paused() {
		in.SetScrollProgress(t.Progress())
	}
	interval := time.Second / time.Duration(t.cfg.Rate)
	dt := interval.Seconds()

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				// A paused tour leaves the scroll to other sources.
				if t.Paused() {
					continue
				}
				p, _ := t.Update(dt)
				in.SetScrollProgress(p)
			}
		}
	}()
}

// Detach implements Listener. It returns after the tour's goroutine exits.
func (t *Tour) Detach() {
	t.mu.Lock()
	stop := t.stop
	t.stop = nil
	t.mu.Unlock()
	if stop == nil {
		return
	}
	close(stop)
	t.wg.Wait()
}

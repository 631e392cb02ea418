package scrollverse

import (
	"math"
	"sync"
	"sync/atomic"
)

// InputSnapshot is the set of external inputs read once at the start of a
// frame. Values are already sanitized.
type InputSnapshot struct {
	Progress float64 // [0, 1]
	Pointer  Vec2    // pointer target, clamped to the configured limit
	Size     Size    // at least 1x1
	Dark     bool
}

// Inputs holds the latest values written by the external collaborators
// (scroll source, pointer capture, surface owner, theme detection). Setters
// may be called from any goroutine at any time; the engine takes a snapshot
// per frame and never requires two consecutive snapshots to agree.
//
// Once detached, every setter is a no-op.
type Inputs struct {
	mu       sync.Mutex
	progress float64
	pointer  Vec2
	size     Size
	dark     bool

	detached atomic.Bool
}

// NewInputs returns inputs for a canvas of the given size, dark theme on.
func NewInputs(size Size) *Inputs {
	return &Inputs{size: size, dark: true}
}

// SetScrollProgress records the page's normalized scroll progress. It is not
// required to be monotonic.
func (in *Inputs) SetScrollProgress(p float64) {
	if in.detached.Load() {
		return
	}
	in.mu.Lock()
	in.progress = p
	in.mu.Unlock()
}

// SetPointerTarget records the raw pointer target, normalized so the canvas
// center is (0, 0) and the edges are about ±1.5.
func (in *Inputs) SetPointerTarget(x, y float64) {
	if in.detached.Load() {
		return
	}
	in.mu.Lock()
	in.pointer = Vec2{x, y}
	in.mu.Unlock()
}

// Resize records a new canvas size. It takes effect on the next frame.
func (in *Inputs) Resize(width, height int) {
	if in.detached.Load() {
		return
	}
	in.mu.Lock()
	in.size = Size{width, height}
	in.mu.Unlock()
}

// SetDarkTheme records the host theme.
func (in *Inputs) SetDarkTheme(dark bool) {
	if in.detached.Load() {
		return
	}
	in.mu.Lock()
	in.dark = dark
	in.mu.Unlock()
}

// Detach stops accepting writes. It is idempotent.
func (in *Inputs) Detach() {
	in.detached.Store(true)
}

// Detached reports whether Detach has been called.
func (in *Inputs) Detached() bool {
	return in.detached.Load()
}

// Snapshot returns the current inputs, sanitized.
func (in *Inputs) Snapshot(limit float64) InputSnapshot {
	in.mu.Lock()
	s := InputSnapshot{Progress: in.progress, Pointer: in.pointer, Size: in.size, Dark: in.dark}
	in.mu.Unlock()
	return s.sanitize(limit)
}

// sanitize clamps progress to [0, 1] (NaN reads as 0), reads non-finite
// pointer components as 0 and clamps the pointer to ±limit, and raises sizes
// below 1 to 1.
func (s InputSnapshot) sanitize(limit float64) InputSnapshot {
	s.Progress = clamp01(s.Progress)
	s.Pointer.X = clampAbs(finite(s.Pointer.X), limit)
	s.Pointer.Y = clampAbs(finite(s.Pointer.Y), limit)
	s.Size.Width = max(s.Size.Width, 1)
	s.Size.Height = max(s.Size.Height, 1)
	return s
}

// PointerFromScreen converts a pointer position on a window of the given size
// into the normalized pointer target the engine expects.
func PointerFromScreen(px, py float64, width, height int) (x, y float64) {
	cx := float64(max(width, 1)) / 2
	cy := float64(max(height, 1)) / 2
	return (px - cx) / cx * 1.5, (py - cy) / cy * 1.5
}

func clampAbs(x, limit float64) float64 {
	return math.Max(-limit, math.Min(limit, x))
}

package scrollverse

import (
	"math/rand/v2"
	"time"
)

// Renderer draws one phase into the frame's command list.
type Renderer interface {
	Render(f *Frame, local float64)
}

// Frame is the per-frame context handed to renderers. It is owned by the
// Engine and reused across frames; renderers read it and append commands.
type Frame struct {
	Time     float64 // animation clock
	Pointer  Vec2    // smoothed pointer
	Size     Size
	Center   Vec2
	Dark     bool
	Progress float64
	Phase    PhaseState

	cfg   *Config
	stars []Star
	nodes []Node
	rng   *rand.Rand
	out   *CommandList

	// Transient per-frame projections. The canonical populations are never
	// reordered or mutated.
	starBuf []projectedStar
	nodeBuf []projectedNode
}

// Commands returns the frame's command list.
func (f *Frame) Commands() *CommandList {
	return f.out
}

// Engine is the explicit context of the animation: it owns the clock, the
// smoothed pointer, the cached canvas size, the star and node populations and
// the command buffer. It is not safe for concurrent use; only the frame
// driver calls Step. External collaborators write to Inputs instead.
type Engine struct {
	cfg    Config
	inputs *Inputs
	stars  []Star
	nodes  []Node
	rng    *rand.Rand

	time    float64
	pointer Vec2
	size    Size
	frames  uint64

	frame     Frame
	out       *CommandList
	renderers [phaseCount]Renderer

	tracker phaseTracker
	events  []PhaseEvent
	sink    EventSink

	debug bool
	stats debugStats
}

// NewEngine creates an engine and generates its star and node populations.
// When inputs is nil a fresh Inputs for a 1x1 canvas is created; hosts
// normally resize it before the first frame.
func NewEngine(cfg Config, inputs *Inputs) *Engine {
	cfg = cfg.withDefaults()
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	if inputs == nil {
		inputs = NewInputs(Size{1, 1})
	}

	e := &Engine{
		cfg:    cfg,
		inputs: inputs,
		stars:  GenerateStars(rng, cfg.StarCount),
		nodes:  GenerateNodes(rng, cfg.NodeCount),
		rng:    rng,
		out:    newCommandList(),
	}
	e.renderers = [phaseCount]Renderer{
		PhaseStarfield: starfieldRenderer{},
		PhaseWarp:      warpRenderer{},
		PhaseNetwork:   networkRenderer{},
		PhaseExplosion: newExplosionRenderer(),
	}
	e.frame = Frame{
		cfg:     &e.cfg,
		stars:   e.stars,
		nodes:   e.nodes,
		rng:     rng,
		out:     e.out,
		starBuf: make([]projectedStar, 0, len(e.stars)),
		nodeBuf: make([]projectedNode, 0, len(e.nodes)),
	}
	return e
}

// Config returns the engine's effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Inputs returns the inputs the engine snapshots every frame.
func (e *Engine) Inputs() *Inputs {
	return e.inputs
}

// Stars returns the star population. The returned slice MUST NOT be mutated.
func (e *Engine) Stars() []Star {
	return e.stars
}

// Nodes returns the node population. The returned slice MUST NOT be mutated.
func (e *Engine) Nodes() []Node {
	return e.nodes
}

// Time returns the animation clock.
func (e *Engine) Time() float64 {
	return e.time
}

// Pointer returns the smoothed pointer position.
func (e *Engine) Pointer() Vec2 {
	return e.pointer
}

// Size returns the canvas size used by the last frame.
func (e *Engine) Size() Size {
	return e.size
}

// FrameCount returns the number of frames stepped so far.
func (e *Engine) FrameCount() uint64 {
	return e.frames
}

// ClearColor returns the color surfaces fill before each frame.
func (e *Engine) ClearColor() Color {
	return e.cfg.ClearColor
}

// SetEventSink sets the receiver of phase events. Pass nil to disable.
func (e *Engine) SetEventSink(sink EventSink) {
	e.sink = sink
}

// SetDebugMode enables or disables per-frame stats logging at debug level.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// Step advances the engine by one tick: it snapshots the inputs, advances
// the clock, smooths the pointer toward its target and renders the active
// phase. The returned list is valid until the next call.
func (e *Engine) Step() *CommandList {
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	snap := e.inputs.Snapshot(e.cfg.PointerLimit)
	e.advance(snap)
	out := e.render(snap)

	if e.debug {
		e.stats.stepTime = time.Since(t0)
	}
	return out
}

// Render renders the current clock and pointer state against snap without
// advancing anything. Capture tools use it to draw a chosen progress at a
// chosen time. snap is sanitized the same way Inputs.Snapshot is.
func (e *Engine) Render(snap InputSnapshot) *CommandList {
	return e.render(snap.sanitize(e.cfg.PointerLimit))
}

// SetTime sets the animation clock. The clock is otherwise only advanced by
// Step; this exists for deterministic captures.
func (e *Engine) SetTime(t float64) {
	e.time = finite(t)
}

// Frame steps the engine and submits the frame to surface. A submission
// error drops the frame; the engine state has still advanced.
func (e *Engine) Frame(surface Surface) error {
	cmds := e.Step()

	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}
	if err := surface.Begin(e.size, e.cfg.ClearColor); err != nil {
		return err
	}
	if err := surface.Submit(cmds.Commands()); err != nil {
		return err
	}
	if e.debug {
		e.stats.submitTime = time.Since(t0)
		e.debugLog()
	}
	return nil
}

func (e *Engine) advance(snap InputSnapshot) {
	e.frames++
	e.time += e.cfg.TimeStep
	k := e.cfg.PointerSmoothing
	e.pointer.X += (snap.Pointer.X - e.pointer.X) * k
	e.pointer.Y += (snap.Pointer.Y - e.pointer.Y) * k
}

func (e *Engine) render(snap InputSnapshot) *CommandList {
	e.size = snap.Size
	e.out.Reset()

	ps := SelectPhase(snap.Progress)
	f := &e.frame
	f.Time = e.time
	f.Pointer = e.pointer
	f.Size = snap.Size
	f.Center = snap.Size.Center()
	f.Dark = snap.Dark
	f.Progress = snap.Progress
	f.Phase = ps

	e.renderers[ps.Phase].Render(f, ps.Local)

	e.events = e.tracker.observe(ps, snap.Progress, e.cfg.CompleteThreshold, e.frames, e.events[:0])
	for _, ev := range e.events {
		if ev.Type == EventPhaseEnter {
			Logger().Info("scrollverse: phase", "phase", ev.Phase, "progress", ev.Progress, "frame", ev.Frame)
		}
		if e.sink != nil {
			e.sink.EmitPhaseEvent(ev)
		}
	}

	if e.debug {
		e.stats.phase = ps
		e.stats.commandCount = e.out.Len()
	}
	return e.out
}

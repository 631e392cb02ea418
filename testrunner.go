package scrollverse

import (
	"encoding/json"
	"errors"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action   string   `json:"action"`
	Label    string   `json:"label,omitempty"`
	Progress *float64 `json:"progress,omitempty"`
	From     float64  `json:"from,omitempty"`
	To       float64  `json:"to,omitempty"`
	X        float64  `json:"x,omitempty"`
	Y        float64  `json:"y,omitempty"`
	ToX      float64  `json:"toX,omitempty"`
	ToY      float64  `json:"toY,omitempty"`
	Width    int      `json:"width,omitempty"`
	Height   int      `json:"height,omitempty"`
	Dark     *bool    `json:"dark,omitempty"`
	Frames   int      `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences scroll, pointer, resize and theme changes and
// screenshots across frames for automated visual testing. Call Step before
// each engine frame and Flush after it.
//
// Actions:
//
//	scroll     {"progress": p} sets the scroll progress; with "frames" > 1
//	           it scrolls there from "from" over that many frames
//	pointer    {"x", "y"} in screen pixels; with "toX", "toY" and "frames"
//	           it sweeps there
//	resize     {"width", "height"}
//	theme      {"dark": bool}
//	wait       {"frames": n}
//	screenshot {"label": s}
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	inject    injector
}

var errNoSteps = errors.New("no steps")

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to drive an engine's Inputs.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("scrollverse: parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("scrollverse: parse test script: %w", errNoSteps)
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "scroll":
			if st.Progress == nil {
				return nil, fmt.Errorf("scrollverse: parse test script: step %d: scroll needs progress", i)
			}
		case "theme":
			if st.Dark == nil {
				return nil, fmt.Errorf("scrollverse: parse test script: step %d: theme needs dark", i)
			}
		case "pointer", "resize", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("scrollverse: parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame, writing to in and queueing
// screenshots on c (which may be nil).
func (r *TestRunner) Step(in *Inputs, c *Capture) {
	if r.done {
		return
	}
	size := in.Snapshot(1).Size
	// Pending injections drain one per frame before the script advances.
	if r.inject.apply(in, size) {
		r.checkDone()
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "scroll":
		if st.Frames > 1 {
			r.inject.InjectScrollTo(st.From, *st.Progress, st.Frames)
			r.inject.apply(in, size)
		} else {
			in.SetScrollProgress(*st.Progress)
		}
	case "pointer":
		if st.Frames > 1 {
			r.inject.InjectPointerPath(st.X, st.Y, st.ToX, st.ToY, st.Frames)
			r.inject.apply(in, size)
		} else {
			in.SetPointerTarget(PointerFromScreen(st.X, st.Y, size.Width, size.Height))
		}
	case "resize":
		in.Resize(st.Width, st.Height)
	case "theme":
		in.SetDarkTheme(*st.Dark)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "screenshot":
		if c != nil {
			c.Request(st.Label)
		}
	}

	r.checkDone()
}

func (r *TestRunner) checkDone() {
	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.inject.pending() == 0 {
		r.done = true
	}
}

// RunScript drives engine headlessly with runner until the script finishes
// or maxFrames frames have been drawn, flushing screenshots from surface
// after each frame. It returns the paths written.
func RunScript(engine *Engine, surface *RasterSurface, runner *TestRunner, c *Capture, maxFrames int) ([]string, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	var paths []string
	for frame := 0; !runner.Done(); frame++ {
		if maxFrames > 0 && frame >= maxFrames {
			return paths, fmt.Errorf("scrollverse: script unfinished after %d frames", maxFrames)
		}
		runner.Step(engine.Inputs(), c)
		if err := engine.Frame(surface); err != nil {
			return paths, err
		}
		if c != nil && c.Pending() > 0 {
			written, err := c.Flush(surface.RGBA())
			paths = append(paths, written...)
			if err != nil {
				return paths, err
			}
		}
	}
	return paths, nil
}

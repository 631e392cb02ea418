package scrollverse

// injectKind selects which input a synthetic event writes.
type injectKind uint8

const (
	injectScroll injectKind = iota
	injectPointer
)

// syntheticInput is a single queued input write. Pointer positions are in
// screen pixels, the same space a host's cursor reports, and are normalized
// against the canvas size when applied.
type syntheticInput struct {
	kind     injectKind
	progress float64
	x, y     float64
}

// injector queues synthetic input writes and applies one per frame.
type injector struct {
	queue []syntheticInput
}

// InjectScroll queues a scroll progress write.
func (j *injector) InjectScroll(p float64) {
	j.queue = append(j.queue, syntheticInput{kind: injectScroll, progress: p})
}

// InjectPointer queues a pointer write at screen coordinates.
func (j *injector) InjectPointer(x, y float64) {
	j.queue = append(j.queue, syntheticInput{kind: injectPointer, x: x, y: y})
}

// InjectScrollTo queues a linear scroll from -> to spread over frames writes.
// The last write is exactly to.
func (j *injector) InjectScrollTo(from, to float64, frames int) {
	frames = max(frames, 1)
	for i := 1; i <= frames; i++ {
		j.InjectScroll(lerp(from, to, float64(i)/float64(frames)))
	}
}

// InjectPointerPath queues a linear pointer sweep over frames writes.
func (j *injector) InjectPointerPath(fromX, fromY, toX, toY float64, frames int) {
	frames = max(frames, 1)
	for i := 1; i <= frames; i++ {
		t := float64(i) / float64(frames)
		j.InjectPointer(lerp(fromX, toX, t), lerp(fromY, toY, t))
	}
}

// pending returns the number of queued writes.
func (j *injector) pending() int {
	return len(j.queue)
}

// apply pops one write and stores it in in. Returns false when the queue
// was empty.
func (j *injector) apply(in *Inputs, size Size) bool {
	if len(j.queue) == 0 {
		return false
	}
	ev := j.queue[0]
	copy(j.queue, j.queue[1:])
	j.queue = j.queue[:len(j.queue)-1]

	switch ev.kind {
	case injectScroll:
		in.SetScrollProgress(ev.progress)
	case injectPointer:
		in.SetPointerTarget(PointerFromScreen(ev.x, ev.y, size.Width, size.Height))
	}
	return true
}

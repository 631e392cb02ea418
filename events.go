package scrollverse

// EventType identifies a kind of engine event.
type EventType uint8

const (
	EventPhaseEnter EventType = iota // a different phase became active
	EventComplete                    // scroll progress crossed the completion threshold
)

// PhaseEvent is emitted by the engine when the active phase changes or the
// narrative completes. Overlays and routing react to these instead of
// re-deriving the band table.
type PhaseEvent struct {
	Type     EventType
	Phase    Phase
	Previous Phase // valid for EventPhaseEnter after the first frame
	First    bool  // the first phase of the session
	Progress float64
	Frame    uint64
}

// EventSink receives engine events. Events are delivered synchronously from
// the frame that produced them; implementations must not block.
type EventSink interface {
	EmitPhaseEvent(event PhaseEvent)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(event PhaseEvent)

// EmitPhaseEvent calls fn(event).
func (fn EventSinkFunc) EmitPhaseEvent(event PhaseEvent) {
	fn(event)
}

// phaseTracker turns the per-frame phase into enter/complete events.
type phaseTracker struct {
	started  bool
	current  Phase
	complete bool
}

// observe records the frame's state and returns the events it produced. The
// completion event re-arms when the progress drops back below threshold, so
// scrolling back and forth reports each arrival.
func (t *phaseTracker) observe(ps PhaseState, progress, threshold float64, frame uint64, buf []PhaseEvent) []PhaseEvent {
	if !t.started || ps.Phase != t.current {
		buf = append(buf, PhaseEvent{
			Type:     EventPhaseEnter,
			Phase:    ps.Phase,
			Previous: t.current,
			First:    !t.started,
			Progress: progress,
			Frame:    frame,
		})
		t.started = true
		t.current = ps.Phase
	}
	switch {
	case progress >= threshold && !t.complete:
		t.complete = true
		buf = append(buf, PhaseEvent{Type: EventComplete, Phase: ps.Phase, Previous: ps.Phase, Progress: progress, Frame: frame})
	case progress < threshold:
		t.complete = false
	}
	return buf
}

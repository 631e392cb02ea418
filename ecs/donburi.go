package ecs

import (
	"github.com/phanxgames/scrollverse"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PhaseEventType is the Donburi event type for scrollverse phase events.
var PhaseEventType = events.NewEventType[scrollverse.PhaseEvent]()

// NarrativeStateData is a singleton mirroring the engine's last reported
// phase. It is updated when events are published, before ProcessEvents.
type NarrativeStateData struct {
	Phase    scrollverse.Phase
	Progress float64
	Complete bool
	Frame    uint64
	Visited  [4]bool
}

// NarrativeState is the component type of the narrative singleton.
var NarrativeState = donburi.NewComponentType[NarrativeStateData]()

// DonburiSink is a scrollverse.EventSink backed by a Donburi world.
type DonburiSink struct {
	world donburi.World
	state donburi.Entity
}

// NewDonburiSink creates an EventSink backed by a Donburi world. It creates
// the NarrativeState singleton entity. Phase events are published to
// PhaseEventType and can be consumed with events.Subscribe and
// ProcessEvents.
func NewDonburiSink(world donburi.World) *DonburiSink {
	return &DonburiSink{world: world, state: world.Create(NarrativeState)}
}

// EmitPhaseEvent implements scrollverse.EventSink.
func (s *DonburiSink) EmitPhaseEvent(event scrollverse.PhaseEvent) {
	if s.world.Valid(s.state) {
		st := NarrativeState.Get(s.world.Entry(s.state))
		st.Phase = event.Phase
		st.Progress = event.Progress
		st.Frame = event.Frame
		switch event.Type {
		case scrollverse.EventPhaseEnter:
			if int(event.Phase) < len(st.Visited) {
				st.Visited[event.Phase] = true
			}
			st.Complete = false
		case scrollverse.EventComplete:
			st.Complete = true
		}
	}
	PhaseEventType.Publish(s.world, event)
}

// State returns the current narrative state.
func (s *DonburiSink) State() NarrativeStateData {
	if !s.world.Valid(s.state) {
		return NarrativeStateData{}
	}
	return *NarrativeState.Get(s.world.Entry(s.state))
}

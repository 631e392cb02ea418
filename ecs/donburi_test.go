package ecs

import (
	"testing"

	"github.com/phanxgames/scrollverse"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
	if got := sink.State(); got.Complete || got.Frame != 0 {
		t.Errorf("initial state = %+v, want zero", got)
	}
}

func TestDonburiSink_EmitPhaseEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []scrollverse.PhaseEvent
	PhaseEventType.Subscribe(world, func(w donburi.World, e scrollverse.PhaseEvent) {
		received = append(received, e)
	})

	sink.EmitPhaseEvent(scrollverse.PhaseEvent{
		Type:     scrollverse.EventPhaseEnter,
		Phase:    scrollverse.PhaseNetwork,
		Previous: scrollverse.PhaseWarp,
		Progress: 0.6,
		Frame:    42,
	})
	sink.EmitPhaseEvent(scrollverse.PhaseEvent{
		Type:     scrollverse.EventComplete,
		Phase:    scrollverse.PhaseExplosion,
		Progress: 0.97,
		Frame:    43,
	})

	// Events are queued; process them.
	PhaseEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != scrollverse.EventPhaseEnter || e0.Phase != scrollverse.PhaseNetwork || e0.Frame != 42 {
		t.Errorf("event 0: %+v", e0)
	}
	if received[1].Type != scrollverse.EventComplete {
		t.Errorf("event 1 type = %v, want complete", received[1].Type)
	}
}

func TestDonburiSink_State(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	sink.EmitPhaseEvent(scrollverse.PhaseEvent{Type: scrollverse.EventPhaseEnter, Phase: scrollverse.PhaseStarfield, First: true})
	sink.EmitPhaseEvent(scrollverse.PhaseEvent{Type: scrollverse.EventPhaseEnter, Phase: scrollverse.PhaseExplosion, Progress: 0.96, Frame: 9})
	sink.EmitPhaseEvent(scrollverse.PhaseEvent{Type: scrollverse.EventComplete, Phase: scrollverse.PhaseExplosion, Progress: 0.96, Frame: 9})

	st := sink.State()
	if st.Phase != scrollverse.PhaseExplosion {
		t.Errorf("Phase = %v, want explosion", st.Phase)
	}
	if !st.Complete {
		t.Error("Complete = false, want true")
	}
	if !st.Visited[scrollverse.PhaseStarfield] || !st.Visited[scrollverse.PhaseExplosion] {
		t.Errorf("Visited = %v", st.Visited)
	}
	if st.Visited[scrollverse.PhaseWarp] {
		t.Error("warp should not be visited")
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink scrollverse.EventSink = NewDonburiSink(world)
	_ = sink // compile-time interface check
}

func TestDonburiSink_EngineIntegration(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	cfg := scrollverse.DefaultConfig()
	cfg.Seed = 7
	cfg.StarCount = 20
	cfg.NodeCount = 10
	in := scrollverse.NewInputs(scrollverse.Size{Width: 320, Height: 240})
	e := scrollverse.NewEngine(cfg, in)
	e.SetEventSink(sink)

	var phases []scrollverse.Phase
	PhaseEventType.Subscribe(world, func(w donburi.World, ev scrollverse.PhaseEvent) {
		if ev.Type == scrollverse.EventPhaseEnter {
			phases = append(phases, ev.Phase)
		}
	})

	for _, p := range []float64{0, 0.1, 0.3, 0.6, 0.8, 1} {
		in.SetScrollProgress(p)
		e.Step()
	}
	events.ProcessAllEvents(world)

	want := []scrollverse.Phase{
		scrollverse.PhaseStarfield, scrollverse.PhaseWarp,
		scrollverse.PhaseNetwork, scrollverse.PhaseExplosion,
	}
	if len(phases) != len(want) {
		t.Fatalf("phases = %v, want %v", phases, want)
	}
	for i := range want {
		if phases[i] != want[i] {
			t.Errorf("phases[%d] = %v, want %v", i, phases[i], want[i])
		}
	}
	if !sink.State().Complete {
		t.Error("state should be complete after progress 1")
	}
}

package scrollverse

import (
	"math"
	"testing"
)

func TestSelectPhase(t *testing.T) {
	tests := []struct {
		progress float64
		phase    Phase
		local    float64
	}{
		{0, PhaseStarfield, 0},
		{0.125, PhaseStarfield, 0.5},
		{0.2499, PhaseStarfield, 0.9996},
		{0.25, PhaseWarp, 0},
		{0.3, PhaseWarp, 0.2},
		{0.5, PhaseNetwork, 0},
		{0.6, PhaseNetwork, 0.4},
		{0.75, PhaseExplosion, 0},
		{0.9, PhaseExplosion, 0.6},
		{1, PhaseExplosion, 1},
		{-0.5, PhaseStarfield, 0},
		{3, PhaseExplosion, 1},
		{math.NaN(), PhaseStarfield, 0},
		{math.Inf(1), PhaseExplosion, 1},
	}
	for _, tt := range tests {
		got := SelectPhase(tt.progress)
		if got.Phase != tt.phase {
			t.Errorf("SelectPhase(%v).Phase = %v, want %v", tt.progress, got.Phase, tt.phase)
		}
		if math.Abs(got.Local-tt.local) > 1e-9 {
			t.Errorf("SelectPhase(%v).Local = %v, want %v", tt.progress, got.Local, tt.local)
		}
	}
}

func TestSelectPhaseExactlyOne(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		p := float64(i) / 1000
		phases := ActivePhases(p)
		if len(phases) != 1 {
			t.Fatalf("ActivePhases(%v) = %d phases, want 1", p, len(phases))
		}
		lo, hi := Band(phases[0].Phase)
		if p < lo || (p >= hi && phases[0].Phase != PhaseExplosion) {
			t.Errorf("progress %v outside band [%v, %v) of %v", p, lo, hi, phases[0].Phase)
		}
		if phases[0].Local < 0 || phases[0].Local > 1 {
			t.Errorf("ActivePhases(%v).Local = %v, want [0, 1]", p, phases[0].Local)
		}
	}
}

func TestBand(t *testing.T) {
	want := [][2]float64{{0, 0.25}, {0.25, 0.5}, {0.5, 0.75}, {0.75, 1}}
	for p := PhaseStarfield; p < phaseCount; p++ {
		lo, hi := Band(p)
		if lo != want[p][0] || hi != want[p][1] {
			t.Errorf("Band(%v) = [%v, %v), want [%v, %v)", p, lo, hi, want[p][0], want[p][1])
		}
	}
}

func TestPhaseString(t *testing.T) {
	if got := PhaseNetwork.String(); got != "network" {
		t.Errorf("PhaseNetwork.String() = %q, want %q", got, "network")
	}
	if got := Phase(9).String(); got != "Phase(9)" {
		t.Errorf("Phase(9).String() = %q, want %q", got, "Phase(9)")
	}
}

func TestSourcePhase(t *testing.T) {
	tests := []struct {
		src   Source
		phase Phase
	}{
		{SourceStarGlow, PhaseStarfield},
		{SourceHaze, PhaseStarfield},
		{SourceWarpTrail, PhaseWarp},
		{SourceContinent, PhaseWarp},
		{SourcePlanetGlow, PhaseNetwork},
		{SourceSparkle, PhaseNetwork},
		{SourceAfterglow, PhaseExplosion},
		{SourceMorph, PhaseExplosion},
	}
	for _, tt := range tests {
		if got := tt.src.Phase(); got != tt.phase {
			t.Errorf("%v.Phase() = %v, want %v", tt.src, got, tt.phase)
		}
	}
}

package scrollverse

import "fmt"

// Phase identifies one of the four visual phases.
type Phase uint8

const (
	PhaseStarfield Phase = iota // rotating 3D star field
	PhaseWarp                   // black-hole warp, planet emergence
	PhaseNetwork                // rotating node sphere
	PhaseExplosion              // particle burst and hand-off
	phaseCount
)

var phaseNames = [phaseCount]string{"starfield", "warp", "network", "explosion"}

// String returns the lowercase phase name.
func (p Phase) String() string {
	if p < phaseCount {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", uint8(p))
}

// bandWidth is the scroll span owned by each phase.
const bandWidth = 0.25

// Band returns the scroll range [lo, hi) owned by p. The last band also owns
// hi (1.0). Overlays keyed off the same scroll value use this table to stay
// in sync with the canvas.
func Band(p Phase) (lo, hi float64) {
	lo = float64(p) * bandWidth
	return lo, lo + bandWidth
}

// PhaseState is an active phase and its progress within its band.
type PhaseState struct {
	Phase Phase
	Local float64 // [0, 1]
}

// SelectPhase maps a scroll progress to the active phase. Exactly one phase
// is active for any input; out-of-range and NaN inputs are clamped first.
// Bands are half-open except the last, which is closed at 1.
func SelectPhase(progress float64) PhaseState {
	p := clamp01(progress)
	for ph := PhaseStarfield; ph < PhaseExplosion; ph++ {
		lo, hi := Band(ph)
		if p < hi {
			return PhaseState{Phase: ph, Local: (p - lo) / bandWidth}
		}
	}
	lo, _ := Band(PhaseExplosion)
	return PhaseState{Phase: PhaseExplosion, Local: clamp01((p - lo) / bandWidth)}
}

// ActivePhases returns the ordered list of phases rendered for progress. The
// bands never co-render, so the list always has one entry; cross-phase
// carry-over (the node afterglow) is owned by the renderer that draws it.
func ActivePhases(progress float64) []PhaseState {
	return []PhaseState{SelectPhase(progress)}
}

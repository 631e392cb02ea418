package scrollverse

import "math"

// OverlayOpacity returns the opacity of phase p's caption at the given scroll
// progress. A caption is visible only inside its own band. Captions fade in
// over the first 0.08 of a middle band, then ease down to 30% by the band's
// end. The first caption starts fully visible; the last fades in over 0.1
// and stays.
func OverlayOpacity(p Phase, progress float64) float64 {
	progress = clamp01(progress)
	if SelectPhase(progress).Phase != p {
		return 0
	}
	lo, _ := Band(p)
	local := (progress - lo) / bandWidth
	switch p {
	case PhaseStarfield:
		return 1 - local*0.7
	case PhaseExplosion:
		return math.Min(1, (progress-lo)/0.1)
	default:
		return math.Min(1, (progress-lo)/0.08) * (1 - local*0.7)
	}
}

// OverlayScale returns the caption scale matching OverlayOpacity.
func OverlayScale(p Phase, progress float64) float64 {
	progress = clamp01(progress)
	lo, _ := Band(p)
	switch p {
	case PhaseStarfield:
		return 1 - (progress/bandWidth)*0.15
	case PhaseExplosion:
		return 0.95 + math.Min(1, math.Max(0, progress-lo)/0.1)*0.05
	default:
		return 0.9 + math.Min(1, math.Max(0, progress-lo)/0.08)*0.1
	}
}

// IndicatorIndex returns the index of the lit progress dot (one per phase).
func IndicatorIndex(progress float64) int {
	return int(SelectPhase(progress).Phase)
}

// ActionVisible reports whether the closing call-to-action is shown.
func ActionVisible(progress float64) bool {
	return clamp01(progress) >= 0.85
}

// CanvasFade returns the opacity applied to the whole canvas layer: it
// dims linearly to 0.2 as the page is scrolled to the end.
func CanvasFade(progress float64) float64 {
	return 1 - clamp01(progress)*0.8
}

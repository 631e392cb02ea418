package scrollverse

import (
	"math"
	"math/rand/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorTransparent is fully transparent black.
var ColorTransparent = Color{}

// ColorBlack is opaque black, the default clear color.
var ColorBlack = Color{0, 0, 0, 1}

// RGB8 builds a color from 0-255 channel values and a [0, 1] alpha, matching
// the rgba() notation the palette was tuned in.
func RGB8(r, g, b uint8, a float64) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, a}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Vec2 is a 2D vector used for screen positions and the pointer offset.
type Vec2 struct {
	X, Y float64
}

// Size is a canvas size in pixels.
type Size struct {
	Width, Height int
}

// Center returns the canvas center point.
func (s Size) Center() Vec2 {
	return Vec2{float64(s.Width) / 2, float64(s.Height) / 2}
}

// Range is a general-purpose min/max range. Used by the field generators.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max) drawn from rng.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// clamp01 clamps x to [0, 1]. NaN maps to 0.
func clamp01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// finite returns x, or 0 when x is NaN or infinite.
func finite(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

package scrollverse

import "math"

// Vec3 is a point in the camera-centered scene space. Z grows away from the
// viewer; the camera sits at Z = -perspective.
type Vec3 struct {
	X, Y, Z float64
}

// Projection is the screen-space result of projecting a Vec3.
type Projection struct {
	// Offset is the screen offset from the canvas center.
	Offset Vec2
	// Scale is the perspective scale, perspective / (perspective + z).
	Scale float64
	// Depth is the post-rotation z the projection was computed from.
	Depth float64
}

// RotateXZ rotates p about the Y axis: the x/z pair goes through a standard
// 2D rotation by angle, y is unchanged.
func RotateXZ(p Vec3, angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: p.X*cos - p.Z*sin,
		Y: p.Y,
		Z: p.X*sin + p.Z*cos,
	}
}

// RotateYZ rotates p about the X axis: the y/z pair goes through a standard
// 2D rotation by angle, x is unchanged.
func RotateYZ(p Vec3, angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: p.X,
		Y: p.Y*cos - p.Z*sin,
		Z: p.Y*sin + p.Z*cos,
	}
}

// Project applies the perspective divide. It reports false for points at or
// behind the camera plane (z <= -perspective); callers must skip them.
func Project(p Vec3, perspective float64) (Projection, bool) {
	if p.Z <= -perspective {
		return Projection{}, false
	}
	scale := perspective / (perspective + p.Z)
	if !(scale > 0) || math.IsInf(scale, 0) {
		return Projection{}, false
	}
	return Projection{
		Offset: Vec2{p.X * scale, p.Y * scale},
		Scale:  scale,
		Depth:  p.Z,
	}, true
}

// DepthFade linearly maps z from [near, far] to [0, 1], clamped. It is used
// as an opacity multiplier; with near < far, larger z is brighter.
func DepthFade(z, near, far float64) float64 {
	if far == near {
		return 0
	}
	return clamp01((z - near) / (far - near))
}

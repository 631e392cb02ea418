package scrollverse

import (
	"cmp"
	"math"
	"slices"
)

const (
	starfieldSpin   = 0.3 // rotation rate of the star shell, radians per unit time
	starGlowScale   = 4   // glow radius relative to the core radius
	starBrightFade  = 0.3 // brightness lost across the band
	washFade        = 0.5 // nebula/haze alpha lost across the band
	twinkleRate     = 3
	twinkleDepth    = 0.3
	parallaxBase    = 0.3
	parallaxDepthed = 1.4
)

var (
	starWhite     = RGB8(255, 255, 255, 1)
	starBlueWhite = RGB8(200, 220, 255, 1)
	nebulaBlue    = RGB8(59, 130, 246, 1)
	nebulaSky     = RGB8(14, 165, 233, 1)
	nebulaCyan    = RGB8(6, 182, 212, 1)
	nebulaLight   = RGB8(56, 189, 248, 1)
	hazePurple    = RGB8(147, 51, 234, 1)
	hazeViolet    = RGB8(126, 34, 206, 1)
)

// projectedStar is a per-frame transient view of a Star.
type projectedStar struct {
	index  int
	screen Vec2
	proj   Projection
	depth  float64 // unclamped (z + d) / 2d
}

// projectStars rotates every star about the Y axis by angle, projects it and
// fills f.starBuf with the visible ones, sorted back to front. The canonical
// star slice is never modified.
func projectStars(f *Frame, angle float64) []projectedStar {
	d := f.cfg.StarPerspective
	buf := f.starBuf[:0]
	for i := range f.stars {
		r := RotateXZ(f.stars[i].Position, angle)
		p, ok := Project(r, d)
		if !ok {
			continue
		}
		buf = append(buf, projectedStar{
			index:  i,
			screen: Vec2{f.Center.X + p.Offset.X, f.Center.Y + p.Offset.Y},
			proj:   p,
			depth:  (r.Z + d) / (2 * d),
		})
	}
	// Larger z is farther away; draw it first.
	slices.SortFunc(buf, func(a, b projectedStar) int {
		return cmp.Compare(b.proj.Depth, a.proj.Depth)
	})
	f.starBuf = buf
	return buf
}

type starfieldRenderer struct{}

func (starfieldRenderer) Render(f *Frame, q float64) {
	out := f.out
	mx := f.Pointer.X * f.cfg.ParallaxStrength
	my := f.Pointer.Y * f.cfg.ParallaxStrength
	fade := 1 - q*starBrightFade

	for _, ps := range projectStars(f, f.Time*starfieldSpin) {
		s := &f.stars[ps.index]
		mul := parallaxBase + ps.depth*parallaxDepthed
		x := ps.screen.X + mx*ps.depth*mul
		y := ps.screen.Y + my*ps.depth*mul

		twinkle := math.Sin(f.Time*twinkleRate+s.Twinkle)*twinkleDepth + (1 - twinkleDepth)
		b := clamp01(s.Opacity * twinkle * clamp01(ps.depth) * fade)
		core := s.Size * ps.proj.Scale
		glow := core * starGlowScale

		out.FillCircle(SourceStarGlow, ps.index, x, y, glow, RadialGradient(x, y, glow,
			stop(0, starWhite.WithAlpha(b*0.8)),
			stop(0.5, starBlueWhite.WithAlpha(b*0.3)),
			stop(1, starWhite.WithAlpha(0)),
		))
		out.FillCircle(SourceStarCore, ps.index, x, y, core, Solid(starWhite.WithAlpha(b)))
	}

	drawWashes(f, q)
}

// drawWashes draws the atmosphere: two drifting nebulae and a static haze.
func drawWashes(f *Frame, q float64) {
	out := f.out
	k := 1 - q*washFade
	w, h := float64(f.Size.Width), float64(f.Size.Height)
	cx, cy := f.Center.X, f.Center.Y

	n1x := cx + math.Sin(f.Time*0.3)*100
	n1y := cy - 100
	out.FillRect(SourceNebula, 0, 0, w, h, RadialGradient(n1x, n1y, w*0.6,
		stop(0, nebulaBlue.WithAlpha(0.35*k)),
		stop(0.3, nebulaSky.WithAlpha(0.25*k)),
		stop(0.7, nebulaCyan.WithAlpha(0.15*k)),
		stop(1, ColorTransparent),
	))

	n2x := cx - math.Cos(f.Time*0.4)*80
	n2y := cy + 150
	out.FillRect(SourceNebula, 0, 0, w, h, RadialGradient(n2x, n2y, w*0.5,
		stop(0, nebulaLight.WithAlpha(0.25*k)),
		stop(0.5, nebulaSky.WithAlpha(0.18*k)),
		stop(1, ColorTransparent),
	))

	out.FillRect(SourceHaze, 0, 0, w, h, RadialGradient(cx-250, cy-50, w*0.35,
		stop(0, hazePurple.WithAlpha(0.25*k)),
		stop(0.4, hazeViolet.WithAlpha(0.15*k)),
		stop(1, ColorTransparent),
	))
}

package scrollverse

import "math"

const (
	warpSpin          = 0.5 // star shell rotation rate during the warp
	warpExponent      = 1.5
	warpTwist         = 3   // spiral angle gained at full intensity
	warpPull          = 0.7 // fraction of distance consumed at full intensity
	warpHorizon       = 20  // stars closer than this to the center are swallowed
	warpTrailLength   = 30
	blackHoleBase     = 30
	blackHoleGrowth   = 150
	blackHoleExtent   = 3 // gradient extent relative to the hole size
	accretionRings    = 5
	planetThreshold   = 0.4 // local progress at which the planet starts to emerge
	planetBaseRadius  = 80
	planetGrowth      = 220
	atmosphereRings   = 5
	cloudCount        = 12
	continentCount    = 5
	cloudOrbitRate    = 0.5
	accretionFlatness = 0.3
)

var (
	oceanLight    = RGB8(135, 206, 250, 1)
	oceanDeep     = RGB8(70, 130, 180, 1)
	landGreen     = RGB8(34, 139, 34, 1)
	landMoss      = RGB8(46, 125, 50, 1)
	landShadow    = RGB8(25, 77, 51, 1)
	landEdge      = RGB8(15, 52, 35, 1)
	atmosphereSky = RGB8(100, 180, 255, 1)
	cloudWhite    = RGB8(255, 255, 255, 1)
)

// WarpIntensity returns the eased warp strength for a warp-band local
// progress q.
func WarpIntensity(q float64) float64 {
	return math.Pow(clamp01(q), warpExponent)
}

// PlanetProgress returns the planet emergence progress for a warp-band local
// progress q, and false while the planet is not yet visible.
func PlanetProgress(q float64) (float64, bool) {
	if q <= planetThreshold {
		return 0, false
	}
	return clamp01((q - planetThreshold) / (1 - planetThreshold)), true
}

// warpRenderer draws the star warp and the black hole, and grows the planet
// out of the hole in the second part of the band. The three effects are
// gated independently.
type warpRenderer struct{}

func (warpRenderer) Render(f *Frame, q float64) {
	w := WarpIntensity(q)
	drawWarpedStars(f, w)
	size := drawBlackHole(f, w)
	drawAccretionDisk(f, w, size)
	if r, ok := PlanetProgress(q); ok {
		drawPlanet(f, r)
	}
}

func drawWarpedStars(f *Frame, w float64) {
	out := f.out
	cx, cy := f.Center.X, f.Center.Y
	width := float64(f.Size.Width)
	trail := w * warpTrailLength

	for _, ps := range projectStars(f, f.Time*warpSpin) {
		s := &f.stars[ps.index]
		dx := ps.screen.X - cx
		dy := ps.screen.Y - cy
		dist := math.Hypot(dx, dy)
		angle := math.Atan2(dy, dx)

		warpAngle := angle + w*warpTwist*(1-dist/width)
		warpDist := dist * (1 - w*warpPull)
		if warpDist <= warpHorizon {
			continue
		}
		sin, cos := math.Sincos(warpAngle)
		x := cx + cos*warpDist
		y := cy + sin*warpDist

		b := clamp01(s.Opacity * (1 - w) * 0.5)
		core := s.Size * ps.proj.Scale

		// The trail points back along the warp direction.
		out.Line(SourceWarpTrail, ps.index, x, y, x-cos*trail, y-sin*trail,
			core*0.5, Solid(starWhite.WithAlpha(b*0.3)))
		out.FillCircle(SourceWarpCore, ps.index, x, y, core, Solid(starWhite.WithAlpha(b)))
	}
}

// drawBlackHole draws the event horizon and returns its size.
func drawBlackHole(f *Frame, w float64) float64 {
	cx, cy := f.Center.X, f.Center.Y
	size := blackHoleBase + w*blackHoleGrowth
	extent := size * blackHoleExtent
	f.out.FillCircle(SourceBlackHole, -1, cx, cy, extent, RadialGradient(cx, cy, extent,
		stop(0, ColorBlack.WithAlpha(w)),
		stop(0.3, nebulaBlue.WithAlpha(w*0.6)),
		stop(0.6, nebulaSky.WithAlpha(w*0.3)),
		stop(1, ColorTransparent),
	))
	return size
}

func drawAccretionDisk(f *Frame, w, size float64) {
	cx, cy := f.Center.X, f.Center.Y
	for i := range accretionRings {
		fi := float64(i)
		radius := size * (1.5 + fi*0.4)
		rotation := f.Time*(2+fi*0.5) + fi*math.Pi/3
		alpha := clamp01(w * (0.6 - fi*0.1))
		f.out.StrokeEllipse(SourceAccretion, i, cx, cy, radius, radius*accretionFlatness,
			rotation, 3, Solid(nebulaLight.WithAlpha(alpha)))
	}
}

// drawPlanet draws the planet at emergence progress r. Every element scales
// its alpha by r.
func drawPlanet(f *Frame, r float64) {
	out := f.out
	cx, cy := f.Center.X, f.Center.Y
	radius := planetBaseRadius + r*planetGrowth

	// Lit from the upper left: the gradient's focus is offset from the center.
	out.FillCircle(SourcePlanet, -1, cx, cy, radius, FocalGradient(
		cx-radius*0.3, cy-radius*0.3, cx, cy, radius,
		stop(0, oceanLight.WithAlpha(r)),
		stop(0.2, oceanDeep.WithAlpha(r*0.95)),
		stop(0.4, landGreen.WithAlpha(r*0.9)),
		stop(0.6, landMoss.WithAlpha(r*0.8)),
		stop(0.8, landShadow.WithAlpha(r*0.6)),
		stop(1, landEdge.WithAlpha(r*0.4)),
	))

	for i := range atmosphereRings {
		fi := float64(i)
		out.StrokeCircle(SourceAtmosphere, i, cx, cy, radius+10+fi*8, 3-fi*0.4,
			Solid(atmosphereSky.WithAlpha(clamp01(r*(0.4-fi*0.07)))))
	}

	for i := range cloudCount {
		angle := float64(i)/cloudCount*2*math.Pi + f.Time*cloudOrbitRate
		dist := radius * (0.4 + float64(i%3)*0.15)
		size := radius * (0.1 + float64(i%2)*0.05)
		sin, cos := math.Sincos(angle)
		x := cx + cos*dist
		y := cy + sin*dist
		out.FillCircle(SourceCloud, i, x, y, size, RadialGradient(x, y, size,
			stop(0, cloudWhite.WithAlpha(r*0.5)),
			stop(0.5, cloudWhite.WithAlpha(r*0.3)),
			stop(1, cloudWhite.WithAlpha(0)),
		))
	}

	for i := range continentCount {
		angle := float64(i)/continentCount*2*math.Pi + math.Pi/4
		sin, cos := math.Sincos(angle)
		out.FillCircle(SourceContinent, i, cx+cos*radius*0.5, cy+sin*radius*0.5, radius*0.2,
			Solid(landGreen.WithAlpha(r*0.6)))
	}
}

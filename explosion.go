package scrollverse

import "math"

const (
	burstExponent    = 1.2
	particleCount    = 200
	waveCount        = 3
	waveDelayStep    = 0.15
	waveSpan         = 0.7
	waveReach        = 600
	waveReachStep    = 200
	waveTwist        = 0.3
	particleBaseSize = 5
	particleSizeStep = 1.5
	particleMinSize  = 0.3
	flashWindow      = 0.3
	flashRadius      = 300
	shockwaveRings   = 5
	shockwaveDelay   = 0.08
	shockwaveSpan    = 0.5
	shockwaveCutoff  = 0.8
	shockwaveReach   = 800
	morphStart       = 0.2
	morphExtent      = 0.8
	afterglowScale   = 4
)

var flashPurple = RGB8(147, 51, 234, 1)

// BurstProgress returns the eased explosion progress for an explosion-band
// local progress q.
func BurstProgress(q float64) float64 {
	return math.Pow(clamp01(q), burstExponent)
}

// WaveDelay returns the burst progress at which wave starts to expand.
func WaveDelay(wave int) float64 {
	return float64(wave) * waveDelayStep
}

// WaveProgress returns the progress of wave for a burst progress.
func WaveProgress(burst float64, wave int) float64 {
	return clamp01((burst - WaveDelay(wave)) / waveSpan)
}

// ParticleSize returns the size of a wave particle at wave progress wp.
// Particles smaller than the draw threshold are skipped by the renderer.
func ParticleSize(wave int, wp float64) float64 {
	return (particleBaseSize - float64(wave)*particleSizeStep) * (1 - wp)
}

// ShockwaveProgress returns the progress of shockwave ring i.
func ShockwaveProgress(q float64, ring int) float64 {
	return clamp01((q - float64(ring)*shockwaveDelay) / shockwaveSpan)
}

// FlashIntensity returns the central flash intensity, which rises and falls
// inside the flash window, and false outside it.
func FlashIntensity(q float64) (float64, bool) {
	if q >= flashWindow || q < 0 {
		return 0, false
	}
	return math.Sin(q * math.Pi / flashWindow), true
}

// MorphIntensity returns the strength of the hand-off wash into the page
// background.
func MorphIntensity(q float64) float64 {
	if q <= morphStart {
		return 0
	}
	t := (q - morphStart) / morphExtent
	return clamp01(t * t)
}

// afterglow keeps the node sphere glowing for a short stretch into the
// explosion band. It is the only state that crosses a band boundary, and it
// is owned here rather than shared with the network renderer.
type afterglow struct {
	window float64 // local progress at which the glow is gone
}

// fade returns the afterglow strength at local progress q, and false once the
// window has closed.
func (g afterglow) fade(q float64) (float64, bool) {
	if q >= g.window {
		return 0, false
	}
	return 1 - q/g.window, true
}

// AfterglowWindow is the explosion local progress at which the node
// afterglow has faded out.
const AfterglowWindow = 0.4

type explosionRenderer struct {
	glow afterglow
}

func newExplosionRenderer() *explosionRenderer {
	return &explosionRenderer{glow: afterglow{window: AfterglowWindow}}
}

func (r *explosionRenderer) Render(f *Frame, q float64) {
	burst := BurstProgress(q)
	if fade, ok := r.glow.fade(q); ok {
		drawAfterglow(f, fade)
	}
	drawParticles(f, burst)
	if intensity, ok := FlashIntensity(q); ok {
		drawFlash(f, intensity)
	}
	drawShockwaves(f, q)
	drawMorph(f, q)
}

// drawAfterglow draws the glow layer of the node sphere, without the pointer
// contribution, fading with the carry-over window.
func drawAfterglow(f *Frame, fade float64) {
	yaw, pitch := NetworkRotation(f.Time, Vec2{}, 0)
	for _, n := range projectNodes(f, yaw, pitch, nil) {
		x, y := n.screen.X, n.screen.Y
		size := n.pulse * n.proj.Scale * afterglowScale
		f.out.FillCircle(SourceAfterglow, n.index, x, y, size, RadialGradient(x, y, size,
			stop(0, gold.WithAlpha(0.8*fade)),
			stop(0.5, gold.WithAlpha(0.4*fade)),
			stop(1, gold.WithAlpha(0)),
		))
	}
}

// drawParticles draws the evenly spaced burst particles for each wave.
func drawParticles(f *Frame, burst float64) {
	out := f.out
	cx, cy := f.Center.X, f.Center.Y
	for i := range particleCount {
		frac := float64(i) / particleCount
		base := frac * 2 * math.Pi
		spiral := frac * 4 * math.Pi

		for wave := range waveCount {
			wp := WaveProgress(burst, wave)
			if wp <= 0 {
				continue
			}
			size := ParticleSize(wave, wp)
			if size <= particleMinSize {
				continue
			}
			angle := base + spiral + float64(wave)*waveTwist
			dist := wp * (waveReach + float64(wave)*waveReachStep)
			sin, cos := math.Sincos(angle)
			x := cx + cos*dist
			y := cy + sin*dist
			life := 1 - wp

			trail := 20 + wp*40
			tx := x - cos*trail
			ty := y - sin*trail
			out.Line(SourceParticleTrail, i, x, y, tx, ty, size, LinearGradient(x, y, tx, ty,
				stop(0, gold.WithAlpha(life*0.8)),
				stop(0.5, goldBright.WithAlpha(life*0.4)),
				stop(1, gold.WithAlpha(0)),
			))
			out.FillCircle(SourceParticleGlow, i, x, y, size*4, RadialGradient(x, y, size*4,
				stop(0, starWhite.WithAlpha(life*0.9)),
				stop(0.3, gold.WithAlpha(life*0.7)),
				stop(1, gold.WithAlpha(0)),
			))
			out.FillCircle(SourceParticleCore, i, x, y, size, Solid(starWhite.WithAlpha(life*0.9)))
		}
	}
}

func drawFlash(f *Frame, intensity float64) {
	w, h := float64(f.Size.Width), float64(f.Size.Height)
	f.out.FillRect(SourceFlash, 0, 0, w, h, RadialGradient(f.Center.X, f.Center.Y, flashRadius,
		stop(0, starWhite.WithAlpha(intensity*0.9)),
		stop(0.3, gold.WithAlpha(intensity*0.6)),
		stop(0.6, flashPurple.WithAlpha(intensity*0.3)),
		stop(1, ColorTransparent),
	))
}

func drawShockwaves(f *Frame, q float64) {
	for i := range shockwaveRings {
		rp := ShockwaveProgress(q, i)
		if rp <= 0 || rp >= shockwaveCutoff {
			continue
		}
		f.out.StrokeCircle(SourceShockwave, i, f.Center.X, f.Center.Y, rp*shockwaveReach,
			4*(1-rp), Solid(gold.WithAlpha((1-rp)*0.6)))
	}
}

// drawMorph washes the canvas into the theme background so the content that
// follows takes over without a seam.
func drawMorph(f *Frame, q float64) {
	m := MorphIntensity(q)
	if m <= 0 {
		return
	}
	bg := f.cfg.DarkBackground
	if !f.Dark {
		bg = f.cfg.LightBackground
	}
	w, h := float64(f.Size.Width), float64(f.Size.Height)
	radius := max(w, h) * 0.8
	f.out.FillRect(SourceMorph, 0, 0, w, h, RadialGradient(f.Center.X, f.Center.Y, radius,
		stop(0, bg.WithAlpha(m)),
		stop(0.5, bg.WithAlpha(m*0.9)),
		stop(1, bg.WithAlpha(m*0.7)),
	))
}

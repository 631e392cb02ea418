package scrollverse

import (
	"math"
	"testing"
)

func TestWarpIntensity(t *testing.T) {
	if WarpIntensity(0) != 0 || WarpIntensity(1) != 1 {
		t.Error("WarpIntensity endpoints wrong")
	}
	if got := WarpIntensity(0.25); !approx(got, 0.125) {
		t.Errorf("WarpIntensity(0.25) = %v, want 0.125", got)
	}
}

func TestPlanetProgress(t *testing.T) {
	if _, ok := PlanetProgress(0.4); ok {
		t.Error("planet should be hidden at 0.4")
	}
	r, ok := PlanetProgress(0.7)
	if !ok || !approx(r, 0.5) {
		t.Errorf("PlanetProgress(0.7) = %v, %v, want 0.5, true", r, ok)
	}
	if r, _ := PlanetProgress(1); r != 1 {
		t.Errorf("PlanetProgress(1) = %v, want 1", r)
	}
}

func TestWarpBeforePlanet(t *testing.T) {
	e := newTestEngine(t)
	cmds := renderAt(e, 0.25+0.3*0.25)
	if n := cmds.CountSource(SourceBlackHole); n != 1 {
		t.Errorf("black holes = %d, want 1", n)
	}
	if n := cmds.CountSource(SourceAccretion); n != 5 {
		t.Errorf("accretion rings = %d, want 5", n)
	}
	for _, src := range []Source{SourcePlanet, SourceAtmosphere, SourceCloud, SourceContinent} {
		if n := cmds.CountSource(src); n != 0 {
			t.Errorf("%v = %d before the planet threshold, want 0", src, n)
		}
	}
	if cmds.CountSource(SourceWarpCore) == 0 {
		t.Error("no warped stars drawn")
	}
	if a, b := cmds.CountSource(SourceWarpCore), cmds.CountSource(SourceWarpTrail); a != b {
		t.Errorf("warp cores %d != trails %d", a, b)
	}
}

func TestWarpPlanet(t *testing.T) {
	e := newTestEngine(t)
	cmds := renderAt(e, 0.25+0.8*0.25)
	want := map[Source]int{
		SourcePlanet:     1,
		SourceAtmosphere: 5,
		SourceCloud:      12,
		SourceContinent:  5,
	}
	for src, n := range want {
		if got := cmds.CountSource(src); got != n {
			t.Errorf("%v = %d, want %d", src, got, n)
		}
	}
	for _, c := range cmds.Commands() {
		if c.Source == SourcePlanet {
			want := planetBaseRadius + planetGrowth*(2.0/3.0)
			if math.Abs(c.Radius-want) > 1e-6 {
				t.Errorf("planet radius = %v, want %v", c.Radius, want)
			}
		}
	}
}

func TestWarpSwallowsCenter(t *testing.T) {
	e := newTestEngine(t)
	cmds := renderAt(e, 0.4999)
	cx, cy := 400.0, 300.0
	for _, c := range cmds.Commands() {
		if c.Source != SourceWarpCore {
			continue
		}
		if d := math.Hypot(c.X-cx, c.Y-cy); d <= warpHorizon {
			t.Errorf("star %d drawn %v from center, inside the horizon", c.Entity, d)
		}
	}
}

func TestBlackHoleGrows(t *testing.T) {
	e := newTestEngine(t)
	radius := func(p float64) float64 {
		for _, c := range renderAt(e, p).Commands() {
			if c.Source == SourceBlackHole {
				return c.Radius
			}
		}
		return 0
	}
	if a, b := radius(0.26), radius(0.45); !(a < b) {
		t.Errorf("black hole radius %v then %v, want growth", a, b)
	}
	if got := radius(0.25); !approx(got, blackHoleBase*blackHoleExtent) {
		t.Errorf("black hole extent at band start = %v, want %v", got, blackHoleBase*blackHoleExtent)
	}
}

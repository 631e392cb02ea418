package scrollverse

import (
	"math"
	"testing"
)

func TestNetworkScenario(t *testing.T) {
	e := newTestEngine(t)
	cmds := renderAt(e, 0.6)

	ps := SelectPhase(0.6)
	if ps.Phase != PhaseNetwork || math.Abs(ps.Local-0.4) > 1e-9 {
		t.Fatalf("SelectPhase(0.6) = %+v, want network at 0.4", ps)
	}
	for _, ph := range []Phase{PhaseStarfield, PhaseWarp, PhaseExplosion} {
		if n := cmds.CountPhase(ph); n != 0 {
			t.Errorf("%v drew %d commands, want 0", ph, n)
		}
	}

	lastOn := int(math.Floor(0.4 / e.Config().NodeStagger)) // 26
	for i := range e.Nodes() {
		n := cmds.CountEntity(SourceNodeCore, i)
		switch {
		case i <= lastOn && n != 1:
			t.Errorf("node %d drawn %d times, want 1", i, n)
		case i > lastOn && n != 0:
			t.Errorf("node %d drawn %d times before powering on", i, n)
		}
	}
}

func TestConnectionsRespectDistance(t *testing.T) {
	e := newTestEngine(t)
	for _, tm := range []float64{0, 1.3, 4.2} {
		e.SetTime(tm)
		cmds := e.Render(InputSnapshot{Progress: 0.74, Size: Size{800, 600}})
		for _, c := range cmds.Commands() {
			if c.Source != SourceConnection {
				continue
			}
			if d := math.Hypot(c.X2-c.X, c.Y2-c.Y); d >= e.Config().ConnectionDistance {
				t.Errorf("t=%v: connection of length %v", tm, d)
			}
		}
		if a, b := cmds.CountSource(SourceConnection), cmds.CountSource(SourceEnergyDot); a != b {
			t.Errorf("connections %d != energy dots %d", a, b)
		}
	}
}

func TestConnectionsNeedBothNodes(t *testing.T) {
	e := newTestEngine(t)
	cmds := renderAt(e, 0.5)
	// Only node 0 has powered on at local progress 0; nothing can connect.
	if n := cmds.CountSource(SourceConnection); n != 0 {
		t.Errorf("connections at band start = %d, want 0", n)
	}
	if n := cmds.CountSource(SourceNodeCore); n != 0 {
		t.Errorf("nodes at band start = %d, want 0", n)
	}
}

func TestNodeAppearMonotonic(t *testing.T) {
	for i := range 50 {
		prev := -1.0
		for k := 0; k <= 100; k++ {
			q := float64(k) / 100
			a := NodeAppear(q, i, 0.015, 0.3)
			if a < prev {
				t.Fatalf("node %d: appear decreased at q=%v", i, q)
			}
			if a < 0 || a > 1 {
				t.Fatalf("node %d: appear %v out of [0, 1]", i, a)
			}
			prev = a
		}
	}
	if got := NodeAppear(0.4, 26, 0.015, 0.3); got <= 0 {
		t.Errorf("NodeAppear(0.4, 26) = %v, want > 0", got)
	}
	if got := NodeAppear(0.4, 27, 0.015, 0.3); got != 0 {
		t.Errorf("NodeAppear(0.4, 27) = %v, want 0", got)
	}
}

func TestNetworkRotation(t *testing.T) {
	yaw, pitch := NetworkRotation(0, Vec2{}, 0.5)
	if yaw != 0 || pitch != 0 {
		t.Errorf("rotation at rest = %v, %v, want 0, 0", yaw, pitch)
	}
	yaw, pitch = NetworkRotation(2, Vec2{X: 1, Y: -1}, 0.5)
	if !approx(yaw, 1.6+0.5) {
		t.Errorf("yaw = %v, want %v", yaw, 2.1)
	}
	if !approx(pitch, math.Sin(0.6)*0.3-0.5) {
		t.Errorf("pitch = %v, want %v", pitch, math.Sin(0.6)*0.3-0.5)
	}
}

func TestNodesSortedByDepth(t *testing.T) {
	e := newTestEngine(t)
	f := &e.frame
	buf := projectNodes(f, 0.7, 0.2, nil)
	for i := 1; i < len(buf); i++ {
		if buf[i-1].proj.Depth > buf[i].proj.Depth {
			t.Fatalf("node order not ascending by depth at %d", i)
		}
	}
}

func TestSparkleDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42
	cfg.SparkleChance = 0
	e := NewEngine(cfg, NewInputs(Size{800, 600}))
	for k := range 20 {
		e.SetTime(float64(k))
		if n := e.Render(InputSnapshot{Progress: 0.74, Size: Size{800, 600}}).CountSource(SourceSparkle); n != 0 {
			t.Fatalf("sparkles = %d with chance 0", n)
		}
	}
}

package scrollverse

import (
	"math"
	"testing"
)

func TestInputsSnapshotSanitizes(t *testing.T) {
	in := NewInputs(Size{800, 600})
	in.SetScrollProgress(1.7)
	in.SetPointerTarget(math.NaN(), -9)
	in.Resize(0, -3)

	s := in.Snapshot(1.5)
	if s.Progress != 1 {
		t.Errorf("Progress = %v, want 1", s.Progress)
	}
	if s.Pointer != (Vec2{0, -1.5}) {
		t.Errorf("Pointer = %+v, want {0 -1.5}", s.Pointer)
	}
	if s.Size != (Size{1, 1}) {
		t.Errorf("Size = %+v, want 1x1", s.Size)
	}
	if !s.Dark {
		t.Error("new inputs should default to the dark theme")
	}

	in.SetScrollProgress(math.NaN())
	if p := in.Snapshot(1.5).Progress; p != 0 {
		t.Errorf("NaN progress read as %v, want 0", p)
	}
	in.SetScrollProgress(math.Inf(-1))
	if p := in.Snapshot(1.5).Progress; p != 0 {
		t.Errorf("-Inf progress read as %v, want 0", p)
	}
}

func TestInputsDetachIgnoresWrites(t *testing.T) {
	in := NewInputs(Size{800, 600})
	in.SetScrollProgress(0.3)
	in.Detach()
	in.Detach()

	in.SetScrollProgress(0.9)
	in.SetPointerTarget(1, 1)
	in.Resize(10, 10)
	in.SetDarkTheme(false)

	if !in.Detached() {
		t.Fatal("Detached() = false after Detach")
	}
	s := in.Snapshot(1.5)
	if s.Progress != 0.3 || s.Pointer != (Vec2{}) || s.Size != (Size{800, 600}) || !s.Dark {
		t.Errorf("snapshot changed after detach: %+v", s)
	}
}

func TestPointerFromScreen(t *testing.T) {
	tests := []struct {
		px, py float64
		wantX  float64
		wantY  float64
	}{
		{400, 300, 0, 0},
		{0, 0, -1.5, -1.5},
		{800, 600, 1.5, 1.5},
		{600, 150, 0.75, -0.75},
	}
	for _, tt := range tests {
		x, y := PointerFromScreen(tt.px, tt.py, 800, 600)
		if !approx(x, tt.wantX) || !approx(y, tt.wantY) {
			t.Errorf("PointerFromScreen(%v, %v) = %v, %v, want %v, %v",
				tt.px, tt.py, x, y, tt.wantX, tt.wantY)
		}
	}
	// A zero-size window does not divide by zero.
	if x, y := PointerFromScreen(0, 0, 0, 0); math.IsNaN(x) || math.IsNaN(y) {
		t.Error("PointerFromScreen on a 0x0 window returned NaN")
	}
}

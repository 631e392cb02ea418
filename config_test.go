package scrollverse

import "testing"

func TestConfigWithDefaults(t *testing.T) {
	got := Config{}.withDefaults()
	want := DefaultConfig()
	// A zero sparkle chance is a valid setting, not a missing one.
	want.SparkleChance = 0
	if got != want {
		t.Errorf("Config{}.withDefaults() = %+v\nwant %+v", got, want)
	}
}

func TestConfigWithDefaultsKeepsValues(t *testing.T) {
	c := Config{StarCount: 12, NodeCount: 3, Seed: 9, SparkleChance: 0.5, PointerRotation: -0.2}
	got := c.withDefaults()
	if got.StarCount != 12 || got.NodeCount != 3 || got.Seed != 9 {
		t.Errorf("populations overwritten: %+v", got)
	}
	if got.SparkleChance != 0.5 || got.PointerRotation != -0.2 {
		t.Errorf("tuning overwritten: sparkle %v rotation %v", got.SparkleChance, got.PointerRotation)
	}
}

func TestConfigWithDefaultsRejectsInvalid(t *testing.T) {
	c := Config{PointerSmoothing: 2, SparkleChance: -1, FrameRate: -5}
	got := c.withDefaults()
	d := DefaultConfig()
	if got.PointerSmoothing != d.PointerSmoothing {
		t.Errorf("PointerSmoothing = %v, want %v", got.PointerSmoothing, d.PointerSmoothing)
	}
	if got.SparkleChance != 0 {
		t.Errorf("SparkleChance = %v, want 0", got.SparkleChance)
	}
	if got.FrameRate != d.FrameRate {
		t.Errorf("FrameRate = %v, want %v", got.FrameRate, d.FrameRate)
	}
}

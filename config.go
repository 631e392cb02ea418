package scrollverse

// Config holds the tuning constants of the engine. The defaults reproduce
// the hand-tuned look; none of them has a derivation beyond visual tuning,
// so they are kept as named values rather than recomputed.
type Config struct {
	// StarCount is the size of the star population.
	StarCount int
	// NodeCount is the size of the node sphere population.
	NodeCount int
	// Seed seeds the engine's random source. Zero picks a random seed, so
	// every session gets a different sky.
	Seed uint64

	// TimeStep is added to the animation clock every frame. The clock is
	// frame-count driven, not wall-clock locked.
	TimeStep float64
	// FrameRate is the tick rate used by the Driver's default scheduler.
	FrameRate int

	// PointerSmoothing is the exponential smoothing factor applied to the
	// pointer each frame.
	PointerSmoothing float64
	// PointerLimit bounds the pointer target on both axes.
	PointerLimit float64
	// PointerRotation is the maximum yaw/pitch offset (radians per unit of
	// pointer) contributed to the node sphere.
	PointerRotation float64
	// ParallaxStrength is the pixel offset of the starfield per unit of pointer.
	ParallaxStrength float64

	// StarPerspective is the perspective distance of the starfield and warp.
	StarPerspective float64
	// NodePerspective is the perspective distance of the node sphere.
	NodePerspective float64

	// NodeStagger is the per-index delay of node appearance, in local progress.
	NodeStagger float64
	// NodeAppearSpan is how much local progress one node takes to fully appear.
	NodeAppearSpan float64
	// ConnectionDistance is the screen distance below which two nodes connect.
	ConnectionDistance float64
	// SparkleChance is the per-node, per-frame probability of a sparkle.
	// Zero disables sparkles.
	SparkleChance float64

	// ClearColor fills the surface at the start of every frame.
	ClearColor Color
	// DarkBackground and LightBackground are the colors the explosion morphs
	// into, chosen by the theme flag.
	DarkBackground  Color
	LightBackground Color

	// CompleteThreshold is the scroll progress at which a completion event
	// is emitted.
	CompleteThreshold float64
}

// DefaultConfig returns the tuned configuration.
func DefaultConfig() Config {
	return Config{
		StarCount:          500,
		NodeCount:          50,
		TimeStep:           0.008,
		FrameRate:          60,
		PointerSmoothing:   0.08,
		PointerLimit:       1.5,
		PointerRotation:    0.5,
		ParallaxStrength:   100,
		StarPerspective:    1000,
		NodePerspective:    800,
		NodeStagger:        0.015,
		NodeAppearSpan:     0.3,
		ConnectionDistance: 150,
		SparkleChance:      0.05,
		ClearColor:         ColorBlack,
		DarkBackground:     RGB8(10, 10, 10, 1),
		LightBackground:    RGB8(255, 255, 255, 1),
		CompleteThreshold:  0.95,
	}
}

// withDefaults fills zero-valued fields from DefaultConfig so a partially
// populated Config is usable.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.StarCount <= 0 {
		c.StarCount = d.StarCount
	}
	if c.NodeCount <= 0 {
		c.NodeCount = d.NodeCount
	}
	if c.TimeStep <= 0 {
		c.TimeStep = d.TimeStep
	}
	if c.FrameRate <= 0 {
		c.FrameRate = d.FrameRate
	}
	if c.PointerSmoothing <= 0 || c.PointerSmoothing > 1 {
		c.PointerSmoothing = d.PointerSmoothing
	}
	if c.PointerLimit <= 0 {
		c.PointerLimit = d.PointerLimit
	}
	if c.PointerRotation == 0 {
		c.PointerRotation = d.PointerRotation
	}
	if c.ParallaxStrength == 0 {
		c.ParallaxStrength = d.ParallaxStrength
	}
	if c.StarPerspective <= 0 {
		c.StarPerspective = d.StarPerspective
	}
	if c.NodePerspective <= 0 {
		c.NodePerspective = d.NodePerspective
	}
	if c.NodeStagger <= 0 {
		c.NodeStagger = d.NodeStagger
	}
	if c.NodeAppearSpan <= 0 {
		c.NodeAppearSpan = d.NodeAppearSpan
	}
	if c.ConnectionDistance <= 0 {
		c.ConnectionDistance = d.ConnectionDistance
	}
	if c.SparkleChance < 0 {
		c.SparkleChance = 0
	}
	if c.ClearColor == (Color{}) {
		c.ClearColor = d.ClearColor
	}
	if c.DarkBackground == (Color{}) {
		c.DarkBackground = d.DarkBackground
	}
	if c.LightBackground == (Color{}) {
		c.LightBackground = d.LightBackground
	}
	if c.CompleteThreshold <= 0 {
		c.CompleteThreshold = d.CompleteThreshold
	}
	return c
}

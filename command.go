package scrollverse

// CommandType identifies the kind of draw command.
type CommandType uint8

const (
	CommandFillCircle    CommandType = iota // filled disc
	CommandStrokeCircle                     // circle outline
	CommandStrokeEllipse                    // rotated ellipse outline
	CommandLine                             // single stroked segment
	CommandFillRect                         // full-canvas wash
	CommandStrokeCross                      // two perpendicular strokes (sparkle)
)

// PaintKind selects how a command is colored.
type PaintKind uint8

const (
	PaintSolid  PaintKind = iota // single color
	PaintRadial                  // radial gradient between two circles
	PaintLinear                  // linear gradient between two points
)

// maxStops is the largest number of color stops any gradient uses.
const maxStops = 6

// ColorStop is a color at an offset in [0, 1] along a gradient.
type ColorStop struct {
	Offset float64
	Color  Color
}

// Paint describes the brush of a command. Stops are stored inline so a frame
// of commands allocates nothing after the buffer reaches its high-water mark.
type Paint struct {
	Kind  PaintKind
	Color Color // PaintSolid

	// Gradient geometry. For PaintRadial, (X0, Y0, R0) is the start circle
	// (focus) and (X1, Y1, R1) the end circle. For PaintLinear, (X0, Y0) and
	// (X1, Y1) are the end points and the radii are unused.
	X0, Y0, R0 float64
	X1, Y1, R1 float64

	Stops    [maxStops]ColorStop
	NumStops uint8
}

// Solid returns a solid paint.
func Solid(c Color) Paint {
	return Paint{Kind: PaintSolid, Color: c}
}

// RadialGradient returns a radial paint centered on (x, y) from radius 0 to r.
func RadialGradient(x, y, r float64, stops ...ColorStop) Paint {
	return FocalGradient(x, y, x, y, r, stops...)
}

// FocalGradient returns a radial paint whose start circle (radius 0) sits at
// (fx, fy) and whose end circle is centered on (x, y) with radius r.
func FocalGradient(fx, fy, x, y, r float64, stops ...ColorStop) Paint {
	p := Paint{Kind: PaintRadial, X0: fx, Y0: fy, X1: x, Y1: y, R1: r}
	p.setStops(stops)
	return p
}

// LinearGradient returns a linear paint from (x0, y0) to (x1, y1).
func LinearGradient(x0, y0, x1, y1 float64, stops ...ColorStop) Paint {
	p := Paint{Kind: PaintLinear, X0: x0, Y0: y0, X1: x1, Y1: y1}
	p.setStops(stops)
	return p
}

func (p *Paint) setStops(stops []ColorStop) {
	n := copy(p.Stops[:], stops)
	p.NumStops = uint8(n)
}

// GradientStops returns the gradient's color stops.
func (p *Paint) GradientStops() []ColorStop {
	return p.Stops[:p.NumStops]
}

// MaxAlpha returns the largest alpha the paint can produce.
func (p *Paint) MaxAlpha() float64 {
	if p.Kind == PaintSolid {
		return p.Color.A
	}
	a := 0.0
	for _, s := range p.GradientStops() {
		a = max(a, s.Color.A)
	}
	return a
}

// stop is shorthand for building gradient stops.
func stop(offset float64, c Color) ColorStop {
	return ColorStop{Offset: offset, Color: c}
}

// Source attributes a command to the visual element that produced it.
type Source uint8

const (
	SourceNone Source = iota
	SourceStarGlow
	SourceStarCore
	SourceNebula
	SourceHaze
	SourceWarpTrail
	SourceWarpCore
	SourceBlackHole
	SourceAccretion
	SourcePlanet
	SourceAtmosphere
	SourceCloud
	SourceContinent
	SourcePlanetGlow
	SourceEnergyField
	SourceConnection
	SourceEnergyDot
	SourceNodeGlow
	SourceNodeRing
	SourceNodeCore
	SourceNodeCenter
	SourceSparkle
	SourceAfterglow
	SourceParticleTrail
	SourceParticleGlow
	SourceParticleCore
	SourceFlash
	SourceShockwave
	SourceMorph
	sourceCount
)

var sourceNames = [sourceCount]string{
	"none", "star-glow", "star-core", "nebula", "haze", "warp-trail",
	"warp-core", "black-hole", "accretion", "planet", "atmosphere", "cloud",
	"continent", "planet-glow", "energy-field", "connection", "energy-dot",
	"node-glow", "node-ring", "node-core", "node-center", "sparkle",
	"afterglow", "particle-trail", "particle-glow", "particle-core", "flash",
	"shockwave", "morph",
}

// String returns the source name used in debug output.
func (s Source) String() string {
	if s < sourceCount {
		return sourceNames[s]
	}
	return "unknown"
}

// Phase returns the phase whose renderer emits s.
func (s Source) Phase() Phase {
	switch {
	case s <= SourceHaze:
		return PhaseStarfield
	case s <= SourceContinent:
		return PhaseWarp
	case s <= SourceSparkle:
		return PhaseNetwork
	default:
		return PhaseExplosion
	}
}

// DrawCommand is a single drawing operation against a 2D surface in canvas
// pixel coordinates.
type DrawCommand struct {
	Type   CommandType
	Source Source
	// Entity is the index of the star, node or particle the command belongs
	// to, or -1. Connections use the lower of the two node indices.
	Entity int

	// X, Y is the circle/ellipse center, the line start or the rect origin.
	X, Y float64
	// X2, Y2 is the line end or the rect size.
	X2, Y2 float64
	// Radius is the circle radius or the ellipse x radius; RadiusY is the
	// ellipse y radius and Rotation its rotation in radians.
	Radius   float64
	RadiusY  float64
	Rotation float64

	LineWidth float64
	Paint     Paint
}

// CommandList is the per-frame command buffer. It is reset, not reallocated,
// at the start of every frame.
type CommandList struct {
	cmds []DrawCommand
}

const defaultCommandCap = 4096

func newCommandList() *CommandList {
	return &CommandList{cmds: make([]DrawCommand, 0, defaultCommandCap)}
}

// Reset empties the list, keeping its storage.
func (l *CommandList) Reset() {
	l.cmds = l.cmds[:0]
}

// Len returns the number of commands.
func (l *CommandList) Len() int {
	return len(l.cmds)
}

// Commands returns the commands in draw order. The slice is only valid until
// the next frame and MUST NOT be mutated.
func (l *CommandList) Commands() []DrawCommand {
	return l.cmds
}

// CountSource returns the number of commands attributed to src.
func (l *CommandList) CountSource(src Source) int {
	n := 0
	for i := range l.cmds {
		if l.cmds[i].Source == src {
			n++
		}
	}
	return n
}

// CountEntity returns the number of commands from src attributed to entity.
func (l *CommandList) CountEntity(src Source, entity int) int {
	n := 0
	for i := range l.cmds {
		if l.cmds[i].Source == src && l.cmds[i].Entity == entity {
			n++
		}
	}
	return n
}

// CountPhase returns the number of commands emitted by the renderer of ph.
func (l *CommandList) CountPhase(ph Phase) int {
	n := 0
	for i := range l.cmds {
		if l.cmds[i].Source != SourceNone && l.cmds[i].Source.Phase() == ph {
			n++
		}
	}
	return n
}

func (l *CommandList) push(cmd DrawCommand) {
	l.cmds = append(l.cmds, cmd)
}

// FillCircle appends a filled disc.
func (l *CommandList) FillCircle(src Source, entity int, x, y, r float64, paint Paint) {
	l.push(DrawCommand{Type: CommandFillCircle, Source: src, Entity: entity, X: x, Y: y, Radius: r, Paint: paint})
}

// StrokeCircle appends a circle outline.
func (l *CommandList) StrokeCircle(src Source, entity int, x, y, r, width float64, paint Paint) {
	l.push(DrawCommand{Type: CommandStrokeCircle, Source: src, Entity: entity, X: x, Y: y, Radius: r, LineWidth: width, Paint: paint})
}

// StrokeEllipse appends a rotated ellipse outline.
func (l *CommandList) StrokeEllipse(src Source, entity int, x, y, rx, ry, rotation, width float64, paint Paint) {
	l.push(DrawCommand{
		Type: CommandStrokeEllipse, Source: src, Entity: entity,
		X: x, Y: y, Radius: rx, RadiusY: ry, Rotation: rotation,
		LineWidth: width, Paint: paint,
	})
}

// Line appends a stroked segment from (x1, y1) to (x2, y2).
func (l *CommandList) Line(src Source, entity int, x1, y1, x2, y2, width float64, paint Paint) {
	l.push(DrawCommand{Type: CommandLine, Source: src, Entity: entity, X: x1, Y: y1, X2: x2, Y2: y2, LineWidth: width, Paint: paint})
}

// FillRect appends a filled rectangle, used for full-canvas washes.
func (l *CommandList) FillRect(src Source, x, y, w, h float64, paint Paint) {
	l.push(DrawCommand{Type: CommandFillRect, Source: src, Entity: -1, X: x, Y: y, X2: w, Y2: h, Paint: paint})
}

// StrokeCross appends a horizontal and a vertical stroke of half-length r
// centered on (x, y).
func (l *CommandList) StrokeCross(src Source, entity int, x, y, r, width float64, paint Paint) {
	l.push(DrawCommand{Type: CommandStrokeCross, Source: src, Entity: entity, X: x, Y: y, Radius: r, LineWidth: width, Paint: paint})
}

package scrollverse

import (
	"cmp"
	"math"
	"slices"
)

const (
	networkYawRate    = 0.8
	networkPitchRate  = 0.3
	networkPitchSwing = 0.3
	pulseBase         = 8
	pulseSwing        = 3
	pulseRate         = 5
	nodeFadeNear      = -400 // depth fade of nodes and connections spans [-400, 400]
	nodeFadeFar       = 400
	energyFieldRadius = 400
	planetGlowRadius  = 500
	planetGlowFade    = 0.6
	connectionAlpha   = 0.4
	energyDotRadius   = 3
	energyFlowRate    = 2
)

var (
	gold       = RGB8(234, 179, 8, 1)
	goldBright = RGB8(255, 215, 0, 1)
	leafGreen  = RGB8(34, 197, 94, 1)
)

// projectedNode is a per-frame transient view of a Node.
type projectedNode struct {
	index  int
	pulse  float64
	screen Vec2
	proj   Projection
	appear float64
}

// NetworkRotation returns the yaw and pitch of the node sphere at time t with
// the given smoothed pointer and pointer gain.
func NetworkRotation(t float64, pointer Vec2, gain float64) (yaw, pitch float64) {
	yaw = t*networkYawRate + pointer.X*gain
	pitch = math.Sin(t*networkPitchRate)*networkPitchSwing + pointer.Y*gain
	return yaw, pitch
}

// NodeAppear returns how far node index has powered on at network-band local
// progress q. Each node starts stagger later than the previous one and takes
// span to reach full strength, which sweeps the sphere on in sequence.
func NodeAppear(q float64, index int, stagger, span float64) float64 {
	return clamp01((q - float64(index)*stagger) / span)
}

// nodePulse returns the unscaled pulsing radius of a node.
func nodePulse(n *Node, t float64) float64 {
	return pulseBase + math.Sin(n.Pulse+t*pulseRate)*pulseSwing
}

// projectNodes rotates the node sphere by yaw then pitch, projects every node
// and returns the visible ones sorted by ascending depth. appear is evaluated for
// each node when non-nil.
func projectNodes(f *Frame, yaw, pitch float64, appear func(index int) float64) []projectedNode {
	d := f.cfg.NodePerspective
	buf := f.nodeBuf[:0]
	for i := range f.nodes {
		n := &f.nodes[i]
		r := RotateYZ(RotateXZ(n.Position, yaw), pitch)
		p, ok := Project(r, d)
		if !ok {
			continue
		}
		pn := projectedNode{
			index:  i,
			pulse:  nodePulse(n, f.Time),
			screen: Vec2{f.Center.X + p.Offset.X, f.Center.Y + p.Offset.Y},
			proj:   p,
		}
		if appear != nil {
			pn.appear = appear(n.Index)
		}
		buf = append(buf, pn)
	}
	// Smaller z is drawn first.
	slices.SortFunc(buf, func(a, b projectedNode) int {
		return cmp.Compare(a.proj.Depth, b.proj.Depth)
	})
	f.nodeBuf = buf
	return buf
}

type networkRenderer struct{}

func (networkRenderer) Render(f *Frame, q float64) {
	out := f.out
	cfg := f.cfg
	w, h := float64(f.Size.Width), float64(f.Size.Height)
	cx, cy := f.Center.X, f.Center.Y

	// The planet from the previous band fades out underneath the sphere.
	k := 1 - q*planetGlowFade
	out.FillRect(SourcePlanetGlow, 0, 0, w, h, RadialGradient(cx, cy, planetGlowRadius,
		stop(0, nebulaBlue.WithAlpha(0.3*k)),
		stop(0.4, leafGreen.WithAlpha(0.2*k)),
		stop(1, ColorTransparent),
	))

	yaw, pitch := NetworkRotation(f.Time, f.Pointer, cfg.PointerRotation)
	nodes := projectNodes(f, yaw, pitch, func(index int) float64 {
		return NodeAppear(q, index, cfg.NodeStagger, cfg.NodeAppearSpan)
	})

	drawConnections(f, nodes)
	for i := range nodes {
		drawNode(f, &nodes[i])
	}

	out.FillRect(SourceEnergyField, 0, 0, w, h, RadialGradient(cx, cy, energyFieldRadius,
		stop(0, gold.WithAlpha(0)),
		stop(0.5, gold.WithAlpha(0.05*q)),
		stop(1, gold.WithAlpha(0)),
	))
}

// drawConnections links every pair of powered-on nodes closer than the
// connection distance on screen, with an energy dot flowing along each link.
func drawConnections(f *Frame, nodes []projectedNode) {
	out := f.out
	limit := f.cfg.ConnectionDistance
	for i := range nodes {
		a := &nodes[i]
		if a.appear <= 0 {
			continue
		}
		for j := i + 1; j < len(nodes); j++ {
			b := &nodes[j]
			if b.appear <= 0 {
				continue
			}
			dx := a.screen.X - b.screen.X
			dy := a.screen.Y - b.screen.Y
			dist := math.Hypot(dx, dy)
			if dist >= limit {
				continue
			}
			fade := DepthFade((a.proj.Depth+b.proj.Depth)/2, nodeFadeNear, nodeFadeFar)
			strength := a.appear * b.appear * fade
			entity := min(a.index, b.index)

			out.Line(SourceConnection, entity, a.screen.X, a.screen.Y, b.screen.X, b.screen.Y, 2,
				Solid(gold.WithAlpha(clamp01(connectionAlpha*strength*(1-dist/limit)))))

			flow := math.Mod(f.Time*energyFlowRate+float64(a.index+b.index), 1)
			fx := lerp(a.screen.X, b.screen.X, flow)
			fy := lerp(a.screen.Y, b.screen.Y, flow)
			out.FillCircle(SourceEnergyDot, entity, fx, fy, energyDotRadius,
				Solid(starWhite.WithAlpha(clamp01(0.8*strength))))
		}
	}
}

// drawNode draws a powered-on node as four layers, outermost first, and
// occasionally a sparkle.
func drawNode(f *Frame, n *projectedNode) {
	if n.appear <= 0 {
		return
	}
	out := f.out
	x, y := n.screen.X, n.screen.Y
	fade := DepthFade(n.proj.Depth, nodeFadeNear, nodeFadeFar)
	a := n.appear * fade
	size := n.pulse * n.proj.Scale

	out.FillCircle(SourceNodeGlow, n.index, x, y, size*5, RadialGradient(x, y, size*5,
		stop(0, gold.WithAlpha(0.9*a)),
		stop(0.2, gold.WithAlpha(0.6*a)),
		stop(0.5, gold.WithAlpha(0.3*a)),
		stop(1, gold.WithAlpha(0)),
	))
	out.StrokeCircle(SourceNodeRing, n.index, x, y, size*2, 2, Solid(goldBright.WithAlpha(0.6*a)))
	out.FillCircle(SourceNodeCore, n.index, x, y, size, Solid(gold.WithAlpha(a)))
	out.FillCircle(SourceNodeCenter, n.index, x, y, size*0.5, Solid(starWhite.WithAlpha(0.9*a)))

	if f.cfg.SparkleChance > 0 && f.rng.Float64() < f.cfg.SparkleChance {
		out.StrokeCross(SourceSparkle, n.index, x, y, size*1.5, 1, Solid(starWhite.WithAlpha(0.8*a)))
	}
}

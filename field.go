package scrollverse

import (
	"math"
	"math/rand/v2"
)

// Star is one member of the star field. Stars are generated once per engine
// and never mutated; renderers project them into per-frame transient lists.
type Star struct {
	Position Vec3
	Angle    float64 // angle on the shell, radians
	Distance float64 // distance from the axis, [0, 1000)
	Size     float64 // intrinsic radius in pixels at scale 1
	Opacity  float64
	Speed    float64
	Twinkle  float64 // twinkle phase offset, derived from Angle
}

// Node is one member of the node sphere.
type Node struct {
	Position Vec3
	Theta    float64
	Radius   float64
	Pulse    float64 // pulse phase, radians
	Index    int     // stagger index
}

var (
	starDistance = Range{0, 1000}
	starDepth    = Range{-1000, 1000}
	starSize     = Range{0.5, 3}
	starOpacity  = Range{0.3, 1}
	starSpeed    = Range{0.1, 0.4}
	nodeRadius   = Range{300, 400}
)

// GenerateStars places count stars on a random shell around the camera axis.
func GenerateStars(rng *rand.Rand, count int) []Star {
	stars := make([]Star, count)
	for i := range stars {
		angle := rng.Float64() * 2 * math.Pi
		dist := starDistance.Random(rng)
		sin, cos := math.Sincos(angle)
		stars[i] = Star{
			Position: Vec3{X: cos * dist, Y: sin * dist, Z: starDepth.Random(rng)},
			Angle:    angle,
			Distance: dist,
			Size:     starSize.Random(rng),
			Opacity:  starOpacity.Random(rng),
			Speed:    starSpeed.Random(rng),
			Twinkle:  angle * 10,
		}
	}
	return stars
}

// GenerateNodes places count nodes uniformly on a sphere shell. The polar
// angle is drawn as acos(2u-1) so nodes do not bunch at the poles.
func GenerateNodes(rng *rand.Rand, count int) []Node {
	nodes := make([]Node, count)
	for i := range nodes {
		theta := rng.Float64() * 2 * math.Pi
		phi := math.Acos(2*rng.Float64() - 1)
		radius := nodeRadius.Random(rng)
		sinPhi, cosPhi := math.Sincos(phi)
		sinTheta, cosTheta := math.Sincos(theta)
		nodes[i] = Node{
			Position: Vec3{
				X: radius * sinPhi * cosTheta,
				Y: radius * sinPhi * sinTheta,
				Z: radius * cosPhi,
			},
			Theta:  theta,
			Radius: radius,
			Pulse:  rng.Float64() * 2 * math.Pi,
			Index:  i,
		}
	}
	return nodes
}

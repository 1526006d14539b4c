package physics

import (
	"math/rand/v2"

	"github.com/wesen/forcegraph/pkg/graphmodel"
)

// Center translates all nodes so their mean position sits at (X, Y). It
// moves positions directly and does not touch velocities.
type Center struct {
	X, Y     float64
	Strength float64 // default 1

	nodes []*graphmodel.Node
}

// NewCenter returns a Center force at (x, y).
func NewCenter(x, y float64) *Center {
	return &Center{X: x, Y: y, Strength: 1}
}

func (c *Center) Initialize(nodes []*graphmodel.Node, _ *rand.Rand) { c.nodes = nodes }

func (c *Center) Apply(float64) {
	if len(c.nodes) == 0 {
		return
	}
	var sx, sy float64
	for _, n := range c.nodes {
		sx += n.X
		sy += n.Y
	}
	k := float64(len(c.nodes))
	sx = (sx/k - c.X) * c.Strength
	sy = (sy/k - c.Y) * c.Strength
	for _, n := range c.nodes {
		n.X -= sx
		n.Y -= sy
	}
}

// Position pulls every node toward a target coordinate on one axis.
type Position struct {
	Target   float64
	Strength float64 // default 0.1

	vertical bool
	nodes    []*graphmodel.Node
}

// NewPositionX pulls nodes toward x.
func NewPositionX(x float64) *Position {
	return &Position{Target: x, Strength: 0.1}
}

// NewPositionY pulls nodes toward y.
func NewPositionY(y float64) *Position {
	return &Position{Target: y, Strength: 0.1, vertical: true}
}

func (p *Position) Initialize(nodes []*graphmodel.Node, _ *rand.Rand) { p.nodes = nodes }

func (p *Position) Apply(alpha float64) {
	k := p.Strength * alpha
	for _, n := range p.nodes {
		if p.vertical {
			n.VY += (p.Target - n.Y) * k
		} else {
			n.VX += (p.Target - n.X) * k
		}
	}
}

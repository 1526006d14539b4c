package physics

import (
	"math"
	"math/rand/v2"

	"github.com/wesen/forcegraph/pkg/graphmodel"
)

// Band is a distance-banded pair force. Pairs closer than the sum of their
// radii plus Padding are pushed apart; pairs within Outer beyond that are
// pulled gently together; farther pairs are left alone. Every pair is
// visited, so the cost is quadratic in the node count.
type Band struct {
	Padding float64 // gap kept between circle edges
	Repel   float64 // share of the overlap corrected per tick
	Attract float64 // pull strength inside the outer band
	Outer   float64 // width of the attraction band

	nodes []*graphmodel.Node
	rnd   *rand.Rand
}

// NewBand returns a band force with the given parameters.
func NewBand(padding, repel, attract, outer float64) *Band {
	return &Band{Padding: padding, Repel: repel, Attract: attract, Outer: outer}
}

func (b *Band) Initialize(nodes []*graphmodel.Node, rnd *rand.Rand) {
	b.nodes = nodes
	b.rnd = rnd
}

func (b *Band) Apply(alpha float64) {
	for i, p := range b.nodes {
		for _, q := range b.nodes[i+1:] {
			x, y := q.X-p.X, q.Y-p.Y
			if x == 0 && y == 0 {
				x, y = jiggle(b.rnd), jiggle(b.rnd)
			}
			d := math.Sqrt(x*x + y*y)
			inner := p.R + q.R + b.Padding

			var k float64
			switch {
			case d < inner:
				k = -(inner - d) / d * b.Repel
			case d < inner+b.Outer:
				k = (d - inner) / d * b.Attract * alpha
			default:
				continue
			}
			// Split evenly: positive k pulls together, negative pushes apart.
			x *= k / 2
			y *= k / 2
			p.VX += x
			p.VY += y
			q.VX -= x
			q.VY -= y
		}
	}
}

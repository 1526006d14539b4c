package physics

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/barneshut"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/wesen/forcegraph/pkg/graphmodel"
)

// StrengthFunc derives a per-node strength.
type StrengthFunc func(n *graphmodel.Node, i int) float64

// ManyBody is the n-body charge force. Negative strengths repel. When all
// strengths share a sign it is approximated with a Barnes-Hut quadtree;
// otherwise, or when the tree cannot be built, every pair is summed.
type ManyBody struct {
	DistanceMin float64 // default 1
	DistanceMax float64 // default +Inf
	Theta       float64 // Barnes-Hut opening angle, default 0.9

	strength  StrengthFunc
	nodes     []*graphmodel.Node
	strengths []float64
	rnd       *rand.Rand

	bodies    []body
	particles []barneshut.Particle2
}

// NewManyBody returns a many-body force with the given strength function;
// nil means a constant -30.
func NewManyBody(strength StrengthFunc) *ManyBody {
	return &ManyBody{
		DistanceMin: 1,
		DistanceMax: math.Inf(1),
		Theta:       0.9,
		strength:    strength,
	}
}

// SetStrength replaces the strength function and recomputes strengths.
func (m *ManyBody) SetStrength(fn StrengthFunc) {
	m.strength = fn
	m.computeStrengths()
}

// Strengths returns the per-node strengths computed at initialization.
func (m *ManyBody) Strengths() []float64 { return m.strengths }

func (m *ManyBody) Initialize(nodes []*graphmodel.Node, rnd *rand.Rand) {
	m.nodes = nodes
	m.rnd = rnd
	m.computeStrengths()
}

func (m *ManyBody) computeStrengths() {
	m.strengths = m.strengths[:0]
	for i, n := range m.nodes {
		s := -30.0
		if m.strength != nil {
			s = m.strength(n, i)
		}
		m.strengths = append(m.strengths, s)
	}
}

// body adapts a node to barneshut.Particle2. Mass is |strength|.
type body struct {
	n    *graphmodel.Node
	mass float64
}

func (b *body) Coord2() r2.Vec { return r2.Vec{X: b.n.X, Y: b.n.Y} }
func (b *body) Mass() float64  { return b.mass }

func (m *ManyBody) Apply(alpha float64) {
	if len(m.nodes) < 2 {
		return
	}
	sign, ok := m.uniformSign()
	if sign == 0 {
		return
	}
	if ok && m.Theta > 0 && m.applyTree(alpha, sign) {
		return
	}
	m.applyNaive(alpha)
}

// uniformSign returns -1 or 1 when every non-zero strength has that sign,
// and 0 when all strengths are zero.
func (m *ManyBody) uniformSign() (sign float64, ok bool) {
	for _, s := range m.strengths {
		switch {
		case s == 0:
		case sign == 0:
			sign = math.Copysign(1, s)
		case math.Copysign(1, s) != sign:
			return sign, false
		}
	}
	return sign, true
}

func (m *ManyBody) applyTree(alpha, sign float64) bool {
	if cap(m.bodies) < len(m.nodes) {
		m.bodies = make([]body, len(m.nodes))
		m.particles = make([]barneshut.Particle2, len(m.nodes))
	}
	m.bodies = m.bodies[:len(m.nodes)]
	m.particles = m.particles[:len(m.nodes)]
	for i, n := range m.nodes {
		// Zero-mass tiles would poison the centers of mass.
		m.bodies[i] = body{n: n, mass: math.Max(math.Abs(m.strengths[i]), 1e-12)}
		m.particles[i] = &m.bodies[i]
	}
	plane, err := barneshut.NewPlane(m.particles)
	if err != nil {
		return false
	}

	min2 := m.DistanceMin * m.DistanceMin
	max2 := m.DistanceMax * m.DistanceMax
	force := func(p1, p2 barneshut.Particle2, _, m2 float64, v r2.Vec) r2.Vec {
		if p2 != nil {
			if p1 == p2 {
				return r2.Vec{}
			}
			// Leaf tiles: measure from the particle itself.
			v = r2.Sub(p2.Coord2(), p1.Coord2())
		}
		l := v.X*v.X + v.Y*v.Y
		if l >= max2 {
			return r2.Vec{}
		}
		if l == 0 {
			v = r2.Vec{X: jiggle(m.rnd), Y: jiggle(m.rnd)}
			l = v.X*v.X + v.Y*v.Y
		}
		if l < min2 {
			l = math.Sqrt(min2 * l)
		}
		return r2.Scale(sign*m2/l, v)
	}

	for i := range m.bodies {
		f := plane.ForceOn(&m.bodies[i], m.Theta, force)
		n := m.bodies[i].n
		n.VX += f.X * alpha
		n.VY += f.Y * alpha
	}
	return true
}

func (m *ManyBody) applyNaive(alpha float64) {
	min2 := m.DistanceMin * m.DistanceMin
	max2 := m.DistanceMax * m.DistanceMax
	for i, a := range m.nodes {
		for j, b := range m.nodes {
			if i == j {
				continue
			}
			x, y := b.X-a.X, b.Y-a.Y
			l := x*x + y*y
			if l >= max2 {
				continue
			}
			if l == 0 {
				x, y = jiggle(m.rnd), jiggle(m.rnd)
				l = x*x + y*y
			}
			if l < min2 {
				l = math.Sqrt(min2 * l)
			}
			w := m.strengths[j] * alpha / l
			a.VX += x * w
			a.VY += y * w
		}
	}
}

package physics

import (
	"math"
	"math/rand/v2"

	"github.com/wesen/forcegraph/pkg/graphmodel"
)

// LinkFunc derives a per-link parameter.
type LinkFunc func(l *graphmodel.Link) float64

// Link is a spring between linked nodes pulling them toward a rest
// distance. The default strength is 1/min(degree(source), degree(target)),
// and the correction is split between endpoints by relative degree so that
// hubs move less.
type Link struct {
	Iterations int // default 1

	links    []*graphmodel.Link
	distance LinkFunc
	strength LinkFunc

	distances []float64
	strengths []float64
	bias      []float64
	rnd       *rand.Rand
	ready     bool
}

// NewLink returns a link force over links with the given rest-distance
// function; nil means a constant 30.
func NewLink(links []*graphmodel.Link, distance LinkFunc) *Link {
	return &Link{Iterations: 1, links: links, distance: distance}
}

// SetLinks replaces the link set.
func (f *Link) SetLinks(links []*graphmodel.Link) {
	f.links = links
	f.recompute()
}

// SetDistance replaces the rest-distance function.
func (f *Link) SetDistance(fn LinkFunc) {
	f.distance = fn
	f.recompute()
}

// SetStrength overrides the degree-based default strength; nil restores it.
func (f *Link) SetStrength(fn LinkFunc) {
	f.strength = fn
	f.recompute()
}

// Distances returns the rest distances computed at initialization.
func (f *Link) Distances() []float64 { return f.distances }

// Strengths returns the strengths computed at initialization.
func (f *Link) Strengths() []float64 { return f.strengths }

func (f *Link) Initialize(_ []*graphmodel.Node, rnd *rand.Rand) {
	f.rnd = rnd
	f.ready = true
	f.recompute()
}

func (f *Link) recompute() {
	if !f.ready {
		return
	}
	count := make(map[*graphmodel.Node]int, len(f.links))
	for _, l := range f.links {
		count[l.Source]++
		count[l.Target]++
	}

	f.distances = f.distances[:0]
	f.strengths = f.strengths[:0]
	f.bias = f.bias[:0]
	for _, l := range f.links {
		cs, ct := float64(count[l.Source]), float64(count[l.Target])
		f.bias = append(f.bias, cs/(cs+ct))

		s := 1 / math.Min(cs, ct)
		if f.strength != nil {
			s = f.strength(l)
		}
		f.strengths = append(f.strengths, s)

		d := 30.0
		if f.distance != nil {
			d = f.distance(l)
		}
		f.distances = append(f.distances, d)
	}
}

func (f *Link) Apply(alpha float64) {
	for range max(f.Iterations, 1) {
		for i, l := range f.links {
			src, tgt := l.Source, l.Target
			x := tgt.X + tgt.VX - src.X - src.VX
			y := tgt.Y + tgt.VY - src.Y - src.VY
			if x == 0 {
				x = jiggle(f.rnd)
			}
			if y == 0 {
				y = jiggle(f.rnd)
			}
			d := math.Sqrt(x*x + y*y)
			k := (d - f.distances[i]) / d * alpha * f.strengths[i]
			x *= k
			y *= k
			b := f.bias[i]
			tgt.VX -= x * b
			tgt.VY -= y * b
			src.VX += x * (1 - b)
			src.VY += y * (1 - b)
		}
	}
}

// Package lasso implements free-form polygon selection: a path grows one
// pointer sample at a time and is implicitly closed between its last and
// first point for containment tests.
package lasso

import (
	"math"

	"github.com/wesen/forcegraph/pkg/graphmodel"
)

// Path is an open polyline that is treated as closed for hit testing.
type Path struct {
	pts    []graphmodel.Vec
	bounds graphmodel.Rect
}

// Add appends a point to the path.
func (p *Path) Add(pt graphmodel.Vec) {
	if len(p.pts) == 0 {
		p.bounds = graphmodel.Rect{Min: pt, Max: pt}
	} else {
		p.bounds.Min.X = math.Min(p.bounds.Min.X, pt.X)
		p.bounds.Min.Y = math.Min(p.bounds.Min.Y, pt.Y)
		p.bounds.Max.X = math.Max(p.bounds.Max.X, pt.X)
		p.bounds.Max.Y = math.Max(p.bounds.Max.Y, pt.Y)
	}
	p.pts = append(p.pts, pt)
}

// Reset empties the path, keeping its backing array.
func (p *Path) Reset() {
	p.pts = p.pts[:0]
	p.bounds = graphmodel.Rect{}
}

// Len returns the number of points.
func (p *Path) Len() int { return len(p.pts) }

// Points returns the path's points. The slice is owned by the path.
func (p *Path) Points() []graphmodel.Vec { return p.pts }

// Bounds returns the bounding box of the points.
func (p *Path) Bounds() graphmodel.Rect { return p.bounds }

// Contains reports whether pt is inside the closed path. Paths with fewer
// than three points enclose nothing.
func (p *Path) Contains(pt graphmodel.Vec) bool {
	if len(p.pts) < 3 {
		return false
	}
	b := p.bounds
	if pt.X < b.Min.X || pt.X > b.Max.X || pt.Y < b.Min.Y || pt.Y > b.Max.Y {
		return false
	}
	return Contains(p.pts, pt)
}

// Contains runs an even-odd ray cast from pt toward +X against the polygon
// poly, closing it between the last and first vertex.
func Contains(poly []graphmodel.Vec, pt graphmodel.Vec) bool {
	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			x := (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y) + a.X
			if pt.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// Select returns the placed nodes of g whose centers lie inside the path,
// in live order.
func (p *Path) Select(g *graphmodel.Graph) []*graphmodel.Node {
	var out []*graphmodel.Node
	for _, n := range g.Nodes() {
		if n.Placed() && p.Contains(n.Center()) {
			out = append(out, n)
		}
	}
	return out
}

package graphmodel

import "math"

// Class is a node's visual classification during lasso selection.
type Class int

const (
	ClassNone Class = iota
	ClassNotPossible
	ClassPossible
	ClassSelected
)

func (c Class) String() string {
	switch c {
	case ClassNotPossible:
		return "not-possible"
	case ClassPossible:
		return "possible"
	case ClassSelected:
		return "selected"
	}
	return ""
}

// Node is a live, simulated node. ID is the stable identity key; every
// other field is mutable. A node that has not been placed yet has NaN
// coordinates.
type Node struct {
	ID     string
	Radius float64 // relative size from the data, 0 when absent
	Color  ColorValue

	X, Y   float64
	VX, VY float64
	FX, FY *float64 // pinned position, non-nil while dragged

	R     float64 // rendered radius in pixels
	Class Class
}

// Pin fixes the node at (x, y) until Unpin.
func (n *Node) Pin(x, y float64) {
	n.FX, n.FY = &x, &y
}

// Unpin releases the node back to the simulation.
func (n *Node) Unpin() {
	n.FX, n.FY = nil, nil
}

// Pinned reports whether the node has a fixed position.
func (n *Node) Pinned() bool { return n.FX != nil && n.FY != nil }

// Link connects two live nodes.
type Link struct {
	Source, Target *Node
	Index          int
	Width          float64 // relative thickness from the data, 0 when absent
	W              float64 // rendered stroke width in pixels
}

// Graph owns the live node and link slices. Node pointers are stable for
// as long as their id stays in the data; the slices are edited in place.
type Graph struct {
	nodes []*Node
	index map[string]*Node
	links []*Link
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{index: make(map[string]*Node)}
}

// Node returns the node with the given id, or nil.
func (g *Graph) Node(id string) *Node {
	return g.index[id]
}

// Nodes returns the live node slice in insertion order. Callers must not
// append to or reslice it.
func (g *Graph) Nodes() []*Node {
	return g.nodes
}

// Links returns the live link slice.
func (g *Graph) Links() []*Link {
	return g.links
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Degree returns the number of links touching n.
func (g *Graph) Degree(n *Node) int {
	d := 0
	for _, l := range g.links {
		if l.Source == n {
			d++
		}
		if l.Target == n {
			d++
		}
	}
	return d
}

// ── Sizing ──

// NormalizeRadii sets R on every node: relative radii scale linearly so
// the largest becomes maxRadius; nodes without a radius get def.
func (g *Graph) NormalizeRadii(def, maxRadius float64) {
	maxFound := 0.0
	for _, n := range g.nodes {
		maxFound = math.Max(maxFound, n.Radius)
	}
	if maxFound == 0 {
		maxFound = 1
	}
	for _, n := range g.nodes {
		n.R = scaled(n.Radius, maxRadius, maxFound, def)
	}
}

// NormalizeWidths sets W on every link the same way NormalizeRadii does
// for nodes.
func (g *Graph) NormalizeWidths(def, maxWidth float64) {
	maxFound := 0.0
	for _, l := range g.links {
		maxFound = math.Max(maxFound, l.Width)
	}
	if maxFound == 0 {
		maxFound = 1
	}
	for _, l := range g.links {
		l.W = scaled(l.Width, maxWidth, maxFound, def)
	}
}

func scaled(v, maxOut, maxFound, def float64) float64 {
	if out := v * maxOut / maxFound; out > 0 {
		return out
	}
	return def
}

// ── Spatial queries ──

// HitTest returns the topmost (last in order) node whose circle contains
// p, or nil.
func (g *Graph) HitTest(p Vec) *Node {
	for i := len(g.nodes) - 1; i >= 0; i-- {
		n := g.nodes[i]
		if n.Placed() && n.Contains(p) {
			return n
		}
	}
	return nil
}

// NodesInRect returns all nodes whose circles intersect r, in order.
func (g *Graph) NodesInRect(r Rect) []*Node {
	var result []*Node
	for _, n := range g.nodes {
		if n.Placed() && r.Overlaps(n.Center(), n.R) {
			result = append(result, n)
		}
	}
	return result
}

// ResetClasses clears every node's lasso classification.
func (g *Graph) ResetClasses() {
	for _, n := range g.nodes {
		n.Class = ClassNone
	}
}

// Package graphmodel holds the live node/link state of a force-directed
// graph: identity-keyed nodes with simulated positions, links resolved to
// node pointers, stable iteration order, incremental reconciliation, and
// hit testing.
package graphmodel

import "math"

// Vec is a point or displacement in layer coordinates (pixels).
type Vec struct {
	X, Y float64
}

// Add returns v+w.
func (v Vec) Add(w Vec) Vec { return Vec{v.X + w.X, v.Y + w.Y} }

// Sub returns v-w.
func (v Vec) Sub(w Vec) Vec { return Vec{v.X - w.X, v.Y - w.Y} }

// Scale returns v scaled by f.
func (v Vec) Scale(f float64) Vec { return Vec{v.X * f, v.Y * f} }

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Rect is an axis-aligned rectangle, Min inclusive, Max exclusive.
type Rect struct {
	Min, Max Vec
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Overlaps reports whether the circle at c with radius rad intersects r.
func (r Rect) Overlaps(c Vec, rad float64) bool {
	nx := math.Max(r.Min.X, math.Min(c.X, r.Max.X))
	ny := math.Max(r.Min.Y, math.Min(c.Y, r.Max.Y))
	dx, dy := c.X-nx, c.Y-ny
	return dx*dx+dy*dy <= rad*rad
}

// Center returns the node's position as a Vec.
func (n *Node) Center() Vec { return Vec{n.X, n.Y} }

// Contains reports whether p falls within the node's rendered circle.
func (n *Node) Contains(p Vec) bool {
	dx, dy := p.X-n.X, p.Y-n.Y
	return dx*dx+dy*dy <= n.R*n.R
}

// Placed reports whether the node has been given a position yet.
func (n *Node) Placed() bool {
	return !math.IsNaN(n.X) && !math.IsNaN(n.Y)
}

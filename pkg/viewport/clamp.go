package viewport

import "github.com/wesen/forcegraph/pkg/graphmodel"

// Axis selects a layer dimension.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Bounds is the layer rectangle [0,Width]×[0,Height] that node centers are
// clamped into. Padding is an extra margin in screen pixels.
type Bounds struct {
	Width, Height float64
	Padding       float64
}

// Size returns the extent of the given axis.
func (b Bounds) Size(axis Axis) float64 {
	if axis == AxisY {
		return b.Height
	}
	return b.Width
}

// Clamp limits center c on axis so a circle of the given radius stays
// inside the layer with Padding/k to spare. When the axis is too small for
// the circle the axis midpoint is returned.
func (b Bounds) Clamp(c float64, axis Axis, radius, k float64) float64 {
	if k <= 0 {
		k = 1
	}
	size := b.Size(axis)
	m := radius + b.Padding/k
	lo, hi := m, size-m
	if lo > hi {
		return size / 2
	}
	return clamp(c, lo, hi)
}

// ClampNode applies Clamp to both coordinates of a placed node.
func (b Bounds) ClampNode(n *graphmodel.Node, k float64) {
	if !n.Placed() {
		return
	}
	n.X = b.Clamp(n.X, AxisX, n.R, k)
	n.Y = b.Clamp(n.Y, AxisY, n.R, k)
}

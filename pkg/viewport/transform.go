// Package viewport holds the view-side geometry of the graph canvas: the
// pan/zoom transform between layer and screen coordinates, the stepped
// zoom table, and the boundary clamp that keeps nodes inside the layer.
package viewport

import (
	"math"

	"github.com/wesen/forcegraph/pkg/graphmodel"
)

// Transform maps layer coordinates to screen coordinates:
// screen = layer*K + (X, Y).
type Transform struct {
	K, X, Y float64
}

// Identity is the transform with scale 1 and no offset.
var Identity = Transform{K: 1}

// Apply maps a layer point to the screen.
func (t Transform) Apply(p graphmodel.Vec) graphmodel.Vec {
	return graphmodel.Vec{X: p.X*t.K + t.X, Y: p.Y*t.K + t.Y}
}

// Invert maps a screen point back into the layer.
func (t Transform) Invert(p graphmodel.Vec) graphmodel.Vec {
	return graphmodel.Vec{X: (p.X - t.X) / t.K, Y: (p.Y - t.Y) / t.K}
}

// Translate shifts the offset by a raw screen delta.
func (t Transform) Translate(dx, dy float64) Transform {
	t.X += dx
	t.Y += dy
	return t
}

// WithScale replaces the scale and keeps the offset.
func (t Transform) WithScale(k float64) Transform {
	t.K = k
	return t
}

// ZoomAt rescales to k while keeping the layer point under screen point p
// fixed.
func (t Transform) ZoomAt(k float64, p graphmodel.Vec) Transform {
	l := t.Invert(p)
	return Transform{K: k, X: p.X - l.X*k, Y: p.Y - l.Y*k}
}

// Constrain limits the offset so a w×h viewport never shows anything
// outside the [0,w]×[0,h] layer.
func (t Transform) Constrain(w, h float64) Transform {
	t.X = clamp(t.X, w-w*t.K, 0)
	t.Y = clamp(t.Y, h-h*t.K, 0)
	return t
}

// Extent is the allowed range for the zoom scale.
type Extent struct {
	Min, Max float64
}

// DefaultExtent is the scale range of wheel zoom.
var DefaultExtent = Extent{Min: 1, Max: 5}

// Clamp limits k to the extent.
func (e Extent) Clamp(k float64) float64 {
	return clamp(k, e.Min, e.Max)
}

func clamp(v, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	return math.Max(lo, math.Min(hi, v))
}

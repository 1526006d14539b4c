package engine

import (
	"math"

	"github.com/wesen/forcegraph/internal/scene"
)

// bind projects the live graph into e.scene. Unplaced nodes and links
// touching them are skipped.
func (e *Engine) bind() {
	s := &e.scene
	s.Width, s.Height = e.fig.Width, e.fig.Height
	s.Transform = e.transform
	s.Mode = e.mode.String()
	s.Frame = e.sim.Ticks()

	s.Nodes = s.Nodes[:0]
	for _, n := range e.graph.Nodes() {
		if !n.Placed() {
			continue
		}
		s.Nodes = append(s.Nodes, scene.Node{
			ID:     n.ID,
			X:      n.X,
			Y:      n.Y,
			R:      n.R * emphasis(n.Class),
			Fill:   e.fills[n],
			Class:  n.Class,
			Pinned: n.Pinned(),
		})
	}

	s.Links = s.Links[:0]
	for _, l := range e.graph.Links() {
		src, tgt := l.Source, l.Target
		if !src.Placed() || !tgt.Placed() {
			continue
		}
		ux, uy := unit(tgt.X-src.X, tgt.Y-src.Y)
		s.Links = append(s.Links, scene.Link{
			Source: src.ID,
			Target: tgt.ID,
			X1:     src.X,
			Y1:     src.Y,
			X2:     tgt.X,
			Y2:     tgt.Y,
			Width:  l.W,
			From:   e.fills[src],
			To:     e.fills[tgt],
			GX1:    0.5 - 0.5*ux,
			GY1:    0.5 - 0.5*uy,
			GX2:    0.5 + 0.5*ux,
			GY2:    0.5 + 0.5*uy,
		})
	}

	s.Lasso = append(s.Lasso[:0], e.path.Points()...)
}

// unit returns the direction of (x, y), or +X for a zero vector.
func unit(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 1, 0
	}
	return x / l, y / l
}

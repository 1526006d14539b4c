package netui

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/wesen/forcegraph/internal/scene"
	"github.com/wesen/forcegraph/pkg/cellbuf"
	"github.com/wesen/forcegraph/pkg/drawutil"
	"github.com/wesen/forcegraph/pkg/graphmodel"
	"github.com/wesen/forcegraph/pkg/viewport"
)

const (
	// gridUnits is the grid spacing in layer units.
	gridUnits = 40.0
	// gradientSteps is how many blended colors a link stroke uses.
	gradientSteps = 4
	// lassoDash is the dash period of the lasso outline.
	lassoDash = 3
)

// frame draws one scene into a w×h cell buffer. t is the displayed
// transform and (ux, uy) the layer size of one cell.
type frame struct {
	buf    *cellbuf.Buffer
	pal    *cellbuf.Palette
	t      viewport.Transform
	ux, uy float64
	labels bool
}

func newFrame(w, h int, t viewport.Transform, ux, uy float64, labels bool) *frame {
	return &frame{
		buf:    cellbuf.New(w, h, styleBG),
		pal:    cellbuf.NewPalette(bufStyles, canvasStyle),
		t:      t,
		ux:     ux,
		uy:     uy,
		labels: labels,
	}
}

// at maps a layer point to fractional cell coordinates.
func (f *frame) at(x, y float64) (float64, float64) {
	return cell(f.t.Apply(graphmodel.Vec{X: x, Y: y}), f.ux, f.uy)
}

func (f *frame) pt(x, y float64) image.Point {
	cx, cy := f.at(x, y)
	return image.Pt(floor(cx), floor(cy))
}

func (f *frame) draw(s *scene.Scene) string {
	f.grid()
	for _, l := range s.Links {
		f.link(l)
	}
	for _, n := range s.Nodes {
		f.node(n)
	}
	if f.labels {
		for _, n := range s.Nodes {
			f.label(n)
		}
	}
	f.lasso(s.Lasso)
	return f.buf.Render(f.pal.Styles())
}

func (f *frame) grid() {
	sx := max(int(math.Round(gridUnits*f.t.K/f.ux)), 2)
	sy := max(int(math.Round(gridUnits*f.t.K/f.uy)), 1)
	drawutil.DrawGrid(f.buf, floor(-f.t.X/f.ux), floor(-f.t.Y/f.uy), sx, sy, styleGrid)
}

func (f *frame) link(l scene.Link) {
	a, b := f.pt(l.X1, l.Y1), f.pt(l.X2, l.Y2)
	keys := make([]cellbuf.StyleKey, gradientSteps)
	for i := range keys {
		t := float64(i) / float64(gradientSteps-1)
		keys[i] = f.pal.Foreground(l.From.BlendLuv(l.To, t).Clamped())
	}
	drawutil.DrawGradientLine(f.buf, a.X, a.Y, b.X, b.Y, keys)
}

// glyph is the fill character for a node's lasso class.
func glyph(c graphmodel.Class) rune {
	switch c {
	case graphmodel.ClassNotPossible:
		return '░'
	case graphmodel.ClassPossible:
		return '▒'
	}
	return '█'
}

func (f *frame) node(n scene.Node) {
	cx, cy := f.at(n.X, n.Y)
	rx, ry := n.R*f.t.K/f.ux, n.R*f.t.K/f.uy
	fill := n.Fill
	key := f.pal.Foreground(fill)
	if n.Class == graphmodel.ClassSelected {
		key = f.pal.Bold(brighten(fill))
	}
	drawutil.FillEllipse(f.buf, cx, cy, rx, ry, glyph(n.Class), key)
	if n.Pinned {
		f.buf.Set(floor(cx), floor(cy), '◆', stylePin)
	}
}

func (f *frame) label(n scene.Node) {
	cx, cy := f.at(n.X, n.Y)
	ry := n.R * f.t.K / f.uy
	f.buf.SetStringCentered(floor(cx), floor(cy+ry)+1, n.ID, styleLabel)
}

func (f *frame) lasso(path []graphmodel.Vec) {
	if len(path) == 0 {
		return
	}
	pts := make([]image.Point, 0, len(path))
	for _, p := range path {
		q := f.pt(p.X, p.Y)
		if len(pts) > 0 && pts[len(pts)-1] == q {
			continue
		}
		pts = append(pts, q)
	}
	drawutil.DrawPolyline(f.buf, pts, true, lassoDash, styleLasso)
}

// brighten lifts a fill toward white for the selected emphasis.
func brighten(c colorful.Color) colorful.Color {
	return c.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, 0.35).Clamped()
}

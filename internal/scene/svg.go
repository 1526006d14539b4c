package scene

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// WriteSVG writes the scene as a standalone SVG document.
func (s *Scene) WriteSVG(w io.Writer) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(int(math.Round(s.Width)), int(math.Round(s.Height)))
	linkIDs, nodeIDs := s.gradientIDs()
	canvas.Def()
	for i, l := range s.Links {
		canvas.LinearGradient(linkIDs[i], pct(l.GX1), pct(l.GY1), pct(l.GX2), pct(l.GY2), []svg.Offcolor{
			{Offset: 0, Color: l.From.Hex(), Opacity: 1},
			{Offset: 100, Color: l.To.Hex(), Opacity: 1},
		})
	}
	for i, n := range s.Nodes {
		canvas.RadialGradient(nodeIDs[i], 50, 50, 50, 50, 50, []svg.Offcolor{
			{Offset: pct(GlowInner), Color: n.Fill.Hex(), Opacity: 1},
			{Offset: pct(GlowOuter), Color: n.Fill.Hex(), Opacity: 0},
		})
	}
	canvas.DefEnd()

	canvas.Rect(0, 0, int(math.Round(s.Width)), int(math.Round(s.Height)), "fill:"+Background.Hex())

	t := s.Transform
	canvas.Gtransform(fmt.Sprintf("translate(%g,%g) scale(%g)", t.X, t.Y, t.K))
	canvas.Group(`class="links"`, `style="pointer-events:none"`)
	for i, l := range s.Links {
		canvas.Line(px(l.X1), px(l.Y1), px(l.X2), px(l.Y2),
			fmt.Sprintf("stroke:url(#%s);stroke-width:%g", linkIDs[i], l.Width))
	}
	canvas.Gend()
	canvas.Group(`class="nodes"`)
	for i, n := range s.Nodes {
		style := fmt.Sprintf("fill:url(#%s);stroke:%s;stroke-width:%g", nodeIDs[i], NodeStroke.Hex(), NodeStrokeWidth)
		attrs := []string{style}
		if c := n.Class.String(); c != "" {
			attrs = append(attrs, fmt.Sprintf(`class="%s"`, c))
		}
		canvas.Circle(px(n.X), px(n.Y), px(n.R), attrs...)
	}
	canvas.Gend()
	if len(s.Lasso) > 1 {
		xs := make([]int, len(s.Lasso))
		ys := make([]int, len(s.Lasso))
		for i, p := range s.Lasso {
			xs[i], ys[i] = px(p.X), px(p.Y)
		}
		canvas.Polyline(xs, ys, fmt.Sprintf("fill:none;stroke:%s;stroke-dasharray:4,4", LassoStroke.Hex()))
	}
	canvas.Gend()
	canvas.End()
	return ew.err
}

// gradientIDs returns one distinct gradient id per link and per node, in
// scene order. Ids that collide after normalization, or repeated links
// between the same pair, get a numeric suffix.
func (s *Scene) gradientIDs() (links, nodes []string) {
	seen := make(map[string]bool, len(s.Links)+len(s.Nodes))
	unique := func(id string) string {
		out := id
		for n := 1; seen[out]; n++ {
			out = id + "_" + strconv.Itoa(n)
		}
		seen[out] = true
		return out
	}
	links = make([]string, len(s.Links))
	for i, l := range s.Links {
		links[i] = unique(l.GradientID())
	}
	nodes = make([]string, len(s.Nodes))
	for i, n := range s.Nodes {
		nodes[i] = unique(n.GradientID())
	}
	return links, nodes
}

// pct converts a [0,1] fraction to an SVG percentage.
func pct(f float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, f)) * 100))
}

func px(v float64) int { return int(math.Round(v)) }

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = fmt.Errorf("write svg: %w", err)
	}
	return n, err
}

// SVGString renders the scene to a string.
func (s *Scene) SVGString() string {
	var b strings.Builder
	_ = s.WriteSVG(&b)
	return b.String()
}

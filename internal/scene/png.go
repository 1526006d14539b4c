package scene

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"git.sr.ht/~sbinet/gg"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/basicfont"

	"github.com/wesen/forcegraph/pkg/graphmodel"
)

// PNGOptions controls raster output.
type PNGOptions struct {
	Labels bool // draw node ids under the nodes
}

// Rasterize draws the scene into a new gg context, applying the transform
// so the result matches what a host shows on screen.
func (s *Scene) Rasterize(opts PNGOptions) *gg.Context {
	w := max(1, int(math.Round(s.Width)))
	h := max(1, int(math.Round(s.Height)))
	dc := gg.NewContext(w, h)
	dc.SetColor(Background)
	dc.Clear()

	t := s.Transform
	at := func(x, y float64) (float64, float64) {
		p := t.Apply(graphmodel.Vec{X: x, Y: y})
		return p.X, p.Y
	}

	for _, l := range s.Links {
		x1, y1 := at(l.X1, l.Y1)
		x2, y2 := at(l.X2, l.Y2)
		grad := gg.NewLinearGradient(x1, y1, x2, y2)
		grad.AddColorStop(0, l.From)
		grad.AddColorStop(1, l.To)
		dc.SetStrokeStyle(grad)
		dc.SetLineWidth(l.Width * t.K)
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}

	for _, n := range s.Nodes {
		x, y := at(n.X, n.Y)
		r := n.R * t.K
		glow := gg.NewRadialGradient(x, y, 0, x, y, r)
		glow.AddColorStop(GlowInner, opaque(n.Fill, 1))
		glow.AddColorStop(GlowOuter, opaque(n.Fill, 0))
		glow.AddColorStop(1, opaque(n.Fill, 0))
		dc.SetFillStyle(glow)
		dc.DrawCircle(x, y, r)
		dc.Fill()

		dc.SetColor(NodeStroke)
		dc.SetLineWidth(NodeStrokeWidth)
		dc.DrawCircle(x, y, r)
		dc.Stroke()
	}

	if len(s.Lasso) > 1 {
		dc.SetColor(LassoStroke)
		dc.SetLineWidth(1)
		dc.SetDash(4, 4)
		for i, p := range s.Lasso {
			x, y := at(p.X, p.Y)
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.Stroke()
		dc.SetDash()
	}

	if opts.Labels {
		dc.SetFontFace(basicfont.Face7x13)
		dc.SetColor(color.Black)
		for _, n := range s.Nodes {
			x, y := at(n.X, n.Y)
			dc.DrawStringAnchored(n.ID, x, y+n.R*t.K+8, 0.5, 0.5)
		}
	}
	return dc
}

// WritePNG rasterizes the scene and encodes it as PNG.
func (s *Scene) WritePNG(w io.Writer, opts PNGOptions) error {
	if err := s.Rasterize(opts).EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func opaque(c colorful.Color, a float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(a * 255))}
}

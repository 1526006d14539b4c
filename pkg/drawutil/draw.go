package drawutil

import (
	"image"

	"github.com/wesen/forcegraph/pkg/cellbuf"
)

// pointChar picks the glyph for pts[i] from the direction to its neighbor.
func pointChar(pts []image.Point, i int) rune {
	var dx, dy int
	if i < len(pts)-1 {
		dx = pts[i+1].X - pts[i].X
		dy = pts[i+1].Y - pts[i].Y
	} else if i > 0 {
		dx = pts[i].X - pts[i-1].X
		dy = pts[i].Y - pts[i-1].Y
	}
	return LineChar(dx, dy)
}

// DrawLine draws a solid line in buffer coordinates.
func DrawLine(buf *cellbuf.Buffer, x0, y0, x1, y1 int, style cellbuf.StyleKey) {
	pts := Bresenham(x0, y0, x1, y1)
	for i, p := range pts {
		buf.Set(p.X, p.Y, pointChar(pts, i), style)
	}
}

// DrawGradientLine draws a line whose style steps through styles from the
// first endpoint to the second. A link between two differently colored
// nodes passes a few blended colors here.
func DrawGradientLine(buf *cellbuf.Buffer, x0, y0, x1, y1 int, styles []cellbuf.StyleKey) {
	if len(styles) == 0 {
		return
	}
	pts := Bresenham(x0, y0, x1, y1)
	for i, p := range pts {
		k := i * len(styles) / len(pts)
		buf.Set(p.X, p.Y, pointChar(pts, i), styles[k])
	}
}

// DrawDashedLine draws a line that skips every period-th point. A period
// below 2 draws a solid line.
func DrawDashedLine(buf *cellbuf.Buffer, x0, y0, x1, y1, period int, style cellbuf.StyleKey) {
	drawDashed(buf, Bresenham(x0, y0, x1, y1), 0, period, style)
}

func drawDashed(buf *cellbuf.Buffer, pts []image.Point, phase, period int, style cellbuf.StyleKey) int {
	for i, p := range pts {
		if period < 2 || (phase+i)%period != period-1 {
			buf.Set(p.X, p.Y, pointChar(pts, i), style)
		}
	}
	return phase + len(pts)
}

// DrawPolyline draws dashed segments through pts, keeping the dash phase
// continuous across vertices. closed adds the segment back to pts[0].
func DrawPolyline(buf *cellbuf.Buffer, pts []image.Point, closed bool, period int, style cellbuf.StyleKey) {
	if len(pts) == 1 {
		buf.Set(pts[0].X, pts[0].Y, '·', style)
		return
	}
	phase := 0
	for i := 1; i < len(pts); i++ {
		seg := Bresenham(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y)
		// The shared vertex belongs to the previous segment.
		if i > 1 {
			seg = seg[1:]
		}
		phase = drawDashed(buf, seg, phase, period, style)
	}
	if closed && len(pts) > 2 {
		last := pts[len(pts)-1]
		seg := Bresenham(last.X, last.Y, pts[0].X, pts[0].Y)
		drawDashed(buf, seg[1:], phase, period, style)
	}
}

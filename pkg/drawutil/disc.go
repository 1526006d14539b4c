package drawutil

import (
	"math"

	"github.com/wesen/forcegraph/pkg/cellbuf"
)

// FillEllipse fills every cell whose center lies inside the ellipse
// centered at (cx, cy) with radii (rx, ry), all in cell units. An ellipse
// too small to cover any cell center still marks the cell holding its
// center, so tiny nodes stay visible. It returns the number of cells set.
func FillEllipse(buf *cellbuf.Buffer, cx, cy, rx, ry float64, ch rune, style cellbuf.StyleKey) int {
	if rx <= 0 || ry <= 0 {
		return 0
	}
	n := 0
	y0, y1 := int(math.Floor(cy-ry)), int(math.Ceil(cy+ry))
	x0, x1 := int(math.Floor(cx-rx)), int(math.Ceil(cx+rx))
	for y := y0; y <= y1; y++ {
		dy := (float64(y) + 0.5 - cy) / ry
		for x := x0; x <= x1; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			if dx*dx+dy*dy <= 1 && buf.InBounds(x, y) {
				buf.Set(x, y, ch, style)
				n++
			}
		}
	}
	if n == 0 {
		x, y := int(math.Floor(cx)), int(math.Floor(cy))
		if buf.InBounds(x, y) {
			buf.Set(x, y, '•', style)
			n = 1
		}
	}
	return n
}

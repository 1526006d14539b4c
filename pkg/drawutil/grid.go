package drawutil

import "github.com/wesen/forcegraph/pkg/cellbuf"

// DrawGrid puts a dot at every cell whose shifted position (c+camX, r+camY)
// is a multiple of the spacing on both axes. The viewer shifts the grid
// with the pan offset so panning is visible on an empty canvas.
func DrawGrid(buf *cellbuf.Buffer, camX, camY, spacingX, spacingY int, style cellbuf.StyleKey) {
	for r := 0; r < buf.H; r++ {
		if mod(r+camY, spacingY) != 0 {
			continue
		}
		for c := 0; c < buf.W; c++ {
			if mod(c+camX, spacingX) == 0 {
				buf.Set(c, r, '·', style)
			}
		}
	}
}

// mod returns a non-negative modulus; a zero m yields 0.
func mod(a, m int) int {
	if m == 0 {
		return 0
	}
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

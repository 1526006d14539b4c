// Package cellbuf is a 2D character grid with per-cell style keys and a
// run-merging lipgloss renderer. The terminal viewer draws each frame of
// the graph into a Buffer and composes the rendered string as one layer.
//
// Styles are resolved at render time through a map or a Palette, so the
// buffer itself holds no colors. Runes are assumed to be single-width.
package cellbuf

// StyleKey identifies a visual style.
type StyleKey int

// noStyle never appears in a cell; Render uses it to flush the last run.
const noStyle StyleKey = -1

// Cell is one character and its style.
type Cell struct {
	Ch    rune
	Style StyleKey
}

// Buffer is a 2D grid of styled cells, indexed [row][col].
type Buffer struct {
	W, H  int
	Cells [][]Cell
	bg    StyleKey
}

// New creates a w×h buffer of spaces in the background style bg.
// Negative sizes are treated as zero.
func New(w, h int, bg StyleKey) *Buffer {
	w, h = max(w, 0), max(h, 0)
	b := &Buffer{W: w, H: h, Cells: make([][]Cell, h), bg: bg}
	for y := range b.Cells {
		b.Cells[y] = make([]Cell, w)
	}
	b.Fill(bg)
	return b
}

// InBounds reports whether (x, y) is inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Set writes ch at (x, y). Writes outside the buffer are ignored.
func (b *Buffer) Set(x, y int, ch rune, style StyleKey) {
	if b.InBounds(x, y) {
		b.Cells[y][x] = Cell{Ch: ch, Style: style}
	}
}

// Get returns the cell at (x, y), or a background space outside the buffer.
func (b *Buffer) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Cell{Ch: ' ', Style: b.bg}
	}
	return b.Cells[y][x]
}

// Blank reports whether (x, y) still holds a background space.
func (b *Buffer) Blank(x, y int) bool {
	c := b.Get(x, y)
	return c.Ch == ' ' && c.Style == b.bg
}

// SetString writes s from (x, y) rightwards, clipping at the edges.
func (b *Buffer) SetString(x, y int, s string, style StyleKey) {
	i := 0
	for _, ch := range s {
		b.Set(x+i, y, ch, style)
		i++
	}
}

// SetStringCentered writes s centered on column cx.
func (b *Buffer) SetStringCentered(cx, y int, s string, style StyleKey) {
	b.SetString(cx-len([]rune(s))/2, y, s, style)
}

// Fill resets every cell to a space in style and makes it the background.
func (b *Buffer) Fill(style StyleKey) {
	b.bg = style
	for y := range b.Cells {
		for x := range b.Cells[y] {
			b.Cells[y][x] = Cell{Ch: ' ', Style: style}
		}
	}
}

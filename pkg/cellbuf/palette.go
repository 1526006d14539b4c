package cellbuf

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette extends a fixed style table with keys allocated on demand for
// arbitrary colors, such as per-node fills. Every dynamic style inherits
// the palette's base style (typically the canvas background).
type Palette struct {
	base   lipgloss.Style
	styles Styles
	keys   map[string]StyleKey
	next   StyleKey
}

// NewPalette copies fixed and allocates dynamic keys above its largest key.
func NewPalette(fixed Styles, base lipgloss.Style) *Palette {
	p := &Palette{
		base:   base,
		styles: make(Styles, len(fixed)),
		keys:   make(map[string]StyleKey),
	}
	for k, s := range fixed {
		p.styles[k] = s
		if k >= p.next {
			p.next = k + 1
		}
	}
	return p
}

// Foreground returns the key for base with foreground c.
func (p *Palette) Foreground(c color.Color) StyleKey {
	return p.key("fg", c, false)
}

// Bold returns the key for base with a bold foreground c.
func (p *Palette) Bold(c color.Color) StyleKey {
	return p.key("bold", c, true)
}

func (p *Palette) key(kind string, c color.Color, bold bool) StyleKey {
	id := kind + hex(c)
	if k, ok := p.keys[id]; ok {
		return k
	}
	k := p.next
	p.next++
	p.keys[id] = k
	p.styles[k] = p.base.Foreground(c).Bold(bold)
	return k
}

// Len returns the number of styles, fixed and dynamic.
func (p *Palette) Len() int { return len(p.styles) }

// Styles returns the table to pass to Buffer.Render.
func (p *Palette) Styles() Styles { return p.styles }

func hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

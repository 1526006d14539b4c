// Package colorscheme maps node color values to colors. A scheme is either
// a continuous gradient, a discrete palette or a script; a Resolver turns a
// scheme name into a Func and never fails, falling back to a default
// gradient.
package colorscheme

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Value is the input to a color Func: either a normalized scalar T in
// [0,1] or a category label.
type Value struct {
	T          float64
	Category   string
	IsCategory bool
}

// Continuous returns a scalar Value.
func Continuous(t float64) Value { return Value{T: t} }

// Category returns a categorical Value.
func Category(s string) Value { return Value{Category: s, IsCategory: true} }

// Func maps a Value to a color.
type Func func(Value) colorful.Color

// Scheme is a named color mapping.
type Scheme interface {
	// At returns the color at t, clamped to [0,1].
	At(t float64) colorful.Color
	// Nth returns the color of the k-th category.
	Nth(k int) colorful.Color
}

// Stop is one gradient control point.
type Stop struct {
	Pos   float64
	Color colorful.Color
}

// Gradient interpolates between stops in RGB. Stops must be sorted by Pos.
type Gradient []Stop

func (g Gradient) At(t float64) colorful.Color {
	if len(g) == 0 {
		return colorful.Color{}
	}
	t = clamp01(t)
	if t <= g[0].Pos {
		return g[0].Color
	}
	for i := 1; i < len(g); i++ {
		if t <= g[i].Pos {
			a, b := g[i-1], g[i]
			span := b.Pos - a.Pos
			if span <= 0 {
				return b.Color
			}
			return a.Color.BlendRgb(b.Color, (t-a.Pos)/span).Clamped()
		}
	}
	return g[len(g)-1].Color
}

// Nth samples the gradient at ten evenly spaced positions, cycling.
func (g Gradient) Nth(k int) colorful.Color {
	return g.At(float64(mod(k, 10)) / 9)
}

// Palette is a discrete list of colors.
type Palette []colorful.Color

// At quantizes t onto the palette.
func (p Palette) At(t float64) colorful.Color {
	if len(p) == 0 {
		return colorful.Color{}
	}
	return p[int(math.Round(clamp01(t)*float64(len(p)-1)))]
}

func (p Palette) Nth(k int) colorful.Color {
	if len(p) == 0 {
		return colorful.Color{}
	}
	return p[mod(k, len(p))]
}

// FuncScheme adapts a plain function of t.
type FuncScheme func(t float64) colorful.Color

func (f FuncScheme) At(t float64) colorful.Color { return f(clamp01(t)) }
func (f FuncScheme) Nth(k int) colorful.Color    { return f(float64(mod(k, 10)) / 9) }

// Even builds a gradient from colors spaced evenly over [0,1].
func Even(colors ...string) Gradient {
	g := make(Gradient, len(colors))
	for i, c := range colors {
		pos := 0.0
		if len(colors) > 1 {
			pos = float64(i) / float64(len(colors)-1)
		}
		g[i] = Stop{Pos: pos, Color: MustParse(c)}
	}
	return g
}

// Stops builds a gradient from alternating position/color pairs.
func Stops(pairs ...any) Gradient {
	g := make(Gradient, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		g = append(g, Stop{Pos: pairs[i].(float64), Color: MustParse(pairs[i+1].(string))})
	}
	return g
}

// Colors builds a palette.
func Colors(colors ...string) Palette {
	p := make(Palette, len(colors))
	for i, c := range colors {
		p[i] = MustParse(c)
	}
	return p
}

// Parse reads a CSS-style color: "#rgb", "#rrggbb" or "rgb(r, g, b)".
func Parse(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return colorful.Hex(s)
	}
	inner, ok := strings.CutPrefix(strings.ToLower(s), "rgb(")
	if !ok || !strings.HasSuffix(inner, ")") {
		return colorful.Color{}, fmt.Errorf("colorscheme: unrecognized color %q", s)
	}
	parts := strings.Split(strings.TrimSuffix(inner, ")"), ",")
	if len(parts) != 3 {
		return colorful.Color{}, fmt.Errorf("colorscheme: rgb() needs 3 components in %q", s)
	}
	var ch [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("colorscheme: bad component in %q: %w", s, err)
		}
		ch[i] = math.Max(0, math.Min(255, v)) / 255
	}
	return colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// MustParse is Parse for built-in tables; it panics on error.
func MustParse(s string) colorful.Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// IsLiteral reports whether s parses as a color.
func IsLiteral(s string) bool {
	_, err := Parse(s)
	return err == nil
}

func clamp01(t float64) float64 {
	if math.IsNaN(t) {
		return 0
	}
	return math.Max(0, math.Min(1, t))
}

func mod(a, b int) int {
	return ((a % b) + b) % b
}

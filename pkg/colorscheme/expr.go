package colorscheme

import (
	"fmt"
	"math"

	"github.com/dop251/goja"
	"github.com/lucasb-eyer/go-colorful"
)

// Expr is a scheme computed by a JavaScript expression of t. The script
// may return a CSS color string or an [r, g, b] array of 0-255 channels.
// The helpers rgb(r, g, b), hsl(h, s, l) and mix(a, b, t) are predefined.
//
// An Expr owns a goja runtime and is not safe for concurrent use.
type Expr struct {
	src string
	vm  *goja.Runtime
	fn  goja.Callable
	err error
}

// Fallback is returned when a script fails.
var Fallback = colorful.Color{R: 0.6, G: 0.6, B: 0.6}

// NewExpr compiles src as a single expression of t, or failing that as a
// function body with its own return statement.
func NewExpr(src string) (*Expr, error) {
	prog, err := compile("return (" + src + ");")
	if err != nil {
		var bodyErr error
		if prog, bodyErr = compile(src); bodyErr != nil {
			return nil, fmt.Errorf("compile color expression: %w", err)
		}
	}

	e := &Expr{src: src, vm: goja.New()}
	e.vm.Set("rgb", func(r, g, b float64) string {
		return colorful.Color{R: r / 255, G: g / 255, B: b / 255}.Clamped().Hex()
	})
	e.vm.Set("hsl", func(h, s, l float64) string {
		return colorful.Hsl(h, s, l).Clamped().Hex()
	})
	e.vm.Set("mix", func(a, b string, t float64) string {
		ca, errA := Parse(a)
		cb, errB := Parse(b)
		if errA != nil || errB != nil {
			panic(e.vm.NewTypeError("mix: bad color"))
		}
		return ca.BlendRgb(cb, t).Clamped().Hex()
	})

	v, err := e.vm.RunProgram(prog)
	if err != nil {
		return nil, fmt.Errorf("evaluate color expression: %w", err)
	}
	fn, ok := goja.AssertFunction(v)
	if !ok {
		return nil, fmt.Errorf("color expression %q is not callable", src)
	}
	e.fn = fn
	if _, err := e.eval(0.5); err != nil {
		return nil, err
	}
	return e, nil
}

func compile(body string) (*goja.Program, error) {
	return goja.Compile("scheme", "(function(t) {\n"+body+"\n})", false)
}

// Source returns the script text.
func (e *Expr) Source() string { return e.src }

// Err returns the last evaluation error, if any.
func (e *Expr) Err() error { return e.err }

func (e *Expr) At(t float64) colorful.Color {
	c, err := e.eval(clamp01(t))
	if err != nil {
		e.err = err
		return Fallback
	}
	return c
}

func (e *Expr) Nth(k int) colorful.Color { return e.At(float64(mod(k, 10)) / 9) }

func (e *Expr) eval(t float64) (colorful.Color, error) {
	v, err := e.fn(goja.Undefined(), e.vm.ToValue(t))
	if err != nil {
		return colorful.Color{}, fmt.Errorf("color expression: %w", err)
	}
	switch out := v.Export().(type) {
	case string:
		return Parse(out)
	case []any:
		if len(out) != 3 {
			return colorful.Color{}, fmt.Errorf("color expression returned %d channels", len(out))
		}
		var ch [3]float64
		for i, x := range out {
			f, ok := number(x)
			if !ok {
				return colorful.Color{}, fmt.Errorf("color expression channel %d is %T", i, x)
			}
			ch[i] = math.Max(0, math.Min(255, f)) / 255
		}
		return colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, nil
	default:
		return colorful.Color{}, fmt.Errorf("color expression returned %T", out)
	}
}

func number(x any) (float64, bool) {
	switch v := x.(type) {
	case int64:
		return float64(v), true
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

package colorscheme

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Source tells where Lookup found a scheme.
type Source int

const (
	SourceRegistry Source = iota
	SourceInterpolator
	SourceDefault
)

func (s Source) String() string {
	switch s {
	case SourceRegistry:
		return "registry"
	case SourceInterpolator:
		return "interpolator"
	}
	return "default"
}

type entry struct {
	name   string
	scheme Scheme
}

// Resolver looks scheme names up in three tiers: the registry of named
// scales, then the standard interpolators (with or without an
// "interpolate" prefix), then the default gradient. Names match
// case-insensitively.
type Resolver struct {
	named  map[string]entry
	interp map[string]entry
	def    Scheme
}

// NewResolver returns a resolver preloaded with the built-in scales.
func NewResolver() *Resolver {
	r := &Resolver{
		named:  make(map[string]entry, len(registry)),
		interp: make(map[string]entry, len(interpolators)),
		def:    registry[DefaultName],
	}
	for name, s := range registry {
		r.Register(name, s)
	}
	for name, s := range interpolators {
		r.interp[strings.ToLower(name)] = entry{name, s}
	}
	return r
}

// Register adds or replaces a named scheme.
func (r *Resolver) Register(name string, s Scheme) {
	r.named[strings.ToLower(name)] = entry{name, s}
}

// RegisterStops registers a gradient of evenly spaced colors.
func (r *Resolver) RegisterStops(name string, colors []string) error {
	if len(colors) == 0 {
		return fmt.Errorf("scheme %q: no colors", name)
	}
	g := make(Gradient, len(colors))
	for i, c := range colors {
		col, err := Parse(c)
		if err != nil {
			return fmt.Errorf("scheme %q: %w", name, err)
		}
		pos := 0.0
		if len(colors) > 1 {
			pos = float64(i) / float64(len(colors)-1)
		}
		g[i] = Stop{Pos: pos, Color: col}
	}
	r.Register(name, g)
	return nil
}

// RegisterExpr compiles src as an Expr scheme and registers it.
func (r *Resolver) RegisterExpr(name, src string) error {
	e, err := NewExpr(src)
	if err != nil {
		return fmt.Errorf("scheme %q: %w", name, err)
	}
	r.Register(name, e)
	return nil
}

// Lookup finds the scheme for name and reports which tier matched.
func (r *Resolver) Lookup(name string) (Scheme, Source) {
	key := strings.ToLower(strings.TrimSpace(name))
	if e, ok := r.named[key]; ok {
		return e.scheme, SourceRegistry
	}
	if e, ok := r.interp[strings.TrimPrefix(key, "interpolate")]; ok {
		return e.scheme, SourceInterpolator
	}
	return r.def, SourceDefault
}

// Resolve returns a color Func for name. It never fails.
func (r *Resolver) Resolve(name string) Func {
	s, _ := r.Lookup(name)
	return Bind(s)
}

// Names lists the registry names, sorted.
func (r *Resolver) Names() []string { return names(r.named) }

// Interpolators lists the interpolator names, sorted.
func (r *Resolver) Interpolators() []string { return names(r.interp) }

func names(m map[string]entry) []string {
	out := make([]string, 0, len(m))
	for e := range maps.Values(m) {
		out = append(out, e.name)
	}
	slices.Sort(out)
	return out
}

// Bind wraps a scheme in a Func. Categories are assigned ordinal positions
// in order of first appearance, so the same label always gets the same
// color from one Func.
func Bind(s Scheme) Func {
	domain := map[string]int{}
	return func(v Value) colorful.Color {
		if !v.IsCategory {
			return s.At(v.T)
		}
		k, ok := domain[v.Category]
		if !ok {
			k = len(domain)
			domain[v.Category] = k
		}
		return s.Nth(k)
	}
}

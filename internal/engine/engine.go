package engine

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/wesen/forcegraph/internal/scene"
	"github.com/wesen/forcegraph/pkg/colorscheme"
	"github.com/wesen/forcegraph/pkg/graphmodel"
	"github.com/wesen/forcegraph/pkg/lasso"
	"github.com/wesen/forcegraph/pkg/physics"
	"github.com/wesen/forcegraph/pkg/viewport"
)

// Options configures an Engine.
type Options struct {
	Logger    *slog.Logger          // nil discards
	OnSelect  func(Selection)       // selection callback, may be nil
	Params    Params                // zero fields take DefaultParams
	ZoomSteps []float64             // nil means viewport.DefaultZoomSteps
	Resolver  *colorscheme.Resolver // nil means the built-in schemes
	Extent    viewport.Extent       // wheel zoom range, zero means DefaultExtent
	Mode      Mode                  // initial mode
	Seed      uint64                // seeds node jiggle
}

// Force names registered on the simulation.
const (
	ForceLink   = "link"
	ForceCharge = "charge"
	ForceCenter = "center"
	ForceX      = "x"
	ForceY      = "y"
	ForceBand   = "band"
)

// Engine owns the live graph, the simulation and the interaction state.
type Engine struct {
	opts   Options
	params Params
	log    *slog.Logger

	fig     Figure
	dataKey []byte // encoding of fig.Data when it was applied
	hasFig  bool

	graph  *graphmodel.Graph
	sim    *physics.Simulation
	charge *physics.ManyBody
	link   *physics.Link
	center *physics.Center
	posX   *physics.Position
	posY   *physics.Position

	resolver   *colorscheme.Resolver
	schemeName string
	fill       colorscheme.Func
	fills      map[*graphmodel.Node]colorful.Color

	bounds    viewport.Bounds
	transform viewport.Transform
	zoom      *viewport.ZoomTable
	extent    viewport.Extent

	mode    Mode
	gesture gesture
	path    lasso.Path

	scene scene.Scene
}

// New creates an engine with an empty graph. Call Update to supply data.
func New(opts Options) (*Engine, error) {
	zoom, err := viewport.NewZoomTable(opts.ZoomSteps)
	if err != nil {
		return nil, err
	}
	if !opts.Mode.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(opts.Mode))
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	resolver := opts.Resolver
	if resolver == nil {
		resolver = colorscheme.NewResolver()
	}
	extent := opts.Extent
	if extent == (viewport.Extent{}) {
		extent = viewport.DefaultExtent
	}
	p := opts.Params.withDefaults()

	e := &Engine{
		opts:      opts,
		params:    p,
		log:       log,
		graph:     graphmodel.New(),
		resolver:  resolver,
		fills:     make(map[*graphmodel.Node]colorful.Color),
		transform: viewport.Identity,
		zoom:      zoom,
		extent:    extent,
		mode:      opts.Mode,
		bounds:    viewport.Bounds{Padding: p.Padding},
	}
	e.setScheme("")

	e.sim = physics.New(physics.Options{VelocityDecay: p.VelocityDecay, Seed: opts.Seed})
	e.link = physics.NewLink(nil, e.linkDistance)
	e.charge = physics.NewManyBody(e.chargeStrength)
	e.charge.Theta = p.Theta
	e.center = physics.NewCenter(0, 0)
	e.posX = physics.NewPositionX(0)
	e.posX.Strength = p.PositionStrength
	e.posY = physics.NewPositionY(0)
	e.posY.Strength = p.PositionStrength

	e.sim.AddForce(ForceLink, e.link)
	e.sim.AddForce(ForceCharge, e.charge)
	e.sim.AddForce(ForceCenter, e.center)
	e.sim.AddForce(ForceX, e.posX)
	e.sim.AddForce(ForceY, e.posY)
	if !p.Band.Disabled {
		b := p.Band
		e.sim.AddForce(ForceBand, physics.NewBand(b.Padding, b.Repel, b.Attract, b.Outer))
	}
	e.sim.OnTick(e.afterTick)
	e.sim.Stop()
	return e, nil
}

func (e *Engine) chargeStrength(n *graphmodel.Node, _ int) float64 {
	return e.params.Repulsion * n.R / math.Pow(float64(e.graph.Len()), e.params.RepulsionPower)
}

func (e *Engine) linkDistance(l *graphmodel.Link) float64 {
	return e.params.DistMultiplier*(l.Source.R+l.Target.R) + e.params.DistExtra
}

// Update applies a configuration snapshot and reports what changed. Only
// the affected update paths run; any change restarts the simulation at
// Params.RestartAlpha.
func (e *Engine) Update(fig Figure) Change {
	fig = fig.WithDefaults()
	ch, key := diff(e.fig, e.dataKey, fig)
	if !e.hasFig {
		ch = Change{fields: fieldAll}
	}
	e.fig, e.dataKey, e.hasFig = fig, key, true
	if !ch.Any() {
		return ch
	}
	e.log.Debug("update", "changed", ch.String(), "version", string(fig.DataVersion))

	if ch.Size() {
		e.resize()
	}
	if ch.Data() {
		res := e.graph.Reconcile(fig.Data.Nodes, fig.Data.Links)
		for _, d := range res.Dropped {
			e.log.Warn("dropping link with unknown endpoint",
				"position", d.Position, "source", d.Spec.Source, "target", d.Spec.Target, "missing", d.Missing)
		}
		e.log.Debug("reconciled",
			"added", len(res.Added), "removed", len(res.Removed), "retained", res.Retained,
			"links", len(e.graph.Links()))
		e.setScheme(fig.Data.ColorScheme)
	}
	if ch.Data() || ch.Radius() {
		e.graph.NormalizeRadii(fig.NodeRadius, fig.MaxRadius)
	}
	if ch.Data() || ch.LinkWidth() {
		e.graph.NormalizeWidths(fig.LinkWidth, fig.MaxLinkWidth)
	}
	switch {
	case ch.Data():
		e.link.SetLinks(e.graph.Links())
		e.sim.SetNodes(e.graph.Nodes())
		e.recolor()
	case ch.Radius() || ch.Size():
		e.charge.SetStrength(e.chargeStrength)
		e.link.SetDistance(e.linkDistance)
	}

	e.sim.SetAlpha(e.params.RestartAlpha)
	e.sim.Restart()
	e.bind()
	return ch
}

func (e *Engine) resize() {
	w, h := e.fig.Width, e.fig.Height
	e.bounds.Width, e.bounds.Height = w, h
	e.center.X, e.center.Y = w/2, h/2
	e.posX.Target, e.posY.Target = w/2, h/2
	e.sim.SetOrigin(graphmodel.Vec{X: w / 2, Y: h / 2})
	e.charge.DistanceMax = math.Min(w, h) * e.params.MaxRepulsionLength
}

// setScheme rebinds the fill function when the scheme name changes, so
// category colors stay stable across data updates.
func (e *Engine) setScheme(name string) {
	if e.fill != nil && name == e.schemeName {
		return
	}
	s, src := e.resolver.Lookup(name)
	e.log.Debug("color scheme", "name", name, "source", src.String())
	e.schemeName = name
	e.fill = colorscheme.Bind(s)
}

// recolor computes every node's fill. Numbers are normalized over the
// current min..max, hex strings are used literally, other strings are
// categories, and a missing color falls back to the node id as category.
func (e *Engine) recolor() {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, n := range e.graph.Nodes() {
		if n.Color.IsNum {
			lo, hi = math.Min(lo, n.Color.Num), math.Max(hi, n.Color.Num)
		}
	}
	clear(e.fills)
	for _, n := range e.graph.Nodes() {
		c := n.Color
		switch {
		case c.IsNum:
			t := 0.5
			if hi > lo {
				t = (c.Num - lo) / (hi - lo)
			}
			e.fills[n] = e.fill(colorscheme.Continuous(t))
		case colorscheme.IsLiteral(c.Str):
			col, err := colorscheme.Parse(c.Str)
			if err != nil {
				col = e.fill(colorscheme.Category(c.Str))
			}
			e.fills[n] = col
		case c.Str != "":
			e.fills[n] = e.fill(colorscheme.Category(c.Str))
		default:
			e.fills[n] = e.fill(colorscheme.Category(n.ID))
		}
	}
}

// Tick advances the simulation one step if it is running. Each step clamps
// nodes into the viewport and rebinds the scene. Tick reports whether a
// step ran.
func (e *Engine) Tick() bool {
	return e.sim.Step()
}

// Settle ticks until the simulation stops or limit steps have run.
func (e *Engine) Settle(limit int) int {
	return e.sim.Settle(limit)
}

// Running reports whether the simulation still has energy.
func (e *Engine) Running() bool { return e.sim.Running() }

// Alpha returns the simulation's current alpha.
func (e *Engine) Alpha() float64 { return e.sim.Alpha() }

// AlphaTarget returns the simulation's alpha target.
func (e *Engine) AlphaTarget() float64 { return e.sim.AlphaTarget() }

func (e *Engine) afterTick() {
	for _, n := range e.graph.Nodes() {
		e.bounds.ClampNode(n, e.transform.K)
	}
	e.bind()
}

// Graph returns the live graph. Callers must not mutate it.
func (e *Engine) Graph() *graphmodel.Graph { return e.graph }

// Figure returns the last applied snapshot with defaults filled in.
func (e *Engine) Figure() Figure { return e.fig }

// Scene returns the current frame. It stays valid until the next call
// into the engine.
func (e *Engine) Scene() *scene.Scene { return &e.scene }

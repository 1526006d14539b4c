// Package physics is a velocity-Verlet force simulation over graphmodel
// nodes. It follows the d3-force model: an alpha "temperature" that decays
// toward a target each tick, forces that add to node velocities scaled by
// alpha, and velocity decay applied during integration.
package physics

import (
	"math"
	"math/rand/v2"
	"slices"

	"github.com/wesen/forcegraph/pkg/graphmodel"
)

// Force contributes to node velocities (or positions) once per tick.
type Force interface {
	// Initialize is called whenever the node set changes.
	Initialize(nodes []*graphmodel.Node, rnd *rand.Rand)
	// Apply runs the force at the given alpha.
	Apply(alpha float64)
}

// Options configures a Simulation. Zero fields take the defaults below.
type Options struct {
	Alpha         float64 // initial alpha, default 1
	AlphaMin      float64 // settle threshold, default 0.001
	AlphaDecay    float64 // default 1 - AlphaMin^(1/300)
	VelocityDecay float64 // fraction of velocity lost per tick, default 0.4
	Origin        graphmodel.Vec
	Seed          uint64
}

func (o Options) withDefaults() Options {
	if o.Alpha == 0 {
		o.Alpha = 1
	}
	if o.AlphaMin == 0 {
		o.AlphaMin = 0.001
	}
	if o.AlphaDecay == 0 {
		o.AlphaDecay = 1 - math.Pow(o.AlphaMin, 1.0/300)
	}
	if o.VelocityDecay == 0 {
		o.VelocityDecay = 0.4
	}
	return o
}

type namedForce struct {
	name  string
	force Force
}

// Simulation owns no node state of its own: it moves the nodes it is given.
type Simulation struct {
	nodes  []*graphmodel.Node
	forces []namedForce

	alpha, alphaMin, alphaDecay, alphaTarget float64
	velocityDecay                            float64
	origin                                   graphmodel.Vec

	rnd       *rand.Rand
	listeners []func()
	stopped   bool
	ticks     int
}

// New creates a running simulation with no nodes.
func New(opts Options) *Simulation {
	o := opts.withDefaults()
	return &Simulation{
		alpha:         o.Alpha,
		alphaMin:      o.AlphaMin,
		alphaDecay:    o.AlphaDecay,
		velocityDecay: o.VelocityDecay,
		origin:        o.Origin,
		rnd:           rand.New(rand.NewPCG(o.Seed, o.Seed^0x9e3779b97f4a7c15)),
	}
}

// SetNodes replaces the simulated node slice, places unplaced nodes and
// re-initializes every force.
func (s *Simulation) SetNodes(nodes []*graphmodel.Node) {
	s.nodes = nodes
	s.initializeNodes()
	for _, f := range s.forces {
		f.force.Initialize(s.nodes, s.rnd)
	}
}

// Nodes returns the simulated nodes.
func (s *Simulation) Nodes() []*graphmodel.Node { return s.nodes }

const initialRadius = 10

var initialAngle = math.Pi * (3 - math.Sqrt(5))

// initializeNodes lays NaN-positioned nodes on a phyllotaxis spiral around
// the origin and zeroes NaN velocities.
func (s *Simulation) initializeNodes() {
	for i, n := range s.nodes {
		if n.FX != nil {
			n.X = *n.FX
		}
		if n.FY != nil {
			n.Y = *n.FY
		}
		if math.IsNaN(n.X) || math.IsNaN(n.Y) {
			r := initialRadius * math.Sqrt(0.5+float64(i))
			a := float64(i) * initialAngle
			n.X = s.origin.X + r*math.Cos(a)
			n.Y = s.origin.Y + r*math.Sin(a)
		}
		if math.IsNaN(n.VX) || math.IsNaN(n.VY) {
			n.VX, n.VY = 0, 0
		}
	}
}

// SetOrigin sets the point new nodes are placed around.
func (s *Simulation) SetOrigin(p graphmodel.Vec) { s.origin = p }

// AddForce attaches f under name, replacing any force with the same name.
func (s *Simulation) AddForce(name string, f Force) {
	if s.nodes != nil {
		f.Initialize(s.nodes, s.rnd)
	}
	for i := range s.forces {
		if s.forces[i].name == name {
			s.forces[i].force = f
			return
		}
	}
	s.forces = append(s.forces, namedForce{name: name, force: f})
}

// RemoveForce detaches the named force.
func (s *Simulation) RemoveForce(name string) {
	s.forces = slices.DeleteFunc(s.forces, func(f namedForce) bool { return f.name == name })
}

// Force returns the named force, or nil.
func (s *Simulation) Force(name string) Force {
	for _, f := range s.forces {
		if f.name == name {
			return f.force
		}
	}
	return nil
}

// ForceNames lists attached forces in application order.
func (s *Simulation) ForceNames() []string {
	names := make([]string, len(s.forces))
	for i, f := range s.forces {
		names[i] = f.name
	}
	return names
}

// Alpha returns the current alpha.
func (s *Simulation) Alpha() float64 { return s.alpha }

// SetAlpha sets the current alpha.
func (s *Simulation) SetAlpha(a float64) { s.alpha = a }

// AlphaTarget returns the value alpha decays toward.
func (s *Simulation) AlphaTarget() float64 { return s.alphaTarget }

// SetAlphaTarget sets the value alpha decays toward.
func (s *Simulation) SetAlphaTarget(a float64) { s.alphaTarget = a }

// AlphaMin returns the settle threshold.
func (s *Simulation) AlphaMin() float64 { return s.alphaMin }

// Restart resumes stepping after the simulation settled or was stopped.
func (s *Simulation) Restart() { s.stopped = false }

// Stop halts stepping until Restart.
func (s *Simulation) Stop() { s.stopped = true }

// Running reports whether Step will advance the simulation.
func (s *Simulation) Running() bool { return !s.stopped }

// Ticks returns the number of ticks run so far.
func (s *Simulation) Ticks() int { return s.ticks }

// OnTick registers fn to run after every Step.
func (s *Simulation) OnTick(fn func()) {
	s.listeners = append(s.listeners, fn)
}

// Step advances one tick and notifies tick listeners. Once alpha drops
// below AlphaMin the simulation stops itself. Step reports whether a tick
// ran.
func (s *Simulation) Step() bool {
	if s.stopped {
		return false
	}
	s.Tick()
	for _, fn := range s.listeners {
		fn()
	}
	if s.alpha < s.alphaMin {
		s.stopped = true
	}
	return true
}

// Tick advances the simulation once without notifying listeners.
func (s *Simulation) Tick() {
	s.ticks++
	s.alpha += (s.alphaTarget - s.alpha) * s.alphaDecay

	for _, f := range s.forces {
		f.force.Apply(s.alpha)
	}

	keep := 1 - s.velocityDecay
	for _, n := range s.nodes {
		if n.FX == nil {
			n.VX *= keep
			n.X += n.VX
		} else {
			n.X = *n.FX
			n.VX = 0
		}
		if n.FY == nil {
			n.VY *= keep
			n.Y += n.VY
		} else {
			n.Y = *n.FY
			n.VY = 0
		}
	}
}

// Settle steps until the simulation stops or limit ticks have run, and
// returns the number of ticks taken.
func (s *Simulation) Settle(limit int) int {
	n := 0
	for n < limit && s.Step() {
		n++
	}
	return n
}

// jiggle returns a tiny random offset used to separate coincident nodes.
func jiggle(rnd *rand.Rand) float64 {
	return (rnd.Float64() - 0.5) * 1e-6
}

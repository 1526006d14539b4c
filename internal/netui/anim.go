package netui

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/wesen/forcegraph/pkg/viewport"
)

const (
	springFrequency = 6.0
	springDamping   = 1.0
	settleEpsilon   = 1e-3
)

// zoomAnim eases the displayed transform toward the engine's after a zoom.
// Pans are applied immediately so dragging the view stays direct.
type zoomAnim struct {
	spring harmonica.Spring
	pos    [3]float64 // k, x, y
	vel    [3]float64
	target viewport.Transform
	active bool
	primed bool
}

func newZoomAnim(fps int) *zoomAnim {
	if fps <= 0 {
		fps = defaultFPS
	}
	return &zoomAnim{spring: harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping)}
}

// Retarget sets the transform to converge on. A scale change starts an
// animation; anything else snaps unless one is already running.
func (a *zoomAnim) Retarget(t viewport.Transform) {
	switch {
	case !a.primed:
		a.snap(t)
		a.primed = true
	case t.K != a.target.K:
		a.active = true
	case !a.active:
		a.snap(t)
	}
	a.target = t
}

func (a *zoomAnim) snap(t viewport.Transform) {
	a.pos = [3]float64{t.K, t.X, t.Y}
	a.vel = [3]float64{}
	a.active = false
}

// Step advances one frame and reports whether the animation is running.
func (a *zoomAnim) Step() bool {
	if !a.active {
		return false
	}
	goal := [3]float64{a.target.K, a.target.X, a.target.Y}
	done := true
	for i := range a.pos {
		a.pos[i], a.vel[i] = a.spring.Update(a.pos[i], a.vel[i], goal[i])
		if math.Abs(goal[i]-a.pos[i]) > settleEpsilon || math.Abs(a.vel[i]) > settleEpsilon {
			done = false
		}
	}
	if done {
		a.snap(a.target)
	}
	return a.active
}

// Current returns the transform to draw with.
func (a *zoomAnim) Current() viewport.Transform {
	return viewport.Transform{K: a.pos[0], X: a.pos[1], Y: a.pos[2]}
}

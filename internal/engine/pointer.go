package engine

import (
	"math"

	"github.com/wesen/forcegraph/pkg/graphmodel"
	"github.com/wesen/forcegraph/pkg/viewport"
)

// ClickDistance is how far, in screen pixels, a pointer may travel between
// down and up and still count as a click.
const ClickDistance = 3

// PointerEvent is a pointer sample in screen coordinates. Active is set
// when another gesture is already in progress, such as a second touch.
type PointerEvent struct {
	X, Y   float64
	Active bool
}

func (ev PointerEvent) pos() graphmodel.Vec { return graphmodel.Vec{X: ev.X, Y: ev.Y} }

// Selection is delivered to Options.OnSelect. IDs is empty when the
// selection was cleared.
type Selection struct {
	IDs  []string
	Mode Mode
}

type gesture struct {
	active bool
	start  graphmodel.Vec // screen
	last   graphmodel.Vec // screen
	moved  bool

	node   *graphmodel.Node
	offset graphmodel.Vec // node center minus grab point, layer units
}

// PointerDown begins a gesture.
func (e *Engine) PointerDown(ev PointerEvent) {
	e.gesture = gesture{active: true, start: ev.pos(), last: ev.pos()}
	if fn := behaviors[e.mode].down; fn != nil {
		fn(e, ev)
	}
	e.bind()
}

// PointerMove continues the gesture, if any.
func (e *Engine) PointerMove(ev PointerEvent) {
	if !e.gesture.active {
		return
	}
	if ev.pos().Sub(e.gesture.start).Len() >= ClickDistance {
		e.gesture.moved = true
	}
	if fn := behaviors[e.mode].move; fn != nil {
		fn(e, ev)
	}
	e.gesture.last = ev.pos()
	e.bind()
}

// PointerUp ends the gesture. A gesture that never moved ClickDistance is
// also dispatched as a click.
func (e *Engine) PointerUp(ev PointerEvent) {
	if !e.gesture.active {
		return
	}
	b := behaviors[e.mode]
	if b.up != nil {
		b.up(e, ev)
	}
	if !e.gesture.moved && b.click != nil {
		b.click(e, ev)
	}
	e.gesture = gesture{}
	e.bind()
}

// Click dispatches a click without a preceding gesture.
func (e *Engine) Click(ev PointerEvent) {
	if fn := behaviors[e.mode].click; fn != nil {
		fn(e, ev)
	}
	e.bind()
}

// Wheel zooms by 2^delta around the pointer, clamped to the scale extent.
// It is ignored in modes without wheel zoom.
func (e *Engine) Wheel(ev PointerEvent, delta float64) {
	if !behaviors[e.mode].wheel {
		return
	}
	k := e.extent.Clamp(e.transform.K * math.Pow(2, delta))
	e.transform = e.transform.ZoomAt(k, ev.pos()).Constrain(e.fig.Width, e.fig.Height)
	e.bind()
}

func (e *Engine) layer(ev PointerEvent) graphmodel.Vec {
	return e.transform.Invert(ev.pos())
}

// ── default ──

func (e *Engine) dragStart(ev PointerEvent) {
	p := e.layer(ev)
	n := e.graph.HitTest(p)
	if n == nil {
		return
	}
	if !ev.Active {
		e.sim.SetAlphaTarget(e.params.DragAlpha)
		e.sim.Restart()
	}
	n.Pin(n.X, n.Y)
	e.gesture.node = n
	e.gesture.offset = n.Center().Sub(p)
}

func (e *Engine) dragMove(ev PointerEvent) {
	n := e.gesture.node
	if n == nil {
		return
	}
	p := e.layer(ev).Add(e.gesture.offset)
	n.Pin(p.X, p.Y)
}

func (e *Engine) dragEnd(ev PointerEvent) {
	n := e.gesture.node
	if n == nil {
		return
	}
	if !ev.Active {
		e.sim.SetAlphaTarget(0)
	}
	n.Unpin()
}

func (e *Engine) selectClick(ev PointerEvent) {
	if n := e.graph.HitTest(e.layer(ev)); n != nil {
		e.emit(Selection{IDs: []string{n.ID}, Mode: e.mode})
		return
	}
	e.emit(Selection{Mode: e.mode})
	e.Reset()
}

// ── pan ──

func (e *Engine) panMove(ev PointerEvent) {
	d := ev.pos().Sub(e.gesture.last)
	e.transform = e.transform.Translate(d.X, d.Y)
}

// ── zoom ──

// ZoomStep moves to the next zoom table entry above the current scale,
// holding at the last entry. The offset is kept.
func (e *Engine) ZoomStep() {
	e.transform = e.transform.WithScale(e.zoom.StepFrom(e.transform.K))
	e.log.Debug("zoom step", "index", e.zoom.Index(), "k", e.transform.K)
	e.bind()
}

// Reset restores the identity transform and the first zoom step.
func (e *Engine) Reset() {
	e.transform = viewport.Identity
	e.zoom.Reset()
	e.bind()
}

// Transform returns the current pan/zoom transform.
func (e *Engine) Transform() viewport.Transform { return e.transform }

// ZoomIndex returns the position in the zoom table.
func (e *Engine) ZoomIndex() int { return e.zoom.Index() }

func (e *Engine) emit(s Selection) {
	e.log.Debug("selection", "mode", s.Mode, "ids", s.IDs)
	if e.opts.OnSelect != nil {
		e.opts.OnSelect(s)
	}
}

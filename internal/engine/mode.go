package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Mode is the interaction mode. Exactly one is active at a time.
type Mode int

const (
	ModeDefault Mode = iota
	ModePan
	ModeLasso
	ModeZoomStep

	numModes
)

// ErrUnknownMode is returned for a mode outside the enum.
var ErrUnknownMode = errors.New("unknown interaction mode")

var modeNames = [numModes]string{"default", "pan", "lasso", "zoomStep"}

func (m Mode) String() string {
	if m < 0 || m >= numModes {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool { return m >= 0 && m < numModes }

// ParseMode accepts a mode name, case-insensitively. "zoom" is accepted
// for zoomStep.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "zoom" || s == "zoom-step" {
		return ModeZoomStep, nil
	}
	for i, name := range modeNames {
		if strings.ToLower(name) == s {
			return Mode(i), nil
		}
	}
	return ModeDefault, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Modes lists every mode in enum order.
func Modes() []Mode {
	out := make([]Mode, numModes)
	for i := range out {
		out[i] = Mode(i)
	}
	return out
}

// behavior is everything that differs between modes.
type behavior struct {
	cursor string
	drag   bool // node drag pins nodes
	wheel  bool // wheel zoom enabled

	down  func(e *Engine, ev PointerEvent)
	move  func(e *Engine, ev PointerEvent)
	up    func(e *Engine, ev PointerEvent)
	click func(e *Engine, ev PointerEvent)
}

var behaviors [numModes]behavior

func init() {
	behaviors = [numModes]behavior{
		ModeDefault: {
			cursor: "default",
			drag:   true,
			wheel:  true,
			down:   (*Engine).dragStart,
			move:   (*Engine).dragMove,
			up:     (*Engine).dragEnd,
			click:  (*Engine).selectClick,
		},
		ModePan: {
			cursor: "move",
			move:   (*Engine).panMove,
		},
		ModeLasso: {
			cursor: "crosshair",
			down:   (*Engine).lassoStart,
			move:   (*Engine).lassoMove,
			up:     (*Engine).lassoEnd,
		},
		ModeZoomStep: {
			cursor: "zoom-in",
			click:  func(e *Engine, _ PointerEvent) { e.ZoomStep() },
		},
	}
}

// Mode returns the active mode.
func (e *Engine) Mode() Mode { return e.mode }

// Cursor returns the pointer cursor the host should show.
func (e *Engine) Cursor() string { return behaviors[e.mode].cursor }

// DragEnabled reports whether node drag is active in the current mode.
func (e *Engine) DragEnabled() bool { return behaviors[e.mode].drag }

// SetMode replaces the active mode. The previous mode's affordances are
// cleared first. Selecting zoomStep while already in it advances the zoom
// one step.
func (e *Engine) SetMode(m Mode) error {
	if !m.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
	if m == ModeZoomStep && e.mode == ModeZoomStep {
		e.ZoomStep()
		return nil
	}
	e.clearAffordances()
	prev := e.mode
	e.mode = m
	e.log.Debug("mode changed", "from", prev, "to", m)
	e.bind()
	return nil
}

// clearAffordances undoes every visual or physical effect a mode may have
// left behind: lasso classes and path, an in-flight drag, and the gesture.
func (e *Engine) clearAffordances() {
	e.graph.ResetClasses()
	e.path.Reset()
	if n := e.gesture.node; n != nil {
		n.Unpin()
		e.sim.SetAlphaTarget(0)
	}
	e.gesture = gesture{}
}

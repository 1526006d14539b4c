package engine

import "github.com/wesen/forcegraph/pkg/graphmodel"

// Display radius factors for lasso classes.
const (
	possibleScale = 0.5
	selectedScale = 1.5
)

func emphasis(c graphmodel.Class) float64 {
	switch c {
	case graphmodel.ClassPossible:
		return possibleScale
	case graphmodel.ClassSelected:
		return selectedScale
	}
	return 1
}

func (e *Engine) lassoStart(ev PointerEvent) {
	e.path.Reset()
	e.path.Add(e.layer(ev))
	for _, n := range e.graph.Nodes() {
		n.Class = graphmodel.ClassNotPossible
	}
}

func (e *Engine) lassoMove(ev PointerEvent) {
	e.path.Add(e.layer(ev))
	for _, n := range e.graph.Nodes() {
		if n.Placed() && e.path.Contains(n.Center()) {
			n.Class = graphmodel.ClassPossible
		} else {
			n.Class = graphmodel.ClassNotPossible
		}
	}
}

func (e *Engine) lassoEnd(ev PointerEvent) {
	if e.gesture.last != ev.pos() {
		e.path.Add(e.layer(ev))
	}
	e.graph.ResetClasses()
	selected := e.path.Select(e.graph)
	ids := make([]string, len(selected))
	for i, n := range selected {
		n.Class = graphmodel.ClassSelected
		ids[i] = n.ID
	}
	e.path.Reset()
	e.emit(Selection{IDs: ids, Mode: ModeLasso})
}

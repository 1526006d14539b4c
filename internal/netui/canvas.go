package netui

import (
	"image"
	"math"

	"github.com/wesen/forcegraph/internal/engine"
	"github.com/wesen/forcegraph/pkg/graphmodel"
	"github.com/wesen/forcegraph/pkg/tealayout"
)

const (
	regionModes  = "modes"
	regionFooter = "footer"
	regionInfo   = "info"
	regionCanvas = "canvas"

	infoWidth = 26
)

// layout splits the terminal into toolbar, footer, info panel and canvas.
// The info panel is dropped on narrow terminals.
func (m Model) layout() tealayout.Layout {
	b := tealayout.NewLayoutBuilder(m.Width, m.Height).
		TopFixed(regionModes, 1).
		BottomFixed(regionFooter, 1)
	if m.Width >= 3*infoWidth {
		b.RightFixed(regionInfo, infoWidth)
	}
	return b.Remaining(regionCanvas).Build()
}

func (m Model) canvasRect() image.Rectangle {
	return m.layout().Get(regionCanvas).Rect
}

// setFigure stores fig and applies it with any zero size taken from the
// canvas.
func (m *Model) setFigure(fig engine.Figure) engine.Change {
	m.figure = fig
	m.autoW, m.autoH = fig.Width <= 0, fig.Height <= 0
	return m.apply()
}

// apply pushes the stored figure into the engine.
func (m *Model) apply() engine.Change {
	fig := m.figure
	r := m.canvasRect()
	if m.autoW && r.Dx() > 0 {
		fig.Width = float64(r.Dx()) * colUnits
	}
	if m.autoH && r.Dy() > 0 {
		fig.Height = float64(r.Dy()) * colUnits * m.aspect
	}
	ch := m.eng.Update(fig)
	if ch.Any() {
		m.log.Debug("figure applied", "changed", ch.String(), "width", fig.Width, "height", fig.Height)
	}
	return ch
}

// units returns the layer size of one cell: the applied figure stretched
// over the canvas.
func (m Model) units() (ux, uy float64) {
	r := m.canvasRect()
	fig := m.eng.Figure()
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return colUnits, colUnits * m.aspect
	}
	return fig.Width / float64(r.Dx()), fig.Height / float64(r.Dy())
}

// pointer converts a terminal cell to an engine event at the cell center.
func (m Model) pointer(x, y int, active bool) engine.PointerEvent {
	r := m.canvasRect()
	ux, uy := m.units()
	return engine.PointerEvent{
		X:      (float64(x-r.Min.X) + 0.5) * ux,
		Y:      (float64(y-r.Min.Y) + 0.5) * uy,
		Active: active,
	}
}

// cell maps a screen-space point to fractional canvas cell coordinates.
func cell(p graphmodel.Vec, ux, uy float64) (float64, float64) {
	return p.X / ux, p.Y / uy
}

func floor(f float64) int { return int(math.Floor(f)) }

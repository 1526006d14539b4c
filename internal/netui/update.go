package netui

import (
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/wesen/forcegraph/internal/engine"
)

// FigureMsg delivers a new snapshot, typically from a file watcher.
type FigureMsg struct {
	Figure engine.Figure
}

type tickMsg time.Time

func tick(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// keyZoom is the wheel delta applied by the zoom keys.
const keyZoom = 0.5

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.apply()
		m.anim.Retarget(m.eng.Transform())

	case tickMsg:
		m.eng.Tick()
		m.anim.Retarget(m.eng.Transform())
		m.anim.Step()
		return m, tick(m.fps)

	case FigureMsg:
		ch := m.setFigure(msg.Figure)
		m.log.Info("figure reloaded", "changed", ch.String(), "nodes", m.eng.Graph().Len())

	case tea.KeyMsg:
		return m.handleKeys(msg)

	case tea.MouseMsg:
		return handleMouse(m, msg)
	}

	return m, nil
}

func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, k.Escape):
		if m.showHelp {
			m.showHelp = false
			break
		}
		m.setMode(engine.ModeDefault)
	case key.Matches(msg, k.Reset):
		m.eng.Reset()
	case key.Matches(msg, k.Labels):
		m.labels = !m.labels
	case key.Matches(msg, k.ZoomIn):
		m.keyZoom(keyZoom)
	case key.Matches(msg, k.ZoomOut):
		m.keyZoom(-keyZoom)
	default:
		for i, b := range k.modeKeys() {
			if key.Matches(msg, b) {
				m.setMode(engine.Mode(i))
				break
			}
		}
	}
	m.anim.Retarget(m.eng.Transform())
	return m, nil
}

// setMode switches the engine mode. Every selection of zoomStep zooms in,
// including the one that enters it.
func (m Model) setMode(mode engine.Mode) {
	entering := mode == engine.ModeZoomStep && m.eng.Mode() != engine.ModeZoomStep
	if err := m.eng.SetMode(mode); err != nil {
		m.log.Warn("set mode", "mode", mode.String(), "err", err)
		return
	}
	if entering {
		m.eng.ZoomStep()
	}
}

// keyZoom zooms around the canvas center. In zoomStep mode zooming in
// advances the step table instead.
func (m Model) keyZoom(delta float64) {
	if m.eng.Mode() == engine.ModeZoomStep {
		if delta > 0 {
			m.eng.ZoomStep()
		}
		return
	}
	r := m.canvasRect()
	c := r.Min.Add(r.Size().Div(2))
	m.eng.Wheel(m.pointer(c.X, c.Y, false), delta)
}

package netui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/wesen/forcegraph/internal/engine"
)

// wheelStep is the zoom exponent per wheel notch: scale × 2^wheelStep.
const wheelStep = 0.25

// handleMouse routes a mouse event to the toolbar or the canvas.
func handleMouse(m Model, msg tea.MouseMsg) (Model, tea.Cmd) {
	mouse := msg.Mouse()
	m.MouseX, m.MouseY = mouse.X, mouse.Y

	layout := m.layout()
	region, _ := layout.At(mouse.X, mouse.Y)

	// A gesture that started on the canvas follows the pointer anywhere.
	if !m.pressed && region.Name != regionCanvas {
		if click, ok := msg.(tea.MouseClickMsg); ok && click.Button == tea.MouseLeft && region.Name == regionModes {
			if i := m.modeBar().At(mouse.X); i >= 0 {
				m.setMode(engine.Mode(i))
				m.anim.Retarget(m.eng.Transform())
			}
		}
		return m, nil
	}

	ev := m.pointer(mouse.X, mouse.Y, false)
	switch msg.(type) {
	case tea.MouseClickMsg:
		if mouse.Button == tea.MouseLeft {
			m.pressed = true
			m.eng.PointerDown(ev)
		}

	case tea.MouseMotionMsg:
		if m.pressed {
			m.eng.PointerMove(ev)
		}

	case tea.MouseReleaseMsg:
		if m.pressed {
			m.pressed = false
			m.eng.PointerUp(ev)
		}

	case tea.MouseWheelMsg:
		switch mouse.Button {
		case tea.MouseWheelUp:
			m.eng.Wheel(ev, wheelStep)
		case tea.MouseWheelDown:
			m.eng.Wheel(ev, -wheelStep)
		}
	}
	m.anim.Retarget(m.eng.Transform())
	return m, nil
}

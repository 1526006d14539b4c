package tealayout

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Button is one entry of a ButtonBar.
type Button struct {
	Label string
	Key   string // shortcut shown after the label, may be empty
}

func (b Button) text() string {
	if b.Key == "" {
		return " " + b.Label + " "
	}
	return " " + b.Label + " (" + b.Key + ") "
}

// ButtonBar lays out buttons on one row starting at column X, Gap cells
// apart. The viewer uses it for the mode switcher in the toolbar.
type ButtonBar struct {
	Buttons []Button
	X       int
	Gap     int
}

// Width returns the number of cells the bar occupies.
func (b ButtonBar) Width() int {
	w := 0
	for i, btn := range b.Buttons {
		if i > 0 {
			w += b.Gap
		}
		w += lipgloss.Width(btn.text())
	}
	return w
}

// Render draws the bar with the active button in hot and the rest in
// normal. Gaps take the normal style.
func (b ButtonBar) Render(active int, normal, hot lipgloss.Style) string {
	var sb strings.Builder
	for i, btn := range b.Buttons {
		if i > 0 && b.Gap > 0 {
			sb.WriteString(normal.Render(strings.Repeat(" ", b.Gap)))
		}
		st := normal
		if i == active {
			st = hot
		}
		sb.WriteString(st.Render(btn.text()))
	}
	return sb.String()
}

// At returns the index of the button under column x, or -1.
func (b ButtonBar) At(x int) int {
	pos := b.X
	for i, btn := range b.Buttons {
		if i > 0 {
			pos += b.Gap
		}
		w := lipgloss.Width(btn.text())
		if x >= pos && x < pos+w {
			return i
		}
		pos += w
	}
	return -1
}

// Layer places the rendered bar at (X, y) above the toolbar background.
func (b ButtonBar) Layer(y, active int, normal, hot lipgloss.Style) *lipgloss.Layer {
	return lipgloss.NewLayer(b.Render(active, normal, hot)).X(b.X).Y(y).Z(1).ID("buttons")
}

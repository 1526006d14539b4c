package netui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wesen/forcegraph/internal/engine"
	"github.com/wesen/forcegraph/pkg/tealayout"
)

const appName = " forcegraph "

// modeLabels are the toolbar button labels, in mode order.
var modeLabels = []string{
	engine.ModeDefault:  "select",
	engine.ModePan:      "pan",
	engine.ModeLasso:    "lasso",
	engine.ModeZoomStep: "zoom",
}

// modeBar is the mode switcher in the toolbar, after the app name.
func (m Model) modeBar() tealayout.ButtonBar {
	bar := tealayout.ButtonBar{X: lipgloss.Width(appName) + 1, Gap: 1}
	for i, b := range m.keys.modeKeys() {
		bar.Buttons = append(bar.Buttons, tealayout.Button{Label: modeLabels[i], Key: b.Help().Key})
	}
	return bar
}

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.Width == 0 || m.Height == 0 {
		return tea.NewView("")
	}

	layout := m.layout()
	canvasRegion := layout.Get(regionCanvas)
	infoRegion := layout.Get(regionInfo)

	var layers []*lipgloss.Layer
	layers = append(layers,
		tealayout.FillLayer(layout.Get(regionModes), tbStyle, "toolbar-bg", 0),
		tealayout.FillLayer(canvasRegion, canvasStyle, "canvas-bg", 0),
		tealayout.FillLayer(layout.Get(regionFooter), ftStyle, "footer-bg", 0),
		tealayout.ToolbarLayer(appName, lipgloss.Width(appName), tbStyle),
	)

	bar := m.modeBar()
	layers = append(layers, bar.Layer(0, int(m.eng.Mode()), modeStyle, modeHotStyle))
	if m.title != "" {
		x := bar.X + bar.Width() + 2
		if w := m.Width - x; w > 0 {
			title := modeStyle.MaxWidth(w).Render(m.title)
			layers = append(layers, lipgloss.NewLayer(title).X(x).Y(0).Z(1).ID("title"))
		}
	}

	layers = append(layers,
		tealayout.FooterLayer(m.footer(), m.Width, m.Height-1, ftStyle),
	)

	if r := canvasRegion.Rect; r.Dx() > 0 && r.Dy() > 0 {
		ux, uy := m.units()
		f := newFrame(r.Dx(), r.Dy(), m.anim.Current(), ux, uy, m.labels)
		rendered := f.draw(m.eng.Scene())
		layers = append(layers, lipgloss.NewLayer(rendered).X(r.Min.X).Y(r.Min.Y).Z(1).ID("graph"))
	}

	if r := infoRegion.Rect; r.Dx() > 0 && r.Dy() > 0 {
		layers = append(layers,
			tealayout.VerticalSeparator(r.Min.X, r.Min.Y, r.Dy(), sepStyle),
			tealayout.FillLayer(infoRegion, panelStyle, "info-bg", 0),
		)
		inner := infoRegion
		inner.Rect.Min.X += 2
		layers = append(layers, tealayout.PanelLayer(inner, m.infoLines(inner.Rect.Dx()), panelStyle, 1))
	}

	if m.showHelp {
		layers = append(layers, tealayout.ModalLayer(m.help.FullHelpView(m.keys.FullHelp()), m.Width, m.Height, modalStyle))
	}

	comp := lipgloss.NewCompositor(layers...)
	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(comp)

	v := tea.NewView(canvas.Render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}

func (m Model) footer() string {
	sel, _ := m.Selection()
	selStr := "none"
	if len(sel.IDs) > 0 {
		selStr = strings.Join(sel.IDs, ",")
	}
	return fmt.Sprintf(" sel[%s]: %s  │  %s", sel.Mode, selStr, m.help.ShortHelpView(m.keys.ShortHelp()))
}

// infoLines is the side panel: graph and simulation state.
func (m Model) infoLines(width int) []string {
	g := m.eng.Graph()
	t := m.eng.Transform()
	fig := m.eng.Figure()
	state := "settled"
	if m.eng.Running() {
		state = "running"
	}

	row := func(k string, v any) string {
		return panelDimStyle.Render(fmt.Sprintf("%-8s", k)) + panelStyle.Render(fmt.Sprint(v))
	}
	lines := []string{
		panelTitleStyle.Render("GRAPH"),
		row("nodes", g.Len()),
		row("links", len(g.Links())),
		row("scheme", schemeName(fig)),
		"",
		panelTitleStyle.Render("SIMULATION"),
		row("state", state),
		row("alpha", fmt.Sprintf("%.3f", m.eng.Alpha())),
		row("target", fmt.Sprintf("%.2f", m.eng.AlphaTarget())),
		row("frame", m.eng.Scene().Frame),
		"",
		panelTitleStyle.Render("VIEW"),
		row("mode", m.eng.Mode()),
		row("zoom", fmt.Sprintf("%.2fx", t.K)),
		row("offset", fmt.Sprintf("%.0f,%.0f", t.X, t.Y)),
		row("size", fmt.Sprintf("%.0fx%.0f", fig.Width, fig.Height)),
		row("mouse", fmt.Sprintf("%d,%d", m.MouseX, m.MouseY)),
	}

	sel, n := m.Selection()
	if n > 0 && len(sel.IDs) > 0 {
		lines = append(lines, "", panelTitleStyle.Render(fmt.Sprintf("SELECTED (%d)", len(sel.IDs))))
		for _, id := range sel.IDs {
			if lipgloss.Width(id) > width-2 {
				id = id[:max(width-3, 0)] + "…"
			}
			lines = append(lines, panelStyle.Render("  "+id))
		}
	}
	return lines
}

func schemeName(fig engine.Figure) string {
	if fig.Data == nil || fig.Data.ColorScheme == "" {
		return "default"
	}
	return fig.Data.ColorScheme
}

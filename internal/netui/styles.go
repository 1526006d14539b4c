package netui

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/wesen/forcegraph/pkg/cellbuf"
)

// c is shorthand for lipgloss.Color.
func c(hex string) color.Color { return lipgloss.Color(hex) }

var (
	colorBG      = c("#0b0d10")
	colorPanelBG = c("#13171c")
	colorGrid    = c("#1c232b")
	colorLasso   = c("#9aa5b1")
	colorLabel   = c("#c8d0d8")
	colorAccent  = c("#4fc3f7")
	colorDim     = c("#5c6670")
)

// Fixed cellbuf keys. Node and link colors get dynamic keys from a
// cellbuf.Palette built over these.
const (
	styleBG cellbuf.StyleKey = iota
	styleGrid
	styleLasso
	styleLabel
	stylePin
)

var (
	canvasStyle = lipgloss.NewStyle().Background(colorBG)

	bufStyles = cellbuf.Styles{
		styleBG:    canvasStyle.Foreground(colorGrid),
		styleGrid:  canvasStyle.Foreground(colorGrid),
		styleLasso: canvasStyle.Foreground(colorLasso),
		styleLabel: canvasStyle.Foreground(colorLabel),
		stylePin:   canvasStyle.Foreground(colorAccent).Bold(true),
	}

	tbStyle = lipgloss.NewStyle().
		Background(colorPanelBG).
		Foreground(colorAccent).
		Bold(true)

	modeStyle = lipgloss.NewStyle().
			Background(colorPanelBG).
			Foreground(colorDim)

	modeHotStyle = lipgloss.NewStyle().
			Background(colorAccent).
			Foreground(colorBG).
			Bold(true)

	ftStyle = lipgloss.NewStyle().
		Background(colorPanelBG).
		Foreground(colorDim)

	panelStyle = lipgloss.NewStyle().
			Background(colorPanelBG).
			Foreground(colorLabel)

	panelTitleStyle = lipgloss.NewStyle().
			Background(colorPanelBG).
			Foreground(colorAccent).
			Bold(true)

	panelDimStyle = lipgloss.NewStyle().
			Background(colorPanelBG).
			Foreground(colorDim)

	sepStyle = lipgloss.NewStyle().
			Background(colorPanelBG).
			Foreground(colorGrid)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Background(colorPanelBG).
			Padding(1, 2)
)

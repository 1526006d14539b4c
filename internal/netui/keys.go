package netui

import (
	"charm.land/bubbles/v2/key"

	"github.com/wesen/forcegraph/internal/engine"
)

type keyMap struct {
	Default  key.Binding
	Pan      key.Binding
	Lasso    key.Binding
	ZoomStep key.Binding
	ZoomIn   key.Binding
	ZoomOut  key.Binding
	Reset    key.Binding
	Labels   key.Binding
	Escape   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Default:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "drag/select")),
		Pan:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pan")),
		Lasso:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "lasso")),
		ZoomStep: key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "zoom step")),
		ZoomIn:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut:  key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "zoom out")),
		Reset:    key.NewBinding(key.WithKeys("0", "r"), key.WithHelp("0", "reset view")),
		Labels:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "labels")),
		Escape:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "default mode")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// modeKeys pairs each mode with the binding that selects it, in mode order.
func (k keyMap) modeKeys() []key.Binding {
	return []key.Binding{
		engine.ModeDefault:  k.Default,
		engine.ModePan:      k.Pan,
		engine.ModeLasso:    k.Lasso,
		engine.ModeZoomStep: k.ZoomStep,
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pan, k.Lasso, k.ZoomStep, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.modeKeys(),
		{k.ZoomIn, k.ZoomOut, k.Reset, k.Labels},
		{k.Escape, k.Help, k.Quit},
	}
}

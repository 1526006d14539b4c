// Package netui is the terminal viewer for a force-directed graph. It hosts
// an engine.Engine inside a Bubbletea v2 program: terminal cells become
// layer coordinates, mouse and keys become pointer events and mode
// changes, and each tick's scene is drawn into a cell buffer.
package netui

import (
	"log/slog"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"

	"github.com/wesen/forcegraph/internal/engine"
)

const (
	defaultFPS = 30

	// colUnits is the width of one terminal column in layer units when
	// the figure leaves its size to the viewer.
	colUnits = 4.0
)

// Options configures the viewer.
type Options struct {
	Engine     engine.Options
	Figure     engine.Figure
	Title      string  // shown in the toolbar, usually the figure path
	FPS        int     // simulation ticks per second, 0 means 30
	CellAspect float64 // cell height / width, 0 means 2
	Labels     bool
	Logger     *slog.Logger
}

// selectionBox receives selections from the engine callback. The engine
// only calls back from inside Update, so a shared pointer is enough.
type selectionBox struct {
	last  engine.Selection
	count int
}

// Model is the viewer state.
type Model struct {
	Width, Height  int
	MouseX, MouseY int

	eng    *engine.Engine
	log    *slog.Logger
	title  string
	fps    int
	aspect float64
	labels bool

	// figure as last supplied; zero sizes are filled from the canvas
	figure       engine.Figure
	autoW, autoH bool

	sel      *selectionBox
	anim     *zoomAnim
	keys     keyMap
	help     help.Model
	showHelp bool
	pressed  bool // left button went down inside the canvas
}

// New builds the engine and the initial model.
func New(opts Options) (Model, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	box := &selectionBox{}
	eopts := opts.Engine
	if eopts.Logger == nil {
		eopts.Logger = log
	}
	next := eopts.OnSelect
	eopts.OnSelect = func(s engine.Selection) {
		box.last = s
		box.count++
		if next != nil {
			next(s)
		}
	}
	eng, err := engine.New(eopts)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		eng:    eng,
		log:    log,
		title:  opts.Title,
		fps:    opts.FPS,
		aspect: opts.CellAspect,
		labels: opts.Labels,
		sel:    box,
		anim:   newZoomAnim(opts.FPS),
		keys:   newKeyMap(),
		help:   help.New(),
	}
	if m.fps <= 0 {
		m.fps = defaultFPS
	}
	if m.aspect <= 0 {
		m.aspect = 2
	}
	m.setFigure(opts.Figure)
	return m, nil
}

// Engine returns the hosted engine.
func (m Model) Engine() *engine.Engine { return m.eng }

// Selection returns the most recent selection and how many have fired.
func (m Model) Selection() (engine.Selection, int) { return m.sel.last, m.sel.count }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tick(m.fps)
}

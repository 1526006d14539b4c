// Package config loads forcegraph's application settings and figure
// files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/wesen/forcegraph/internal/engine"
	"github.com/wesen/forcegraph/pkg/colorscheme"
	"github.com/wesen/forcegraph/pkg/viewport"
)

// ErrUnsupportedFormat is returned for a file extension no decoder handles.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// App holds forcegraph configuration.
type App struct {
	Physics   PhysicsConfig           `yaml:"physics" toml:"physics"`
	ZoomSteps []float64               `yaml:"zoom_steps" toml:"zoom_steps"`
	Schemes   map[string]SchemeConfig `yaml:"schemes" toml:"schemes"`
	UI        UIConfig                `yaml:"ui" toml:"ui"`
}

// PhysicsConfig tunes the layout. Zero values keep the engine defaults.
type PhysicsConfig struct {
	Repulsion          float64    `yaml:"repulsion" toml:"repulsion"`
	RepulsionPower     float64    `yaml:"repulsion_power" toml:"repulsion_power"`
	MaxRepulsionLength float64    `yaml:"max_repulsion_length" toml:"max_repulsion_length"`
	VelocityDecay      float64    `yaml:"velocity_decay" toml:"velocity_decay"`
	RestartAlpha       float64    `yaml:"restart_alpha" toml:"restart_alpha"`
	DragAlpha          float64    `yaml:"drag_alpha" toml:"drag_alpha"`
	DistMultiplier     float64    `yaml:"dist_multiplier" toml:"dist_multiplier"`
	DistExtra          float64    `yaml:"dist_extra" toml:"dist_extra"`
	Theta              float64    `yaml:"theta" toml:"theta"`
	PositionStrength   float64    `yaml:"position_strength" toml:"position_strength"`
	Padding            float64    `yaml:"padding" toml:"padding"`
	Seed               uint64     `yaml:"seed" toml:"seed"`
	Band               BandConfig `yaml:"band" toml:"band"`
}

// BandConfig configures the banded collision force.
type BandConfig struct {
	Enabled bool    `yaml:"enabled" toml:"enabled"`
	Padding float64 `yaml:"padding" toml:"padding"`
	Repel   float64 `yaml:"repel" toml:"repel"`
	Attract float64 `yaml:"attract" toml:"attract"`
	Outer   float64 `yaml:"outer" toml:"outer"`
}

// SchemeConfig is a user color scheme: either evenly spaced stops or a
// JavaScript expression of t.
type SchemeConfig struct {
	Stops []string `yaml:"stops" toml:"stops"`
	Expr  string   `yaml:"expr" toml:"expr"`
}

// UIConfig controls the terminal viewer.
type UIConfig struct {
	FPS        int     `yaml:"fps" toml:"fps"`
	Mode       string  `yaml:"mode" toml:"mode"`
	CellAspect float64 `yaml:"cell_aspect" toml:"cell_aspect"` // cell height / width
	Labels     bool    `yaml:"labels" toml:"labels"`
}

// Default returns the default configuration.
func Default() *App {
	p := engine.DefaultParams
	return &App{
		Physics: PhysicsConfig{
			Repulsion:          p.Repulsion,
			RepulsionPower:     p.RepulsionPower,
			MaxRepulsionLength: p.MaxRepulsionLength,
			VelocityDecay:      p.VelocityDecay,
			RestartAlpha:       p.RestartAlpha,
			DragAlpha:          p.DragAlpha,
			DistMultiplier:     p.DistMultiplier,
			DistExtra:          p.DistExtra,
			Theta:              p.Theta,
			PositionStrength:   p.PositionStrength,
			Padding:            p.Padding,
			Band: BandConfig{
				Enabled: true,
				Padding: p.Band.Padding,
				Repel:   p.Band.Repel,
				Attract: p.Band.Attract,
				Outer:   p.Band.Outer,
			},
		},
		ZoomSteps: append([]float64(nil), viewport.DefaultZoomSteps...),
		UI:        UIConfig{FPS: 30, Mode: "default", CellAspect: 2, Labels: false},
	}
}

// Dir returns the forcegraph config directory path.
func Dir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "forcegraph")
}

// Locate returns the first existing config file in Dir, or "".
func Locate() string {
	for _, name := range []string{"config.yaml", "config.yml", "config.toml"} {
		p := filepath.Join(Dir(), name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Load reads path over the defaults. An empty path returns the defaults.
// The format is chosen by extension: .yaml, .yml or .toml.
func Load(path string) (*App, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("config %s: %w %q", path, ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the settings that cannot be defaulted.
func (a *App) Validate() error {
	if _, err := viewport.NewZoomTable(a.ZoomSteps); err != nil {
		return err
	}
	if a.UI.Mode != "" {
		if _, err := engine.ParseMode(a.UI.Mode); err != nil {
			return err
		}
	}
	if a.UI.FPS < 0 {
		return fmt.Errorf("ui.fps must not be negative, got %d", a.UI.FPS)
	}
	for name, s := range a.Schemes {
		if len(s.Stops) == 0 && s.Expr == "" {
			return fmt.Errorf("scheme %q: needs stops or expr", name)
		}
		if len(s.Stops) > 0 && s.Expr != "" {
			return fmt.Errorf("scheme %q: stops and expr are exclusive", name)
		}
	}
	return nil
}

// Params converts the physics section to engine parameters.
func (a *App) Params() engine.Params {
	p := a.Physics
	return engine.Params{
		Repulsion:          p.Repulsion,
		RepulsionPower:     p.RepulsionPower,
		MaxRepulsionLength: p.MaxRepulsionLength,
		VelocityDecay:      p.VelocityDecay,
		RestartAlpha:       p.RestartAlpha,
		DragAlpha:          p.DragAlpha,
		DistMultiplier:     p.DistMultiplier,
		DistExtra:          p.DistExtra,
		Theta:              p.Theta,
		PositionStrength:   p.PositionStrength,
		Padding:            p.Padding,
		Band: engine.BandParams{
			Disabled: !p.Band.Enabled,
			Padding:  p.Band.Padding,
			Repel:    p.Band.Repel,
			Attract:  p.Band.Attract,
			Outer:    p.Band.Outer,
		},
	}
}

// Resolver returns the built-in color schemes plus the configured ones.
func (a *App) Resolver() (*colorscheme.Resolver, error) {
	r := colorscheme.NewResolver()
	for name, s := range a.Schemes {
		var err error
		if s.Expr != "" {
			err = r.RegisterExpr(name, s.Expr)
		} else {
			err = r.RegisterStops(name, s.Stops)
		}
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

// EngineOptions assembles engine options from the configuration.
func (a *App) EngineOptions() (engine.Options, error) {
	r, err := a.Resolver()
	if err != nil {
		return engine.Options{}, err
	}
	mode := engine.ModeDefault
	if a.UI.Mode != "" {
		if mode, err = engine.ParseMode(a.UI.Mode); err != nil {
			return engine.Options{}, err
		}
	}
	return engine.Options{
		Params:    a.Params(),
		ZoomSteps: a.ZoomSteps,
		Resolver:  r,
		Mode:      mode,
		Seed:      a.Physics.Seed,
	}, nil
}

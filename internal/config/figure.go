package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/wesen/forcegraph/internal/engine"
)

// LoadFigure reads a figure file. JSON and YAML are supported by
// extension.
func LoadFigure(path string) (engine.Figure, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return engine.Figure{}, fmt.Errorf("read figure: %w", err)
	}
	fig, err := DecodeFigure(data, filepath.Ext(path))
	if err != nil {
		return engine.Figure{}, fmt.Errorf("figure %s: %w", path, err)
	}
	return fig, nil
}

// DecodeFigure decodes a figure in the format named by ext (".json",
// ".yaml" or ".yml").
func DecodeFigure(data []byte, ext string) (engine.Figure, error) {
	var fig engine.Figure
	var err error
	switch ext = strings.ToLower(ext); ext {
	case ".json":
		err = json.Unmarshal(data, &fig)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fig)
	default:
		return fig, fmt.Errorf("%w %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return fig, err
	}
	if fig.Data != nil {
		for i, n := range fig.Data.Nodes {
			if n.ID == "" {
				return fig, fmt.Errorf("node %d: missing id", i)
			}
		}
	}
	return fig, nil
}

// IsFigureFile reports whether path has a figure extension.
func IsFigureFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// Package engine drives a force-directed graph: it diffs incoming
// configuration snapshots, reconciles them into the live graph, steps the
// physics simulation, clamps nodes into the viewport, and projects the
// result into a scene. Pointer gestures are interpreted per interaction
// mode.
//
// An Engine is not safe for concurrent use. Hosts call it from a single
// loop.
package engine

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/wesen/forcegraph/pkg/graphmodel"
)

// Figure defaults.
const (
	DefaultWidth        = 500
	DefaultHeight       = 500
	DefaultLinkWidth    = 4
	DefaultMaxLinkWidth = 20
	DefaultNodeRadius   = 10
	DefaultMaxRadius    = 20
)

// Figure is one configuration snapshot pushed by the host. Zero sizes
// take the defaults above.
type Figure struct {
	Width        float64          `json:"width,omitempty" yaml:"width,omitempty"`
	Height       float64          `json:"height,omitempty" yaml:"height,omitempty"`
	LinkWidth    float64          `json:"linkWidth,omitempty" yaml:"linkWidth,omitempty"`
	MaxLinkWidth float64          `json:"maxLinkWidth,omitempty" yaml:"maxLinkWidth,omitempty"`
	NodeRadius   float64          `json:"nodeRadius,omitempty" yaml:"nodeRadius,omitempty"`
	MaxRadius    float64          `json:"maxRadius,omitempty" yaml:"maxRadius,omitempty"`
	Data         *graphmodel.Data `json:"data,omitempty" yaml:"data,omitempty"`
	DataVersion  Version          `json:"dataVersion,omitempty" yaml:"dataVersion,omitempty"`
}

// WithDefaults returns f with every zero size replaced by its default and
// a nil Data replaced by an empty graph.
func (f Figure) WithDefaults() Figure {
	def := func(v *float64, d float64) {
		if *v <= 0 {
			*v = d
		}
	}
	def(&f.Width, DefaultWidth)
	def(&f.Height, DefaultHeight)
	def(&f.LinkWidth, DefaultLinkWidth)
	def(&f.MaxLinkWidth, DefaultMaxLinkWidth)
	def(&f.NodeRadius, DefaultNodeRadius)
	def(&f.MaxRadius, DefaultMaxRadius)
	if f.Data == nil {
		f.Data = &graphmodel.Data{}
	}
	return f
}

// Version is an opaque data version token. On the wire it may be a string
// or a number; it is kept as a string.
type Version string

// UnmarshalJSON implements json.Unmarshaler.
func (v *Version) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	return v.set(raw)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	return v.set(raw)
}

func (v *Version) set(raw any) error {
	switch x := raw.(type) {
	case nil:
		*v = ""
	case string:
		*v = Version(x)
	case float64:
		*v = Version(strconv.FormatFloat(x, 'g', -1, 64))
	case int:
		*v = Version(strconv.Itoa(x))
	default:
		return fmt.Errorf("dataVersion: unsupported value %v (%T)", raw, raw)
	}
	return nil
}

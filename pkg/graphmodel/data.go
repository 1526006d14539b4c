package graphmodel

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Data is the declarative graph description a host supplies.
type Data struct {
	Nodes       []NodeSpec `json:"nodes" yaml:"nodes"`
	Links       []LinkSpec `json:"links" yaml:"links"`
	ColorScheme string     `json:"colorscheme,omitempty" yaml:"colorscheme,omitempty"`
}

// NodeSpec is an incoming node. Only ID is required.
type NodeSpec struct {
	ID     string     `json:"id" yaml:"id"`
	Radius float64    `json:"radius,omitempty" yaml:"radius,omitempty"`
	Color  ColorValue `json:"color" yaml:"color,omitempty"`
}

// LinkSpec is an incoming link between two node ids.
type LinkSpec struct {
	Source string  `json:"source" yaml:"source"`
	Target string  `json:"target" yaml:"target"`
	Width  float64 `json:"width,omitempty" yaml:"width,omitempty"`
}

// ColorValue is a node's raw color input. Numbers are mapped through a
// continuous scheme; strings are either literal hex colors or category
// names. The zero value means "no color".
type ColorValue struct {
	Num   float64
	Str   string
	IsNum bool
}

// Number returns a numeric ColorValue.
func Number(v float64) ColorValue { return ColorValue{Num: v, IsNum: true} }

// String returns a string ColorValue.
func String(s string) ColorValue { return ColorValue{Str: s} }

// IsZero reports whether no color was given.
func (c ColorValue) IsZero() bool { return !c.IsNum && c.Str == "" }

func (c ColorValue) String() string {
	if c.IsNum {
		return strconv.FormatFloat(c.Num, 'g', -1, 64)
	}
	return c.Str
}

// MarshalJSON implements json.Marshaler.
func (c ColorValue) MarshalJSON() ([]byte, error) {
	switch {
	case c.IsNum:
		return json.Marshal(c.Num)
	case c.Str != "":
		return json.Marshal(c.Str)
	}
	return []byte("null"), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *ColorValue) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	return c.set(raw)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *ColorValue) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	return c.set(raw)
}

func (c *ColorValue) set(raw any) error {
	switch v := raw.(type) {
	case nil:
		*c = ColorValue{}
	case float64:
		*c = Number(v)
	case int:
		*c = Number(float64(v))
	case string:
		*c = String(v)
	default:
		return fmt.Errorf("color: unsupported value %v (%T)", raw, raw)
	}
	return nil
}

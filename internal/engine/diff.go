package engine

import (
	"bytes"
	"strings"

	"github.com/goccy/go-json"
)

// Field identifies a top-level Figure field.
type Field uint8

const (
	FieldWidth Field = 1 << iota
	FieldHeight
	FieldLinkWidth
	FieldMaxLinkWidth
	FieldNodeRadius
	FieldMaxRadius
	FieldData

	fieldAll = FieldWidth | FieldHeight | FieldLinkWidth | FieldMaxLinkWidth |
		FieldNodeRadius | FieldMaxRadius | FieldData
)

var fieldNames = []struct {
	f    Field
	name string
}{
	{FieldWidth, "width"},
	{FieldHeight, "height"},
	{FieldLinkWidth, "linkWidth"},
	{FieldMaxLinkWidth, "maxLinkWidth"},
	{FieldNodeRadius, "nodeRadius"},
	{FieldMaxRadius, "maxRadius"},
	{FieldData, "data"},
}

// Change is the set of fields that differ between two snapshots.
type Change struct {
	fields Field
}

// Any reports whether anything changed.
func (c Change) Any() bool { return c.fields != 0 }

// Has reports whether f changed.
func (c Change) Has(f Field) bool { return c.fields&f != 0 }

// Size reports a viewport size change.
func (c Change) Size() bool { return c.Has(FieldWidth | FieldHeight) }

// Data reports a graph data change.
func (c Change) Data() bool { return c.Has(FieldData) }

// LinkWidth reports a change to link sizing.
func (c Change) LinkWidth() bool { return c.Has(FieldLinkWidth | FieldMaxLinkWidth) }

// Radius reports a change to node sizing.
func (c Change) Radius() bool { return c.Has(FieldNodeRadius | FieldMaxRadius) }

func (c Change) String() string {
	var names []string
	for _, fn := range fieldNames {
		if c.Has(fn.f) {
			names = append(names, fn.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}

// Diff compares two snapshots. When next carries a DataVersion the data is
// compared by token alone; otherwise it is compared structurally through
// its JSON encoding. An encoding failure counts as a change.
func Diff(prev, next Figure) Change {
	c, _ := diff(prev, dataKey(prev), next)
	return c
}

// diff compares next against prev, whose data encoding was captured as
// prevKey when prev was applied. It returns the key to keep for next.
// A nil prevKey never matches.
func diff(prev Figure, prevKey []byte, next Figure) (Change, []byte) {
	var c Change
	scalar := func(f Field, a, b float64) {
		if a != b {
			c.fields |= f
		}
	}
	scalar(FieldWidth, prev.Width, next.Width)
	scalar(FieldHeight, prev.Height, next.Height)
	scalar(FieldLinkWidth, prev.LinkWidth, next.LinkWidth)
	scalar(FieldMaxLinkWidth, prev.MaxLinkWidth, next.MaxLinkWidth)
	scalar(FieldNodeRadius, prev.NodeRadius, next.NodeRadius)
	scalar(FieldMaxRadius, prev.MaxRadius, next.MaxRadius)

	if next.DataVersion != "" {
		if next.DataVersion != prev.DataVersion {
			c.fields |= FieldData
		}
		return c, nil
	}
	key := dataKey(next)
	if prevKey == nil || key == nil || !bytes.Equal(prevKey, key) {
		c.fields |= FieldData
	}
	return c, key
}

// dataKey returns the canonical encoding of f.Data, or nil for a
// versioned figure or data that cannot be encoded.
func dataKey(f Figure) []byte {
	if f.DataVersion != "" {
		return nil
	}
	b, err := json.Marshal(f.Data)
	if err != nil {
		return nil
	}
	return b
}

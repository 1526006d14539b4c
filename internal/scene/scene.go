// Package scene is the render-ready projection of the engine state: plain
// values with final positions, sizes, colors and gradient geometry. Hosts
// draw a Scene; they never read engine state directly.
package scene

import (
	"regexp"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/wesen/forcegraph/pkg/graphmodel"
	"github.com/wesen/forcegraph/pkg/viewport"
)

// IDPrefix namespaces generated gradient ids.
const IDPrefix = "network"

// Node is one rendered circle in layer coordinates.
type Node struct {
	ID     string
	X, Y   float64
	R      float64 // display radius, after lasso emphasis
	Fill   colorful.Color
	Class  graphmodel.Class
	Pinned bool
}

// GradientID is the id of the node's radial glow gradient.
func (n Node) GradientID() string { return IDPrefix + NormalizeID(n.ID) }

// Link is one rendered line in layer coordinates. The stroke is a linear
// gradient from the source fill to the target fill whose axis (GX1, GY1) →
// (GX2, GY2), in bounding-box units, follows the link direction.
type Link struct {
	Source, Target string
	X1, Y1, X2, Y2 float64
	Width          float64
	From, To       colorful.Color
	GX1, GY1       float64
	GX2, GY2       float64
}

// GradientID is the id of the link's linear gradient.
func (l Link) GradientID() string {
	return IDPrefix + NormalizeID(l.Source) + "_" + NormalizeID(l.Target)
}

// Scene is a complete frame.
type Scene struct {
	Width, Height float64
	Transform     viewport.Transform
	Mode          string
	Links         []Link
	Nodes         []Node
	Lasso         []graphmodel.Vec // in-progress lasso path, layer coordinates
	Frame         int
}

// Node returns the rendered node with the given id.
func (s *Scene) Node(id string) (Node, bool) {
	for _, n := range s.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

var nonWord = regexp.MustCompile(`\W`)

// NormalizeID makes id safe for use in an SVG/CSS identifier.
func NormalizeID(id string) string {
	return nonWord.ReplaceAllString(id, "_")
}

// Style constants shared by the writers.
var (
	Background  = colorful.Color{R: 1, G: 1, B: 1}
	NodeStroke  = colorful.Color{R: 1, G: 1, B: 1}
	LassoStroke = colorful.Color{R: 0.4, G: 0.4, B: 0.4}
)

const (
	NodeStrokeWidth = 1.0
	GlowInner       = 0.4 // radial gradient: opaque until here
	GlowOuter       = 0.6 // and transparent from here
)

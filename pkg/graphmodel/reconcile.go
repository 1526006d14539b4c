package graphmodel

import "math"

// DroppedLink records an incoming link that could not be resolved.
type DroppedLink struct {
	Position int // index in the incoming link list
	Spec     LinkSpec
	Missing  string // first endpoint id not present among the nodes
}

// ReconcileResult summarizes what a Reconcile call changed.
type ReconcileResult struct {
	Added    []string
	Removed  []string
	Retained int
	Dropped  []DroppedLink
}

// Changed reports whether the node set changed membership.
func (r ReconcileResult) Changed() bool {
	return len(r.Added) > 0 || len(r.Removed) > 0
}

// Reconcile merges incoming nodes and links into the live graph.
//
// Nodes whose id is already live keep their pointer and their physical
// state (X, Y, VX, VY, FX, FY); only Radius and Color are overwritten.
// New ids are appended unplaced. Ids missing from nodes are removed in
// place, scanning in reverse so indices stay valid. Links are rebuilt
// positionally against the updated index and the tail is truncated; a
// link naming an unknown id is dropped and reported.
func (g *Graph) Reconcile(nodes []NodeSpec, links []LinkSpec) ReconcileResult {
	var res ReconcileResult

	incoming := make(map[string]struct{}, len(nodes))
	for _, spec := range nodes {
		incoming[spec.ID] = struct{}{}
		if n, ok := g.index[spec.ID]; ok {
			n.Radius = spec.Radius
			n.Color = spec.Color
			continue
		}
		n := &Node{
			ID:     spec.ID,
			Radius: spec.Radius,
			Color:  spec.Color,
			X:      math.NaN(),
			Y:      math.NaN(),
		}
		g.nodes = append(g.nodes, n)
		g.index[spec.ID] = n
		res.Added = append(res.Added, spec.ID)
	}

	for i := len(g.nodes) - 1; i >= 0; i-- {
		id := g.nodes[i].ID
		if _, ok := incoming[id]; ok {
			continue
		}
		copy(g.nodes[i:], g.nodes[i+1:])
		g.nodes[len(g.nodes)-1] = nil
		g.nodes = g.nodes[:len(g.nodes)-1]
		delete(g.index, id)
		res.Removed = append(res.Removed, id)
	}
	res.Retained = len(g.nodes) - len(res.Added)

	n := 0
	for pos, spec := range links {
		src, tgt := g.index[spec.Source], g.index[spec.Target]
		if src == nil || tgt == nil {
			missing := spec.Source
			if src != nil {
				missing = spec.Target
			}
			res.Dropped = append(res.Dropped, DroppedLink{Position: pos, Spec: spec, Missing: missing})
			continue
		}
		l := &Link{Source: src, Target: tgt, Index: n, Width: spec.Width}
		if n < len(g.links) {
			g.links[n] = l
		} else {
			g.links = append(g.links, l)
		}
		n++
	}
	for i := n; i < len(g.links); i++ {
		g.links[i] = nil
	}
	g.links = g.links[:n]

	return res
}

package graphmodel

import (
	"slices"
	"testing"

	"pgregory.net/rapid"
)

func ids(g *Graph) []string {
	out := make([]string, 0, g.Len())
	for _, n := range g.Nodes() {
		out = append(out, n.ID)
	}
	return out
}

func TestReconcileEmpty(t *testing.T) {
	g := New()
	res := g.Reconcile(nil, nil)
	if g.Len() != 0 || len(g.Links()) != 0 {
		t.Fatal("empty reconcile should leave an empty graph")
	}
	if res.Changed() {
		t.Error("empty reconcile should report no change")
	}
}

func TestReconcileAddsInOrder(t *testing.T) {
	g := New()
	res := g.Reconcile([]NodeSpec{{ID: "x"}, {ID: "y"}, {ID: "z"}}, nil)
	if got := ids(g); !slices.Equal(got, []string{"x", "y", "z"}) {
		t.Errorf("order: got %v", got)
	}
	if len(res.Added) != 3 || res.Retained != 0 {
		t.Errorf("result: %+v", res)
	}
}

func TestReconcilePreservesPhysicalState(t *testing.T) {
	g := New()
	g.Reconcile([]NodeSpec{{ID: "a", Radius: 1}, {ID: "b"}}, nil)
	a := g.Node("a")
	a.X, a.Y, a.VX, a.VY = 10, 20, 1, -1
	a.Pin(11, 21)

	g.Reconcile([]NodeSpec{{ID: "b"}, {ID: "a", Radius: 5, Color: Number(0.3)}, {ID: "c"}}, nil)

	if g.Node("a") != a {
		t.Fatal("retained node must keep its pointer")
	}
	if a.X != 10 || a.Y != 20 || a.VX != 1 || a.VY != -1 {
		t.Errorf("physical state changed: (%v,%v) v=(%v,%v)", a.X, a.Y, a.VX, a.VY)
	}
	if !a.Pinned() || *a.FX != 11 || *a.FY != 21 {
		t.Error("pin must survive reconciliation")
	}
	if a.Radius != 5 || !a.Color.IsNum || a.Color.Num != 0.3 {
		t.Errorf("presentation fields not updated: radius=%v color=%v", a.Radius, a.Color)
	}
	// Live order keeps first-seen order; new ids go to the end.
	if got := ids(g); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("order: got %v", got)
	}
}

func TestReconcilePrunesNodesAndLinks(t *testing.T) {
	g := New()
	g.Reconcile(
		[]NodeSpec{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}},
		[]LinkSpec{{Source: "a", Target: "b"}, {Source: "b", Target: "c"}, {Source: "c", Target: "d"}},
	)
	res := g.Reconcile(
		[]NodeSpec{{ID: "a"}, {ID: "c"}},
		[]LinkSpec{{Source: "a", Target: "b"}, {Source: "a", Target: "c"}},
	)

	if got := ids(g); !slices.Equal(got, []string{"a", "c"}) {
		t.Errorf("nodes: got %v", got)
	}
	if g.Node("b") != nil || g.Node("d") != nil {
		t.Error("pruned ids still indexed")
	}
	slices.Sort(res.Removed)
	if !slices.Equal(res.Removed, []string{"b", "d"}) {
		t.Errorf("removed: got %v", res.Removed)
	}
	links := g.Links()
	if len(links) != 1 {
		t.Fatalf("expected 1 link, got %d", len(links))
	}
	if links[0].Source.ID != "a" || links[0].Target.ID != "c" || links[0].Index != 0 {
		t.Errorf("link: %s->%s #%d", links[0].Source.ID, links[0].Target.ID, links[0].Index)
	}
	if len(res.Dropped) != 1 || res.Dropped[0].Missing != "b" || res.Dropped[0].Position != 0 {
		t.Errorf("dropped: %+v", res.Dropped)
	}
}

func TestReconcileTruncatesLinks(t *testing.T) {
	g := New()
	nodes := []NodeSpec{{ID: "a"}, {ID: "b"}}
	g.Reconcile(nodes, []LinkSpec{{Source: "a", Target: "b"}, {Source: "b", Target: "a"}, {Source: "a", Target: "a"}})
	g.Reconcile(nodes, []LinkSpec{{Source: "b", Target: "b", Width: 2}})
	links := g.Links()
	if len(links) != 1 {
		t.Fatalf("expected tail truncated to 1 link, got %d", len(links))
	}
	if links[0].Source.ID != "b" || links[0].Width != 2 {
		t.Errorf("link not rebuilt positionally: %+v", links[0])
	}
}

func TestReconcileLinksResolveToLiveNodes(t *testing.T) {
	g := New()
	g.Reconcile([]NodeSpec{{ID: "a"}}, nil)
	a := g.Node("a")
	g.Reconcile([]NodeSpec{{ID: "a"}, {ID: "b"}}, []LinkSpec{{Source: "a", Target: "b"}})
	if g.Links()[0].Source != a {
		t.Error("link source must be the retained node pointer")
	}
	if g.Links()[0].Target != g.Node("b") {
		t.Error("link target must be the new node pointer")
	}
}

type snapshot struct {
	x, y, vx, vy float64
	pinned       bool
}

func TestReconcileProperties(t *testing.T) {
	pool := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	genIDs := rapid.SliceOfDistinct(rapid.SampledFrom(pool), func(s string) string { return s })

	rapid.Check(t, func(t *rapid.T) {
		g := New()
		rounds := rapid.IntRange(1, 5).Draw(t, "rounds")
		for r := 0; r < rounds; r++ {
			next := genIDs.Draw(t, "ids")
			specs := make([]NodeSpec, len(next))
			for i, id := range next {
				specs[i] = NodeSpec{ID: id, Radius: rapid.Float64Range(0, 10).Draw(t, "radius")}
			}
			var links []LinkSpec
			for range rapid.IntRange(0, 6).Draw(t, "links") {
				links = append(links, LinkSpec{
					Source: rapid.SampledFrom(pool).Draw(t, "src"),
					Target: rapid.SampledFrom(pool).Draw(t, "tgt"),
				})
			}

			before := map[string]*Node{}
			state := map[string]snapshot{}
			for _, n := range g.Nodes() {
				n.X, n.Y = rapid.Float64Range(-100, 100).Draw(t, "x"), rapid.Float64Range(-100, 100).Draw(t, "y")
				n.VX, n.VY = rapid.Float64Range(-5, 5).Draw(t, "vx"), rapid.Float64Range(-5, 5).Draw(t, "vy")
				if rapid.Bool().Draw(t, "pin") {
					n.Pin(n.X, n.Y)
				}
				before[n.ID] = n
				state[n.ID] = snapshot{n.X, n.Y, n.VX, n.VY, n.Pinned()}
			}

			g.Reconcile(specs, links)

			if got := ids(g); len(got) != len(next) {
				t.Fatalf("node count: got %v want set %v", got, next)
			}
			for _, id := range next {
				n := g.Node(id)
				if n == nil {
					t.Fatalf("incoming id %s missing", id)
				}
				old, ok := before[id]
				if !ok {
					continue
				}
				if n != old {
					t.Fatalf("node %s lost identity", id)
				}
				s := state[id]
				if n.X != s.x || n.Y != s.y || n.VX != s.vx || n.VY != s.vy || n.Pinned() != s.pinned {
					t.Fatalf("node %s physical state changed", id)
				}
			}
			for id := range before {
				if !slices.Contains(next, id) && g.Node(id) != nil {
					t.Fatalf("node %s should have been pruned", id)
				}
			}
			for i, l := range g.Links() {
				if l.Index != i {
					t.Fatalf("link %d has index %d", i, l.Index)
				}
				if g.Node(l.Source.ID) != l.Source || g.Node(l.Target.ID) != l.Target {
					t.Fatalf("link %d references a node outside the live set", i)
				}
			}
		}
	})
}

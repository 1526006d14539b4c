package engine

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/wesen/forcegraph/pkg/colorscheme"
	"github.com/wesen/forcegraph/pkg/graphmodel"
	"github.com/wesen/forcegraph/pkg/viewport"
)

func newEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	e, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func figure(ids ...string) Figure {
	data := &graphmodel.Data{}
	for _, id := range ids {
		data.Nodes = append(data.Nodes, graphmodel.NodeSpec{ID: id})
	}
	return Figure{Data: data}
}

func place(e *Engine, id string, x, y float64) *graphmodel.Node {
	n := e.Graph().Node(id)
	n.X, n.Y, n.VX, n.VY = x, y, 0, 0
	return n
}

// ── Diff ──

func TestDiff(t *testing.T) {
	base := figure("a", "b").WithDefaults()
	tests := []struct {
		name   string
		mutate func(f *Figure)
		want   string
	}{
		{"identical", func(f *Figure) {}, "none"},
		{"width", func(f *Figure) { f.Width = 600 }, "width"},
		{"height", func(f *Figure) { f.Height = 100 }, "height"},
		{"link width", func(f *Figure) { f.MaxLinkWidth = 30 }, "maxLinkWidth"},
		{"max radius", func(f *Figure) { f.MaxRadius = 40 }, "maxRadius"},
		{"data content", func(f *Figure) {
			f.Data = &graphmodel.Data{Nodes: []graphmodel.NodeSpec{{ID: "a"}, {ID: "b", Radius: 2}}}
		}, "data"},
		{"color scheme", func(f *Figure) {
			f.Data = &graphmodel.Data{Nodes: base.Data.Nodes, ColorScheme: "Viridis"}
		}, "data"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := base
			tt.mutate(&next)
			if got := Diff(base, next).String(); got != tt.want {
				t.Errorf("Diff: got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDiffVersionToken(t *testing.T) {
	prev := figure("a")
	prev.DataVersion = "1"

	// Same token: content is not inspected.
	next := figure("a", "b")
	next.DataVersion = "1"
	if Diff(prev, next).Data() {
		t.Error("equal version tokens should suppress the data comparison")
	}

	next.DataVersion = "2"
	if !Diff(prev, next).Data() {
		t.Error("a new version token must report a data change")
	}

	// No token: structural comparison catches the change.
	next.DataVersion = ""
	prev.DataVersion = ""
	if !Diff(prev, next).Data() {
		t.Error("structural comparison missed a change")
	}
}

func TestChangeGroups(t *testing.T) {
	c := Change{fields: FieldNodeRadius | FieldHeight}
	if !c.Radius() || !c.Size() || c.Data() || c.LinkWidth() {
		t.Errorf("groups wrong for %s", c)
	}
}

func TestVersionDecoding(t *testing.T) {
	var f Figure
	if err := json.Unmarshal([]byte(`{"dataVersion": 42}`), &f); err != nil {
		t.Fatalf("json: %v", err)
	}
	if f.DataVersion != "42" {
		t.Errorf("json number: got %q", f.DataVersion)
	}
	if err := yaml.Unmarshal([]byte("dataVersion: v7\n"), &f); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if f.DataVersion != "v7" {
		t.Errorf("yaml string: got %q", f.DataVersion)
	}
	if err := json.Unmarshal([]byte(`{"dataVersion": [1]}`), &f); err == nil {
		t.Error("expected error for array version")
	}
}

// ── Update ──

func TestUpdateAppliesDefaults(t *testing.T) {
	e := newEngine(t, Options{})
	ch := e.Update(Figure{})
	if !ch.Any() {
		t.Fatal("first update must report a change")
	}
	f := e.Figure()
	if f.Width != 500 || f.Height != 500 || f.LinkWidth != 4 || f.MaxLinkWidth != 20 ||
		f.NodeRadius != 10 || f.MaxRadius != 20 {
		t.Errorf("defaults not applied: %+v", f)
	}
	if !e.Running() || e.Alpha() != 0.5 {
		t.Errorf("update should restart at alpha 0.5, got running=%v alpha=%v", e.Running(), e.Alpha())
	}
}

func TestUpdateSkipsUnchanged(t *testing.T) {
	e := newEngine(t, Options{})
	e.Update(figure("a", "b"))
	e.Settle(1000)
	if e.Running() {
		t.Fatal("simulation should have settled")
	}
	if ch := e.Update(figure("a", "b")); ch.Any() {
		t.Errorf("identical snapshot reported %s", ch)
	}
	if e.Running() {
		t.Error("an unchanged snapshot must not restart the simulation")
	}
}

func TestUpdateSeesInPlaceDataEdits(t *testing.T) {
	e := newEngine(t, Options{})
	fig := figure("a", "b")
	e.Update(fig)
	e.Settle(1000)

	fig.Data.Nodes[0].Radius = 8
	fig.Data.Nodes = append(fig.Data.Nodes, graphmodel.NodeSpec{ID: "c"})
	ch := e.Update(fig)
	if !ch.Data() {
		t.Fatalf("editing the same data in place reported %s", ch)
	}
	if e.Graph().Len() != 3 || e.Graph().Node("c") == nil {
		t.Errorf("appended node not reconciled, have %d nodes", e.Graph().Len())
	}
	if !e.Running() {
		t.Error("a data edit must restart the simulation")
	}

	if ch := e.Update(fig); ch.Any() {
		t.Errorf("reapplying unchanged data reported %s", ch)
	}
}

func TestUpdateVersionedThenUnversioned(t *testing.T) {
	e := newEngine(t, Options{})
	fig := figure("a")
	fig.DataVersion = "1"
	e.Update(fig)
	fig.DataVersion = ""
	if ch := e.Update(fig); !ch.Data() {
		t.Errorf("dropping the version token should fall back to a data change, got %s", ch)
	}
}

func TestUpdatePreservesIdentity(t *testing.T) {
	e := newEngine(t, Options{})
	e.Update(figure("a", "b"))
	for range 20 {
		e.Tick()
	}
	a := e.Graph().Node("a")
	x, y, vx, vy := a.X, a.Y, a.VX, a.VY

	e.Update(figure("b", "a", "c"))
	if e.Graph().Node("a") != a {
		t.Fatal("node a lost its identity")
	}
	if a.X != x || a.Y != y || a.VX != vx || a.VY != vy {
		t.Errorf("physical state changed: (%v,%v) v=(%v,%v)", a.X, a.Y, a.VX, a.VY)
	}
	if !e.Graph().Node("c").Placed() {
		t.Error("new node should be placed by the simulation")
	}
}

func TestUpdatePrunes(t *testing.T) {
	e := newEngine(t, Options{})
	e.Update(figure("a", "b", "c"))
	e.Update(figure("c"))
	if e.Graph().Len() != 1 || e.Graph().Node("c") == nil {
		t.Errorf("expected only c, got %d nodes", e.Graph().Len())
	}
	if len(e.Scene().Nodes) != 1 {
		t.Errorf("scene should have 1 node, got %d", len(e.Scene().Nodes))
	}
}

func TestUpdateNormalizesRadii(t *testing.T) {
	e := newEngine(t, Options{})
	e.Update(Figure{MaxRadius: 20, Data: &graphmodel.Data{Nodes: []graphmodel.NodeSpec{
		{ID: "a", Radius: 2}, {ID: "b", Radius: 4}, {ID: "c", Radius: 8},
	}}})
	want := map[string]float64{"a": 5, "b": 10, "c": 20}
	for id, r := range want {
		if got := e.Graph().Node(id).R; got != r {
			t.Errorf("node %s: expected R=%v, got %v", id, r, got)
		}
	}

	// A radius-only change re-derives R without touching the data.
	e.Update(Figure{MaxRadius: 40, Data: e.Figure().Data})
	if got := e.Graph().Node("c").R; got != 40 {
		t.Errorf("after maxRadius change: expected 40, got %v", got)
	}
}

func TestUpdateDerivesForces(t *testing.T) {
	e := newEngine(t, Options{})
	e.Update(Figure{Width: 400, Height: 200, Data: &graphmodel.Data{
		Nodes: []graphmodel.NodeSpec{{ID: "a"}, {ID: "b"}},
		Links: []graphmodel.LinkSpec{{Source: "a", Target: "b"}},
	}})
	if got := e.charge.DistanceMax; got != 50 {
		t.Errorf("charge cutoff: expected min(400,200)*0.25=50, got %v", got)
	}
	want := -80 * 10 / math.Pow(2, 0.3)
	for i, s := range e.charge.Strengths() {
		if math.Abs(s-want) > 1e-9 {
			t.Errorf("strength %d: expected %v, got %v", i, want, s)
		}
	}
	if d := e.link.Distances(); len(d) != 1 || d[0] != 20 {
		t.Errorf("link distance: expected [20], got %v", d)
	}
	if e.center.X != 200 || e.center.Y != 100 {
		t.Errorf("center: got (%v,%v)", e.center.X, e.center.Y)
	}
}

func TestUpdateLogsDroppedLinks(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e := newEngine(t, Options{Logger: log})
	e.Update(Figure{Data: &graphmodel.Data{
		Nodes: []graphmodel.NodeSpec{{ID: "a"}},
		Links: []graphmodel.LinkSpec{{Source: "a", Target: "ghost"}},
	}})
	if len(e.Graph().Links()) != 0 {
		t.Error("link with unknown endpoint should be dropped")
	}
	out := buf.String()
	if !strings.Contains(out, "dropping link") || !strings.Contains(out, "missing=ghost") {
		t.Errorf("expected a warning about ghost, got:\n%s", out)
	}
}

func TestSettleClampsIntoViewport(t *testing.T) {
	e := newEngine(t, Options{})
	var ids []string
	for i := range 30 {
		ids = append(ids, string(rune('a'+i%26))+string(rune('0'+i/26)))
	}
	e.Update(Figure{Width: 300, Height: 200, Data: figure(ids...).Data})
	if n := e.Settle(1000); n == 0 {
		t.Fatal("simulation did not tick")
	}
	if e.Running() {
		t.Error("simulation should settle within 1000 ticks")
	}
	pad := e.params.Padding
	for _, n := range e.Graph().Nodes() {
		m := n.R + pad
		if n.X < m-1e-9 || n.X > 300-m+1e-9 || n.Y < m-1e-9 || n.Y > 200-m+1e-9 {
			t.Errorf("node %s at (%v,%v) escaped the viewport", n.ID, n.X, n.Y)
		}
	}
	if got := len(e.Scene().Nodes); got != 30 {
		t.Errorf("scene nodes: expected 30, got %d", got)
	}
}

// ── Fills ──

func TestFills(t *testing.T) {
	e := newEngine(t, Options{})
	e.Update(Figure{Data: &graphmodel.Data{
		ColorScheme: "Greys",
		Nodes: []graphmodel.NodeSpec{
			{ID: "lo", Color: graphmodel.Number(1)},
			{ID: "hi", Color: graphmodel.Number(3)},
			{ID: "lit", Color: graphmodel.String("#ff0000")},
			{ID: "cat", Color: graphmodel.String("group-a")},
			{ID: "none"},
		},
	}})
	s, _ := colorscheme.NewResolver().Lookup("Greys")
	check := func(id string, want string) {
		t.Helper()
		if got := e.fills[e.Graph().Node(id)].Hex(); got != want {
			t.Errorf("fill %s: got %s, want %s", id, got, want)
		}
	}
	check("lo", s.At(0).Hex())
	check("hi", s.At(1).Hex())
	check("lit", "#ff0000")
	// Categories take palette entries in order of first appearance.
	check("cat", s.Nth(0).Hex())
	check("none", s.Nth(1).Hex())
}

func TestSceneLinkGradientAxis(t *testing.T) {
	e := newEngine(t, Options{})
	e.Update(Figure{Data: &graphmodel.Data{
		Nodes: []graphmodel.NodeSpec{{ID: "a"}, {ID: "b"}},
		Links: []graphmodel.LinkSpec{{Source: "a", Target: "b"}},
	}})
	place(e, "a", 100, 100)
	place(e, "b", 200, 100)
	e.bind()
	l := e.Scene().Links[0]
	if l.GX1 != 0 || l.GX2 != 1 || l.GY1 != 0.5 || l.GY2 != 0.5 {
		t.Errorf("gradient axis: (%v,%v)->(%v,%v)", l.GX1, l.GY1, l.GX2, l.GY2)
	}
	if l.Width != 4 {
		t.Errorf("default link width: expected 4, got %v", l.Width)
	}
}

// ── Modes ──

func TestParseMode(t *testing.T) {
	for _, m := range Modes() {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if m, err := ParseMode("zoom"); err != nil || m != ModeZoomStep {
		t.Errorf("zoom alias: %v %v", m, err)
	}
	if _, err := ParseMode("rotate"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}
}

func TestSetModeRejectsUnknown(t *testing.T) {
	e := newEngine(t, Options{})
	if err := e.SetMode(Mode(42)); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}
	if e.Mode() != ModeDefault {
		t.Error("failed SetMode must not change the mode")
	}
}

func TestModeTable(t *testing.T) {
	e := newEngine(t, Options{})
	tests := []struct {
		mode   Mode
		cursor string
		drag   bool
	}{
		{ModeDefault, "default", true},
		{ModePan, "move", false},
		{ModeLasso, "crosshair", false},
		{ModeZoomStep, "zoom-in", false},
	}
	for _, tt := range tests {
		if err := e.SetMode(tt.mode); err != nil {
			t.Fatal(err)
		}
		if e.Cursor() != tt.cursor || e.DragEnabled() != tt.drag {
			t.Errorf("%s: cursor=%s drag=%v", tt.mode, e.Cursor(), e.DragEnabled())
		}
		if e.Scene().Mode != tt.mode.String() {
			t.Errorf("scene mode: got %s", e.Scene().Mode)
		}
	}
}

func TestModeExclusivity(t *testing.T) {
	e := newEngine(t, Options{})
	e.Update(figure("a"))
	n := place(e, "a", 100, 100)

	if err := e.SetMode(ModePan); err != nil {
		t.Fatal(err)
	}
	e.PointerDown(PointerEvent{X: 100, Y: 100})
	e.PointerMove(PointerEvent{X: 130, Y: 110})
	if n.FX != nil || n.FY != nil {
		t.Error("pan mode must not pin the dragged node")
	}
	if tr := e.Transform(); tr.X != 30 || tr.Y != 10 || tr.K != 1 {
		t.Errorf("pan should move the offset by the raw delta, got %+v", tr)
	}
	e.PointerUp(PointerEvent{X: 130, Y: 110})

	e.Reset()
	if err := e.SetMode(ModeDefault); err != nil {
		t.Fatal(err)
	}
	e.PointerDown(PointerEvent{X: 102, Y: 101})
	if !n.Pinned() || e.AlphaTarget() != e.params.DragAlpha {
		t.Fatalf("drag start should pin and raise alpha target, got pinned=%v target=%v", n.Pinned(), e.AlphaTarget())
	}
	e.PointerMove(PointerEvent{X: 152, Y: 121})
	if *n.FX != 150 || *n.FY != 120 {
		t.Errorf("pin should follow the pointer keeping the grab offset, got (%v,%v)", *n.FX, *n.FY)
	}
	e.PointerUp(PointerEvent{X: 152, Y: 121})
	if n.Pinned() || e.AlphaTarget() != 0 {
		t.Errorf("drag end should unpin and reset alpha target, got pinned=%v target=%v", n.Pinned(), e.AlphaTarget())
	}
}

func TestDragActivePointerKeepsAlphaTarget(t *testing.T) {
	e := newEngine(t, Options{})
	e.Update(figure("a"))
	place(e, "a", 100, 100)
	e.PointerDown(PointerEvent{X: 100, Y: 100, Active: true})
	if e.AlphaTarget() != 0 {
		t.Error("a secondary pointer must not raise the alpha target")
	}
}

func TestDragSurvivesUpdate(t *testing.T) {
	e := newEngine(t, Options{})
	e.Update(figure("a", "b"))
	n := place(e, "a", 100, 100)
	e.PointerDown(PointerEvent{X: 100, Y: 100})
	e.PointerMove(PointerEvent{X: 140, Y: 100})

	e.Update(figure("a", "b", "c"))
	if !n.Pinned() || *n.FX != 140 {
		t.Error("reconciliation during a drag must keep the pin")
	}
	e.Tick()
	if n.X != 140 {
		t.Errorf("pinned node should snap to its pin, got x=%v", n.X)
	}
}

func TestClickSelection(t *testing.T) {
	var got []Selection
	e := newEngine(t, Options{OnSelect: func(s Selection) { got = append(got, s) }})
	e.Update(figure("a"))
	place(e, "a", 100, 100)

	e.PointerDown(PointerEvent{X: 101, Y: 99})
	e.PointerUp(PointerEvent{X: 102, Y: 100})
	if len(got) != 1 || !slices.Equal(got[0].IDs, []string{"a"}) || got[0].Mode != ModeDefault {
		t.Fatalf("node click: got %+v", got)
	}

	e.ZoomStep()
	e.PointerDown(PointerEvent{X: 400, Y: 400})
	e.PointerUp(PointerEvent{X: 400, Y: 400})
	if len(got) != 2 || len(got[1].IDs) != 0 {
		t.Fatalf("canvas click should deliver an empty selection, got %+v", got)
	}
	if e.Transform() != viewport.Identity || e.ZoomIndex() != 0 {
		t.Errorf("canvas click should reset the view, got %+v", e.Transform())
	}
}

func TestMovedGestureIsNotClick(t *testing.T) {
	calls := 0
	e := newEngine(t, Options{OnSelect: func(Selection) { calls++ }})
	e.Update(figure("a"))
	e.PointerDown(PointerEvent{X: 400, Y: 400})
	e.PointerMove(PointerEvent{X: 410, Y: 400})
	e.PointerUp(PointerEvent{X: 410, Y: 400})
	if calls != 0 {
		t.Errorf("a drag past the click distance must not select, got %d calls", calls)
	}
}

// ── Zoom ──

func TestZoomStepping(t *testing.T) {
	e := newEngine(t, Options{})
	e.Update(figure("a"))
	e.transform = e.transform.Translate(7, 9)

	for range 4 {
		e.ZoomStep()
	}
	if k := e.Transform().K; k != 2.5 {
		t.Errorf("after 4 steps expected k=2.5 (5th entry), got %v", k)
	}
	if tr := e.Transform(); tr.X != 7 || tr.Y != 9 {
		t.Errorf("zoom step must keep the offset, got %+v", tr)
	}
	for range 10 {
		e.ZoomStep()
	}
	if k := e.Transform().K; k != 5 {
		t.Errorf("stepping past the end should hold at 5, got %v", k)
	}

	e.Reset()
	if e.Transform() != viewport.Identity || e.ZoomIndex() != 0 {
		t.Errorf("reset: got %+v index %d", e.Transform(), e.ZoomIndex())
	}
}

func TestZoomStepModeInvocations(t *testing.T) {
	e := newEngine(t, Options{})
	e.Update(figure("a"))
	if err := e.SetMode(ModeZoomStep); err != nil {
		t.Fatal(err)
	}
	if e.ZoomIndex() != 0 {
		t.Fatal("entering zoomStep must not step")
	}
	e.SetMode(ModeZoomStep)
	if e.ZoomIndex() != 1 {
		t.Errorf("reselecting zoomStep should step, index %d", e.ZoomIndex())
	}
	e.PointerDown(PointerEvent{X: 10, Y: 10})
	e.PointerUp(PointerEvent{X: 10, Y: 10})
	if e.ZoomIndex() != 2 || e.Transform().K != 1.5 {
		t.Errorf("canvas click should step, index %d k %v", e.ZoomIndex(), e.Transform().K)
	}
}

func TestZoomStepAfterWheel(t *testing.T) {
	e := newEngine(t, Options{})
	e.Update(Figure{Width: 400, Height: 400})
	e.Wheel(PointerEvent{X: 200, Y: 200}, 1.5)
	if k := e.Transform().K; math.Abs(k-math.Pow(2, 1.5)) > 1e-9 {
		t.Fatalf("wheel: expected k=2^1.5, got %v", k)
	}
	if err := e.SetMode(ModeZoomStep); err != nil {
		t.Fatal(err)
	}
	e.ZoomStep()
	if k := e.Transform().K; k != 3 {
		t.Errorf("a step after wheel zoom to 2.83 should reach 3, got %v", k)
	}
	if e.ZoomIndex() != 5 {
		t.Errorf("zoom index should follow the scale, got %d", e.ZoomIndex())
	}
	e.ZoomStep()
	if k := e.Transform().K; k != 4 {
		t.Errorf("next step: expected 4, got %v", k)
	}
}

func TestCustomZoomSteps(t *testing.T) {
	if _, err := New(Options{ZoomSteps: []float64{2, 1}}); !errors.Is(err, viewport.ErrInvalidZoomSteps) {
		t.Errorf("expected ErrInvalidZoomSteps, got %v", err)
	}
	e := newEngine(t, Options{ZoomSteps: []float64{1, 3}})
	e.ZoomStep()
	e.ZoomStep()
	if e.Transform().K != 3 {
		t.Errorf("custom table: got k=%v", e.Transform().K)
	}
}

func TestWheelZoom(t *testing.T) {
	e := newEngine(t, Options{})
	e.Update(Figure{Width: 400, Height: 400})
	e.Wheel(PointerEvent{X: 100, Y: 100}, 1)
	tr := e.Transform()
	if tr.K != 2 {
		t.Fatalf("wheel: expected k=2, got %v", tr.K)
	}
	if p := tr.Apply(graphmodel.Vec{X: 100, Y: 100}); p.X != 100 || p.Y != 100 {
		t.Errorf("wheel zoom should keep the point under the pointer, got %+v", p)
	}
	e.Wheel(PointerEvent{X: 100, Y: 100}, 10)
	if e.Transform().K != 5 {
		t.Errorf("wheel zoom should clamp to 5, got %v", e.Transform().K)
	}
	e.Wheel(PointerEvent{X: 100, Y: 100}, -10)
	if e.Transform() != viewport.Identity {
		t.Errorf("zooming back to 1 should constrain to identity, got %+v", e.Transform())
	}

	e.SetMode(ModePan)
	e.Wheel(PointerEvent{X: 100, Y: 100}, 1)
	if e.Transform().K != 1 {
		t.Error("wheel zoom is disabled outside default mode")
	}
}

// ── Lasso ──

func lassoFixture(t *testing.T) (*Engine, *[]Selection) {
	t.Helper()
	got := &[]Selection{}
	e := newEngine(t, Options{OnSelect: func(s Selection) { *got = append(*got, s) }})
	e.Update(figure("a", "b", "c"))
	place(e, "a", 10, 10)
	place(e, "b", 50, 50)
	place(e, "c", 200, 200)
	if err := e.SetMode(ModeLasso); err != nil {
		t.Fatal(err)
	}
	return e, got
}

func TestLassoSelection(t *testing.T) {
	e, got := lassoFixture(t)
	e.PointerDown(PointerEvent{X: 0, Y: 0})
	for _, c := range e.Graph().Nodes() {
		if c.Class != graphmodel.ClassNotPossible {
			t.Fatalf("lasso start should mark %s not-possible, got %s", c.ID, c.Class)
		}
	}
	e.PointerMove(PointerEvent{X: 60, Y: 0})
	e.PointerMove(PointerEvent{X: 60, Y: 60})
	if c := e.Graph().Node("c").Class; c != graphmodel.ClassNotPossible {
		t.Errorf("c outside the path should stay not-possible, got %s", c)
	}
	e.PointerMove(PointerEvent{X: 0, Y: 60})
	if c := e.Graph().Node("a").Class; c != graphmodel.ClassPossible {
		t.Errorf("a inside the growing path should be possible, got %s", c)
	}
	if n, _ := e.Scene().Node("a"); n.R != e.Graph().Node("a").R*possibleScale {
		t.Errorf("possible nodes render reduced, got r=%v", n.R)
	}
	if len(e.Scene().Lasso) != 4 {
		t.Errorf("scene should carry the in-progress path, got %d points", len(e.Scene().Lasso))
	}
	e.PointerUp(PointerEvent{X: 0, Y: 60})

	if len(*got) != 1 {
		t.Fatalf("expected one selection, got %d", len(*got))
	}
	sel := (*got)[0]
	if sel.Mode != ModeLasso || !slices.Equal(sel.IDs, []string{"a", "b"}) {
		t.Errorf("selection: got %+v", sel)
	}
	classes := map[string]graphmodel.Class{"a": graphmodel.ClassSelected, "b": graphmodel.ClassSelected, "c": graphmodel.ClassNone}
	for id, want := range classes {
		if c := e.Graph().Node(id).Class; c != want {
			t.Errorf("node %s: class %s, want %s", id, c, want)
		}
	}
	if n, _ := e.Scene().Node("b"); n.R != e.Graph().Node("b").R*selectedScale {
		t.Errorf("selected nodes render enlarged, got r=%v", n.R)
	}
	if len(e.Scene().Lasso) != 0 {
		t.Error("path should be cleared after release")
	}
}

func TestLassoRespectsTransform(t *testing.T) {
	e, got := lassoFixture(t)
	e.transform = viewport.Transform{K: 2, X: 0, Y: 0}
	// The (0,0)-(60,60) screen square covers (0,0)-(30,30) in the layer.
	e.PointerDown(PointerEvent{X: 0, Y: 0})
	e.PointerMove(PointerEvent{X: 60, Y: 0})
	e.PointerMove(PointerEvent{X: 60, Y: 60})
	e.PointerMove(PointerEvent{X: 0, Y: 60})
	e.PointerUp(PointerEvent{X: 0, Y: 60})
	if ids := (*got)[0].IDs; !slices.Equal(ids, []string{"a"}) {
		t.Errorf("expected only a, got %v", ids)
	}
}

func TestLeavingLassoClearsClasses(t *testing.T) {
	e, _ := lassoFixture(t)
	e.PointerDown(PointerEvent{X: 0, Y: 0})
	e.PointerMove(PointerEvent{X: 60, Y: 0})
	e.SetMode(ModeDefault)
	for _, n := range e.Graph().Nodes() {
		if n.Class != graphmodel.ClassNone {
			t.Errorf("node %s kept class %s after a mode change", n.ID, n.Class)
		}
	}
	if e.path.Len() != 0 || e.gesture.active {
		t.Error("mode change should drop the in-flight gesture")
	}
}

func TestLeavingDefaultReleasesDrag(t *testing.T) {
	e := newEngine(t, Options{})
	e.Update(figure("a"))
	n := place(e, "a", 100, 100)
	e.PointerDown(PointerEvent{X: 100, Y: 100})
	e.SetMode(ModeLasso)
	if n.Pinned() || e.AlphaTarget() != 0 {
		t.Error("mode change should release an in-flight drag")
	}
}

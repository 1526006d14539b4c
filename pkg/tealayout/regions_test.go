package tealayout

import (
	"image"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestLayoutBasic(t *testing.T) {
	l := NewLayoutBuilder(80, 24).
		TopFixed("modes", 3).
		BottomFixed("footer", 1).
		RightFixed("info", 34).
		Remaining("canvas").
		Build()

	if l.TermW != 80 || l.TermH != 24 {
		t.Fatalf("term size: expected 80x24, got %dx%d", l.TermW, l.TermH)
	}

	tb := l.Get("modes")
	if tb.Rect != image.Rect(0, 0, 80, 3) {
		t.Errorf("modes: expected (0,0)-(80,3), got %v", tb.Rect)
	}

	ft := l.Get("footer")
	if ft.Rect != image.Rect(0, 23, 80, 24) {
		t.Errorf("footer: expected (0,23)-(80,24), got %v", ft.Rect)
	}

	pn := l.Get("info")
	if pn.Rect != image.Rect(46, 3, 80, 23) {
		t.Errorf("panel: expected (46,3)-(80,23), got %v", pn.Rect)
	}

	cv := l.Get("canvas")
	if cv.Rect != image.Rect(0, 3, 46, 23) {
		t.Errorf("canvas: expected (0,3)-(46,23), got %v", cv.Rect)
	}
}

func TestLayoutRemainingOnly(t *testing.T) {
	l := NewLayoutBuilder(80, 24).
		Remaining("full").
		Build()

	r := l.Get("full")
	if r.Rect != image.Rect(0, 0, 80, 24) {
		t.Errorf("full: expected (0,0)-(80,24), got %v", r.Rect)
	}
}

func TestLayoutZeroSize(t *testing.T) {
	l := NewLayoutBuilder(0, 0).
		TopFixed("modes", 3).
		Remaining("canvas").
		Build()

	cv := l.Get("canvas")
	// With 0-height terminal and 3 rows consumed from top, remaining is negative → clamped to zero
	if cv.Rect.Dx() != 0 || cv.Rect.Dy() != 0 {
		t.Errorf("zero term canvas: expected empty rect, got %v", cv.Rect)
	}
}

func TestLayoutNoOverlap(t *testing.T) {
	l := NewLayoutBuilder(80, 24).
		TopFixed("modes", 3).
		BottomFixed("footer", 1).
		RightFixed("info", 34).
		Remaining("canvas").
		Build()

	regions := []Region{
		l.Get("modes"),
		l.Get("footer"),
		l.Get("info"),
		l.Get("canvas"),
	}

	for i := 0; i < len(regions); i++ {
		for j := i + 1; j < len(regions); j++ {
			ri, rj := regions[i], regions[j]
			if ri.Rect.Overlaps(rj.Rect) {
				t.Errorf("overlap: %s %v and %s %v",
					ri.Name, ri.Rect, rj.Name, rj.Rect)
			}
		}
	}
}

func TestLayoutCanvasDimensions(t *testing.T) {
	l := NewLayoutBuilder(80, 24).
		TopFixed("modes", 3).
		BottomFixed("footer", 1).
		RightFixed("info", 34).
		Remaining("canvas").
		Build()

	cv := l.Get("canvas")
	// 80 - 34 = 46 wide, 24 - 3 - 1 = 20 tall
	if cv.Rect.Dx() != 46 || cv.Rect.Dy() != 20 {
		t.Errorf("canvas dims: expected 46x20, got %dx%d", cv.Rect.Dx(), cv.Rect.Dy())
	}
}

func TestGetNonExistent(t *testing.T) {
	l := NewLayoutBuilder(80, 24).Build()
	r := l.Get("missing")
	if r.Name != "" {
		t.Errorf("non-existent: expected empty, got %v", r)
	}
}

func TestModalLayer(t *testing.T) {
	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		Width(20).
		Padding(1, 2)

	layer := ModalLayer("test content", 80, 24, style)
	if layer.GetID() != "modal" {
		t.Errorf("modal ID: expected 'modal', got %q", layer.GetID())
	}
	if layer.GetZ() != 100 {
		t.Errorf("modal Z: expected 100, got %d", layer.GetZ())
	}
	// Should be roughly centered
	x, y := layer.GetX(), layer.GetY()
	if x < 20 || x > 40 {
		t.Errorf("modal X not centered: %d", x)
	}
	if y < 5 || y > 15 {
		t.Errorf("modal Y not centered: %d", y)
	}
}

func TestFillLayer(t *testing.T) {
	r := Region{Name: "test", Rect: image.Rect(10, 5, 30, 15)}
	style := lipgloss.NewStyle().Background(lipgloss.Color("#080e0b"))
	layer := FillLayer(r, style, "bg", 0)

	if layer.GetID() != "bg" {
		t.Errorf("fill ID: expected 'bg', got %q", layer.GetID())
	}
	if layer.GetX() != 10 || layer.GetY() != 5 {
		t.Errorf("fill pos: expected (10,5), got (%d,%d)", layer.GetX(), layer.GetY())
	}
}

func TestFillLayerEmpty(t *testing.T) {
	r := Region{Name: "empty", Rect: image.Rectangle{}}
	style := lipgloss.NewStyle()
	layer := FillLayer(r, style, "bg", 0)
	// Should not panic, returns empty layer
	if layer.GetContent() != "" {
		t.Error("empty fill should have no content")
	}
}

func TestRegionContainsAndLocal(t *testing.T) {
	r := Region{Name: "canvas", Rect: image.Rect(0, 1, 40, 20)}
	if !r.Contains(0, 1) || !r.Contains(39, 19) {
		t.Error("corners inside the rect should be contained")
	}
	if r.Contains(40, 5) || r.Contains(5, 0) {
		t.Error("max edges are exclusive")
	}
	if p := r.Local(10, 6); p != image.Pt(10, 5) {
		t.Errorf("Local: got %v", p)
	}
}

func TestLayoutAt(t *testing.T) {
	l := NewLayoutBuilder(80, 24).
		TopFixed("modes", 1).
		BottomFixed("footer", 1).
		RightFixed("info", 20).
		Remaining("canvas").
		Build()
	tests := []struct {
		x, y int
		want string
	}{
		{5, 0, "modes"},
		{5, 23, "footer"},
		{70, 10, "info"},
		{10, 10, "canvas"},
	}
	for _, tc := range tests {
		r, ok := l.At(tc.x, tc.y)
		if !ok || r.Name != tc.want {
			t.Errorf("At(%d,%d) = %q %v, want %q", tc.x, tc.y, r.Name, ok, tc.want)
		}
	}
	if _, ok := l.At(200, 200); ok {
		t.Error("cell outside the terminal should hit nothing")
	}
}

func TestPanelLayerClipsLines(t *testing.T) {
	r := Region{Name: "info", Rect: image.Rect(60, 1, 80, 4)}
	layer := PanelLayer(r, []string{"one", "two", "three", "four"}, lipgloss.NewStyle(), 1)
	if layer.GetID() != "info" || layer.GetX() != 60 || layer.GetY() != 1 {
		t.Errorf("panel placement: %q (%d,%d)", layer.GetID(), layer.GetX(), layer.GetY())
	}
	if h := lipgloss.Height(layer.GetContent()); h != 3 {
		t.Errorf("expected 3 lines, got %d", h)
	}
	if w := lipgloss.Width(layer.GetContent()); w != 20 {
		t.Errorf("expected width 20, got %d", w)
	}
}

func TestButtonBar(t *testing.T) {
	bar := ButtonBar{
		Buttons: []Button{{Label: "default"}, {Label: "pan", Key: "p"}},
		X:       10,
		Gap:     1,
	}
	// " default " is 9 wide, then a gap, then " pan (p) " (9 wide).
	if w := bar.Width(); w != 19 {
		t.Fatalf("Width = %d, want 19", w)
	}
	tests := []struct{ x, want int }{
		{9, -1}, {10, 0}, {18, 0}, {19, -1}, {20, 1}, {28, 1}, {29, -1},
	}
	for _, tc := range tests {
		if got := bar.At(tc.x); got != tc.want {
			t.Errorf("At(%d) = %d, want %d", tc.x, got, tc.want)
		}
	}
	out := bar.Render(1, lipgloss.NewStyle(), lipgloss.NewStyle().Bold(true))
	if lipgloss.Width(out) != bar.Width() {
		t.Errorf("rendered width %d != %d", lipgloss.Width(out), bar.Width())
	}
	if layer := bar.Layer(0, 1, lipgloss.NewStyle(), lipgloss.NewStyle()); layer.GetX() != 10 {
		t.Errorf("layer X = %d", layer.GetX())
	}
}

func TestVerticalSeparator(t *testing.T) {
	layer := VerticalSeparator(5, 1, 4, lipgloss.NewStyle())
	if h := lipgloss.Height(layer.GetContent()); h != 4 {
		t.Errorf("expected 4 rows, got %d", h)
	}
}

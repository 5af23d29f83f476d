package physics

import "testing"

func TestRectAt(t *testing.T) {
	r := RectAt(175, 235, 20)
	if r.Left() != 165 || r.Right() != 185 || r.Top() != 225 || r.Bottom() != 245 {
		t.Errorf("unexpected edges: %+v", r)
	}
	cx, cy := r.Center()
	if cx != 175 || cy != 235 {
		t.Errorf("Center() = (%v, %v), want (175, 235)", cx, cy)
	}
}

func TestOverlaps(t *testing.T) {
	a := RectAt(100, 100, 20)

	if !a.Overlaps(a) {
		t.Error("a box should overlap itself")
	}
	if !a.Overlaps(RectAt(105, 110, 10)) {
		t.Error("expected overlap for contained box")
	}
	if !a.Overlaps(RectAt(119, 100, 20)) {
		t.Error("expected overlap one pixel into the box")
	}
	// Edge contact only
	if a.Overlaps(RectAt(120, 100, 20)) {
		t.Error("boxes sharing an edge must not overlap")
	}
	if a.Overlaps(RectAt(100, 130, 20)) {
		t.Error("separated boxes must not overlap")
	}
}

func TestBoundsTouchesEdge(t *testing.T) {
	b := Bounds{Left: 0, Top: 40, Right: 350, Bottom: 390}

	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"inside", RectAt(175, 235, 20), false},
		{"touching left", RectAt(10, 235, 20), true},
		{"one pixel from left", RectAt(11, 235, 20), false},
		{"touching right", RectAt(340, 235, 20), true},
		{"touching hud", RectAt(175, 50, 20), true},
		{"below hud", RectAt(175, 51, 20), false},
		{"touching bottom", RectAt(175, 380, 20), true},
		{"crossed bottom", RectAt(175, 395, 20), true},
	}
	for _, tt := range tests {
		if got := b.TouchesEdge(tt.r); got != tt.want {
			t.Errorf("%s: TouchesEdge = %v, want %v", tt.name, got, tt.want)
		}
	}
}

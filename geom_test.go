package viz

import (
	"math"
	"testing"
)

func TestSegmentDistanceSquared(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, 0)
	tests := []struct {
		name string
		p    Point
		want float64
	}{
		{"above middle", Pt(5, 3), 9},
		{"on segment", Pt(5, 0), 0},
		{"past end clamps to endpoint", Pt(13, 4), 25},
		{"before start clamps to start", Pt(-3, 4), 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := segmentDistanceSquared(tt.p, a, b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %g, want %g", got, tt.want)
			}
		})
	}
}

func TestSegmentDistanceSquaredDegenerate(t *testing.T) {
	got := segmentDistanceSquared(Pt(3, 4), Pt(0, 0), Pt(0, 0))
	if math.Abs(got-25) > 1e-9 {
		t.Errorf("degenerate segment distance = %g, want 25", got)
	}
}

func TestPointInPolygon(t *testing.T) {
	square := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}
	triangle := []Point{Pt(0, 0), Pt(10, 0), Pt(5, 10)}

	tests := []struct {
		name string
		poly []Point
		p    Point
		want bool
	}{
		{"square center", square, Pt(5, 5), true},
		{"square outside", square, Pt(15, 5), false},
		{"square left edge region", square, Pt(0.001, 5), true},
		{"triangle inside", triangle, Pt(5, 3), true},
		{"triangle outside corner", triangle, Pt(1, 9), false},
		{"too few points", square[:2], Pt(5, 5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pointInPolygon(tt.p, tt.poly); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	// Bounds are inclusive.
	for _, p := range []Point{Pt(0, 0), Pt(10, 10), Pt(5, 5), Pt(0, 10)} {
		if !r.Contains(p) {
			t.Errorf("Contains(%v) = false, want true", p)
		}
	}
	for _, p := range []Point{Pt(-0.1, 5), Pt(10.1, 5), Pt(5, 11)} {
		if r.Contains(p) {
			t.Errorf("Contains(%v) = true, want false", p)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	if !a.Intersects(Rect{MinX: 5, MinY: 5, MaxX: 15, MaxY: 15}) {
		t.Error("overlapping rects should intersect")
	}
	if !a.Intersects(Rect{MinX: 10, MinY: 10, MaxX: 20, MaxY: 20}) {
		t.Error("touching rects intersect inclusively")
	}
	if a.Intersects(Rect{MinX: 11, MinY: 0, MaxX: 20, MaxY: 10}) {
		t.Error("disjoint rects should not intersect")
	}
}

func TestPointHelpers(t *testing.T) {
	p := Pt(3, 4)
	if p.Length() != 5 {
		t.Errorf("Length = %g, want 5", p.Length())
	}
	if p.DistanceSquared(Pt(0, 0)) != 25 {
		t.Errorf("DistanceSquared = %g, want 25", p.DistanceSquared(Pt(0, 0)))
	}
	if got := Pt(0, 0).Lerp(Pt(10, 20), 0.5); got != Pt(5, 10) {
		t.Errorf("Lerp = %v, want (5,10)", got)
	}
	if Pt(math.NaN(), 0).IsFinite() || Pt(0, math.Inf(-1)).IsFinite() {
		t.Error("non-finite points reported finite")
	}
	if !Pt(1, 2).IsFinite() {
		t.Error("finite point reported non-finite")
	}
}

package tangent

import (
	"testing"
)

func TestThreeLinesTriangle(t *testing.T) {
	// The 3-4-5 triangle with corners (0, 0), (3, 0), and (0, 4).
	l1 := Line{Pt(0, 0), Vec(1, 0)}
	l2 := Line{Pt(0, 0), Vec(0, 1)}
	l3 := Line{Pt(3, 0), Vec(-3, 4)}
	set := TangentToThreeLines(l1, l2, l3)
	want := []Circle{
		{Pt(-3, 3), 3},
		{Pt(1, 1), 1},
		{Pt(2, -2), 2},
		{Pt(6, 6), 6},
	}
	diff(t, want, circles(set), approx)
	checkTangency(t, set, 1e-12, LinePrimitive(l1), LinePrimitive(l2), LinePrimitive(l3))
}

func TestThreeLinesParallel(t *testing.T) {
	l1 := Line{Pt(0, 0), Vec(1, 0)}
	l2 := Line{Pt(0, 2), Vec(1, 0)}
	l3 := Line{Pt(0, 0), Vec(0, 1)}
	set := TangentToThreeLines(l1, l2, l3)
	want := []Circle{
		{Pt(-1, 1), 1},
		{Pt(1, 1), 1},
	}
	diff(t, want, circles(set), approx)

	set = TangentToThreeLines(l1, l2, Line{Pt(0, 5), Vec(2, 0)})
	if set.Len() != 0 {
		t.Errorf("got %d solutions for three parallel lines, expected none", set.Len())
	}
}

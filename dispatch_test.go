package tangent

import (
	"testing"
)

func TestTangentMatchesCirclesAndLine(t *testing.T) {
	a := Circle{Pt(0, 3), 1}
	b := Circle{Pt(4, 2), 1.5}
	l := Line{Pt(0, 0), Vec(1, 0)}
	want := TangentToCirclesAndLine(a, b, l)
	got := Tangent(CirclePrimitive(a), CirclePrimitive(b), LinePrimitive(l))
	diff(t, want.Slice(), got.Slice())
}

func TestTangentInputOrder(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c Primitive
		want    int
	}{
		{"CCC", cp(0, 0, 1), cp(5, 1, 2), cp(2, 6, 1.5), 8},
		{"LCC", lp(0, 0, 1, 0), cp(0, 3, 1), cp(4, 2, 1.5), 8},
		{"CLC", cp(0, 3, 1), lp(0, 0, 1, 0), cp(4, 2, 1.5), 8},
		{"LCL", lp(0, 0, 1, 0), cp(0.5, 0.5, 2), lp(0, 0, 0, 1), 8},
		{"CLL", cp(3, 3, 1), lp(0, 0, 1, 0), lp(0, 0, 0, 1), 4},
		{"LLL", lp(0, 0, 1, 0), lp(0, 0, 0, 1), lp(3, 0, -3, 4), 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := Tangent(tt.a, tt.b, tt.c)
			if set.Len() != tt.want {
				t.Errorf("got %d solutions, expected %d", set.Len(), tt.want)
			}
			checkTangency(t, set, 1e-9, tt.a, tt.b, tt.c)
		})
	}
}

func TestTangentWithRadius(t *testing.T) {
	tests := []struct {
		name string
		a, b Primitive
		r    float64
		want int
	}{
		{"CC", cp(0, 0, 1), cp(5, 0, 1), 3, 6},
		{"CL", cp(0, 1, 0.5), lp(0, 0, 1, 0), 1, 4},
		{"LC", lp(0, 0, 1, 0), cp(0, 1, 0.5), 1, 4},
		{"LL", lp(0, 0, 1, 0), lp(0, 0, 0, 1), 3, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := TangentWithRadius(tt.a, tt.b, tt.r)
			if set.Len() != tt.want {
				t.Errorf("got %d solutions, expected %d", set.Len(), tt.want)
			}
			checkTangency(t, set, 1e-9, tt.a, tt.b)
		})
	}
}

func TestPrimitive(t *testing.T) {
	c := CirclePrimitive(Circle{Pt(1, 2), 3})
	if c.IsLine() {
		t.Errorf("%v is a line", c)
	}
	l := LinePrimitive(Line{Pt(1, 2), Vec(0, 1)})
	if !l.IsLine() {
		t.Errorf("%v is not a line", l)
	}
	diff(t, Line{Pt(1, 2), Vec(0, 1)}, l.Line())
}

func TestPartition(t *testing.T) {
	perm, lines := partition([]Primitive{lp(0, 0, 1, 0), cp(0, 0, 1), lp(0, 0, 0, 1)})
	if lines != 2 {
		t.Errorf("got %d lines, expected 2", lines)
	}
	diff(t, [3]int{1, 0, 2}, perm)
}

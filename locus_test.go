package tangent

import (
	"math"
	"testing"
)

func TestTangentLocusEllipse(t *testing.T) {
	a := Circle{Pt(0, 0), 3}
	b := Circle{Pt(1, 0), 1}
	c, ok := TangentLocus(a, b)
	if !ok {
		t.Fatal("expected a locus")
	}
	if c.Kind != EllipseKind {
		t.Fatalf("got %v, expected an ellipse", c.Kind)
	}
	diff(t, Conic{EllipseKind, Pt(0.5, 0), Vec(1, 0), 2, math.Sqrt(15) / 2}, c, approx)

	f0, f1 := c.Foci()
	diff(t, a.Center, f0, approx)
	diff(t, b.Center, f1, approx)

	// Every point on the locus is the center of a circle inside a that
	// touches both a and b.
	for i := range 8 {
		x := c.Eval(float64(i) * math.Pi / 4)
		if r := c.Residual(x); math.Abs(r) > 1e-12 {
			t.Errorf("point %v is off the locus by %v", x, r)
		}
		rho := a.Radius - x.Distance(a.Center)
		if d := x.Distance(b.Center) - (b.Radius + rho); math.Abs(d) > 1e-12 {
			t.Errorf("circle at %v with radius %v is off tangency with %v by %v", x, rho, b, d)
		}
	}

	e, ok := c.Ellipse()
	if !ok {
		t.Fatal("expected an ellipse")
	}
	for i := range 8 {
		x := e.Eval(float64(i) * math.Pi / 4)
		if r := c.Residual(x); math.Abs(r) > 1e-12 {
			t.Errorf("point %v of the converted ellipse is off the locus by %v", x, r)
		}
	}
}

func TestTangentLocusEllipseOrientation(t *testing.T) {
	// The configuration of TestTangentLocusEllipse, turned so that the
	// centers lie along ⟨3, 4⟩.
	a := Circle{Pt(0, 0), 3}
	b := Circle{Pt(0.6, 0.8), 1}
	c, ok := TangentLocus(a, b)
	if !ok {
		t.Fatal("expected a locus")
	}
	e, ok := c.Ellipse()
	if !ok {
		t.Fatal("expected an ellipse")
	}
	radii, rot := e.RadiiRotation()
	diff(t, Vec(2, math.Sqrt(15)/2), radii, approx)
	if want := math.Atan2(4, 3); math.Abs(rot-want) > 1e-9 {
		t.Errorf("got rotation %v, expected %v", rot, want)
	}
	diff(t, Pt(0.3, 0.4), e.Center(), approx)
}

func TestTangentLocusHyperbola(t *testing.T) {
	a := Circle{Pt(0, 0), 1}
	b := Circle{Pt(5, 0), 1}
	c, ok := TangentLocus(a, b)
	if !ok {
		t.Fatal("expected a locus")
	}
	diff(t, Conic{HyperbolaKind, Pt(2.5, 0), Vec(1, 0), 1, math.Sqrt(21) / 2}, c, approx)
	if _, ok := c.Ellipse(); ok {
		t.Error("converted a hyperbola to an ellipse")
	}
	for _, branch := range []float64{-1, 1} {
		for i := range 5 {
			x := c.EvalBranch(float64(i-2)/2, branch)
			if r := c.Residual(x); math.Abs(r) > 1e-12 {
				t.Errorf("point %v is off the locus by %v", x, r)
			}
		}
	}
	if x := c.Eval(0); x.X < c.Center.X {
		t.Errorf("got vertex %v, expected it on the branch around the second focus", x)
	}
}

func TestTangentLocusDegenerate(t *testing.T) {
	// Externally touching circles: the locus collapses.
	if c, ok := TangentLocus(Circle{Pt(0, 0), 1}, Circle{Pt(2, 0), 1}); ok {
		t.Errorf("expected no locus, got %v", c)
	}
	// Identical circles.
	if c, ok := TangentLocus(Circle{Pt(1, 1), 1}, Circle{Pt(1, 1), -1}); ok {
		t.Errorf("expected no locus, got %v", c)
	}
	// Concentric circles yield a circle.
	c, ok := TangentLocus(Circle{Pt(1, 1), 3}, Circle{Pt(1, 1), 1})
	if !ok {
		t.Fatal("expected a locus")
	}
	diff(t, Conic{EllipseKind, Pt(1, 1), Vec(1, 0), 2, 2}, c, approx)
}

func TestTangentLoci(t *testing.T) {
	loci, n := TangentLoci(Circle{Pt(0, 0), 1}, Circle{Pt(5, 0), 1})
	if n != 2 {
		t.Fatalf("got %d loci, expected 2", n)
	}
	// The second locus is the perpendicular bisector of the centers.
	diff(t, Conic{HyperbolaKind, Pt(2.5, 0), Vec(1, 0), 0, 2.5}, loci[1], approx)

	// One of the two senses degenerates.
	if _, n := TangentLoci(Circle{Pt(0, 0), 1}, Circle{Pt(2, 0), 1}); n != 1 {
		t.Errorf("got %d loci, expected 1", n)
	}

	// A point has no sense to flip.
	loci, n = TangentLoci(Circle{Pt(0, 0), 0}, Circle{Pt(3, 0), 1})
	if n != 1 {
		t.Fatalf("got %d loci, expected 1", n)
	}
	if loci[0].Kind != HyperbolaKind {
		t.Errorf("got %v, expected a hyperbola", loci[0].Kind)
	}
}

package tangent

import (
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats to within the rounding applied by circles.
var approx = cmpopts.EquateApprox(0, 1e-6)

// circles returns the solutions of set as circles, rounded so that sorting
// isn't confused by roundoff.
func circles(set SolutionSet) []Circle {
	var out []Circle
	for sol := range set.All() {
		c := sol.Circle()
		out = append(out, Circle{
			Center: Pt(round(c.Center.X), round(c.Center.Y)),
			Radius: round(c.Radius),
		})
	}
	slices.SortFunc(out, func(a, b Circle) int {
		switch {
		case a.Center.X != b.Center.X:
			return cmpFloat(a.Center.X, b.Center.X)
		case a.Center.Y != b.Center.Y:
			return cmpFloat(a.Center.Y, b.Center.Y)
		default:
			return cmpFloat(a.Radius, b.Radius)
		}
	})
	return out
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func round(x float64) float64 {
	r := math.Round(x*1e6) / 1e6
	if r == 0 {
		// Normalize negative zero.
		return 0
	}
	return r
}

// checkCircleTangency verifies that sol touches c at its recorded tangency
// point and that the circles' distance matches one of the tangency senses.
func checkCircleTangency(t *testing.T, sol Solution, c Circle, pt Point, tol float64) {
	t.Helper()
	d := sol.Center.Distance(c.Center)
	rc := math.Abs(c.Radius)
	external := math.Abs(d - (sol.Radius + rc))
	internal := math.Abs(d - math.Abs(sol.Radius-rc))
	if min(external, internal) > tol {
		t.Errorf("%v is not tangent to %v: center distance %v, radii %v and %v", sol, c, d, sol.Radius, rc)
	}
	if e := math.Abs(pt.Distance(c.Center) - rc); e > tol {
		t.Errorf("tangency point %v of %v is %v off circle %v", pt, sol, e, c)
	}
	if e := math.Abs(pt.Distance(sol.Center) - sol.Radius); e > tol {
		t.Errorf("tangency point %v is %v off solution %v", pt, e, sol)
	}
}

// checkLineTangency verifies that sol touches l at its recorded tangency
// point.
func checkLineTangency(t *testing.T, sol Solution, l Line, pt Point, tol float64) {
	t.Helper()
	if e := math.Abs(l.Distance(sol.Center) - sol.Radius); e > tol {
		t.Errorf("%v is %v off tangency with %v", sol, e, l)
	}
	if e := l.Distance(pt); e > tol {
		t.Errorf("tangency point %v of %v is %v off line %v", pt, sol, e, l)
	}
	if e := math.Abs(pt.Distance(sol.Center) - sol.Radius); e > tol {
		t.Errorf("tangency point %v is %v off solution %v", pt, e, sol)
	}
}

// checkTangency verifies every solution of set against the inputs it was
// computed from, in input order.
func checkTangency(t *testing.T, set SolutionSet, tol float64, inputs ...Primitive) {
	t.Helper()
	for sol := range set.All() {
		if sol.N != len(inputs) {
			t.Errorf("%v has %d tangency points, expected %d", sol, sol.N, len(inputs))
			continue
		}
		for i, in := range inputs {
			if in.IsLine() {
				checkLineTangency(t, sol, in.Line(), sol.Tangents[i], tol)
			} else {
				checkCircleTangency(t, sol, in.Circle, sol.Tangents[i], tol)
			}
		}
	}
}

// transformed returns the solutions of set mapped by aff.
func transformed(set SolutionSet, aff Affine) SolutionSet {
	out := NewSolutionSet(set.Cap())
	for sol := range set.All() {
		out.Push(sol.Transform(aff))
	}
	return out
}

func cp(x, y, r float64) Primitive { return CirclePrimitive(Circle{Pt(x, y), r}) }

func lp(x, y, dx, dy float64) Primitive { return LinePrimitive(Line{Pt(x, y), Vec(dx, dy)}) }

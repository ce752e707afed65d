package tangent

import (
	"fmt"
	"math"
)

type ConicKind int

const (
	EllipseKind ConicKind = iota
	HyperbolaKind
)

func (k ConicKind) String() string {
	switch k {
	case EllipseKind:
		return "ellipse"
	case HyperbolaKind:
		return "hyperbola"
	default:
		return fmt.Sprintf("ConicKind(%d)", int(k))
	}
}

// Conic is a central conic in standard position relative to Center and Axis.
//
// For an ellipse, A is the semi-major axis and B the semi-minor axis; the sum
// of the distances of every point to the foci is 2A. For a hyperbola, A is the
// distance from the center to each vertex and B the conjugate semi-axis; the
// absolute difference of the distances to the foci is 2A. In both cases the
// foci lie on Axis at a distance of half the focal distance from Center.
type Conic struct {
	Kind   ConicKind
	Center Point
	// Axis is the unit direction of the major (transverse) axis.
	Axis Vec2
	A, B float64
}

func (c Conic) focalDistance() float64 {
	if c.Kind == HyperbolaKind {
		return math.Hypot(c.A, c.B)
	}
	return math.Sqrt(max(c.A*c.A-c.B*c.B, 0))
}

// Foci returns the two foci of the conic, the first one on the negative side
// of the axis.
func (c Conic) Foci() (Point, Point) {
	f := c.focalDistance()
	return c.Center.Translate(c.Axis.Mul(-f)), c.Center.Translate(c.Axis.Mul(f))
}

// Eval returns the point at parameter t. Ellipses are parametrized by angle;
// hyperbolas by the hyperbolic angle on the branch around the second focus.
func (c Conic) Eval(t float64) Point {
	return c.EvalBranch(t, 1)
}

// EvalBranch is like Eval but selects the hyperbola branch by the sign of
// branch. It ignores branch for ellipses.
func (c Conic) EvalBranch(t float64, branch float64) Point {
	var u, v float64
	if c.Kind == HyperbolaKind {
		u = math.Copysign(c.A*math.Cosh(t), branch)
		v = c.B * math.Sinh(t)
	} else {
		u = c.A * math.Cos(t)
		v = c.B * math.Sin(t)
	}
	return c.Center.Translate(c.Axis.Mul(u)).Translate(c.Axis.Perp().Mul(v))
}

// Residual returns how far pt is from satisfying the focal definition of the
// conic. It is zero for points on the conic.
func (c Conic) Residual(pt Point) float64 {
	f0, f1 := c.Foci()
	d0 := pt.Distance(f0)
	d1 := pt.Distance(f1)
	if c.Kind == HyperbolaKind {
		return math.Abs(d0-d1) - 2*c.A
	}
	return d0 + d1 - 2*c.A
}

// Ellipse returns the conic as an [Ellipse]. It reports false for hyperbolas.
func (c Conic) Ellipse() (Ellipse, bool) {
	if c.Kind != EllipseKind {
		return Ellipse{}, false
	}
	return NewEllipse(c.Center, Vec(c.A, c.B), c.Axis.Angle()), true
}

func (c Conic) String() string {
	return fmt.Sprintf("%s center %s axis %s a %g b %g", c.Kind, c.Center, c.Axis, c.A, c.B)
}

// TangentLocus returns the locus of the centers of circles tangent to both a
// and b, for the tangency senses encoded by the signs of the radii.
//
// With s = a.Radius + b.Radius and d the distance between the centers, the
// locus is an ellipse if d < |s| and a hyperbola if d > |s|. When d equals |s|
// the locus degenerates and TangentLocus reports false.
func TangentLocus(a, b Circle) (Conic, bool) {
	return Solver{}.TangentLocus(a, b)
}

// TangentLoci returns the loci of tangent centers for both relative tangency
// senses of a and b. The second locus is skipped if either radius is zero,
// because flipping the sense of a point changes nothing.
func TangentLoci(a, b Circle) ([2]Conic, int) {
	return Solver{}.TangentLoci(a, b)
}

// TangentLocus is like the package-level [TangentLocus] but uses the solver's
// tolerances.
func (sv Solver) TangentLocus(a, b Circle) (Conic, bool) {
	tol := sv.tol()
	s := a.Radius + b.Radius
	ab := b.Center.Sub(a.Center)
	d := ab.Hypot()
	as := math.Abs(s)
	if math.Abs(d-as) <= tol.Zero*max(d, as) {
		return Conic{}, false
	}

	c := Conic{
		Center: a.Center.Midpoint(b.Center),
		Axis:   ab.NormalizeOr(Vec(1, 0)),
		A:      as / 2,
		B:      math.Sqrt(math.Abs(d*d-s*s)) / 2,
	}
	if d < as {
		c.Kind = EllipseKind
	} else {
		c.Kind = HyperbolaKind
	}
	if c.IsNaN() || c.IsInf() {
		return Conic{}, false
	}
	return c, true
}

// TangentLoci is like the package-level [TangentLoci] but uses the solver's
// tolerances.
func (sv Solver) TangentLoci(a, b Circle) ([2]Conic, int) {
	var out [2]Conic
	var n int
	if c, ok := sv.TangentLocus(a, b); ok {
		out[n] = c
		n++
	}
	if a.Radius == 0 || b.Radius == 0 {
		return out, n
	}
	nb := b
	nb.Radius = -b.Radius
	if c, ok := sv.TangentLocus(a, nb); ok {
		out[n] = c
		n++
	}
	if n == 0 {
		Logger().Debug("no tangent locus", "a", a, "b", b)
	}
	return out, n
}

func (c Conic) IsNaN() bool {
	return c.Center.IsNaN() || c.Axis.IsNaN() || math.IsNaN(c.A) || math.IsNaN(c.B)
}

func (c Conic) IsInf() bool {
	return c.Center.IsInf() || c.Axis.IsInf() || math.IsInf(c.A, 0) || math.IsInf(c.B, 0)
}

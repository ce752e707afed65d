// Package spatial solves tangency problems for circles and lines given in 3D
// coordinates. Inputs are projected onto the XY plane, solved there, and the
// results are lifted back, carrying z values through unchanged. It does not
// do any 3D tangency math.
package spatial

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"honnef.co/go/tangent"
)

// Primitive is a circle or a line. A Direction with a non-zero XY component
// makes it the line through Center running along Direction; otherwise it is
// the circle around Center with Radius, lying in the plane z = Center.Z.
type Primitive struct {
	Center    v3.Vec
	Radius    float64
	Direction v3.Vec
}

func Circle(center v3.Vec, radius float64) Primitive {
	return Primitive{Center: center, Radius: radius}
}

func Line(point, direction v3.Vec) Primitive {
	return Primitive{Center: point, Direction: direction}
}

func (p Primitive) IsLine() bool {
	return p.Direction.X != 0 || p.Direction.Y != 0
}

// Planar returns the projection of p onto the XY plane.
func (p Primitive) Planar() tangent.Primitive {
	if p.IsLine() {
		return tangent.LinePrimitive(tangent.Line{
			Point:     Project(p.Center),
			Direction: tangent.Vec(p.Direction.X, p.Direction.Y),
		})
	}
	return tangent.CirclePrimitive(tangent.Circle{Center: Project(p.Center), Radius: p.Radius})
}

// zAt returns the z value of p at the planar point pt, which is assumed to lie
// on the projection of p.
func (p Primitive) zAt(pt tangent.Point) float64 {
	if !p.IsLine() {
		return p.Center.Z
	}
	l := p.Planar().Line()
	return p.Center.Z + p.Direction.Z*l.Param(pt)
}

// Solution is a tangent circle lifted back into 3D.
type Solution struct {
	Center   v3.Vec
	Radius   float64
	Tangents [3]v3.Vec
	N        int
}

// TangentPoints returns the tangency points as a slice.
func (s Solution) TangentPoints() []v3.Vec {
	return s.Tangents[:s.N]
}

// Project drops the z coordinate of p.
func Project(p v3.Vec) tangent.Point {
	return tangent.Pt(p.X, p.Y)
}

// Lift returns the point pt at height z.
func Lift(pt tangent.Point, z float64) v3.Vec {
	return v3.Vec{X: pt.X, Y: pt.Y, Z: z}
}

// Solver wraps a [tangent.Solver]. The zero value is ready to use.
type Solver struct {
	tangent.Solver
}

// Tangent returns the circles tangent to three primitives. See
// [tangent.Tangent]. Each solution lies in the plane of a, and each tangency
// point takes the z value of the input it lies on.
func (sv Solver) Tangent(a, b, c Primitive) []Solution {
	set := sv.Solver.Tangent(a.Planar(), b.Planar(), c.Planar())
	return lift(set, a, b, c)
}

// TangentWithRadius returns the circles of radius r tangent to two
// primitives. See [tangent.TangentWithRadius].
func (sv Solver) TangentWithRadius(a, b Primitive, r float64) []Solution {
	set := sv.Solver.TangentWithRadius(a.Planar(), b.Planar(), r)
	return lift(set, a, b)
}

// Tangent is like [Solver.Tangent] but uses the zero Solver.
func Tangent(a, b, c Primitive) []Solution {
	return Solver{}.Tangent(a, b, c)
}

// TangentWithRadius is like [Solver.TangentWithRadius] but uses the zero
// Solver.
func TangentWithRadius(a, b Primitive, r float64) []Solution {
	return Solver{}.TangentWithRadius(a, b, r)
}

func lift(set tangent.SolutionSet, inputs ...Primitive) []Solution {
	out := make([]Solution, 0, set.Len())
	z := inputs[0].Center.Z
	for sol := range set.All() {
		s := Solution{
			Center: Lift(sol.Center, z),
			Radius: sol.Radius,
			N:      sol.N,
		}
		for i, pt := range sol.TangentPoints() {
			s.Tangents[i] = Lift(pt, inputs[i].zAt(pt))
		}
		out = append(out, s)
	}
	return out
}

package tangent

import (
	"fmt"
)

// Primitive is either a circle or a line. A non-zero Direction makes it the
// line through Center running along Direction, in which case Radius is
// ignored.
type Primitive struct {
	Circle
	Direction Vec2
}

// CirclePrimitive returns c as a primitive.
func CirclePrimitive(c Circle) Primitive {
	return Primitive{Circle: c}
}

// LinePrimitive returns l as a primitive.
func LinePrimitive(l Line) Primitive {
	return Primitive{Circle: Circle{Center: l.Point}, Direction: l.Direction}
}

func (p Primitive) IsLine() bool {
	return p.Direction != Vec2{}
}

// Line returns the primitive as a line. It is only meaningful if IsLine
// returns true.
func (p Primitive) Line() Line {
	return Line{Point: p.Center, Direction: p.Direction}
}

func (p Primitive) String() string {
	if p.IsLine() {
		return fmt.Sprintf("line through %s along %s", p.Center, p.Direction)
	}
	return fmt.Sprintf("circle at %s radius %g", p.Center, p.Radius)
}

// Tangent returns the circles tangent to three primitives, dispatching on the
// number of lines among them to [Solver.ThreeCircles],
// [Solver.CirclesAndLine], [Solver.LinesAndCircle], or [Solver.ThreeLines].
// The tangency points are reported in the order a, b, c regardless of which
// solver ran.
func Tangent(a, b, c Primitive) SolutionSet {
	return Solver{}.Tangent(a, b, c)
}

// Tangent is like the package-level [Tangent] but uses the solver's
// configuration.
func (sv Solver) Tangent(a, b, c Primitive) SolutionSet {
	in := [3]Primitive{a, b, c}
	perm, lines := partition(in[:])
	p := func(i int) Primitive { return in[perm[i]] }

	var set SolutionSet
	switch lines {
	case 0:
		return sv.ThreeCircles(a.Circle, b.Circle, c.Circle)
	case 1:
		set = sv.CirclesAndLine(p(0).Circle, p(1).Circle, p(2).Line())
	case 2:
		set = sv.LinesAndCircle(p(1).Line(), p(2).Line(), p(0).Circle)
		// LinesAndCircle reports the circle last.
		perm = [3]int{perm[1], perm[2], perm[0]}
	case 3:
		return sv.ThreeLines(a.Line(), b.Line(), c.Line())
	}
	return reorderTangents(set, perm[:])
}

// TangentWithRadius returns the circles of radius r tangent to two
// primitives, dispatching to [Solver.CirclesWithRadius],
// [Solver.CircleAndLineWithRadius], or [Solver.LinesWithRadius]. The tangency
// points are reported in the order a, b.
func TangentWithRadius(a, b Primitive, r float64) SolutionSet {
	return Solver{}.TangentWithRadius(a, b, r)
}

// TangentWithRadius is like the package-level [TangentWithRadius] but uses
// the solver's configuration.
func (sv Solver) TangentWithRadius(a, b Primitive, r float64) SolutionSet {
	switch {
	case a.IsLine() && b.IsLine():
		return sv.LinesWithRadius(a.Line(), b.Line(), r)
	case a.IsLine():
		set := sv.CircleAndLineWithRadius(b.Circle, a.Line(), r)
		return reorderTangents(set, []int{1, 0})
	case b.IsLine():
		return sv.CircleAndLineWithRadius(a.Circle, b.Line(), r)
	default:
		return sv.CirclesWithRadius(a.Circle, b.Circle, r)
	}
}

// partition returns the indices of in with circles before lines, keeping the
// relative order of each group, and the number of lines.
func partition(in []Primitive) ([3]int, int) {
	var perm [3]int
	var n, lines int
	for i, p := range in {
		if !p.IsLine() {
			perm[n] = i
			n++
		}
	}
	for i, p := range in {
		if p.IsLine() {
			perm[n] = i
			n++
			lines++
		}
	}
	return perm, lines
}

// reorderTangents moves the tangency points of every solution in set from
// solver order to input order: the point at position k belongs to input
// perm[k].
func reorderTangents(set SolutionSet, perm []int) SolutionSet {
	for i := range set.n {
		sol := &set.items[i]
		var pts [3]Point
		for k, j := range perm {
			pts[j] = sol.Tangents[k]
		}
		sol.Tangents = pts
	}
	return set
}

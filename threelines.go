package tangent

import (
	"math"
)

// TangentToThreeLines returns the circles tangent to the lines l1, l2, and l3.
// For lines forming a triangle, these are the incircle and the three
// excircles. Two parallel lines and a transversal yield two solutions, three
// parallel lines none. The tangency points are reported in the order l1, l2,
// l3.
func TangentToThreeLines(l1, l2, l3 Line) SolutionSet {
	return Solver{}.ThreeLines(l1, l2, l3)
}

// ThreeLines is like [TangentToThreeLines] but uses the solver's
// configuration.
func (sv Solver) ThreeLines(l1, l2, l3 Line) SolutionSet {
	o := lineOrigin(l1, l2, l3)
	l1, l2, l3 = l1.relativeTo(o), l2.relativeTo(o), l3.relativeTo(o)
	e := sv.newEmitter(o, l1.magnitude()+l2.magnitude()+l3.magnitude())
	lines := [3]Line{l1, l2, l3}
	var m [3][3]float64
	var b [3]float64
	var normals [3]Vec2
	for i, l := range lines {
		if l.IsNaN() || l.IsInf() {
			return e.result()
		}
		normals[i] = l.Normal()
		b[i] = normals[i].Dot(Vec2(l.Point))
	}

	// Each line gives nᵢ·X - σᵢr = nᵢ·pᵢ. The sign of the first line is fixed
	// because r is signed.
	for _, sp := range signPairs(1, 1) {
		sigma := [3]float64{1, float64(sp.first), float64(sp.second)}
		for i, n := range normals {
			m[i] = [3]float64{n.X, n.Y, -sigma[i]}
		}
		x, ok := solve3x3(m, b, e.tol.Zero)
		if !ok {
			Logger().Debug("singular three-line system", "signs", sigma)
			continue
		}
		center := Pt(x[0], x[1])
		if !e.emit(Solution{
			Center: center,
			Radius: math.Abs(x[2]),
			Tangents: [3]Point{
				l1.Project(center),
				l2.Project(center),
				l3.Project(center),
			},
			N: 3,
		}) {
			break
		}
	}
	return e.result()
}

package tangent

import (
	"math"
)

// TangentToLinesAndCircle returns the circles tangent to the lines l1 and l2
// and to the circle c. There are up to eight solutions. The tangency points
// are reported in the order l1, l2, c.
//
// If the lines are parallel, the solutions lie on the line midway between them
// and their radius is half the lines' distance. Coincident lines yield circles
// of radius zero at the points where the lines cross c.
func TangentToLinesAndCircle(l1, l2 Line, c Circle) SolutionSet {
	return Solver{}.LinesAndCircle(l1, l2, c)
}

// LinesAndCircle is like [TangentToLinesAndCircle] but uses the solver's
// configuration.
func (sv Solver) LinesAndCircle(l1, l2 Line, c Circle) SolutionSet {
	o := c.Center
	l1, l2, c = l1.relativeTo(o), l2.relativeTo(o), c.relativeTo(o)
	e := sv.newEmitter(o, l1.magnitude()+l2.magnitude()+c.magnitude(), c)
	if l1.IsNaN() || l1.IsInf() || l2.IsNaN() || l2.IsInf() || c.IsNaN() || c.IsInf() {
		return e.result()
	}
	tol := e.tol
	emit := func(center Point, r float64) bool {
		radius := math.Abs(r)
		return e.emit(Solution{
			Center: center,
			Radius: radius,
			Tangents: [3]Point{
				l1.Project(center),
				l2.Project(center),
				tangentPointOn(c, center, radius, tol),
			},
			N: 3,
		})
	}

	n1 := l1.Normal()
	n2 := l2.Normal()
	rc := math.Abs(c.Radius)

	if math.Abs(n1.Cross(n2)) <= tol.Collinear {
		Logger().Debug("parallel lines", "origin", o, "l1", l1, "l2", l2)
		// Every solution is centered on the midline at signed distance r from
		// l1, r from l2 on the other side.
		u := l1.Unit()
		r := n1.Dot(l2.Point.Sub(l1.Point)) / 2
		if math.Abs(r) <= tol.Zero*e.scale {
			r = 0
		}
		tc := u.Dot(c.Center.Sub(l1.Point))
		hc := n1.Dot(c.Center.Sub(l1.Point))
		origin := l1.Point.Translate(n1.Mul(r))
		for _, s := range [...]sign{plus, minus} {
			if s == minus && (rc == 0 || r == 0) {
				continue
			}
			rho := s.of(rc)
			dh := r - hc
			roots, n := solveQuadraticNear(tc*tc+dh*dh-(r+rho)*(r+rho), -2*tc, 1, tol.Zero)
			for _, t := range roots[:n] {
				if !emit(origin.Translate(u.Mul(t)), r) {
					return e.result()
				}
			}
		}
		return e.result()
	}

	inv, ok := Rows(n1, n2).InvertChecked(tol.Zero)
	if !ok {
		return e.result()
	}
	a := Vec(n1.Dot(l1.Point.Sub(c.Center)), n2.Dot(l2.Point.Sub(c.Center)))
	P := inv.TransformVec(a)
	// The first line fixes the sign of r; the second line and the circle are
	// tried in both senses.
	for _, sp := range signPairs(1, rc) {
		Q := inv.TransformVec(Vec(1, float64(sp.first)))
		rho := sp.second.of(rc)
		roots, n := solveQuadraticNear(P.Hypot2()-rho*rho, 2*(P.Dot(Q)-rho), Q.Hypot2()-1, tol.Zero)
		for _, r := range roots[:n] {
			if !emit(c.Center.Translate(P.Add(Q.Mul(r))), r) {
				return e.result()
			}
		}
	}
	return e.result()
}

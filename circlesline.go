package tangent

import (
	"math"
)

// TangentToCirclesAndLine returns the circles tangent to the circles a and b
// and to the line l. There are up to eight solutions. The tangency points are
// reported in the order a, b, l.
func TangentToCirclesAndLine(a, b Circle, l Line) SolutionSet {
	return Solver{}.CirclesAndLine(a, b, l)
}

// CirclesAndLine is like [TangentToCirclesAndLine] but uses the solver's
// configuration.
//
// The solve works in the frame of the line, where a solution has abscissa t
// and ordinate r, its signed radius. Subtracting the tangency conditions of
// the two circles leaves an equation linear in t and r.
func (sv Solver) CirclesAndLine(a, b Circle, l Line) SolutionSet {
	o := a.Center
	a, b, l = a.relativeTo(o), b.relativeTo(o), l.relativeTo(o)
	e := sv.newEmitter(o, a.magnitude()+b.magnitude()+l.magnitude(), a, b)
	if a.IsNaN() || a.IsInf() || b.IsNaN() || b.IsInf() || l.IsNaN() || l.IsInf() {
		return e.result()
	}
	tol := e.tol

	tA, hA := l.local(a.Center)
	tB, hB := l.local(b.Center)
	emit := func(t, r float64) bool {
		center := l.world(t, r)
		radius := math.Abs(r)
		return e.emit(Solution{
			Center: center,
			Radius: radius,
			Tangents: [3]Point{
				tangentPointOn(a, center, radius, tol),
				tangentPointOn(b, center, radius, tol),
				l.Project(center),
			},
			N: 3,
		})
	}

	sharedPerpendicular := math.Abs(tA-tB) <= tol.Collinear*e.scale
	if sharedPerpendicular {
		Logger().Debug("circle centers share a perpendicular to the line", "origin", o, "a", a, "b", b, "line", l)
	}
	for _, sp := range signPairs(math.Abs(a.Radius), math.Abs(b.Radius)) {
		rhoA := sp.first.of(math.Abs(a.Radius))
		rhoB := sp.second.of(math.Abs(b.Radius))
		// kA and kB are the constant terms of the circle equations
		// (t-tᵢ)² - 2r(ρᵢ+hᵢ) = ρᵢ² - hᵢ².
		kA := rhoA*rhoA - hA*hA
		kB := rhoB*rhoB - hB*hB
		ct := -2 * (tA - tB)
		cr := -2 * ((rhoA + hA) - (rhoB + hB))
		c0 := kA - kB - (tA*tA - tB*tB)

		if sharedPerpendicular {
			r := checkedDiv(c0, cr, math.NaN())
			if math.IsNaN(r) {
				continue
			}
			dt, ok := sqrtNear(2*r*(rhoA+hA)+kA, e.scale, tol.Collinear)
			if !ok {
				continue
			}
			t := (tA + tB) / 2
			if !emit(t+dt, r) {
				return e.result()
			}
			if dt != 0 && !emit(t-dt, r) {
				return e.result()
			}
			continue
		}

		alpha := c0 / ct
		beta := -cr / ct
		k := alpha - tA
		roots, n := solveQuadraticNear(k*k-kA, 2*k*beta-2*(rhoA+hA), beta*beta, tol.Zero)
		for _, r := range roots[:n] {
			if !emit(alpha+beta*r, r) {
				return e.result()
			}
		}
	}
	return e.result()
}

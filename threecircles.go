package tangent

import (
	"math"
	"slices"
)

// TangentToThreeCircles returns the circles tangent to a, b, and c. This is the
// classic problem of Apollonius, which has up to eight solutions.
//
// The magnitudes of the input radii are used; both tangency senses are tried
// for every input with a non-zero radius, so a point (a circle of radius zero)
// acts as a point the solutions pass through. Solutions that coincide with one
// of the inputs are omitted. The tangency points of each solution are reported
// in the order a, b, c.
func TangentToThreeCircles(a, b, c Circle) SolutionSet {
	return Solver{}.ThreeCircles(a, b, c)
}

// ThreeCircles is like [TangentToThreeCircles] but uses the solver's
// configuration.
func (sv Solver) ThreeCircles(a, b, c Circle) SolutionSet {
	o := a.Center
	in := [3]Circle{a.relativeTo(o), b.relativeTo(o), c.relativeTo(o)}
	e := sv.newEmitter(o, in[0].magnitude()+in[1].magnitude()+in[2].magnitude(), in[:]...)
	for _, cc := range in {
		if cc.IsNaN() || cc.IsInf() {
			return e.result()
		}
	}

	order := spreadOrder(in)
	p := threeCircles{
		e:   e,
		in:  in,
		c0:  in[order[0]].Center,
		rho: [3]float64{math.Abs(in[order[0]].Radius), math.Abs(in[order[1]].Radius), math.Abs(in[order[2]].Radius)},
		d1:  in[order[1]].Center.Sub(in[order[0]].Center),
		d2:  in[order[2]].Center.Sub(in[order[0]].Center),
	}

	tol := e.tol
	if math.Abs(p.d1.Cross(p.d2)) <= tol.Collinear*p.d1.Hypot()*p.d2.Hypot() {
		Logger().Debug("collinear circle centers", "a", a, "b", b, "c", c)
		p.collinear()
		return e.result()
	}
	inv, ok := Rows(p.d1.Mul(2), p.d2.Mul(2)).InvertChecked(tol.Zero)
	if !ok {
		Logger().Debug("singular three-circle system", "a", a, "b", b, "c", c)
		p.collinear()
		return e.result()
	}
	p.general(inv)
	return e.result()
}

// spreadOrder returns the indices of in ordered by descending sum of distances
// to the other two centers. The first circle becomes the origin of the
// solve; picking the one farthest from the others keeps the difference
// vectors well conditioned.
func spreadOrder(in [3]Circle) [3]int {
	var spread [3]float64
	for i := range 3 {
		for j := range 3 {
			if i != j {
				spread[i] += in[i].Center.Distance(in[j].Center)
			}
		}
	}
	order := [3]int{0, 1, 2}
	slices.SortStableFunc(order[:], func(i, j int) int {
		switch {
		case spread[i] > spread[j]:
			return -1
		case spread[i] < spread[j]:
			return 1
		default:
			return 0
		}
	})
	return order
}

// threeCircles holds one three-circle solve. The inputs in are relative to
// the emitter's origin, and the solve itself works relative to c0, the center
// of the first circle in spread order.
type threeCircles struct {
	e      *emitter
	in     [3]Circle
	c0     Point
	rho    [3]float64
	d1, d2 Vec2
}

// emit reports the circle with center c0+y and signed radius r.
func (p *threeCircles) emit(y Vec2, r float64) bool {
	center := p.c0.Translate(y)
	radius := math.Abs(r)
	sol := Solution{Center: center, Radius: radius, N: 3}
	for i, c := range p.in {
		sol.Tangents[i] = tangentPointOn(c, center, radius, p.e.tol)
	}
	return p.e.emit(sol)
}

// general solves the non-collinear configuration. Subtracting the tangency
// condition of the first circle from those of the other two leaves a linear
// system 2·dᵢ·y = aᵢ + bᵢ·r, whose matrix inv inverts, so that y = P + Q·r.
// Substituting into |y| = r + ρ₀ gives a quadratic in r.
func (p *threeCircles) general(inv Affine) {
	rho0 := p.rho[0]
	for _, sp := range signPairs(p.rho[1], p.rho[2]) {
		rho1 := sp.first.of(p.rho[1])
		rho2 := sp.second.of(p.rho[2])
		a := Vec(
			p.d1.Hypot2()-rho1*rho1+rho0*rho0,
			p.d2.Hypot2()-rho2*rho2+rho0*rho0,
		)
		b := Vec(-2*(rho1-rho0), -2*(rho2-rho0))
		P := inv.TransformVec(a)
		Q := inv.TransformVec(b)

		roots, n := solveQuadraticNear(P.Hypot2()-rho0*rho0, 2*(P.Dot(Q)-rho0), Q.Hypot2()-1, p.e.tol.Zero)
		for _, r := range roots[:n] {
			if !p.emit(P.Add(Q.Mul(r)), r) {
				return
			}
		}
	}
}

// collinear solves the configuration whose centers lie on one line. In a frame
// along that line, the two difference equations are linear in the abscissa x
// and the radius r, and the ordinate follows from the first circle.
func (p *threeCircles) collinear() {
	u := p.d1
	if p.d2.Hypot2() > u.Hypot2() {
		u = p.d2
	}
	u = u.NormalizeOr(Vec(1, 0))
	frame := Frame(Point{}, u)
	x1 := p.d1.Dot(u)
	x2 := p.d2.Dot(u)
	scale := p.e.scale

	rho0 := p.rho[0]
	for _, sp := range signPairs(p.rho[1], p.rho[2]) {
		rho1 := sp.first.of(p.rho[1])
		rho2 := sp.second.of(p.rho[2])
		x, r, ok := solve2x2(
			-2*x1, -2*(rho1-rho0),
			-2*x2, -2*(rho2-rho0),
			rho1*rho1-rho0*rho0-x1*x1,
			rho2*rho2-rho0*rho0-x2*x2,
			p.e.tol.Zero,
		)
		if !ok {
			Logger().Debug("no unique collinear solution", "rho1", rho1, "rho2", rho2)
			continue
		}
		y2 := (r+rho0)*(r+rho0) - x*x
		y, ok := sqrtNear(y2, scale, p.e.tol.Collinear)
		if !ok {
			continue
		}
		if !p.emit(frame.TransformVec(Vec(x, y)), r) {
			return
		}
		if y != 0 && !p.emit(frame.TransformVec(Vec(x, -y)), r) {
			return
		}
	}
}

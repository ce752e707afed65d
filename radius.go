package tangent

import (
	"math"
)

// TangentToCirclesWithRadius returns the circles of radius r tangent to the
// circles a and b. Their centers are the intersections of the circles
// concentric with a and b whose radii are grown or shrunk by r. All four
// combinations of growing and shrinking are tried, not just the outer
// tangencies, so there can be up to eight solutions where constructions
// limited to the usual offsets find at most four. The tangency points are
// reported in the order a, b.
func TangentToCirclesWithRadius(a, b Circle, r float64) SolutionSet {
	return Solver{}.CirclesWithRadius(a, b, r)
}

// CirclesWithRadius is like [TangentToCirclesWithRadius] but uses the
// solver's configuration.
func (sv Solver) CirclesWithRadius(a, b Circle, r float64) SolutionSet {
	r = math.Abs(r)
	o := a.Center
	a, b = a.relativeTo(o), b.relativeTo(o)
	e := sv.newEmitter(o, a.magnitude()+b.magnitude()+r, a, b)
	if a.IsNaN() || a.IsInf() || b.IsNaN() || b.IsInf() || math.IsNaN(r) || math.IsInf(r, 0) {
		return e.result()
	}
	tol := e.tol

	ab := b.Center.Sub(a.Center)
	d := ab.Hypot()
	if d <= tol.Zero*e.scale {
		Logger().Debug("concentric circles", "origin", o, "a", a, "b", b)
		return e.result()
	}
	u := ab.Div(d)
	perp := u.Perp()

	for _, sp := range signPairs(r, r) {
		r1 := math.Abs(math.Abs(a.Radius) + sp.first.of(r))
		r2 := math.Abs(math.Abs(b.Radius) + sp.second.of(r))
		// The radical line of the two offset circles crosses ab at distance
		// alpha from a's center.
		alpha := (d*d + r1*r1 - r2*r2) / (2 * d)
		h, ok := sqrtNear(r1*r1-alpha*alpha, e.scale, tol.Collinear)
		if !ok {
			continue
		}
		mid := a.Center.Translate(u.Mul(alpha))
		for _, s := range [...]sign{plus, minus} {
			if s == minus && h == 0 {
				continue
			}
			center := mid.Translate(perp.Mul(s.of(h)))
			if !e.emit(Solution{
				Center:   center,
				Radius:   r,
				Tangents: [3]Point{tangentPointOn(a, center, r, tol), tangentPointOn(b, center, r, tol)},
				N:        2,
			}) {
				return e.result()
			}
		}
	}
	return e.result()
}

// TangentToCircleAndLineWithRadius returns the circles of radius r tangent to
// the circle c and the line l. Their centers lie on the two lines parallel to
// l at distance r and on the two circles concentric with c whose radii are
// grown or shrunk by r. Both sides of the line and both offsets of the circle
// are tried, so there can be up to eight solutions rather than the four of
// the outer tangencies alone. The tangency points are reported in the order
// c, l.
func TangentToCircleAndLineWithRadius(c Circle, l Line, r float64) SolutionSet {
	return Solver{}.CircleAndLineWithRadius(c, l, r)
}

// CircleAndLineWithRadius is like [TangentToCircleAndLineWithRadius] but uses
// the solver's configuration.
func (sv Solver) CircleAndLineWithRadius(c Circle, l Line, r float64) SolutionSet {
	r = math.Abs(r)
	o := c.Center
	c, l = c.relativeTo(o), l.relativeTo(o)
	e := sv.newEmitter(o, c.magnitude()+l.magnitude()+r, c)
	if c.IsNaN() || c.IsInf() || l.IsNaN() || l.IsInf() || math.IsNaN(r) || math.IsInf(r, 0) {
		return e.result()
	}
	tol := e.tol

	tc, hc := l.local(c.Center)
	for _, sp := range signPairs(r, r) {
		h := sp.first.of(r)
		rho := math.Abs(c.Radius) + sp.second.of(r)
		dh := h - hc
		roots, n := solveQuadraticNear(tc*tc+dh*dh-rho*rho, -2*tc, 1, tol.Zero)
		for _, t := range roots[:n] {
			center := l.world(t, h)
			if !e.emit(Solution{
				Center:   center,
				Radius:   r,
				Tangents: [3]Point{tangentPointOn(c, center, r, tol), l.Project(center)},
				N:        2,
			}) {
				return e.result()
			}
		}
	}
	return e.result()
}

// TangentToLinesWithRadius returns the circles of radius r tangent to the
// lines l1 and l2, which are the fillets of the four corners the lines form.
// Parallel lines yield no solutions. The tangency points are reported in the
// order l1, l2.
func TangentToLinesWithRadius(l1, l2 Line, r float64) SolutionSet {
	return Solver{}.LinesWithRadius(l1, l2, r)
}

// LinesWithRadius is like [TangentToLinesWithRadius] but uses the solver's
// configuration.
func (sv Solver) LinesWithRadius(l1, l2 Line, r float64) SolutionSet {
	r = math.Abs(r)
	o := lineOrigin(l1, l2)
	l1, l2 = l1.relativeTo(o), l2.relativeTo(o)
	e := sv.newEmitter(o, l1.magnitude()+l2.magnitude()+r)
	if l1.IsNaN() || l1.IsInf() || l2.IsNaN() || l2.IsInf() || math.IsNaN(r) || math.IsInf(r, 0) {
		return e.result()
	}
	if math.Abs(l1.Unit().Cross(l2.Unit())) <= e.tol.Collinear {
		Logger().Debug("parallel lines", "origin", o, "l1", l1, "l2", l2)
		return e.result()
	}

	for _, sp := range signPairs(r, r) {
		o1 := l1.Offset(sp.first.of(r))
		o2 := l2.Offset(sp.second.of(r))
		center, ok := o1.CrossingPoint(o2)
		if !ok {
			continue
		}
		if !e.emit(Solution{
			Center:   center,
			Radius:   r,
			Tangents: [3]Point{l1.Project(center), l2.Project(center)},
			N:        2,
		}) {
			break
		}
	}
	return e.result()
}

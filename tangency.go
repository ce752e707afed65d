package tangent

import (
	"math"
)

// ProjectPointOnLine returns the orthogonal projection of pt onto the infinite
// line through linePoint with direction dir. A zero direction projects every
// point onto linePoint.
func ProjectPointOnLine(pt, linePoint Point, dir Vec2) Point {
	f := checkedDiv(pt.Sub(linePoint).Dot(dir), dir.Dot(dir), 0)
	return linePoint.Translate(dir.Mul(f))
}

// TangencyPointOnCircle returns the point at which a circle of radius
// tangencyRadius centered at from touches the circle around center with
// radius circleRadius.
//
// The candidates are the two points of the circle on the line through center
// and from; the one whose distance from from is closer to tangencyRadius wins.
// If from coincides with center, the direction ⟨1, 0⟩ is used.
func TangencyPointOnCircle(from, center Point, circleRadius, tangencyRadius float64) Point {
	return tangencyPointOnCircle(from, center, circleRadius, tangencyRadius, DefaultAngleTolerance)
}

func tangencyPointOnCircle(from, center Point, circleRadius, tangencyRadius, angleTol float64) Point {
	circleRadius = math.Abs(circleRadius)
	tangencyRadius = math.Abs(tangencyRadius)
	d := from.Sub(center)
	dist := d.Hypot()
	u := Vec(1, 0)
	if dist > angleTol*(circleRadius+tangencyRadius) && dist > 0 {
		u = d.Div(dist)
	}
	p0 := center.Translate(u.Mul(circleRadius))
	p1 := center.Translate(u.Mul(-circleRadius))
	e0 := math.Abs(from.Distance(p0) - tangencyRadius)
	e1 := math.Abs(from.Distance(p1) - tangencyRadius)
	if e1 < e0 {
		return p1
	}
	return p0
}

// SelectTangency returns the point at which the circle around center2 with
// radius radius2 touches the circle around center1 with radius radius1. It
// applies the same rule as [TangencyPointOnCircle], interpolating along the
// vector from center1 to center2, and reports false if the centers coincide.
func SelectTangency(center1 Point, radius1 float64, center2 Point, radius2 float64) (Point, bool) {
	d := center1.Distance(center2)
	f := checkedDiv(math.Abs(radius1), d, math.Inf(1))
	if math.IsInf(f, 0) {
		return Point{}, false
	}
	p0 := center1.Lerp(center2, f)
	p1 := center1.Lerp(center2, -f)
	e0 := math.Abs(center2.Distance(p0) - math.Abs(radius2))
	e1 := math.Abs(center2.Distance(p1) - math.Abs(radius2))
	if e1 < e0 {
		return p1, true
	}
	return p0, true
}

// tangentPointOn returns the tangency point of a solution circle on input c,
// preferring the interpolation of SelectTangency and falling back to the
// fixed direction of TangencyPointOnCircle for concentric circles.
func tangentPointOn(c Circle, center Point, radius float64, tol Tolerances) Point {
	r := math.Abs(c.Radius)
	if center.Distance(c.Center) > tol.Angle*(r+math.Abs(radius)) {
		if pt, ok := SelectTangency(c.Center, r, center, radius); ok {
			return pt
		}
	}
	return tangencyPointOnCircle(center, c.Center, r, radius, tol.Angle)
}

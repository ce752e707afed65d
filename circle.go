package tangent

import (
	"math"
)

// Circle is a circle with a signed radius.
//
// The solvers only look at the magnitude of an input's radius; they try both
// tangency senses themselves. A radius of zero denotes a point, which has no
// sense to try.
type Circle struct {
	Center Point
	Radius float64
}

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math.IsNaN(c.Radius)
}

func (c Circle) Translate(v Vec2) Circle {
	return Circle{Center: c.Center.Translate(v), Radius: c.Radius}
}

// BoundingBox returns the square enclosing the circle.
func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	return Rect{
		X0: c.Center.X - r,
		Y0: c.Center.Y - r,
		X1: c.Center.X + r,
		Y1: c.Center.Y + r,
	}
}

// Offset returns the concentric circle whose radius is |c.Radius| + d. The
// result's radius is negative if d shrinks the circle past its center.
func (c Circle) Offset(d float64) Circle {
	return Circle{
		Center: c.Center,
		Radius: math.Abs(c.Radius) + d,
	}
}

// TangentPoint returns the point at which a circle of the given radius,
// centered at from, touches c. See [TangencyPointOnCircle].
func (c Circle) TangentPoint(from Point, radius float64) Point {
	return TangencyPointOnCircle(from, c.Center, math.Abs(c.Radius), math.Abs(radius))
}

// relativeTo returns c in coordinates whose origin is o.
func (c Circle) relativeTo(o Point) Circle {
	return Circle{Center: Point(c.Center.Sub(o)), Radius: c.Radius}
}

// magnitude is the size of c for relative tolerances. It is only meaningful
// for a circle expressed relative to a solve's origin.
func (c Circle) magnitude() float64 {
	return c.Center.magnitude() + math.Abs(c.Radius)
}

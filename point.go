package tangent

import (
	"fmt"
	"math"
)

// Point is a position in the plane.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Translate returns pt moved by v.
func (pt Point) Translate(v Vec2) Point {
	return Point{X: pt.X + v.X, Y: pt.Y + v.Y}
}

// Transform returns pt mapped by aff.
func (pt Point) Transform(aff Affine) Point {
	return Point(aff.TransformVec(Vec2(pt))).Translate(Vec(aff.N4, aff.N5))
}

// Sub returns the vector from o to pt.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{X: pt.X - o.X, Y: pt.Y - o.Y}
}

// Lerp returns the point at fraction t of the way from pt to o. Values of t
// outside [0, 1] extrapolate.
func (pt Point) Lerp(o Point, t float64) Point {
	return pt.Translate(o.Sub(pt).Mul(t))
}

func (pt Point) Midpoint(o Point) Point {
	return Point{X: (pt.X + o.X) / 2, Y: (pt.Y + o.Y) / 2}
}

// Distance returns the euclidean distance between pt and o.
func (pt Point) Distance(o Point) float64 {
	return pt.Sub(o).Hypot()
}

// magnitude returns |x| + |y|. Measured relative to a solve's origin, it is
// the size used for relative tolerances.
func (pt Point) magnitude() float64 {
	return math.Abs(pt.X) + math.Abs(pt.Y)
}

func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

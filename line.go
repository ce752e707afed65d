package tangent

import (
	"math"
)

// Line is an infinite line through Point running along Direction. The
// direction need not have unit length, but it must not be zero.
type Line struct {
	Point     Point
	Direction Vec2
}

// LineThrough returns the line through p0 and p1.
func LineThrough(p0, p1 Point) Line {
	return Line{Point: p0, Direction: p1.Sub(p0)}
}

// Eval returns Point + Direction·t.
func (l Line) Eval(t float64) Point {
	return l.Point.Translate(l.Direction.Mul(t))
}

// Unit returns the line's direction scaled to unit length. A degenerate line
// gets ⟨1, 0⟩.
func (l Line) Unit() Vec2 {
	return l.Direction.NormalizeOr(Vec(1, 0))
}

// Normal returns the unit normal of the line, which is its unit direction
// turned a quarter turn. Signed distances are positive on this side.
func (l Line) Normal() Vec2 {
	return l.Unit().Perp()
}

// Project returns the orthogonal projection of pt onto the line.
func (l Line) Project(pt Point) Point {
	return ProjectPointOnLine(pt, l.Point, l.Direction)
}

// Param returns the t for which l.Eval(t) is the projection of pt.
func (l Line) Param(pt Point) float64 {
	return checkedDiv(pt.Sub(l.Point).Dot(l.Direction), l.Direction.Hypot2(), 0)
}

// SignedDistance returns the distance of pt from the line, positive on the side
// of [Line.Normal].
func (l Line) SignedDistance(pt Point) float64 {
	return pt.Sub(l.Point).Dot(l.Normal())
}

// Distance returns the unsigned distance of pt from the line.
func (l Line) Distance(pt Point) float64 {
	return math.Abs(l.SignedDistance(pt))
}

// Offset returns the parallel line moved by d along the normal.
func (l Line) Offset(d float64) Line {
	return Line{
		Point:     l.Point.Translate(l.Normal().Mul(d)),
		Direction: l.Direction,
	}
}

// CrossingPoint computes the point where two lines cross. It reports false for
// parallel lines.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	ab := l.Direction
	cd := o.Direction
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := ab.Cross(l.Point.Sub(o.Point)) / pcd
	if math.IsInf(h, 0) || math.IsNaN(h) {
		return Point{}, false
	}
	return o.Point.Translate(cd.Mul(h)), true
}

// local returns the coordinates of pt in the frame of the line: t along the
// unit direction and h along the normal, both measured from l.Point.
func (l Line) local(pt Point) (t, h float64) {
	u := l.Unit()
	d := pt.Sub(l.Point)
	return d.Dot(u), d.Dot(u.Perp())
}

// world is the inverse of local.
func (l Line) world(t, h float64) Point {
	u := l.Unit()
	return l.Point.Translate(u.Mul(t)).Translate(u.Perp().Mul(h))
}

func (l Line) IsInf() bool {
	return l.Point.IsInf() || l.Direction.IsInf()
}

func (l Line) IsNaN() bool {
	return l.Point.IsNaN() || l.Direction.IsNaN()
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		Point:     l.Point.Translate(v),
		Direction: l.Direction,
	}
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		Point:     l.Point.Transform(aff),
		Direction: aff.TransformVec(l.Direction),
	}
}

// relativeTo returns l in coordinates whose origin is o, anchored at the foot
// of the perpendicular from o so that its point is no farther away than the
// line itself.
func (l Line) relativeTo(o Point) Line {
	return Line{Point: Point(l.Project(o).Sub(o)), Direction: l.Direction}
}

// magnitude is the size of l for relative tolerances: the distance of the
// origin from a line returned by relativeTo.
func (l Line) magnitude() float64 {
	return l.Point.magnitude()
}

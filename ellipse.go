package tangent

import (
	"math"
)

// Ellipse is an affine image of the unit circle. Elliptical loci of tangent
// centers convert to it via [Conic.Ellipse].
type Ellipse struct {
	inner Affine
}

// NewEllipse returns the unit circle scaled by radii along x and y, rotated
// by rotation radians and moved to center.
func NewEllipse(center Point, radii Vec2, rotation float64) Ellipse {
	return Ellipse{
		inner: Translate(Vec2(center)).
			Mul(Rotate(rotation)).
			Mul(Scale(math.Abs(radii.X), math.Abs(radii.Y))),
	}
}

// Eval returns the image of the unit circle's point at angle th.
func (e Ellipse) Eval(th float64) Point {
	sin, cos := math.Sincos(th)
	return Pt(cos, sin).Transform(e.inner)
}

func (e Ellipse) Center() Point {
	return Pt(e.inner.N4, e.inner.N5)
}

// Radii returns the semi-major and the semi-minor axis, in that order.
func (e Ellipse) Radii() Vec2 {
	radii, _ := e.inner.svd()
	return radii
}

// RadiiRotation returns the radii like [Ellipse.Radii] and the angle of the
// major axis, in (-π/2, π/2].
func (e Ellipse) RadiiRotation() (Vec2, float64) {
	return e.inner.svd()
}

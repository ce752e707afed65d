package tangent

import (
	"math"
)

// Affine is an affine transform with coefficients (a, b, c, d, e, f), that is
// the augmented matrix
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// The solvers also use the linear part on its own as a 2×2 matrix, for
// example to invert the system formed by the distance-difference equations of
// three circles once and apply it to several right-hand sides.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Scale returns the transform scaling by x horizontally and y vertically.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate returns the transform moving every point by v.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate returns the transform rotating by th radians about the origin,
// turning positive x towards positive y.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// Reflect returns the transform mirroring the plane about the line through
// pt running along direction.
func Reflect(pt Point, direction Vec2) Affine {
	u := direction.NormalizeOr(Vec(1, 0))
	m := Affine{
		N0: u.X*u.X - u.Y*u.Y,
		N1: 2 * u.X * u.Y,
		N2: 2 * u.X * u.Y,
		N3: u.Y*u.Y - u.X*u.X,
	}
	off := Vec2(pt).Sub(m.TransformVec(Vec2(pt)))
	m.N4, m.N5 = off.X, off.Y
	return m
}

// Frame returns the transform from a local frame to world coordinates. The
// local x axis runs along the unit vector u, the local y axis along u turned a
// quarter turn, and the local origin sits at origin.
func Frame(origin Point, u Vec2) Affine {
	return Affine{u.X, u.Y, -u.Y, u.X, origin.X, origin.Y}
}

// Rows returns the linear transform whose matrix has r0 and r1 as its rows.
// Applying it to v yields ⟨r0·v, r1·v⟩.
func Rows(r0, r1 Vec2) Affine {
	return Affine{r0.X, r1.X, r0.Y, r1.Y, 0, 0}
}

// Mul returns the transform applying o first and aff second.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Invert returns the inverse transform. A singular transform yields NaNs or
// infinities; see [Affine.InvertChecked].
func (aff Affine) Invert() Affine {
	k := 1 / aff.Determinant()
	return Affine{
		k * aff.N3,
		-k * aff.N1,
		-k * aff.N2,
		k * aff.N0,
		k * (aff.N2*aff.N5 - aff.N3*aff.N4),
		k * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}

// InvertChecked is like [Affine.Invert] but reports false instead of producing
// NaNs or huge values when the determinant is zero relative to the products it
// is computed from.
func (aff Affine) InvertChecked(tol float64) (Affine, bool) {
	scale := math.Abs(aff.N0*aff.N3) + math.Abs(aff.N1*aff.N2)
	if det := aff.Determinant(); math.Abs(det) <= tol*scale || det == 0 {
		return Affine{}, false
	}
	return aff.Invert(), true
}

// TransformVec applies the linear part of aff to v, ignoring the translation.
func (aff Affine) TransformVec(v Vec2) Vec2 {
	return Vec2{
		X: aff.N0*v.X + aff.N2*v.Y,
		Y: aff.N1*v.X + aff.N3*v.Y,
	}
}

// svd decomposes the linear part of aff as a rotation by th times a scaling
// by radii, larger radius first. This is all that is needed to recover an
// ellipse from the image of the unit circle, which is symmetric under the
// remaining rotation.
func (aff Affine) svd() (radii Vec2, th float64) {
	a, b, c, d := aff.N0, aff.N1, aff.N2, aff.N3
	p := a*a - b*b + c*c - d*d
	q := 2 * (a*b + c*d)
	s1 := a*a + b*b + c*c + d*d
	s2 := math.Hypot(p, q)
	return Vec2{
		X: math.Sqrt((s1 + s2) / 2),
		Y: math.Sqrt(max(s1-s2, 0) / 2),
	}, math.Atan2(q, p) / 2
}

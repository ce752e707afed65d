package tangent

import (
	"math"
)

// SolveQuadratic finds real roots of a quadratic equation.
//
// Returns values of x for which c0 + c1 x + c2 x² = 0.0
//
// This function tries to be quite numerically robust. If the equation is nearly
// linear, it will return the root ignoring the quadratic term; the other root
// might be out of representable range. In the degenerate case where all
// coefficients are zero, so that all values of x satisfy the equation, a single
// 0.0 is returned.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) || math.IsNaN(sc0) || math.IsNaN(sc1) {
		// c2 is zero or very small, treat as linear eqn
		root := -c0 / c1
		if !math.IsInf(root, 0) && !math.IsNaN(root) {
			return [2]float64{root}, 1
		} else if c0 == 0.0 && c1 == 0.0 {
			// Degenerate case
			return [2]float64{0}, 1
		} else {
			return [2]float64{}, 0
		}
	}
	arg := sc1*sc1 - 4.0*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// Likely, calculation of sc1 * sc1 overflowed. Find one root
		// using sc1 x + x² = 0, other root as sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0.0 {
			return [2]float64{}, 0
		} else if arg == 0.0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if !math.IsInf(root2, 0) && !math.IsNaN(root2) {
		// Sort just to be friendly and make results deterministic.
		if root2 > root1 {
			return [2]float64{root1, root2}, 2
		} else {
			return [2]float64{root2, root1}, 2
		}
	} else {
		return [2]float64{root1}, 1
	}
}

// solveQuadraticNear is SolveQuadratic for equations whose roots may touch.
// A discriminant that is negative only by roundoff, relative to the terms it
// is computed from, is treated as zero and yields the double root.
func solveQuadraticNear(c0, c1, c2, tol float64) ([2]float64, int) {
	roots, n := SolveQuadratic(c0, c1, c2)
	if n > 0 || c2 == 0 {
		return roots, n
	}
	disc := c1*c1 - 4*c0*c2
	if -disc <= tol*max(c1*c1, math.Abs(4*c0*c2)) {
		return [2]float64{checkedDiv(-c1, 2*c2, 0)}, 1
	}
	return roots, 0
}

// sqrtNear returns the square root of x, treating values that are negative
// only by roundoff relative to scale² as zero.
func sqrtNear(x, scale, tol float64) (float64, bool) {
	if x >= 0 {
		return math.Sqrt(x), true
	}
	if -x <= tol*scale*scale {
		return 0, true
	}
	return 0, false
}

// checkedDiv returns num/den, or fallback if the quotient is not a finite
// number, which happens when den is zero or small enough for the division to
// overflow.
func checkedDiv(num, den, fallback float64) float64 {
	if den == 0 {
		return fallback
	}
	q := num / den
	if math.IsInf(q, 0) || math.IsNaN(q) {
		return fallback
	}
	return q
}

// solve2x2 solves
//
//	a00 x + a01 y = b0
//	a10 x + a11 y = b1
//
// by Cramer's rule. It reports false if the determinant vanishes relative to
// the products it is computed from.
func solve2x2(a00, a01, a10, a11, b0, b1, tol float64) (x, y float64, ok bool) {
	det := a00*a11 - a01*a10
	if det == 0 || math.Abs(det) <= tol*(math.Abs(a00*a11)+math.Abs(a01*a10)) {
		return 0, 0, false
	}
	x = (b0*a11 - a01*b1) / det
	y = (a00*b1 - b0*a10) / det
	return x, y, true
}

// solve3x3 solves m·x = b by Gaussian elimination with partial pivoting. It
// reports false if a pivot vanishes relative to the largest coefficient of m.
func solve3x3(m [3][3]float64, b [3]float64, tol float64) ([3]float64, bool) {
	var norm float64
	for _, row := range m {
		for _, v := range row {
			norm = max(norm, math.Abs(v))
		}
	}
	if norm == 0 {
		return [3]float64{}, false
	}

	for col := range 3 {
		piv := col
		for r := col + 1; r < 3; r++ {
			if math.Abs(m[r][col]) > math.Abs(m[piv][col]) {
				piv = r
			}
		}
		if math.Abs(m[piv][col]) <= tol*norm {
			return [3]float64{}, false
		}
		m[col], m[piv] = m[piv], m[col]
		b[col], b[piv] = b[piv], b[col]
		for r := col + 1; r < 3; r++ {
			f := m[r][col] / m[col][col]
			for k := col; k < 3; k++ {
				m[r][k] -= f * m[col][k]
			}
			b[r] -= f * b[col]
		}
	}

	var x [3]float64
	for r := 2; r >= 0; r-- {
		s := b[r]
		for k := r + 1; k < 3; k++ {
			s -= m[r][k] * x[k]
		}
		x[r] = s / m[r][r]
	}
	return x, true
}

package tangent

import (
	"math"
	"sort"
	"testing"
)

func checkRoots(t *testing.T, roots, expected []float64) {
	t.Helper()
	if len(roots) != len(expected) {
		t.Fatalf("got %d roots, expected %d", len(roots), len(expected))
	}
	const epsilon = 1e-12
	sort.Float64s(roots)
	sort.Float64s(expected)
	for i := range roots {
		if math.Abs(roots[i]-expected[i]) > epsilon {
			t.Errorf("root %d is %v but we expected %v", i, roots[i], expected[i])
		}
	}
}

func TestSolveQuadratic(t *testing.T) {
	slice := func(roots [2]float64, n int) []float64 {
		return roots[:n]
	}
	checkRoots(t, slice(SolveQuadratic(-5.0, 0.0, 1.0)), []float64{-math.Sqrt(5), math.Sqrt(5)})
	checkRoots(t, slice(SolveQuadratic(5.0, 0.0, 1.0)), []float64{})
	checkRoots(t, slice(SolveQuadratic(5.0, 1.0, 0.0)), []float64{-5.0})
	checkRoots(t, slice(SolveQuadratic(1.0, 2.0, 1.0)), []float64{-1.0})
	checkRoots(t, slice(SolveQuadratic(0, 0, 0)), []float64{0})
	checkRoots(t, slice(SolveQuadratic(1, 0, 0)), []float64{})
}

func TestSolveQuadraticNear(t *testing.T) {
	slice := func(roots [2]float64, n int) []float64 {
		return roots[:n]
	}
	// (x - 0.1)² with the constant term nudged so that the discriminant is
	// negative by roundoff.
	c0 := 0.01 + 1e-17
	if _, n := SolveQuadratic(c0, -0.2, 1); n != 0 {
		t.Skip("discriminant is not negative on this platform")
	}
	checkRoots(t, slice(solveQuadraticNear(c0, -0.2, 1, 1e-12)), []float64{0.1})
	checkRoots(t, slice(solveQuadraticNear(1, 0, 1, 1e-12)), []float64{})
}

func TestSqrtNear(t *testing.T) {
	if r, ok := sqrtNear(4, 1, 1e-8); !ok || r != 2 {
		t.Errorf("got (%v, %v), expected (2, true)", r, ok)
	}
	if r, ok := sqrtNear(-1e-10, 10, 1e-8); !ok || r != 0 {
		t.Errorf("got (%v, %v), expected (0, true)", r, ok)
	}
	if _, ok := sqrtNear(-1e-3, 10, 1e-8); ok {
		t.Error("expected a clearly negative argument to fail")
	}
}

func TestCheckedDiv(t *testing.T) {
	tests := []struct {
		num, den, fallback float64
		want               float64
	}{
		{6, 3, -1, 2},
		{1, 0, -1, -1},
		{0, 0, 7, 7},
		{1e300, 1e-300, 5, 5},
		{math.NaN(), 1, 3, 3},
	}
	for _, tt := range tests {
		if got := checkedDiv(tt.num, tt.den, tt.fallback); got != tt.want {
			t.Errorf("checkedDiv(%v, %v, %v) = %v, expected %v", tt.num, tt.den, tt.fallback, got, tt.want)
		}
	}
}

func TestSolve2x2(t *testing.T) {
	x, y, ok := solve2x2(2, 1, 1, 3, 5, 10, 1e-12)
	if !ok {
		t.Fatal("failed to solve a regular system")
	}
	diff(t, []float64{1, 3}, []float64{x, y}, approx)

	if _, _, ok := solve2x2(1, 2, 2, 4, 1, 1, 1e-12); ok {
		t.Error("solved a singular system")
	}
}

func TestSolve3x3(t *testing.T) {
	m := [3][3]float64{
		{0, 2, 1},
		{1, -1, 0},
		{3, 0, -2},
	}
	want := [3]float64{1, 2, 3}
	var b [3]float64
	for i, row := range m {
		for j, v := range row {
			b[i] += v * want[j]
		}
	}
	got, ok := solve3x3(m, b, 1e-12)
	if !ok {
		t.Fatal("failed to solve a regular system")
	}
	diff(t, want, got, approx)

	singular := [3][3]float64{
		{1, 2, 3},
		{2, 4, 6},
		{0, 1, 1},
	}
	if x, ok := solve3x3(singular, [3]float64{1, 2, 3}, 1e-12); ok {
		t.Errorf("solved a singular system, got %v", x)
	}
}

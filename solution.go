package tangent

import (
	"fmt"
	"iter"
	"math"
	"strings"
)

// MaxSolutions is the largest number of tangent circles any solver in this
// package can produce: two quadratic roots for each of four sign
// combinations.
const MaxSolutions = 8

// Solution is one tangent circle.
type Solution struct {
	Center Point
	// Radius is the magnitude of the radius. It is never negative.
	Radius float64
	// Tangents holds the points at which the circle touches its defining
	// inputs, in the order the inputs were passed. Only the first N entries
	// are meaningful.
	Tangents [3]Point
	N        int
}

// Circle returns the solution as a circle.
func (s Solution) Circle() Circle {
	return Circle{Center: s.Center, Radius: s.Radius}
}

// TangentPoints returns the tangency points as a slice.
func (s Solution) TangentPoints() []Point {
	return s.Tangents[:s.N]
}

// Transform returns the solution mapped by aff, which must be a similarity
// (rotation, reflection, uniform scale, and translation). The radius scales by
// the square root of the determinant's magnitude.
func (s Solution) Transform(aff Affine) Solution {
	out := s
	out.Center = s.Center.Transform(aff)
	out.Radius = s.Radius * math.Sqrt(math.Abs(aff.Determinant()))
	for i := range s.N {
		out.Tangents[i] = s.Tangents[i].Transform(aff)
	}
	return out
}

// Translate returns the solution moved by v.
func (s Solution) Translate(v Vec2) Solution {
	out := s
	out.Center = s.Center.Translate(v)
	for i := range s.N {
		out.Tangents[i] = s.Tangents[i].Translate(v)
	}
	return out
}

func (s Solution) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "center %s radius %g", s.Center, s.Radius)
	for i, pt := range s.TangentPoints() {
		if i == 0 {
			sb.WriteString(" touching")
		}
		fmt.Fprintf(&sb, " %s", pt)
	}
	return sb.String()
}

// SolutionSet is a bounded, ordered collection of solutions. It never holds
// more than its capacity; pushing onto a full set drops the solution.
//
// The zero value is an empty set with capacity MaxSolutions.
type SolutionSet struct {
	items [MaxSolutions]Solution
	n     int
	limit int
}

// NewSolutionSet returns an empty set holding at most capacity solutions.
// Capacities that are not positive or exceed MaxSolutions mean MaxSolutions.
func NewSolutionSet(capacity int) SolutionSet {
	if capacity <= 0 || capacity > MaxSolutions {
		capacity = MaxSolutions
	}
	return SolutionSet{limit: capacity}
}

// Push appends sol and reports whether it was stored.
func (s *SolutionSet) Push(sol Solution) bool {
	if s.Full() {
		return false
	}
	s.items[s.n] = sol
	s.n++
	return true
}

func (s SolutionSet) Len() int { return s.n }

// Cap returns the capacity of the set.
func (s SolutionSet) Cap() int {
	if s.limit == 0 {
		return MaxSolutions
	}
	return s.limit
}

func (s SolutionSet) Full() bool { return s.n >= s.Cap() }

// At returns the i-th solution. It panics if i is out of range.
func (s SolutionSet) At(i int) Solution {
	if i < 0 || i >= s.n {
		panic(fmt.Sprintf("solution index %d out of range [0, %d)", i, s.n))
	}
	return s.items[i]
}

// Slice returns the solutions as a slice.
func (s SolutionSet) Slice() []Solution {
	return s.items[:s.n]
}

// All returns an iterator over the solutions.
func (s SolutionSet) All() iter.Seq[Solution] {
	return func(yield func(Solution) bool) {
		for _, sol := range s.items[:s.n] {
			if !yield(sol) {
				return
			}
		}
	}
}

// BoundingBox returns the smallest rectangle enclosing all solution circles.
// It returns the zero Rect for an empty set.
func (s SolutionSet) BoundingBox() Rect {
	if s.n == 0 {
		return Rect{}
	}
	bbox := s.items[0].Circle().BoundingBox()
	for _, sol := range s.items[1:s.n] {
		bbox = bbox.Union(sol.Circle().BoundingBox())
	}
	return bbox
}

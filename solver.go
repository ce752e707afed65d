package tangent

import (
	"math"
)

// Default tolerances. They were tuned empirically; callers working at unusual
// scales or precisions can override them through [Tolerances].
const (
	DefaultZeroTolerance      = 1e-12
	DefaultCollinearTolerance = 1e-8
	DefaultDuplicateTolerance = 1e-8
	DefaultAngleTolerance     = 1e-14
)

// Tolerances are the relative tolerances used by a [Solver]. Each one is
// scaled by the magnitude of the quantities it compares, never used as an
// absolute epsilon. A zero field selects the corresponding default.
type Tolerances struct {
	// Zero decides when determinants, divisors, and discriminants vanish.
	Zero float64
	// Collinear decides when three circle centers lie on one line and when
	// two lines are parallel. It compares the sine of the angle between them.
	Collinear float64
	// Duplicate decides when two solutions describe the same circle, or a
	// solution the same circle as one of its inputs.
	Duplicate float64
	// Angle decides when a point coincides with a circle's center, in which
	// case the direction to it is undefined.
	Angle float64
}

// DefaultTolerances are the tolerances used by the zero [Solver].
var DefaultTolerances = Tolerances{
	Zero:      DefaultZeroTolerance,
	Collinear: DefaultCollinearTolerance,
	Duplicate: DefaultDuplicateTolerance,
	Angle:     DefaultAngleTolerance,
}

func (tol Tolerances) withDefaults() Tolerances {
	if tol.Zero <= 0 {
		tol.Zero = DefaultZeroTolerance
	}
	if tol.Collinear <= 0 {
		tol.Collinear = DefaultCollinearTolerance
	}
	if tol.Duplicate <= 0 {
		tol.Duplicate = DefaultDuplicateTolerance
	}
	if tol.Angle <= 0 {
		tol.Angle = DefaultAngleTolerance
	}
	return tol
}

// Solver computes tangent circles. The zero value is ready to use and is what
// the package-level functions use.
//
// A Solver holds no state besides its configuration and may be used from
// multiple goroutines.
type Solver struct {
	// Capacity limits the number of solutions of a single solve. Zero, or a
	// value larger than MaxSolutions, means MaxSolutions. Once a solve has
	// found Capacity solutions, it silently drops the rest.
	Capacity int
	// Tolerances configures the numerical tolerances.
	Tolerances Tolerances
}

func (sv Solver) tol() Tolerances {
	return sv.Tolerances.withDefaults()
}

// emitter accumulates the solutions of one solve. It collapses duplicates and
// rejects solutions that merely repeat one of the input circles.
//
// Solvers work in coordinates relative to origin, a point of the
// configuration, so that scale measures the configuration's extent and not
// its distance from (0, 0). The solutions are moved back by result.
type emitter struct {
	set     SolutionSet
	tol     Tolerances
	origin  Point
	scale   float64
	noise   float64
	circles [3]Circle
	nc      int
}

// newEmitter returns an emitter for a solve relative to origin. The circles
// are the solve's circle inputs, relative to origin as well.
func (sv Solver) newEmitter(origin Point, scale float64, circles ...Circle) *emitter {
	e := &emitter{
		set:    NewSolutionSet(sv.Capacity),
		tol:    sv.tol(),
		origin: origin,
		scale:  scale,
		noise:  resolution(origin.magnitude()),
	}
	e.nc = copy(e.circles[:], circles)
	return e
}

// resolution returns the distance below which coordinates of the given
// magnitude cannot be told apart, with headroom for the arithmetic of a solve.
func resolution(magnitude float64) float64 {
	return 64 * 0x1p-52 * magnitude
}

// same reports whether two circles are equal within the duplicate tolerance.
func (e *emitter) same(c0 Point, r0 float64, c1 Point, r1 float64) bool {
	eps := e.tol.Duplicate*(e.scale+math.Abs(r0)+math.Abs(r1)) + e.noise
	return c0.Distance(c1)+math.Abs(math.Abs(r0)-math.Abs(r1)) <= eps
}

// emit adds sol to the result. It returns false once the set is full, at which
// point the caller should stop solving.
func (e *emitter) emit(sol Solution) bool {
	if e.set.Full() {
		return false
	}
	if sol.Center.IsNaN() || sol.Center.IsInf() || math.IsNaN(sol.Radius) || math.IsInf(sol.Radius, 0) {
		return true
	}
	for _, c := range e.circles[:e.nc] {
		if c.Radius != 0 && e.same(sol.Center, sol.Radius, c.Center, c.Radius) {
			return true
		}
	}
	for _, other := range e.set.Slice() {
		if e.same(sol.Center, sol.Radius, other.Center, other.Radius) {
			return true
		}
	}
	e.set.Push(sol)
	return !e.set.Full()
}

// result returns the solutions in world coordinates.
func (e *emitter) result() SolutionSet {
	out := e.set
	for i := range out.n {
		out.items[i] = out.items[i].Translate(Vec2(e.origin))
	}
	return out
}

// lineOrigin returns the crossing of the two lines that are farthest from
// parallel, or the first line's point if all of them are parallel.
func lineOrigin(lines ...Line) Point {
	origin := lines[0].Point
	var best float64
	for i := range lines {
		for j := i + 1; j < len(lines); j++ {
			s := math.Abs(lines[i].Unit().Cross(lines[j].Unit()))
			if s <= best {
				continue
			}
			if pt, ok := lines[i].CrossingPoint(lines[j]); ok && !pt.IsNaN() && !pt.IsInf() {
				best, origin = s, pt
			}
		}
	}
	return origin
}

// sign is one of the two tangency senses tried for an input.
type sign int8

const (
	plus  sign = 1
	minus sign = -1
)

func (s sign) of(x float64) float64 {
	return float64(s) * x
}

// signPair is a combination of tangency senses for two inputs.
type signPair struct {
	first, second sign
}

// signPairs enumerates the sign combinations of two inputs. A zero magnitude
// has no sense to flip, so its negative variants are skipped.
func signPairs(first, second float64) []signPair {
	pairs := make([]signPair, 0, 4)
	for _, s0 := range [...]sign{plus, minus} {
		if s0 == minus && first == 0 {
			continue
		}
		for _, s1 := range [...]sign{plus, minus} {
			if s1 == minus && second == 0 {
				continue
			}
			pairs = append(pairs, signPair{s0, s1})
		}
	}
	return pairs
}

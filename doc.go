// Package tangent computes circles tangent to combinations of circles and
// lines in the plane. It was designed to serve the needs of 2D CAD
// applications, such as drawing fillets or construction circles, but it is
// intended to be general enough to be useful for other applications.
//
// # Problems
//
// We solve the following problems, named by the inputs they take (C for a
// circle, L for a line, R for a fixed radius):
//
//   - CCC, the classic problem of Apollonius (see [TangentToThreeCircles])
//   - CCL (see [TangentToCirclesAndLine])
//   - LLC (see [TangentToLinesAndCircle])
//   - LLL, the incircle and excircles of a triangle (see [TangentToThreeLines])
//   - CCR (see [TangentToCirclesWithRadius])
//   - CLR (see [TangentToCircleAndLineWithRadius])
//   - LLR, corner fillets (see [TangentToLinesWithRadius])
//
// [Tangent] and [TangentWithRadius] accept [Primitive] values, which can be
// either circles or lines, and dispatch to the right solver.
//
// Additionally, [TangentLocus] and [TangentLoci] compute the conics on which
// the centers of all circles tangent to two given circles lie.
//
// # Tangency senses
//
// A circle can touch another circle from the outside or from the inside, and
// it can touch a line from either side. The solvers only look at the magnitude
// of an input's radius and try every sense themselves, so a single call finds
// all solutions. A circle of radius zero acts as a point that solutions pass
// through.
//
// Internally, a tangent circle has a signed radius r, and a circle input with
// radius ρ is touched when the distance of the centers is |r + ρ|. Flipping
// the signs of r and of every ρ describes the same configuration, so the first
// input's sign is fixed and the remaining combinations are enumerated.
//
// # Solutions
//
// Solvers return a [SolutionSet], a fixed-capacity value holding its
// solutions inline. Each [Solution] holds the center and radius of a tangent
// circle and the points at which it touches its inputs, in the order the
// inputs were passed. Solutions that coincide with an input circle and
// duplicate solutions arising from double roots are omitted.
//
// There are no errors. Inputs without solutions, including degenerate inputs
// like concentric circles or parallel lines where no tangent circle exists,
// produce an empty set.
//
// # Tolerances
//
// All numerical decisions use tolerances relative to the magnitude of the
// quantities involved. Each solve works in coordinates relative to a point of
// its configuration and measures magnitudes against the configuration's
// extent, so results do not depend on how far the inputs are from the origin.
//
// The package-level functions use [DefaultTolerances]; a [Solver] can be
// configured with different ones, and with a smaller capacity.
//
// # Logging
//
// The solvers can log the degenerate branches they take, like collinear
// centers or parallel lines, to a [log/slog.Logger] installed with
// [SetLogger].
//
// # Literature
//
// This package makes use of the following ideas:
//   - [Problem of Apollonius]
//   - [Circle–circle intersection]
//
// [Problem of Apollonius]: https://en.wikipedia.org/wiki/Problem_of_Apollonius
// [Circle–circle intersection]: https://mathworld.wolfram.com/Circle-CircleIntersection.html
package tangent

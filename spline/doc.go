// Package spline builds piecewise cubic Hermite splines from sampled
// points and evaluates the fitted curve, its derivatives, and its
// definite integral.
//
// Construction solves a dense linear system for one tangent per node,
// then derives per-segment cubic coefficients. Four boundary conditions
// are supported:
//
//   - [NotAKnot]:         third-derivative continuity across the first
//     and last interior nodes (default)
//   - [Clamped]:          prescribed endpoint first derivatives
//   - [SecondDerivative]: prescribed endpoint second derivatives
//   - [Periodic]:         equal endpoint tangents
//
// All derived state is held in big.Float at a configurable precision;
// the float64 query methods are roundings of that representation, so
// both agree to float64 resolution. A built [Spline] is immutable and
// safe for concurrent readers.
package spline

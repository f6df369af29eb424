// Package interp provides closed-form polynomial interpolation over
// tabulated nodes, together with the difference tables the formulas are
// built on.
//
// For arbitrary node spacing:
//
//   - [Lagrange]:      direct Lagrange polynomial evaluation
//   - [NewtonDivided]: Newton form over divided differences
//
// For equally spaced nodes:
//
//   - [NewtonForward] / [NewtonBackward]: best near the table edges
//   - [GaussForward] / [GaussBackward]:   best near the table center
//   - [Stirling]: centered, odd number of points
//   - [Bessel]:   centered, even number of points
//
// Every formula evaluates the unique interpolating polynomial directly;
// none of them solves a linear system. For a smooth piecewise fit use
// the spline package instead.
package interp

// Package quad approximates definite integrals of tabulated functions.
//
// Available rules, from cheapest to highest order:
//
//   - [Rectangle]:     left/right endpoint rectangles
//   - [Midpoint]:      midpoint rule on linearly interpolated samples
//   - [Trapezoid]:     trapezoidal rule
//   - [Simpson]:       Simpson's 1/3 rule (even interval count)
//   - [Simpson38]:     Simpson's 3/8 rule (interval count divisible by 3)
//   - [Weddle]:        Weddle's rule (interval count divisible by 6)
//   - [NewtonCotes]:   general Newton-Cotes weights from the moment system
//   - [GaussLegendre]: Gauss-Legendre quadrature over precomputed nodes
//
// All rules take the sample abscissas and ordinates as plain slices and
// return the approximate integral. For the exact integral of a fitted
// piecewise cubic, use the spline package instead.
package quad

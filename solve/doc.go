// Package solve finds roots of nonlinear equations and solves the
// structured linear systems used alongside them.
//
//   - [Newton]:      tangent iteration with an explicit derivative
//   - [Secant]:      secant iteration from two starting points
//   - [SignChange]:  scans a range for the first sign-change bracket
//   - [Tridiagonal]: Thomas algorithm for tridiagonal linear systems
//   - [PolyRoots]:   Durand-Kerner simultaneous polynomial root iteration
package solve

// Package approx propagates uncertainty through arithmetic on
// approximate numbers.
//
// A [Num] carries a central value together with its absolute and
// relative error bounds. Arithmetic and elementary functions propagate
// the bounds to first order:
//
//   - [Num.Add] / [Num.Sub]: absolute errors add
//   - [Num.Mul] / [Num.Div]: relative errors add
//   - [Num.Pow], [Num.Sqrt], [Num.Exp], [Num.Log], trigonometric and
//     inverse trigonometric functions: bound scaled by the derivative
//
// Free functions [AbsoluteError] and [RelativeError] compute error
// bounds against a known exact value, and [CondAbs] / [CondRel]
// estimate the condition number of an arbitrary function at a point.
package approx

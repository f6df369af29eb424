package solve

import (
	"errors"
	"math"
)

// Errors returned by the root finders and linear solvers.
var (
	ErrZeroDerivative = errors.New("solve: derivative is zero, tangent is vertical")
	ErrFlatSecant     = errors.New("solve: secant through two equal function values")
	ErrNoConvergence  = errors.New("solve: no convergence within the iteration limit")
	ErrNoSignChange   = errors.New("solve: no sign change found in the search range")
	ErrInvalidStep    = errors.New("solve: step must be positive")
	ErrDiagonalLength = errors.New("solve: off-diagonals must be one shorter than the main diagonal")
	ErrLengthMismatch = errors.New("solve: right-hand side must match the main diagonal length")
	ErrZeroPivot      = errors.New("solve: zero pivot in tridiagonal elimination")
)

// Result holds a root approximation and the number of iterations it
// took to reach it.
type Result struct {
	Root       float64
	Iterations int
}

// Newton solves f(x) = 0 by tangent (Newton-Raphson) iteration from
// x0. The derivative df is supplied by the caller.
func Newton(f, df func(float64) float64, x0 float64, opts ...Option) (Result, error) {
	cfg := ApplyOptions(opts...)

	x := x0

	for i := 1; i <= cfg.MaxIter; i++ {
		d := df(x)
		if d == 0 {
			return Result{}, ErrZeroDerivative
		}

		next := x - f(x)/d

		if math.Abs(next-x) < cfg.Tol {
			return Result{Root: next, Iterations: i}, nil
		}

		x = next
	}

	return Result{}, ErrNoConvergence
}

// Secant solves f(x) = 0 by secant iteration from the two starting
// approximations x0 and x1.
func Secant(f func(float64) float64, x0, x1 float64, opts ...Option) (Result, error) {
	cfg := ApplyOptions(opts...)

	prev, curr := x0, x1

	for i := 1; i <= cfg.MaxIter; i++ {
		fPrev := f(prev)
		fCurr := f(curr)

		den := fCurr - fPrev
		if den == 0 {
			return Result{}, ErrFlatSecant
		}

		next := curr - fCurr*(curr-prev)/den

		if math.Abs(next-curr) < cfg.Tol {
			return Result{Root: next, Iterations: i}, nil
		}

		prev, curr = curr, next
	}

	return Result{}, ErrNoConvergence
}

// SignChange scans [lo, hi] in increments of step and returns the first
// subinterval over which f changes sign. The returned bracket is a
// valid starting point for bisection or the secant method.
func SignChange(f func(float64) float64, lo, hi, step float64) (float64, float64, error) {
	if step <= 0 {
		return 0, 0, ErrInvalidStep
	}

	for a := lo; a+step <= hi; a += step {
		b := a + step

		if f(a)*f(b) < 0 {
			return a, b, nil
		}
	}

	return 0, 0, ErrNoSignChange
}

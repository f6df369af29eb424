package approx

import (
	"errors"
	"math"
)

// Errors returned by the condition number estimators.
var (
	ErrZeroStep  = errors.New("approx: step must be nonzero")
	ErrZeroValue = errors.New("approx: function value at x must be nonzero")
)

// CondAbs estimates the absolute condition number of f at x: the
// magnitude of the derivative, approximated by the forward difference
// with step dx.
func CondAbs(f func(float64) float64, x, dx float64) (float64, error) {
	if dx == 0 {
		return 0, ErrZeroStep
	}

	return math.Abs((f(x+dx) - f(x)) / dx), nil
}

// CondRel estimates the relative condition number of f at x:
// |x * f'(x) / f(x)|, with the derivative approximated by the forward
// difference with step dx. It measures how an input's relative error
// is amplified in the output.
func CondRel(f func(float64) float64, x, dx float64) (float64, error) {
	if dx == 0 {
		return 0, ErrZeroStep
	}

	fx := f(x)
	if fx == 0 {
		return 0, ErrZeroValue
	}

	return math.Abs((f(x+dx) - fx) * x / (fx * dx)), nil
}

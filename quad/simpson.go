package quad

import (
	"github.com/cwbudde/algo-vecmath"
)

// Simpson approximates the integral with Simpson's 1/3 rule, applied to
// consecutive pairs of subintervals:
//
//	(h/6) * (y0 + 4*y1 + y2), h = x2 - x0
//
// The number of intervals must be even.
func Simpson(xs, ys []float64) (float64, error) {
	if err := checkTable(xs, ys); err != nil {
		return 0, err
	}

	n := len(xs) - 1
	if n%2 != 0 {
		return 0, ErrEvenIntervals
	}

	var res float64

	for i := 0; i < n; i += 2 {
		h := xs[i+2] - xs[i]
		res += h / 6 * (ys[i] + 4*ys[i+1] + ys[i+2])
	}

	return res, nil
}

// Simpson38 approximates the integral with Simpson's 3/8 rule, applied
// to groups of three subintervals:
//
//	(3h/8) * (y0 + 3*y1 + 3*y2 + y3), h = (x3 - x0) / 3
//
// The number of intervals must be divisible by 3.
func Simpson38(xs, ys []float64) (float64, error) {
	if err := checkTable(xs, ys); err != nil {
		return 0, err
	}

	n := len(xs) - 1
	if n%3 != 0 {
		return 0, ErrTripleIntervals
	}

	var res float64

	for i := 0; i < n; i += 3 {
		h := (xs[i+3] - xs[i]) / 3
		res += 3 * h / 8 * (ys[i] + 3*ys[i+1] + 3*ys[i+2] + ys[i+3])
	}

	return res, nil
}

// weddleWeights are the sample weights of Weddle's rule over one group
// of six subintervals.
var weddleWeights = [7]float64{1, 5, 1, 6, 1, 5, 1}

// Weddle approximates the integral with Weddle's rule, applied to
// groups of six subintervals:
//
//	(3h/10) * (y0 + 5*y1 + y2 + 6*y3 + y4 + 5*y5 + y6), h = (x6 - x0) / 6
//
// The number of intervals must be divisible by 6.
func Weddle(xs, ys []float64) (float64, error) {
	if err := checkTable(xs, ys); err != nil {
		return 0, err
	}

	n := len(xs) - 1
	if n%6 != 0 {
		return 0, ErrSextupleIntervals
	}

	var res float64

	for i := 0; i < n; i += 6 {
		h := (xs[i+6] - xs[i]) / 6
		res += 3 * h / 10 * vecmath.DotProduct(weddleWeights[:], ys[i:i+7])
	}

	return res, nil
}

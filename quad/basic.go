package quad

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by the quadrature rules.
var (
	ErrLengthMismatch    = errors.New("quad: x and y must have the same length")
	ErrTooFewNodes       = errors.New("quad: at least two nodes are required")
	ErrNoNodes           = errors.New("quad: at least one node is required")
	ErrEvenIntervals     = errors.New("quad: simpson's rule requires an even number of intervals")
	ErrTripleIntervals   = errors.New("quad: simpson's 3/8 rule requires the interval count to be divisible by 3")
	ErrSextupleIntervals = errors.New("quad: weddle's rule requires the interval count to be divisible by 6")
	ErrSingularWeights   = errors.New("quad: newton-cotes weight system is singular")
)

// Edge selects which endpoint of each subinterval the rectangle rule
// samples.
type Edge int

const (
	// Left samples the left endpoint of each subinterval.
	Left Edge = iota
	// Right samples the right endpoint of each subinterval.
	Right
)

func checkTable(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return ErrLengthMismatch
	}

	if len(xs) < 2 {
		return ErrTooFewNodes
	}

	return nil
}

// widths returns the subinterval widths xs[i+1]-xs[i].
func widths(xs []float64) []float64 {
	h := make([]float64, len(xs)-1)

	for i := range h {
		h[i] = xs[i+1] - xs[i]
	}

	return h
}

// Rectangle approximates the integral with the rectangle rule, sampling
// each subinterval at the chosen edge.
func Rectangle(xs, ys []float64, edge Edge) (float64, error) {
	if err := checkTable(xs, ys); err != nil {
		return 0, err
	}

	h := widths(xs)

	heights := ys[:len(ys)-1]
	if edge == Right {
		heights = ys[1:]
	}

	vecmath.MulBlockInPlace(h, heights)

	return vecmath.Sum(h), nil
}

// Midpoint approximates the integral with the midpoint rule. The
// function value at each subinterval midpoint is obtained by linear
// interpolation of the tabulated samples.
func Midpoint(xs, ys []float64) (float64, error) {
	if err := checkTable(xs, ys); err != nil {
		return 0, err
	}

	var res float64

	for i := 0; i < len(xs)-1; i++ {
		x0, x1 := xs[i], xs[i+1]
		y0, y1 := ys[i], ys[i+1]

		xm := (x0 + x1) / 2
		ym := y0 + (y1-y0)*(xm-x0)/(x1-x0)

		res += (x1 - x0) * ym
	}

	return res, nil
}

// Trapezoid approximates the integral with the trapezoidal rule.
func Trapezoid(xs, ys []float64) (float64, error) {
	if err := checkTable(xs, ys); err != nil {
		return 0, err
	}

	n := len(xs) - 1

	bases := make([]float64, n)
	vecmath.AddBlock(bases, ys[:n], ys[1:])
	vecmath.MulBlockInPlace(bases, widths(xs))

	return 0.5 * vecmath.Sum(bases), nil
}

package interp

import "errors"

// Errors returned by the interpolation formulas.
var (
	ErrLengthMismatch = errors.New("interp: x and y must have the same length")
	ErrTooFewNodes    = errors.New("interp: at least two nodes are required")
	ErrStirlingPoints = errors.New("interp: stirling requires an odd number of points")
	ErrBesselPoints   = errors.New("interp: bessel requires an even number of points")
)

// DividedDifferences computes the Newton divided-difference
// coefficients f[x0], f[x0,x1], ..., f[x0..xn] for the given nodes.
// The result feeds NewtonDivided directly.
func DividedDifferences(xs, ys []float64) ([]float64, error) {
	if len(xs) != len(ys) {
		return nil, ErrLengthMismatch
	}

	n := len(xs)
	table := make([]float64, n)
	copy(table, ys)

	for i := 1; i < n; i++ {
		for j := n - 1; j >= i; j-- {
			table[j] = (table[j] - table[j-1]) / (xs[j] - xs[j-i])
		}
	}

	return table, nil
}

// FiniteDifferences builds the forward finite-difference table for
// equally spaced nodes. Row 0 is a copy of ys; row k holds the k-th
// order differences and is one element shorter than row k-1.
func FiniteDifferences(ys []float64) [][]float64 {
	table := make([][]float64, len(ys))

	row := make([]float64, len(ys))
	copy(row, ys)
	table[0] = row

	for k := 1; k < len(ys); k++ {
		prev := table[k-1]
		next := make([]float64, len(prev)-1)

		for i := range next {
			next[i] = prev[i+1] - prev[i]
		}

		table[k] = next
	}

	return table
}

// ForwardDifferences returns the first element of every row of the
// finite-difference table: the coefficients of Newton's forward
// formula.
func ForwardDifferences(ys []float64) []float64 {
	table := FiniteDifferences(ys)
	out := make([]float64, len(table))

	for k, row := range table {
		out[k] = row[0]
	}

	return out
}

// BackwardDifferences returns the last element of every row of the
// finite-difference table: the coefficients of Newton's backward
// formula.
func BackwardDifferences(ys []float64) []float64 {
	table := FiniteDifferences(ys)
	out := make([]float64, len(table))

	for k, row := range table {
		out[k] = row[len(row)-1]
	}

	return out
}

func factorial(n int) float64 {
	f := 1.0

	for i := 2; i <= n; i++ {
		f *= float64(i)
	}

	return f
}

func checkNodes(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return ErrLengthMismatch
	}

	if len(xs) < 2 {
		return ErrTooFewNodes
	}

	return nil
}

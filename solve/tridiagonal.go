package solve

// Tridiagonal solves a tridiagonal linear system with the Thomas
// algorithm (forward elimination, backward substitution):
//
//	lower[i-1]*x[i-1] + main[i]*x[i] + upper[i]*x[i+1] = rhs[i]
//
// main and rhs have length n; lower and upper have length n-1. The
// algorithm is O(n) but performs no pivoting, so it requires the system
// to be diagonally dominant or otherwise elimination-stable.
func Tridiagonal(main, lower, upper, rhs []float64) ([]float64, error) {
	n := len(main)

	if len(lower) != n-1 || len(upper) != n-1 {
		return nil, ErrDiagonalLength
	}

	if len(rhs) != n {
		return nil, ErrLengthMismatch
	}

	// Pad the off-diagonals so every row reads the same way: lo[0] and
	// up[n-1] are outside the matrix and stay zero.
	lo := make([]float64, n)
	copy(lo[1:], lower)

	up := make([]float64, n)
	copy(up, upper)

	alpha := make([]float64, n)
	beta := make([]float64, n)

	for i := 0; i < n-1; i++ {
		den := main[i] + lo[i]*alpha[i]
		if den == 0 {
			return nil, ErrZeroPivot
		}

		alpha[i+1] = -up[i] / den
		beta[i+1] = (rhs[i] - lo[i]*beta[i]) / den
	}

	den := main[n-1] + lo[n-1]*alpha[n-1]
	if den == 0 {
		return nil, ErrZeroPivot
	}

	x := make([]float64, n)
	x[n-1] = (rhs[n-1] - lo[n-1]*beta[n-1]) / den

	for i := n - 2; i >= 0; i-- {
		x[i] = alpha[i+1]*x[i+1] + beta[i+1]
	}

	return x, nil
}

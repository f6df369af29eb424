package interp

// NewtonDivided evaluates Newton's divided-difference form of the
// interpolating polynomial at x. It works for arbitrary node spacing
// and gives the same polynomial as Lagrange.
func NewtonDivided(x float64, xs, ys []float64) (float64, error) {
	if err := checkNodes(xs, ys); err != nil {
		return 0, err
	}

	dd, err := DividedDifferences(xs, ys)
	if err != nil {
		return 0, err
	}

	val := dd[0]

	for i := 1; i < len(xs); i++ {
		term := dd[i]

		for j := range i {
			term *= x - xs[j]
		}

		val += term
	}

	return val, nil
}

// NewtonForward evaluates Newton's forward-difference formula at x.
// The nodes must be equally spaced; accuracy is best near the start of
// the table.
func NewtonForward(x float64, xs, ys []float64) (float64, error) {
	if err := checkNodes(xs, ys); err != nil {
		return 0, err
	}

	fd := ForwardDifferences(ys)

	h := xs[1] - xs[0]
	t := (x - xs[0]) / h

	val := fd[0]
	tProd := 1.0

	for i := 1; i < len(xs); i++ {
		tProd *= t - float64(i-1)
		val += tProd * fd[i] / factorial(i)
	}

	return val, nil
}

// NewtonBackward evaluates Newton's backward-difference formula at x.
// The nodes must be equally spaced; accuracy is best near the end of
// the table.
func NewtonBackward(x float64, xs, ys []float64) (float64, error) {
	if err := checkNodes(xs, ys); err != nil {
		return 0, err
	}

	bd := BackwardDifferences(ys)

	n := len(xs)
	h := xs[1] - xs[0]
	t := -(x - xs[n-1]) / h

	val := bd[0]
	tProd := 1.0
	sign := 1.0

	for i := 1; i < n; i++ {
		tProd *= t - float64(i-1)
		sign = -sign
		val += sign * tProd * bd[i] / factorial(i)
	}

	return val, nil
}

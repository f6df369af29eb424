package interp

// GaussForward evaluates the Gauss forward interpolation formula at x.
// The nodes must be equally spaced; the formula is centered on the
// middle node and is most accurate for x just above it.
func GaussForward(x float64, xs, ys []float64) (float64, error) {
	if err := checkNodes(xs, ys); err != nil {
		return 0, err
	}

	fd := FiniteDifferences(ys)

	n := len(xs) - 1
	m := n / 2
	h := xs[1] - xs[0]
	t := (x - xs[m]) / h

	val := fd[0][m]
	tProd := 1.0

	for k := 1; k <= n; k++ {
		d := k / 2
		i := m - d

		if k%2 == 0 {
			tProd *= t - float64(d)
		} else {
			tProd *= t + float64(d)
		}

		val += tProd * fd[k][i] / factorial(k)
	}

	return val, nil
}

// GaussBackward evaluates the Gauss backward interpolation formula at
// x. The nodes must be equally spaced; the formula is centered on the
// middle node and is most accurate for x just below it.
func GaussBackward(x float64, xs, ys []float64) (float64, error) {
	if err := checkNodes(xs, ys); err != nil {
		return 0, err
	}

	fd := FiniteDifferences(ys)

	n := len(xs) - 1
	m := n / 2
	h := xs[1] - xs[0]
	t := (x - xs[m]) / h

	val := fd[0][m]
	tProd := 1.0

	for k := 1; k <= n; k++ {
		d := k / 2

		// For even point counts the last difference row has a single
		// entry; the centered index lands one short of it.
		i := m - (k+1)/2
		if i < 0 {
			i = 0
		}

		if k%2 == 0 {
			tProd *= t + float64(d)
		} else {
			tProd *= t - float64(d)
		}

		val += tProd * fd[k][i] / factorial(k)
	}

	return val, nil
}

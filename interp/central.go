package interp

// Stirling evaluates the Stirling central-difference formula at x. The
// nodes must be equally spaced and odd in number, so a central node
// exists; the formula is most accurate for x near it.
func Stirling(x float64, xs, ys []float64) (float64, error) {
	if err := checkNodes(xs, ys); err != nil {
		return 0, err
	}

	if len(xs)%2 == 0 {
		return 0, ErrStirlingPoints
	}

	fd := FiniteDifferences(ys)

	n := len(xs) - 1
	m := n / 2
	h := xs[1] - xs[0]
	t := (x - xs[m]) / h

	val := fd[0][m]
	fact := 1.0
	tProd := t

	for k := 1; k <= n; k++ {
		fact *= float64(k)
		i := m - k/2

		var dk float64

		if k%2 == 1 {
			dk = (fd[k][i-1] + fd[k][i]) / 2

			if k > 1 {
				half := float64(k / 2)
				tProd *= t*t - half*half
			}
		} else {
			dk = fd[k][i]
			tProd *= t
		}

		val += tProd * dk / fact
	}

	return val, nil
}

// Bessel evaluates the Bessel central-difference formula at x. The
// nodes must be equally spaced and even in number; the formula is most
// accurate for x halfway between the two central nodes.
func Bessel(x float64, xs, ys []float64) (float64, error) {
	if err := checkNodes(xs, ys); err != nil {
		return 0, err
	}

	if len(xs)%2 == 1 {
		return 0, ErrBesselPoints
	}

	fd := FiniteDifferences(ys)

	n := len(xs) - 1
	m := n / 2
	h := xs[1] - xs[0]
	t := (x - xs[m]) / h

	val := (fd[0][m] + fd[0][m+1]) / 2
	fact := 1.0
	tProd := 1.0

	for k := 1; k <= n; k++ {
		fact *= float64(k)
		i := m - k/2

		var p float64

		if k%2 == 1 {
			p = tProd * (t - 0.5) * fd[k][i]
		} else {
			dk := (fd[k][i] + fd[k][i+1]) / 2

			tProd = 1
			for j := 1; j < k/2; j++ {
				tProd *= t*t - float64(j*j)
			}
			tProd *= t * (t - float64(k/2))

			p = tProd * dk
		}

		val += p / fact
	}

	return val, nil
}

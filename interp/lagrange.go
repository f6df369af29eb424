package interp

// Lagrange evaluates the Lagrange interpolating polynomial through the
// nodes (xs[i], ys[i]) at x:
//
//	L(x) = sum_i ys[i] * prod_{j != i} (x - xs[j]) / (xs[i] - xs[j])
func Lagrange(x float64, xs, ys []float64) (float64, error) {
	if err := checkNodes(xs, ys); err != nil {
		return 0, err
	}

	var val float64

	for i := range xs {
		term := ys[i]

		for j := range xs {
			if i != j {
				term *= (x - xs[j]) / (xs[i] - xs[j])
			}
		}

		val += term
	}

	return val, nil
}

// LagrangeRemainder estimates the interpolation error term
//
//	R(x) = f^(n+1)(xi) / (n+1)! * prod_i (x - xs[i])
//
// at x, given the (n+1)-th derivative of the underlying function at
// some xi inside the node range. Nodes equal to x are skipped in the
// product.
func LagrangeRemainder(x float64, xs []float64, derivAtXi float64) (float64, error) {
	if len(xs) < 2 {
		return 0, ErrTooFewNodes
	}

	omega := 1.0

	for _, xi := range xs {
		if xi == x {
			continue
		}

		omega *= x - xi
	}

	return derivAtXi * omega / factorial(len(xs)), nil
}

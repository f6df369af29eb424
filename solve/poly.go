package solve

import (
	"errors"
	"math"
	"math/cmplx"
)

// ErrDegeneratePolynomial is returned when a polynomial has a zero
// leading coefficient, fewer than two coefficients, or the iteration
// fails to converge on its roots.
var ErrDegeneratePolynomial = errors.New("solve: degenerate polynomial")

// PolyEval evaluates a polynomial at z. Coefficients are in descending
// power order: c[0]*z^n + c[1]*z^(n-1) + ... + c[n].
func PolyEval(c []complex128, z complex128) complex128 {
	var v complex128

	for _, ci := range c {
		v = v*z + ci
	}

	return v
}

// PolyRoots finds all roots of a polynomial using Durand-Kerner
// (Weierstrass) simultaneous iteration. Coefficients are in descending
// power order; the polynomial degree is len(coeff)-1.
func PolyRoots(coeff []complex128) ([]complex128, error) {
	if len(coeff) < 2 {
		return nil, ErrDegeneratePolynomial
	}

	lead := coeff[0]
	if lead == 0 {
		return nil, ErrDegeneratePolynomial
	}

	n := len(coeff) - 1

	norm := make([]complex128, len(coeff))
	for i := range coeff {
		norm[i] = coeff[i] / lead
	}

	// Cauchy-style bound on the root magnitudes seeds the initial
	// guesses on a circle; slight radius and angle spreading keeps the
	// starting points from coinciding for symmetric polynomials.
	radius := 0.0
	for i := 1; i <= n; i++ {
		if r := cmplx.Abs(norm[i]); r > radius {
			radius = r
		}
	}

	if radius < 1 {
		radius = 1
	}

	roots := make([]complex128, n)
	for i := range n {
		angle := 2*math.Pi*float64(i)/float64(n) + 0.3
		r := radius * (1 + 0.1*float64(i)/float64(n))
		roots[i] = complex(r*math.Cos(angle), r*math.Sin(angle))
	}

	const (
		maxIter = 500
		tol     = 1e-12
	)

	for range maxIter {
		maxDelta := 0.0

		for i := range n {
			den := complex(1, 0)

			for j := range n {
				if i != j {
					den *= roots[i] - roots[j]
				}
			}

			if cmplx.Abs(den) == 0 {
				// Two iterates collided; nudge apart and retry.
				roots[i] += complex(1e-10, 1e-10)
				continue
			}

			delta := PolyEval(norm, roots[i]) / den

			roots[i] -= delta
			if d := cmplx.Abs(delta); d > maxDelta {
				maxDelta = d
			}
		}

		if maxDelta < tol {
			return roots, nil
		}
	}

	// The step size never settled; accept the result only if every
	// iterate actually sits on a root.
	for _, r := range roots {
		if cmplx.Abs(PolyEval(norm, r)) > 1e-6 {
			return nil, ErrDegeneratePolynomial
		}
	}

	return roots, nil
}

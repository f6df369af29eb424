package quad

import (
	"github.com/cwbudde/algo-vecmath"
	gonumquad "gonum.org/v1/gonum/integrate/quad"
)

// GaussLegendreNodes returns the n Gauss-Legendre nodes and weights on
// the reference interval [-1, 1].
func GaussLegendreNodes(n int) (nodes, weights []float64, err error) {
	if n < 1 {
		return nil, nil, ErrNoNodes
	}

	nodes = make([]float64, n)
	weights = make([]float64, n)

	gonumquad.Legendre{}.FixedLocations(nodes, weights, -1, 1)

	return nodes, weights, nil
}

// GaussLegendre approximates the integral of a function over [a, b]
// from its values ys at the Gauss-Legendre nodes on [-1, 1]. If weights
// is nil, the reference weights for len(ys) nodes are computed; the
// result is scaled by (b-a)/2 to map the reference interval onto [a, b].
func GaussLegendre(ys, weights []float64, a, b float64) (float64, error) {
	if weights == nil {
		var err error

		_, weights, err = GaussLegendreNodes(len(ys))
		if err != nil {
			return 0, err
		}
	}

	if len(weights) != len(ys) {
		return 0, ErrLengthMismatch
	}

	return (b - a) / 2 * vecmath.DotProduct(weights, ys), nil
}

// GaussLegendreFunc approximates the integral of f over [a, b] with
// n-point Gauss-Legendre quadrature, evaluating f directly at the
// mapped nodes.
func GaussLegendreFunc(f func(float64) float64, a, b float64, n int) (float64, error) {
	if n < 1 {
		return 0, ErrNoNodes
	}

	return gonumquad.Fixed(f, a, b, n, gonumquad.Legendre{}, 0), nil
}

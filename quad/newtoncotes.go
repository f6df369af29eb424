package quad

import (
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"
)

// NewtonCotesWeights computes quadrature weights for the given nodes by
// solving the moment system: the weights integrate every monomial up to
// degree len(xs)-1 exactly over [xs[0], xs[len-1]]. The nodes need not
// be equally spaced.
func NewtonCotesWeights(xs []float64) ([]float64, error) {
	n := len(xs)
	if n < 2 {
		return nil, ErrTooFewNodes
	}

	// Row m of the Vandermonde transpose holds xs[j]^m; the right-hand
	// side holds the monomial moments over the integration range.
	a := mat.NewDense(n, n, nil)

	for j := range n {
		p := 1.0

		for m := range n {
			a.Set(m, j, p)
			p *= xs[j]
		}
	}

	lo, hi := xs[0], xs[n-1]
	r := mat.NewVecDense(n, nil)

	lopow, hipow := lo, hi
	for m := range n {
		r.SetVec(m, (hipow-lopow)/float64(m+1))
		lopow *= lo
		hipow *= hi
	}

	var w mat.VecDense
	if err := w.SolveVec(a, r); err != nil {
		return nil, ErrSingularWeights
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = w.AtVec(i)
	}

	return out, nil
}

// NewtonCotes approximates the integral over [xs[0], xs[len-1]] with
// the general Newton-Cotes rule: weights from NewtonCotesWeights dotted
// with the sample values.
func NewtonCotes(xs, ys []float64) (float64, error) {
	if err := checkTable(xs, ys); err != nil {
		return 0, err
	}

	w, err := NewtonCotesWeights(xs)
	if err != nil {
		return 0, err
	}

	return vecmath.DotProduct(w, ys), nil
}

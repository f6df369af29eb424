package spline

import (
	"gonum.org/v1/gonum/mat"
)

// solveTangents assembles the n-by-n boundary-condition system A*m = r
// and solves it for the per-node tangents. Interior rows encode C2
// continuity of the cubic pieces; the first and last rows depend on the
// boundary condition. The boundary rows of the not-a-knot variant reach
// three columns in, so a general dense solve is required rather than a
// tridiagonal one.
func solveTangents(cfg Config, y, h []float64) ([]float64, error) {
	n := len(y)

	a := mat.NewDense(n, n, nil)
	r := mat.NewVecDense(n, nil)

	// Interior rows i = 1..n-2:
	//   h[i]/(h[i-1]+h[i])*m[i-1] + 2*m[i] + h[i-1]/(h[i-1]+h[i])*m[i+1]
	//     = 3*((y[i+1]-y[i])/h[i]*h[i-1] + (y[i]-y[i-1])/h[i-1]*h[i]) / (h[i-1]+h[i])
	for i := 1; i < n-1; i++ {
		hs := h[i-1] + h[i]

		a.Set(i, i-1, h[i]/hs)
		a.Set(i, i, 2)
		a.Set(i, i+1, h[i-1]/hs)

		r.SetVec(i, 3*((y[i+1]-y[i])/h[i]*h[i-1]+(y[i]-y[i-1])/h[i-1]*h[i])/hs)
	}

	switch cfg.Boundary {
	case Clamped:
		a.Set(0, 0, 1)
		r.SetVec(0, cfg.ClampedDerivs[0])

		a.Set(n-1, n-1, 1)
		r.SetVec(n-1, cfg.ClampedDerivs[1])

	case SecondDerivative:
		// 2*m[0] + m[1] = 3*(y[1]-y[0])/h[0] - h[0]*y''(x[0])/2, and the
		// mirrored relation at the right end, so that the second
		// derivative of the end segments matches the prescribed values.
		a.Set(0, 0, 2)
		a.Set(0, 1, 1)
		r.SetVec(0, 3*(y[1]-y[0])/h[0]-h[0]*cfg.SecondDerivs[0]/2)

		a.Set(n-1, n-2, 1)
		a.Set(n-1, n-1, 2)
		r.SetVec(n-1, 3*(y[n-1]-y[n-2])/h[n-2]+h[n-2]*cfg.SecondDerivs[1]/2)

	case Periodic:
		a.Set(0, 0, 1)
		a.Set(0, n-1, -1)

		a.Set(n-1, 0, 1)
		a.Set(n-1, n-1, -1)

	default: // NotAKnot
		a.Set(0, 0, h[1])
		a.Set(0, 1, -(h[0] + h[1]))
		a.Set(0, 2, h[0])

		a.Set(n-1, n-3, h[n-2])
		a.Set(n-1, n-2, -(h[n-3] + h[n-2]))
		a.Set(n-1, n-1, h[n-3])
	}

	var m mat.VecDense
	if err := m.SolveVec(a, r); err != nil {
		return nil, ErrSingularSystem
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = m.AtVec(i)
	}

	return out, nil
}

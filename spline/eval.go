package spline

import (
	"math/big"
	"sort"
)

// Coefficients is a float64 snapshot of one segment's cubic
// S(x) = A + B*(x-X0) + C*(x-X0)^2 + D*(x-X0)^3.
type Coefficients struct {
	A, B, C, D float64
	X0         float64
}

// NumSegments returns the number of cubic segments, one fewer than the
// number of nodes.
func (s *Spline) NumSegments() int {
	return len(s.segs)
}

// Segment returns the coefficients of segment i. The second return
// value is false if i is out of range.
func (s *Spline) Segment(i int) (Coefficients, bool) {
	if i < 0 || i >= len(s.segs) {
		return Coefficients{}, false
	}

	seg := s.segs[i]

	a, _ := seg.a.Float64()
	b, _ := seg.b.Float64()
	c, _ := seg.c.Float64()
	d, _ := seg.d.Float64()
	x0, _ := seg.x0.Float64()

	return Coefficients{A: a, B: b, C: c, D: d, X0: x0}, true
}

// SegmentIndex locates the segment whose polynomial evaluates x. The
// index is clamped to [0, NumSegments()-1], so queries outside the node
// range reuse the nearest boundary segment. Extrapolation is therefore
// a documented policy, not an error.
func (s *Spline) SegmentIndex(x float64) int {
	i := sort.SearchFloat64s(s.xf, x) - 1

	return clampIndex(i, len(s.segs))
}

func (s *Spline) segIndexBig(x *big.Float) int {
	i := sort.Search(len(s.x), func(j int) bool {
		return s.x[j].Cmp(x) >= 0
	}) - 1

	return clampIndex(i, len(s.segs))
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}

	if i > n-1 {
		return n - 1
	}

	return i
}

// At evaluates the spline at x.
func (s *Spline) At(x float64) float64 {
	v, _ := s.AtBig(new(big.Float).SetPrec(s.prec).SetFloat64(x)).Float64()

	return v
}

// Eval evaluates the spline at every point in xs.
func (s *Spline) Eval(xs []float64) []float64 {
	out := make([]float64, len(xs))

	for i, x := range xs {
		out[i] = s.At(x)
	}

	return out
}

// AtBig evaluates the spline at x in the configured precision.
func (s *Spline) AtBig(x *big.Float) *big.Float {
	seg := s.segs[s.segIndexBig(x)]
	dx := new(big.Float).SetPrec(s.prec).Sub(x, seg.x0)

	// Horner: a + dx*(b + dx*(c + dx*d)).
	v := new(big.Float).SetPrec(s.prec).Mul(dx, seg.d)
	v.Add(v, seg.c)
	v.Mul(v, dx)
	v.Add(v, seg.b)
	v.Mul(v, dx)
	v.Add(v, seg.a)

	return v
}

// Derivative evaluates the order-th derivative of the spline at x.
// Only orders 1 through 3 exist for a cubic; anything else returns
// ErrInvalidOrder.
func (s *Spline) Derivative(x float64, order int) (float64, error) {
	b, err := s.DerivativeBig(new(big.Float).SetPrec(s.prec).SetFloat64(x), order)
	if err != nil {
		return 0, err
	}

	v, _ := b.Float64()

	return v, nil
}

// EvalDerivative evaluates the order-th derivative at every point in xs.
func (s *Spline) EvalDerivative(xs []float64, order int) ([]float64, error) {
	out := make([]float64, len(xs))

	for i, x := range xs {
		v, err := s.Derivative(x, order)
		if err != nil {
			return nil, err
		}

		out[i] = v
	}

	return out, nil
}

// DerivativeBig evaluates the order-th derivative at x in the
// configured precision.
func (s *Spline) DerivativeBig(x *big.Float, order int) (*big.Float, error) {
	if order < 1 || order > 3 {
		return nil, ErrInvalidOrder
	}

	seg := s.segs[s.segIndexBig(x)]

	bf := func() *big.Float { return new(big.Float).SetPrec(s.prec) }
	dx := bf().Sub(x, seg.x0)

	switch order {
	case 1:
		// b + 2*c*dx + 3*d*dx^2
		v := bf().Mul(bf().SetInt64(3), seg.d)
		v.Mul(v, dx)
		v.Add(v, bf().Mul(bf().SetInt64(2), seg.c))
		v.Mul(v, dx)
		v.Add(v, seg.b)

		return v, nil

	case 2:
		// 2*c + 6*d*dx
		v := bf().Mul(bf().SetInt64(6), seg.d)
		v.Mul(v, dx)
		v.Add(v, bf().Mul(bf().SetInt64(2), seg.c))

		return v, nil

	default:
		// 6*d
		return bf().Mul(bf().SetInt64(6), seg.d), nil
	}
}

// Integrate computes the definite integral of the spline over [a, b].
// Bounds are swapped when a > b, so the result is always the positive
// magnitude; callers needing a signed integral must track orientation
// themselves. The integration range is clipped to the node domain.
func (s *Spline) Integrate(a, b float64) float64 {
	v, _ := s.IntegrateBig(
		new(big.Float).SetPrec(s.prec).SetFloat64(a),
		new(big.Float).SetPrec(s.prec).SetFloat64(b),
	).Float64()

	return v
}

// IntegrateBig computes the definite integral over [a, b] in the
// configured precision. The integral is exact for the fitted piecewise
// cubic: each overlapped segment contributes the difference of its
// analytic antiderivative at the intersection bounds.
func (s *Spline) IntegrateBig(a, b *big.Float) *big.Float {
	bf := func() *big.Float { return new(big.Float).SetPrec(s.prec) }

	lo := bf().Set(a)
	hi := bf().Set(b)

	if lo.Cmp(hi) > 0 {
		lo, hi = hi, lo
	}

	total := bf()
	left := s.segIndexBig(lo)
	right := s.segIndexBig(hi)

	cursor := bf().Set(lo)

	for i := left; i <= right; i++ {
		seg := s.segs[i]

		x0 := bigMax(seg.x0, cursor)
		x1 := bigMin(s.x[i+1], hi)

		dx0 := bf().Sub(x0, seg.x0)
		dx1 := bf().Sub(x1, seg.x0)

		total.Add(total, s.antiderivative(seg, dx1))
		total.Sub(total, s.antiderivative(seg, dx0))

		cursor = x1
	}

	return total
}

// antiderivative evaluates a*dx + b*dx^2/2 + c*dx^3/3 + d*dx^4/4.
func (s *Spline) antiderivative(seg segment, dx *big.Float) *big.Float {
	bf := func() *big.Float { return new(big.Float).SetPrec(s.prec) }

	// Horner: dx*(a + dx*(b/2 + dx*(c/3 + dx*d/4))).
	v := bf().Quo(seg.d, bf().SetInt64(4))
	v.Mul(v, dx)
	v.Add(v, bf().Quo(seg.c, bf().SetInt64(3)))
	v.Mul(v, dx)
	v.Add(v, bf().Quo(seg.b, bf().SetInt64(2)))
	v.Mul(v, dx)
	v.Add(v, seg.a)
	v.Mul(v, dx)

	return v
}

func bigMax(a, b *big.Float) *big.Float {
	if a.Cmp(b) >= 0 {
		return a
	}

	return b
}

func bigMin(a, b *big.Float) *big.Float {
	if a.Cmp(b) <= 0 {
		return a
	}

	return b
}

package spline

import (
	"errors"
	"math/big"

	"github.com/cwbudde/algo-numeric/dec"
)

// Errors returned during construction and evaluation.
var (
	ErrLengthMismatch      = errors.New("spline: x and y must have the same length")
	ErrTooFewNodes         = errors.New("spline: at least two nodes are required")
	ErrTooFewBoundaryNodes = errors.New("spline: boundary condition requires at least three nodes")
	ErrUnorderedNodes      = errors.New("spline: x nodes must be strictly increasing")
	ErrMissingBoundaryData = errors.New("spline: boundary condition requires endpoint derivative values")
	ErrSingularSystem      = errors.New("spline: boundary condition system is singular")
	ErrInvalidOrder        = errors.New("spline: derivative order must be 1, 2, or 3")
)

// segment holds the cubic S(x) = a + b*dx + c*dx^2 + d*dx^3 with
// dx = x - x0, valid on [x0, x1] for the segment's node pair.
type segment struct {
	a, b, c, d *big.Float
	x0         *big.Float
}

// Spline is a piecewise cubic Hermite spline. It is immutable after
// construction; all query methods are pure reads and safe for
// concurrent use.
type Spline struct {
	prec uint
	kind BoundaryKind

	x    []*big.Float // node abscissas
	xf   []float64    // float64 view of x, for segment search
	segs []segment
}

// New builds a spline through the nodes (x[i], y[i]). The x values must
// be strictly increasing. Options select the boundary condition and the
// internal precision.
func New(x, y []float64, opts ...Option) (*Spline, error) {
	cfg := ApplyOptions(opts...)

	xb := make([]*big.Float, len(x))
	for i, v := range x {
		xb[i] = new(big.Float).SetPrec(cfg.Precision).SetFloat64(v)
	}

	yb := make([]*big.Float, len(y))
	for i, v := range y {
		yb[i] = new(big.Float).SetPrec(cfg.Precision).SetFloat64(v)
	}

	return build(xb, yb, cfg)
}

// NewFromStrings builds a spline from decimal-string nodes. The strings
// are parsed directly at the configured precision, so exact decimal
// inputs do not drift through float64 first.
func NewFromStrings(x, y []string, opts ...Option) (*Spline, error) {
	cfg := ApplyOptions(opts...)

	parse := func(vals []string) ([]*big.Float, error) {
		out := make([]*big.Float, len(vals))

		for i, s := range vals {
			f, err := dec.Big(s, cfg.Precision)
			if err != nil {
				return nil, err
			}

			out[i] = f
		}

		return out, nil
	}

	xb, err := parse(x)
	if err != nil {
		return nil, err
	}

	yb, err := parse(y)
	if err != nil {
		return nil, err
	}

	return build(xb, yb, cfg)
}

// NewFromValues builds a spline from loosely typed nodes: any numeric
// kind, or decimal strings for exact input.
func NewFromValues(x, y []any, opts ...Option) (*Spline, error) {
	cfg := ApplyOptions(opts...)

	xb, err := dec.BigSlice(x, cfg.Precision)
	if err != nil {
		return nil, err
	}

	yb, err := dec.BigSlice(y, cfg.Precision)
	if err != nil {
		return nil, err
	}

	return build(xb, yb, cfg)
}

// build validates the node set, solves the boundary-condition system
// for the per-node tangents, and derives the segment coefficients.
// Construction is the only fallible phase; every method on the returned
// Spline except Derivative (which validates its order) cannot fail.
func build(x, y []*big.Float, cfg Config) (*Spline, error) {
	if err := validate(x, y, cfg); err != nil {
		return nil, err
	}

	n := len(x)
	prec := cfg.Precision

	// Segment widths h[i] = x[i+1] - x[i].
	h := make([]*big.Float, n-1)
	for i := range n - 1 {
		h[i] = new(big.Float).SetPrec(prec).Sub(x[i+1], x[i])
	}

	xf := floats(x)
	yf := floats(y)
	hf := floats(h)

	m, err := solveTangents(cfg, yf, hf)
	if err != nil {
		return nil, err
	}

	mb := make([]*big.Float, n)
	for i, v := range m {
		mb[i] = new(big.Float).SetPrec(prec).SetFloat64(v)
	}

	return &Spline{
		prec: prec,
		kind: cfg.Boundary,
		x:    x,
		xf:   xf,
		segs: buildSegments(x, y, h, mb, prec),
	}, nil
}

func validate(x, y []*big.Float, cfg Config) error {
	if len(x) != len(y) {
		return ErrLengthMismatch
	}

	if len(x) < 2 {
		return ErrTooFewNodes
	}

	// The not-a-knot and second-derivative boundary rows are built from
	// the first and last two segments; two nodes give only one.
	if len(x) < 3 && (cfg.Boundary == NotAKnot || cfg.Boundary == SecondDerivative) {
		return ErrTooFewBoundaryNodes
	}

	for i := 1; i < len(x); i++ {
		if x[i-1].Cmp(x[i]) >= 0 {
			return ErrUnorderedNodes
		}
	}

	if cfg.Boundary == Clamped && cfg.ClampedDerivs == nil {
		return ErrMissingBoundaryData
	}

	if cfg.Boundary == SecondDerivative && cfg.SecondDerivs == nil {
		return ErrMissingBoundaryData
	}

	return nil
}

// buildSegments converts nodes and tangents into per-segment cubic
// coefficients:
//
//	a = y[i]
//	b = m[i]
//	c = 3*(y[i+1]-y[i])/h^2 - (2*m[i]+m[i+1])/h
//	d = 2*(y[i]-y[i+1])/h^3 + (m[i]+m[i+1])/h^2
func buildSegments(x, y, h, m []*big.Float, prec uint) []segment {
	bf := func() *big.Float { return new(big.Float).SetPrec(prec) }
	segs := make([]segment, len(h))

	two := bf().SetInt64(2)
	three := bf().SetInt64(3)

	for i := range segs {
		hi := h[i]
		dy := bf().Sub(y[i+1], y[i])

		h2 := bf().Mul(hi, hi)
		h3 := bf().Mul(h2, hi)

		// c = 3*dy/h^2 - (2*m[i] + m[i+1])/h
		c := bf().Quo(bf().Mul(three, dy), h2)
		c.Sub(c, bf().Quo(bf().Add(bf().Mul(two, m[i]), m[i+1]), hi))

		// d = -2*dy/h^3 + (m[i] + m[i+1])/h^2
		d := bf().Quo(bf().Mul(two, bf().Neg(dy)), h3)
		d.Add(d, bf().Quo(bf().Add(m[i], m[i+1]), h2))

		segs[i] = segment{
			a:  bf().Set(y[i]),
			b:  bf().Set(m[i]),
			c:  c,
			d:  d,
			x0: x[i],
		}
	}

	return segs
}

func floats(vs []*big.Float) []float64 {
	out := make([]float64, len(vs))

	for i, v := range vs {
		out[i], _ = v.Float64()
	}

	return out
}

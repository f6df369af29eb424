package spline

// BoundaryKind selects how the two otherwise-underdetermined equations
// of the tangent system are fixed.
type BoundaryKind int

const (
	// NotAKnot forces third-derivative continuity across the first and
	// last two segments instead of prescribing endpoint derivatives.
	NotAKnot BoundaryKind = iota
	// Clamped prescribes the first derivative at both endpoints.
	Clamped
	// SecondDerivative prescribes the second derivative at both endpoints.
	SecondDerivative
	// Periodic ties the first and last tangents together. The input is
	// expected to satisfy y[0] == y[n-1]; this is not enforced here and
	// mismatched endpoints surface as ErrSingularSystem.
	Periodic
)

// DefaultPrecision is the mantissa precision, in bits, used for the
// high-precision representation unless overridden with WithPrecision.
// 96 bits corresponds to roughly 28 decimal digits.
const DefaultPrecision uint = 96

// Config defines construction parameters for a Spline.
type Config struct {
	Boundary BoundaryKind

	// ClampedDerivs holds the endpoint first derivatives; required when
	// Boundary is Clamped.
	ClampedDerivs *[2]float64

	// SecondDerivs holds the endpoint second derivatives; required when
	// Boundary is SecondDerivative.
	SecondDerivs *[2]float64

	// Precision is the big.Float mantissa precision in bits.
	Precision uint
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns sensible defaults: not-a-knot boundary
// condition at DefaultPrecision.
func DefaultConfig() Config {
	return Config{
		Boundary:  NotAKnot,
		Precision: DefaultPrecision,
	}
}

// WithBoundary selects the boundary condition. Clamped and
// SecondDerivative additionally need their endpoint values; prefer
// WithClamped and WithSecondDerivatives, which set both.
func WithBoundary(kind BoundaryKind) Option {
	return func(cfg *Config) {
		cfg.Boundary = kind
	}
}

// WithClamped selects the clamped boundary condition with the given
// endpoint first derivatives.
func WithClamped(left, right float64) Option {
	return func(cfg *Config) {
		cfg.Boundary = Clamped
		cfg.ClampedDerivs = &[2]float64{left, right}
	}
}

// WithSecondDerivatives selects the second-derivative boundary
// condition with the given endpoint second derivatives.
func WithSecondDerivatives(left, right float64) Option {
	return func(cfg *Config) {
		cfg.Boundary = SecondDerivative
		cfg.SecondDerivs = &[2]float64{left, right}
	}
}

// WithPeriodic selects the periodic boundary condition.
func WithPeriodic() Option {
	return func(cfg *Config) {
		cfg.Boundary = Periodic
	}
}

// WithPrecision sets the mantissa precision in bits for the
// high-precision representation.
func WithPrecision(bits uint) Option {
	return func(cfg *Config) {
		if bits > 0 {
			cfg.Precision = bits
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

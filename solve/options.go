package solve

// Config defines iteration parameters for the root finders.
type Config struct {
	// Tol is the absolute step-size tolerance: iteration stops once two
	// consecutive approximations differ by less than Tol.
	Tol float64

	// MaxIter bounds the number of iterations.
	MaxIter int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Tol:     1e-8,
		MaxIter: 100,
	}
}

// WithTolerance sets the step-size tolerance.
func WithTolerance(tol float64) Option {
	return func(cfg *Config) {
		if tol > 0 {
			cfg.Tol = tol
		}
	}
}

// WithMaxIterations sets the iteration limit.
func WithMaxIterations(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.MaxIter = n
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

package polybool

// DefaultEpsilon is the tolerance used when no WithEpsilon option is
// supplied. It matches the constant the teacher sweep hard-codes.
const DefaultEpsilon = 1e-9

// Config carries the tunables threaded explicitly through a computation.
// Design Notes (spec.md §9) call out that operation state must never live
// in a package-level singleton; Config is how that context is passed
// instead, in the style of lvlath/flow.FlowOptions.
type Config struct {
	// Epsilon is the tolerance used by every flpEQ/flpLT/flpCompare call
	// during this computation.
	Epsilon float64
}

// Option configures a Config, following the functional-options pattern
// used throughout geom2d/options.
type Option func(*Config)

// WithEpsilon overrides the tolerance used for floating-point comparisons.
// A non-positive value is ignored and the default is kept.
func WithEpsilon(epsilon float64) Option {
	return func(c *Config) {
		if epsilon > 0 {
			c.Epsilon = epsilon
		}
	}
}

// defaultConfig returns the Config used when no options are supplied.
func defaultConfig() Config {
	return Config{Epsilon: DefaultEpsilon}
}

// newConfig applies opts over defaultConfig.
func newConfig(opts []Option) Config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

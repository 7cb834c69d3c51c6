package inclination

import "runtime"

// Option configures New.
type Option func(*config)

type config struct {
	derivatives bool
	workers     int
}

func defaultConfig() config {
	return config{
		workers: runtime.GOMAXPROCS(0),
	}
}

// WithDerivatives enables dF̄/dI, required by the derivative accessors and
// by FlmkStar.
func WithDerivatives() Option {
	return func(c *config) {
		c.derivatives = true
	}
}

// WithWorkers bounds the number of goroutines used while sampling the great
// circle and during harmonic analysis. Results do not depend on n.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

package legendre

// Option configures which derivatives New computes.
type Option func(*config)

type config struct {
	firstDerivative  bool
	secondDerivative bool
}

func defaultConfig() config {
	return config{}
}

// WithFirstDerivative enables dP̄/dθ.
func WithFirstDerivative() Option {
	return func(c *config) {
		c.firstDerivative = true
	}
}

// WithSecondDerivative enables d²P̄/dθ². It implies WithFirstDerivative,
// whose values the second-derivative recursion consumes.
func WithSecondDerivative() Option {
	return func(c *config) {
		c.firstDerivative = true
		c.secondDerivative = true
	}
}

package inclination

import "errors"

// Errors returned by inclination-function construction and evaluation.
var (
	ErrNegativeDegree      = errors.New("inclination: maximum degree must be >= 0")
	ErrInvalidWorkers      = errors.New("inclination: worker count must be positive")
	ErrSingularInclination = errors.New("inclination: cross-track derivative is singular for sin(I) = 0")
)

const singularTolerance = 1e-12

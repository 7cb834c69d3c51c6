package legendre

import "errors"

// Errors returned by the constructors.
var (
	ErrNegativeDegree  = errors.New("legendre: maximum degree must be >= 0")
	ErrPoleSingularity = errors.New("legendre: co-latitude derivatives are singular at the poles")
)

// poleTolerance bounds |sin(theta)| below which derivative recursions
// would divide by zero.
const poleTolerance = 1e-12

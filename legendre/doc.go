// Package legendre evaluates fully-normalized Associated Legendre Functions
// and their co-latitude derivatives for spherical-harmonic analysis.
//
// Two types are provided:
//
//   - Normalization: the factors N(l,m) = sqrt((2-δ0m)(2l+1)(l-m)!/(l+m)!)
//     that convert unnormalized Legendre functions into the geodesy
//     (fully-normalized) convention. The table is built with a ratio
//     recursion and never evaluates a factorial, so it stays finite for
//     degrees in the thousands.
//   - Functions: the normalized ALFs P̄(l,m) at a single co-latitude,
//     computed with the Fixed-Order-Increase-Degree (FOID) column recursion
//     of Holmes and Featherstone (2002), optionally with first and second
//     derivatives with respect to co-latitude.
//
// # Usage
//
//	p, err := legendre.New(100, 65*math.Pi/180, legendre.WithFirstDerivative())
//	if err != nil {
//		return err
//	}
//	v := p.Normalized(14, 4)
//	dv := p.FirstDerivativeNormalized(14, 4)
//
// Index arguments must satisfy 0 <= m <= l <= MaxDegree(); accessors panic
// otherwise, as they do when a derivative is read that was not requested.
package legendre

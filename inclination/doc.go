// Package inclination computes fully-normalized inclination functions
// F̄(l,m,p)(I) and their derivatives with respect to the inclination I.
//
// The functions are obtained without series approximation by sampling the
// normalized Legendre functions along a great circle of inclination I and
// analysing the resulting signal with an FFT (Wagner, 1983). The same
// procedure applied to the inclination derivative of the signal yields
// dF̄/dI.
//
// Two index conventions are supported: p in [0, l] (Kaula, 1966) and
// k = l - 2p in {-l, -l+2, ..., l}, the latter being the convenient one for
// gravity-field spectral analysis. Flmk returns zero for |k| > l.
//
// # Usage
//
//	fn, err := inclination.New(100, 109.9*math.Pi/180, inclination.WithDerivatives())
//	if err != nil {
//		return err
//	}
//	f := fn.Flmp(35, 15, 17)
//	df := fn.FlmkDerivative(35, 15, 1)
//	star, err := fn.FlmkStar(35, 15, 1)
package inclination

package inclination

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-geopot/legendre"
	"golang.org/x/sync/errgroup"
)

// minSamples keeps the FFT length at two or more; for lmax = 0 the signal is
// constant and any length yields the same coefficient.
const minSamples = 2

// sampleCount returns the smallest power of two >= 2*lmax+1, which resolves
// every harmonic up to degree lmax without aliasing.
func sampleCount(lmax int) int {
	n := minSamples
	for n < 2*lmax+1 {
		n <<= 1
	}
	return n
}

// greatCircle holds the geometry of N equally spaced points along a great
// circle of inclination I, parameterised by the argument of latitude
// u_i = 2πi/N.
type greatCircle struct {
	n      int
	lambda []float64 // longitude-like angle along the circle
	theta  []float64 // co-latitude

	// Inclination partials, nil unless derivatives are requested.
	dThetaDI  []float64
	dLambdaDI []float64
}

func newGreatCircle(n int, inc float64, derivatives bool) *greatCircle {
	gc := &greatCircle{
		n:      n,
		lambda: make([]float64, n),
		theta:  make([]float64, n),
	}
	if derivatives {
		gc.dThetaDI = make([]float64, n)
		gc.dLambdaDI = make([]float64, n)
	}

	du := 2 * math.Pi / float64(n)
	sinI, cosI := math.Sin(inc), math.Cos(inc)

	for i := range n {
		u := du * float64(i)
		sinU, cosU := math.Sin(u), math.Cos(u)

		gc.lambda[i] = math.Atan2(cosI*sinU, cosU)
		gc.theta[i] = math.Acos(sinI * sinU)

		if !derivatives {
			continue
		}
		tanU := sinU / cosU
		gc.dThetaDI[i] = -sinU * cosI / math.Sqrt(1-sinI*sinI*sinU*sinU)
		gc.dLambdaDI[i] = -sinI * tanU / (1 + cosI*cosI*tanU*tanU)
	}

	return gc
}

// trigTables caches cos(mλ_i)+sin(mλ_i) per order m and, for the derivative
// signal, m(cos(mλ_i)-sin(mλ_i)) = d/dλ of the former.
type trigTables struct {
	sum  [][]float64
	diff [][]float64
}

func newTrigTables(gc *greatCircle, lmax int) trigTables {
	tt := trigTables{sum: make([][]float64, lmax+1)}
	if gc.dLambdaDI != nil {
		tt.diff = make([][]float64, lmax+1)
	}

	for m := 0; m <= lmax; m++ {
		fm := float64(m)
		sum := make([]float64, gc.n)
		var diff []float64
		if tt.diff != nil {
			diff = make([]float64, gc.n)
		}
		for i, lam := range gc.lambda {
			s, c := math.Sin(fm*lam), math.Cos(fm*lam)
			sum[i] = c + s
			if diff != nil {
				diff[i] = -fm*s + fm*c
			}
		}
		tt.sum[m] = sum
		if diff != nil {
			tt.diff[m] = diff
		}
	}

	return tt
}

// sampleLegendre evaluates the Legendre functions at every co-latitude of
// the great circle. The samples are independent and built concurrently.
func sampleLegendre(gc *greatCircle, lmax int, workers int) ([]*legendre.Functions, error) {
	var opts []legendre.Option
	if gc.dThetaDI != nil {
		opts = append(opts, legendre.WithFirstDerivative())
	}

	samples := make([]*legendre.Functions, gc.n)

	var g errgroup.Group
	g.SetLimit(workers)
	for i := range gc.n {
		g.Go(func() error {
			p, err := legendre.New(lmax, gc.theta[i], opts...)
			if err != nil {
				return fmt.Errorf("inclination: sample %d (theta=%g): %w", i, gc.theta[i], err)
			}
			samples[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return samples, nil
}

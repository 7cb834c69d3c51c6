package inclination

import (
	"math"

	"github.com/cwbudde/algo-geopot/internal/layout"
	"github.com/cwbudde/algo-geopot/legendre"
	"github.com/cwbudde/algo-vecmath"
	"golang.org/x/sync/errgroup"
)

// Functions stores F̄(l,m,p) for 0 <= m, p <= l <= lmax at one inclination,
// and optionally dF̄/dI.
//
// A Functions value is immutable once New returns and is safe for
// concurrent readers.
type Functions struct {
	ragged      layout.Ragged
	inclination float64
	samples     int

	f  []float64
	df []float64 // nil unless WithDerivatives
}

// New computes the inclination functions up to degree lmax at inclination
// inc (radians).
//
// With WithDerivatives the co-latitude derivatives of the sampled Legendre
// functions are needed, which do not exist where the great circle crosses a
// pole (inc = ±90°); New then returns an error wrapping
// legendre.ErrPoleSingularity.
func New(lmax int, inc float64, opts ...Option) (*Functions, error) {
	if lmax < 0 {
		return nil, ErrNegativeDegree
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers < 1 {
		return nil, ErrInvalidWorkers
	}

	n := sampleCount(lmax)
	gc := newGreatCircle(n, inc, cfg.derivatives)

	samples, err := sampleLegendre(gc, lmax, cfg.workers)
	if err != nil {
		return nil, err
	}

	fn := &Functions{
		ragged:      layout.NewRagged(lmax),
		inclination: inc,
		samples:     n,
	}
	fn.f = make([]float64, fn.ragged.Len())
	if cfg.derivatives {
		fn.df = make([]float64, fn.ragged.Len())
	}

	if err := fn.analyze(gc, samples, newTrigTables(gc, lmax), cfg.workers); err != nil {
		return nil, err
	}

	return fn, nil
}

// analyze fills f (and df) block by block. Degrees are dealt to workers
// round-robin so that the cost, which grows with l, is spread evenly. Each
// worker writes only the blocks of its own degrees.
func (fn *Functions) analyze(gc *greatCircle, samples []*legendre.Functions, tt trigTables, workers int) error {
	lmax := fn.MaxDegree()
	workers = min(workers, lmax+1)

	var g errgroup.Group
	for w := range workers {
		g.Go(func() error {
			an, err := newAnalyzer(gc.n, lmax)
			if err != nil {
				return err
			}

			p := make([]float64, gc.n)
			signal := make([]float64, gc.n)
			var dp, tmp []float64
			if fn.df != nil {
				dp = make([]float64, gc.n)
				tmp = make([]float64, gc.n)
			}

			for l := w; l <= lmax; l += workers {
				for m := 0; m <= l; m++ {
					block := fn.ragged.Block(l, m)
					at := layout.TriangularIndex(l, m)

					for i, s := range samples {
						p[i] = s.NormalizedAt(at)
					}
					// T_i = P̄(θ_i)·(cos mλ_i + sin mλ_i)
					vecmath.MulBlock(signal, p, tt.sum[m])
					if err := an.coefficients(signal, l); err != nil {
						return err
					}
					mapCoefficients(fn.f[block:block+l+1], an.c, an.s, l, m)

					if fn.df == nil {
						continue
					}

					for i, s := range samples {
						dp[i] = s.FirstDerivativeNormalizedAt(at)
					}
					// dT_i = dP̄·dθ/dI·(cos mλ + sin mλ) + P̄·m(cos mλ - sin mλ)·dλ/dI
					vecmath.MulBlockInPlace(dp, gc.dThetaDI)
					vecmath.MulBlock(tmp, p, tt.diff[m])
					vecmath.MulBlockInPlace(tmp, gc.dLambdaDI)
					vecmath.MulAddBlock(signal, dp, tt.sum[m], tmp)
					if err := an.coefficients(signal, l); err != nil {
						return err
					}
					mapCoefficients(fn.df[block:block+l+1], an.c, an.s, l, m)
				}
			}

			return nil
		})
	}

	return g.Wait()
}

// MaxDegree returns the highest degree computed.
func (fn *Functions) MaxDegree() int { return fn.ragged.MaxDegree() }

// Inclination returns the inclination in radians.
func (fn *Functions) Inclination() float64 { return fn.inclination }

// SampleCount returns the number of great-circle samples (the FFT length).
func (fn *Functions) SampleCount() int { return fn.samples }

// HasDerivatives reports whether dF̄/dI was computed.
func (fn *Functions) HasDerivatives() bool { return fn.df != nil }

// Flmp returns F̄(l,m,p). Panics unless 0 <= m, p <= l <= MaxDegree().
func (fn *Functions) Flmp(l, m, p int) float64 {
	return fn.f[fn.ragged.Index(l, m, p)]
}

// Flmk returns F̄(l,m,k) with k = l - 2p, or 0 when |k| > l.
func (fn *Functions) Flmk(l, m, k int) float64 {
	if abs(k) > l {
		return 0
	}
	return fn.Flmp(l, m, layout.PFromK(l, k))
}

// FlmpDerivative returns dF̄(l,m,p)/dI.
// Panics unless the value was built with WithDerivatives.
func (fn *Functions) FlmpDerivative(l, m, p int) float64 {
	fn.requireDerivatives()
	return fn.df[fn.ragged.Index(l, m, p)]
}

// FlmkDerivative returns dF̄(l,m,k)/dI, or 0 when |k| > l.
// Panics unless the value was built with WithDerivatives.
func (fn *Functions) FlmkDerivative(l, m, k int) float64 {
	fn.requireDerivatives()
	if abs(k) > l {
		return 0
	}
	return fn.FlmpDerivative(l, m, layout.PFromK(l, k))
}

// FlmkStar returns the cross-track inclination function
//
//	F̄*(l,m,k) = ½[((k-1)cos I - m)/sin I · F̄(k-1) + ((k+1)cos I - m)/sin I · F̄(k+1)
//	            - dF̄(k-1)/dI + dF̄(k+1)/dI]
//
// It returns ErrSingularInclination when sin I vanishes and panics unless
// the value was built with WithDerivatives.
func (fn *Functions) FlmkStar(l, m, k int) (float64, error) {
	fn.requireDerivatives()

	sinI, cosI := math.Sin(fn.inclination), math.Cos(fn.inclination)
	if math.Abs(sinI) < singularTolerance {
		return 0, ErrSingularInclination
	}

	fk, fm := float64(k), float64(m)
	lower := ((fk-1)*cosI - fm) / sinI * fn.Flmk(l, m, k-1)
	upper := ((fk+1)*cosI - fm) / sinI * fn.Flmk(l, m, k+1)

	return 0.5 * (lower + upper - fn.FlmkDerivative(l, m, k-1) + fn.FlmkDerivative(l, m, k+1)), nil
}

// Clone returns a deep copy sharing no storage with fn.
func (fn *Functions) Clone() *Functions {
	c := *fn
	c.f = append([]float64(nil), fn.f...)
	if fn.df != nil {
		c.df = append([]float64(nil), fn.df...)
	}
	return &c
}

func (fn *Functions) requireDerivatives() {
	if fn.df == nil {
		panic("inclination: derivatives not computed (use WithDerivatives)")
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

package legendre

import (
	"math"

	"github.com/cwbudde/algo-geopot/internal/layout"
)

// Functions stores the fully-normalized ALFs, and optionally their first and
// second co-latitude derivatives, at a single co-latitude theta.
//
// All values are computed by New; a Functions value is immutable afterwards
// and safe for concurrent readers.
type Functions struct {
	tri   layout.Triangular
	norm  *Normalization
	theta float64

	p   []float64
	dp  []float64 // nil unless WithFirstDerivative
	ddp []float64 // nil unless WithSecondDerivative
}

// New computes the ALFs up to degree lmax at co-latitude theta (radians).
//
// Derivatives divide by sin(theta) and are therefore rejected at the poles
// with ErrPoleSingularity. The plain values are defined everywhere.
func New(lmax int, theta float64, opts ...Option) (*Functions, error) {
	if lmax < 0 {
		return nil, ErrNegativeDegree
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	u := math.Sin(theta)
	t := math.Cos(theta)
	if cfg.firstDerivative && math.Abs(u) < poleTolerance {
		return nil, ErrPoleSingularity
	}

	norm, err := NewNormalization(lmax)
	if err != nil {
		return nil, err
	}

	f := &Functions{
		tri:   layout.NewTriangular(lmax),
		norm:  norm,
		theta: theta,
	}
	f.p = foid(lmax, t, u)

	if cfg.firstDerivative {
		f.dp = firstDerivatives(lmax, t, u, f.p)
	}
	if cfg.secondDerivative {
		f.ddp = secondDerivatives(lmax, t, u, f.p, f.dp)
	}

	return f, nil
}

// foid runs the sectorial seed followed by the fixed-order column recursion.
// t and u are cos(theta) and sin(theta).
func foid(lmax int, t, u float64) []float64 {
	p := make([]float64, layout.TriangularLen(lmax))
	idx := layout.TriangularIndex

	p[0] = 1
	if lmax > 0 {
		p[idx(1, 1)] = math.Sqrt(3) * u
	}
	for l := 2; l <= lmax; l++ {
		fl := float64(l)
		p[idx(l, l)] = math.Sqrt((2*fl+1)/(2*fl)) * u * p[idx(l-1, l-1)]
	}

	for m := 0; m < lmax; m++ {
		fm := float64(m)

		l := m + 1
		p[idx(l, m)] = recursionA(float64(l), fm) * t * p[idx(l-1, m)]

		for l := m + 2; l <= lmax; l++ {
			fl := float64(l)
			p[idx(l, m)] = recursionA(fl, fm)*t*p[idx(l-1, m)] - recursionB(fl, fm)*p[idx(l-2, m)]
		}
	}

	return p
}

// recursionA is a(l,m) = sqrt((2l-1)(2l+1) / ((l-m)(l+m))), m < l.
func recursionA(l, m float64) float64 {
	return math.Sqrt((2*l - 1) * (2*l + 1) / ((l - m) * (l + m)))
}

// recursionB is b(l,m) = sqrt((2l+1)(l+m-1)(l-m-1) / ((l-m)(l+m)(2l-3))),
// zero when l-m == 1.
func recursionB(l, m float64) float64 {
	if l-m == 1 {
		return 0
	}
	return math.Sqrt((2*l + 1) * (l + m - 1) * (l - m - 1) / ((l - m) * (l + m) * (2*l - 3)))
}

// derivativeF is f(l,m) = sqrt((l²-m²)(2l+1) / (2l-1)).
func derivativeF(l, m float64) float64 {
	return math.Sqrt((l*l - m*m) * (2*l + 1) / (2*l - 1))
}

func firstDerivatives(lmax int, t, u float64, p []float64) []float64 {
	dp := make([]float64, len(p))
	idx := layout.TriangularIndex

	for m := 0; m <= lmax; m++ {
		dp[idx(m, m)] = float64(m) * t / u * p[idx(m, m)]
	}
	for l := 1; l <= lmax; l++ {
		fl := float64(l)
		for m := 0; m < l; m++ {
			dp[idx(l, m)] = 1 / u * (fl*t*p[idx(l, m)] - derivativeF(fl, float64(m))*p[idx(l-1, m)])
		}
	}

	return dp
}

func secondDerivatives(lmax int, t, u float64, p, dp []float64) []float64 {
	ddp := make([]float64, len(p))
	idx := layout.TriangularIndex

	for m := 0; m <= lmax; m++ {
		fm := float64(m)
		ddp[idx(m, m)] = (fm-1)*t/u*dp[idx(m, m)] - fm*p[idx(m, m)]
	}
	for l := 1; l <= lmax; l++ {
		fl := float64(l)
		for m := 0; m < l; m++ {
			ddp[idx(l, m)] = 1/u*((fl-1)*t*dp[idx(l, m)]-derivativeF(fl, float64(m))*dp[idx(l-1, m)]) -
				fl*p[idx(l, m)]
		}
	}

	return ddp
}

// MaxDegree returns the highest degree computed.
func (f *Functions) MaxDegree() int { return f.tri.MaxDegree() }

// Theta returns the co-latitude in radians.
func (f *Functions) Theta() float64 { return f.theta }

// Normalization returns the factors used by the unnormalized accessors.
func (f *Functions) Normalization() *Normalization { return f.norm }

// HasFirstDerivative reports whether first derivatives were computed.
func (f *Functions) HasFirstDerivative() bool { return f.dp != nil }

// HasSecondDerivative reports whether second derivatives were computed.
func (f *Functions) HasSecondDerivative() bool { return f.ddp != nil }

// Normalized returns P̄(l,m)(theta).
func (f *Functions) Normalized(l, m int) float64 {
	return f.p[f.tri.Index(l, m)]
}

// Unnormalized returns P(l,m)(theta) = P̄(l,m) / N(l,m).
func (f *Functions) Unnormalized(l, m int) float64 {
	return f.Normalized(l, m) / f.norm.At(l, m)
}

// FirstDerivativeNormalized returns dP̄(l,m)/dθ.
// Panics unless the value was built with WithFirstDerivative.
func (f *Functions) FirstDerivativeNormalized(l, m int) float64 {
	if f.dp == nil {
		panic("legendre: first derivatives not computed (use WithFirstDerivative)")
	}
	return f.dp[f.tri.Index(l, m)]
}

// FirstDerivativeUnnormalized returns dP(l,m)/dθ.
func (f *Functions) FirstDerivativeUnnormalized(l, m int) float64 {
	return f.FirstDerivativeNormalized(l, m) / f.norm.At(l, m)
}

// SecondDerivativeNormalized returns d²P̄(l,m)/dθ².
// Panics unless the value was built with WithSecondDerivative.
func (f *Functions) SecondDerivativeNormalized(l, m int) float64 {
	if f.ddp == nil {
		panic("legendre: second derivatives not computed (use WithSecondDerivative)")
	}
	return f.ddp[f.tri.Index(l, m)]
}

// SecondDerivativeUnnormalized returns d²P(l,m)/dθ².
func (f *Functions) SecondDerivativeUnnormalized(l, m int) float64 {
	return f.SecondDerivativeNormalized(l, m) / f.norm.At(l, m)
}

// NormalizedAt returns P̄(l,m) stored at flat position i = l(l+1)/2 + m.
// It skips the degree and order checks of Normalized and is meant for
// callers that sweep many values at a fixed (l, m).
func (f *Functions) NormalizedAt(i int) float64 { return f.p[i] }

// FirstDerivativeNormalizedAt is the flat-position form of
// FirstDerivativeNormalized. Panics unless first derivatives were computed.
func (f *Functions) FirstDerivativeNormalizedAt(i int) float64 {
	if f.dp == nil {
		panic("legendre: first derivatives not computed (use WithFirstDerivative)")
	}
	return f.dp[i]
}

// Clone returns a deep copy sharing no storage with f.
func (f *Functions) Clone() *Functions {
	return &Functions{
		tri:   f.tri,
		norm:  f.norm.Clone(),
		theta: f.theta,
		p:     cloneSlice(f.p),
		dp:    cloneSlice(f.dp),
		ddp:   cloneSlice(f.ddp),
	}
}

func cloneSlice(s []float64) []float64 {
	if s == nil {
		return nil
	}
	return append([]float64(nil), s...)
}

package legendre

import (
	"math"

	"github.com/cwbudde/algo-geopot/internal/layout"
)

// Normalization holds the fully-normalized spherical-harmonic factors
// N(l,m) for 0 <= m <= l <= lmax.
type Normalization struct {
	tri    layout.Triangular
	values []float64
}

// NewNormalization computes the factors up to degree lmax.
//
// The table is seeded with N(l,0) = sqrt(2l+1) and filled order by order
// with N(l,m) = N(l,m-1) / sqrt((l-m+1)(l+m)). Every m > 0 entry is finally
// scaled by sqrt(2), the (2-δ0m) term.
func NewNormalization(lmax int) (*Normalization, error) {
	if lmax < 0 {
		return nil, ErrNegativeDegree
	}

	tri := layout.NewTriangular(lmax)
	values := make([]float64, tri.Len())

	for l := 0; l <= lmax; l++ {
		values[layout.TriangularIndex(l, 0)] = math.Sqrt(float64(2*l + 1))
	}

	for m := 1; m <= lmax; m++ {
		for l := m; l <= lmax; l++ {
			den := float64(l-m+1) * float64(l+m)
			values[layout.TriangularIndex(l, m)] = values[layout.TriangularIndex(l, m-1)] * math.Sqrt(1/den)
		}
	}

	for m := 1; m <= lmax; m++ {
		for l := m; l <= lmax; l++ {
			values[layout.TriangularIndex(l, m)] *= math.Sqrt2
		}
	}

	return &Normalization{tri: tri, values: values}, nil
}

// MaxDegree returns the highest degree in the table.
func (n *Normalization) MaxDegree() int { return n.tri.MaxDegree() }

// At returns N(l,m). Panics if (l, m) is outside the table.
func (n *Normalization) At(l, m int) float64 {
	return n.values[n.tri.Index(l, m)]
}

// Clone returns an independent copy.
func (n *Normalization) Clone() *Normalization {
	return &Normalization{
		tri:    n.tri,
		values: append([]float64(nil), n.values...),
	}
}

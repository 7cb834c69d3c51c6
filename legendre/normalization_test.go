package legendre

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-geopot/internal/testutil"
)

func TestNormalizationClosedForm(t *testing.T) {
	for lmax := 0; lmax <= 10; lmax++ {
		n, err := NewNormalization(lmax)
		if err != nil {
			t.Fatalf("NewNormalization(%d): %v", lmax, err)
		}
		if n.MaxDegree() != lmax {
			t.Fatalf("MaxDegree = %d, want %d", n.MaxDegree(), lmax)
		}

		for l := 0; l <= lmax; l++ {
			for m := 0; m <= l; m++ {
				want := math.Sqrt((2 - testutil.KroneckerDelta(m, 0)) * float64(2*l+1) *
					testutil.Factorial(l-m) / testutil.Factorial(l+m))
				what := fmt.Sprintf("lmax=%d N(%d,%d)", lmax, l, m)
				testutil.RequireRelNear(t, what, n.At(l, m), want, 1e-15)
			}
		}
	}
}

func TestNormalizationZonalSeed(t *testing.T) {
	n, err := NewNormalization(50)
	if err != nil {
		t.Fatalf("NewNormalization: %v", err)
	}
	for l := 0; l <= 50; l++ {
		if got, want := n.At(l, 0), math.Sqrt(float64(2*l+1)); got != want {
			t.Fatalf("N(%d,0) = %v, want %v", l, got, want)
		}
	}
}

func TestNormalizationHighDegreeStaysFinite(t *testing.T) {
	const lmax = 2000

	n, err := NewNormalization(lmax)
	if err != nil {
		t.Fatalf("NewNormalization: %v", err)
	}
	if n.MaxDegree() != lmax {
		t.Fatalf("MaxDegree = %d, want %d", n.MaxDegree(), lmax)
	}

	testutil.RequireFinite(t, n.values)
	for i, v := range n.values {
		if v < 0 {
			t.Fatalf("index %d: negative factor %v", i, v)
		}
	}
}

func TestNormalizationNegativeDegree(t *testing.T) {
	if _, err := NewNormalization(-1); !errors.Is(err, ErrNegativeDegree) {
		t.Fatalf("err = %v, want ErrNegativeDegree", err)
	}
}

func TestNormalizationOutOfRangePanics(t *testing.T) {
	n, err := NewNormalization(4)
	if err != nil {
		t.Fatalf("NewNormalization: %v", err)
	}

	for _, lm := range [][2]int{{5, 0}, {2, 3}, {-1, 0}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("At(%d,%d) did not panic", lm[0], lm[1])
				}
			}()
			n.At(lm[0], lm[1])
		}()
	}
}

func TestNormalizationCloneIsIndependent(t *testing.T) {
	n, err := NewNormalization(6)
	if err != nil {
		t.Fatalf("NewNormalization: %v", err)
	}

	c := n.Clone()
	want := n.At(3, 2)
	c.values[layoutIndex(3, 2)] = -1

	if got := n.At(3, 2); got != want {
		t.Fatalf("original modified through clone: got %v, want %v", got, want)
	}
	if c.MaxDegree() != n.MaxDegree() {
		t.Fatalf("clone MaxDegree = %d, want %d", c.MaxDegree(), n.MaxDegree())
	}
}

func layoutIndex(l, m int) int { return l*(l+1)/2 + m }

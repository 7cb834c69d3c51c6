package inclination

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// analyzer turns a real signal of length n into cosine and sine amplitudes
// C_i = 2Re(y_i)/n and S_i = -2Im(y_i)/n. An analyzer owns its plan and
// buffers and must not be shared between goroutines.
type analyzer struct {
	n    int
	plan *algofft.Plan[complex128]
	in   []complex128
	out  []complex128

	c []float64
	s []float64
}

func newAnalyzer(n, lmax int) (*analyzer, error) {
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("inclination: FFT plan of size %d: %w", n, err)
	}

	return &analyzer{
		n:    n,
		plan: plan,
		in:   make([]complex128, n),
		out:  make([]complex128, n),
		c:    make([]float64, lmax+1),
		s:    make([]float64, lmax+1),
	}, nil
}

// coefficients fills a.c[0..l] and a.s[0..l] from signal.
func (a *analyzer) coefficients(signal []float64, l int) error {
	for i, v := range signal {
		a.in[i] = complex(v, 0)
	}

	if err := a.plan.Forward(a.out, a.in); err != nil {
		return fmt.Errorf("inclination: forward FFT: %w", err)
	}

	for i := 0; i <= l; i++ {
		a.c[i] = real(a.out[i])
		a.s[i] = -imag(a.out[i])
	}
	scale := 2 / float64(a.n)
	vecmath.ScaleBlockInPlace(a.c[:l+1], scale)
	vecmath.ScaleBlockInPlace(a.s[:l+1], scale)

	return nil
}

// mapCoefficients writes the harmonic amplitudes of degree l, order m into
// the p-indexed block (length l+1).
//
// Harmonic i only contributes when it has the parity of l and lands on
// p = (l-i)/2 and p = (l+i)/2. Assignments happen in a fixed order and later
// ones overwrite earlier ones: for even l the i = 0 pass replaces the
// central ±C_0 with ±C_0/2.
func mapCoefficients(block, c, s []float64, l, m int) {
	if l%2 == 0 {
		if m%2 == 0 {
			block[l/2] = c[0]
		} else {
			block[l/2] = -c[0]
		}
	}

	if l%2 == m%2 {
		for i := l % 2; i <= l; i += 2 {
			block[(l-i)/2] = (c[i] + s[i]) / 2
			block[(l+i)/2] = (c[i] - s[i]) / 2
		}
		return
	}

	for i := l % 2; i <= l; i += 2 {
		block[(l+i)/2] = -(c[i] + s[i]) / 2
		block[(l-i)/2] = -(c[i] - s[i]) / 2
	}
}

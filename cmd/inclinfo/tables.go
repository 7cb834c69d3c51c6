package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/cwbudde/algo-geopot/inclination"
	"github.com/cwbudde/algo-geopot/legendre"
)

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func printNormalization(w io.Writer, o options) error {
	n, err := legendre.NewNormalization(o.lmax)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "l\tm\tN(l,m)\n-\t-\t------\n"); err != nil {
		return err
	}
	return degreeOrders(o, func(l, m int) error {
		_, err := fmt.Fprintf(w, "%d\t%d\t%.15e\n", l, m, n.At(l, m))
		return err
	})
}

func printLegendre(w io.Writer, o options) error {
	theta := radians(o.deg)
	p, err := legendre.New(o.lmax, theta, legendre.WithSecondDerivative())
	if errors.Is(err, legendre.ErrPoleSingularity) {
		p, err = legendre.New(o.lmax, theta)
	}
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "l\tm\tP̄(l,m)\tdP̄/dθ\td²P̄/dθ²\n-\t-\t------\t-----\t-------\n"); err != nil {
		return err
	}
	return degreeOrders(o, func(l, m int) error {
		d1, d2 := "n/a", "n/a"
		if p.HasSecondDerivative() {
			d1 = fmt.Sprintf("%.15e", p.FirstDerivativeNormalized(l, m))
			d2 = fmt.Sprintf("%.15e", p.SecondDerivativeNormalized(l, m))
		}
		_, err := fmt.Fprintf(w, "%d\t%d\t%.15e\t%s\t%s\n", l, m, p.Normalized(l, m), d1, d2)
		return err
	})
}

func newInclination(o options, derivatives bool) (*inclination.Functions, error) {
	var opts []inclination.Option
	if derivatives {
		opts = append(opts, inclination.WithDerivatives())
	}
	if o.workers > 0 {
		opts = append(opts, inclination.WithWorkers(o.workers))
	}
	return inclination.New(o.lmax, radians(o.deg), opts...)
}

func printInclination(w io.Writer, o options) error {
	fn, err := newInclination(o, false)
	if err != nil {
		return err
	}
	return printPTable(w, o, "F̄(l,m,p)", fn.Flmp)
}

func printInclinationDerivative(w io.Writer, o options) error {
	fn, err := newInclination(o, true)
	if err != nil {
		return err
	}
	return printPTable(w, o, "dF̄/dI", fn.FlmpDerivative)
}

func printPTable(w io.Writer, o options, label string, value func(l, m, p int) float64) error {
	if _, err := fmt.Fprintf(w, "l\tm\tp\tk\t%s\n-\t-\t-\t-\t%s\n", label, dashes(label)); err != nil {
		return err
	}
	return degreeOrders(o, func(l, m int) error {
		for p := 0; p <= l; p++ {
			if _, err := fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%.15e\n", l, m, p, l-2*p, value(l, m, p)); err != nil {
				return err
			}
		}
		return nil
	})
}

func printStar(w io.Writer, o options) error {
	fn, err := newInclination(o, true)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "l\tm\tk\tF̄*(l,m,k)\n-\t-\t-\t---------\n"); err != nil {
		return err
	}
	return degreeOrders(o, func(l, m int) error {
		// F̄* couples k-1 and k+1, which share the parity of l.
		for k := -l - 1; k <= l+1; k += 2 {
			v, err := fn.FlmkStar(l, m, k)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%d\t%d\t%d\t%.15e\n", l, m, k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func dashes(s string) string {
	return strings.Repeat("-", utf8.RuneCountInString(s))
}

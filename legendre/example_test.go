package legendre_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-geopot/legendre"
)

func ExampleNew() {
	p, err := legendre.New(100, 65*math.Pi/180)
	if err != nil {
		panic(err)
	}

	fmt.Printf("P(14,4) = %.4f\n", p.Unnormalized(14, 4))
	fmt.Printf("P̄(0,0) = %.1f\n", p.Normalized(0, 0))

	// Output:
	// P(14,4) = -9251.5075
	// P̄(0,0) = 1.0
}

func ExampleNewNormalization() {
	n, err := legendre.NewNormalization(10)
	if err != nil {
		panic(err)
	}

	fmt.Printf("N(2,0) = %.6f\n", n.At(2, 0))
	fmt.Printf("N(2,2) = %.6f\n", n.At(2, 2))

	// Output:
	// N(2,0) = 2.236068
	// N(2,2) = 0.645497
}

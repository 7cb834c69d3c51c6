package testutil

import "math"

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Factorial returns n! as a float64. Exact for n <= 22.
func Factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}

// KroneckerDelta returns 1 if a == b and 0 otherwise.
func KroneckerDelta(a, b int) float64 {
	if a == b {
		return 1
	}
	return 0
}

package testutil

import (
	"math"
	"testing"
)

func TestFactorial(t *testing.T) {
	want := []float64{1, 1, 2, 6, 24, 120, 720, 5040}
	for n, w := range want {
		if got := Factorial(n); got != w {
			t.Fatalf("Factorial(%d) = %v, want %v", n, got, w)
		}
	}
}

func TestRadians(t *testing.T) {
	if got := Radians(180); got != math.Pi {
		t.Fatalf("Radians(180) = %v, want π", got)
	}
	if got := Radians(0); got != 0 {
		t.Fatalf("Radians(0) = %v, want 0", got)
	}
}

func TestKroneckerDelta(t *testing.T) {
	if KroneckerDelta(3, 3) != 1 || KroneckerDelta(0, 1) != 0 {
		t.Fatal("KroneckerDelta mismatch")
	}
}

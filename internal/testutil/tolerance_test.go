package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	// Row l = 2 of N(l,m) against a copy with one perturbed order.
	row := []float64{math.Sqrt(5), math.Sqrt(5.0 / 3), math.Sqrt(5.0 / 12)}

	tests := []struct {
		name  string
		other []float64
		want  float64
	}{
		{name: "identical", other: []float64{row[0], row[1], row[2]}, want: 0},
		{name: "one order off", other: []float64{row[0], row[1] + 0.25, row[2]}, want: 0.25},
		{name: "sign only", other: []float64{-row[0], row[1], row[2]}, want: 2 * math.Sqrt(5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MaxAbsDiff(row, tt.other)
			if err != nil {
				t.Fatalf("MaxAbsDiff: %v", err)
			}
			RequireNear(t, "max |a-b|", got, tt.want, 1e-15)
		})
	}
}

func TestMaxAbsDiffRejectsDifferentDegrees(t *testing.T) {
	// A degree-2 row has three orders, a degree-3 row four.
	if _, err := MaxAbsDiff(make([]float64, 3), make([]float64, 4)); err == nil {
		t.Fatal("expected error for rows of different length")
	}
}

func TestRequireHelpersAcceptExactValues(t *testing.T) {
	RequireNear(t, "cos 60°", math.Cos(Radians(60)), 0.5, 1e-15)
	RequireRelNear(t, "N(2,2)", math.Sqrt(5.0/12), 0.6454972243679028, 1e-15)
	RequireSliceNearlyEqual(t, []float64{1, -0.5}, []float64{1, -0.5}, 0)
	RequireFinite(t, []float64{0, math.MaxFloat64, -math.SmallestNonzeroFloat64})
}

package optim

import (
	"math"
	"testing"
)

func TestMinimize_MonotonicConvergesToLowerBound(t *testing.T) {
	// Strictly increasing objective: argmin over [1, 10] is always 1.
	cost := func(r float64) float64 { return r * 210 }

	for _, guess := range []float64{1.0, 1.5, 5.0, 10.0} {
		got := Minimize(cost, guess, 1.0, 10.0, 1e-6)
		if math.Abs(got-1.0) > 1e-4 {
			t.Errorf("guess %v: minimizer = %v, want 1.0", guess, got)
		}
	}
}

func TestMinimize_Quadratic(t *testing.T) {
	f := func(x float64) float64 { return (x - 3) * (x - 3) }

	got := Minimize(f, 8.0, 1.0, 10.0, 1e-8)
	if math.Abs(got-3.0) > 1e-4 {
		t.Errorf("minimizer = %v, want 3.0", got)
	}
}

func TestMinimize_GuessOutsideBoundsClamped(t *testing.T) {
	f := func(x float64) float64 { return x }

	got := Minimize(f, 42.0, 1.0, 10.0, 1e-6)
	if math.Abs(got-1.0) > 1e-4 {
		t.Errorf("out-of-bounds guess: minimizer = %v, want 1.0", got)
	}

	got = Minimize(f, -3.0, 1.0, 10.0, 1e-6)
	if math.Abs(got-1.0) > 1e-4 {
		t.Errorf("below-bounds guess: minimizer = %v, want 1.0", got)
	}
}

func TestMinimize_SwappedBounds(t *testing.T) {
	f := func(x float64) float64 { return x }

	got := Minimize(f, 2.0, 10.0, 1.0, 1e-6)
	if math.Abs(got-1.0) > 1e-4 {
		t.Errorf("swapped bounds: minimizer = %v, want 1.0", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		x, lo, hi, want float64
	}{
		{0.5, 1.0, 10.0, 1.0},
		{15.0, 1.0, 10.0, 10.0},
		{5.0, 1.0, 10.0, 5.0},
		{1.0, 1.0, 10.0, 1.0},
		{10.0, 1.0, 10.0, 10.0},
	}

	for _, tt := range tests {
		if got := Clamp(tt.x, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.x, tt.lo, tt.hi, got, tt.want)
		}
	}
}

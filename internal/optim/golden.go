package optim

import "math"

// Objective is a scalar function of one variable to be minimized.
type Objective func(x float64) float64

// DefaultTolerance is the interval width at which the search stops.
const DefaultTolerance = 1e-6

// invPhi is the inverse golden ratio, (sqrt(5)-1)/2.
var invPhi = (math.Sqrt(5) - 1) / 2

// Clamp projects x onto the closed interval [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Minimize searches the closed interval [lo, hi] for a minimizer of f using
// golden-section search. The initial guess is clamped into the interval per
// the bounded-minimization contract; an out-of-bounds guess is not an error.
// A non-positive tol falls back to DefaultTolerance.
func Minimize(f Objective, guess, lo, hi, tol float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	if tol <= 0 {
		tol = DefaultTolerance
	}

	guess = Clamp(guess, lo, hi)
	if hi-lo < tol {
		return guess
	}

	a, b := lo, hi
	x1 := b - invPhi*(b-a)
	x2 := a + invPhi*(b-a)
	f1, f2 := f(x1), f(x2)

	for b-a > tol {
		if f1 < f2 {
			b = x2
			x2, f2 = x1, f1
			x1 = b - invPhi*(b-a)
			f1 = f(x1)
		} else {
			a = x1
			x1, f1 = x2, f2
			x2 = a + invPhi*(b-a)
			f2 = f(x2)
		}
	}

	return (a + b) / 2
}

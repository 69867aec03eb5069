// Package thermo provides component property records and the simplified
// vapor/liquid equilibrium correlations used by the column simulator.
//
// The correlation is an ad hoc exponential anchored at a 300 K / 101.325 kPa
// reference point:
//
//	P(T) = 101.325 * exp(coeff * (T - 300) / 100)
//
// It is not an Antoine equation and makes no claim of physical validity;
// negative or zero coefficients are accepted and simply flip the curve
// direction. Extreme inputs overflow to IEEE +Inf and are propagated, never
// trapped.
package thermo

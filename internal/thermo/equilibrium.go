package thermo

import "math"

const (
	// ReferenceTemperature anchors the vapor pressure correlation, in K.
	ReferenceTemperature = 300.0

	// ReferencePressure is 1 atm in kPa.
	ReferencePressure = 101.325
)

// VaporPressure returns the correlation pressure in kPa for the component at
// temperature T (K). No bounds are checked on T.
func (c Component) VaporPressure(T float64) float64 {
	return ReferencePressure * math.Exp(c.VaporPressureCoeff*(T-ReferenceTemperature)/100)
}

// EquilibriumRatio returns the pseudo K-value at T: the correlation pressure
// divided by the reference pressure, i.e. exp(coeff * (T-300)/100).
func (c Component) EquilibriumRatio(T float64) float64 {
	return math.Exp(c.VaporPressureCoeff * (T - ReferenceTemperature) / 100)
}

// PairVaporPressure returns the correlation pressure for a component pair,
// using the arithmetic mean of the two coefficients.
func PairVaporPressure(a, b Component, T float64) float64 {
	coeff := (a.VaporPressureCoeff + b.VaporPressureCoeff) / 2
	return ReferencePressure * math.Exp(coeff*(T-ReferenceTemperature)/100)
}

package thermo

import "math"

// Component is the static property bundle for a chemical species. It is
// created once at column construction and never mutated. MolecularWeight,
// HeatOfVaporization and LiquidDensity are carried for reporting only; the
// simulator never reads them.
type Component struct {
	Name               string
	MolecularWeight    float64
	HeatOfVaporization float64
	VaporPressureCoeff float64
	LiquidDensity      float64
	SpecificHeatLiquid float64
	SpecificHeatVapor  float64
}

// RelativeVolatilities maps each component name to exp(-coeff), the crude
// volatility ranking used in run metadata.
func RelativeVolatilities(components []Component) map[string]float64 {
	volatilities := make(map[string]float64, len(components))
	for _, comp := range components {
		volatilities[comp.Name] = math.Exp(-comp.VaporPressureCoeff)
	}
	return volatilities
}

package thermo

import (
	"fmt"
	"math/rand"
)

// VLEPoint is one temperature/pressure sample of a lookup table.
type VLEPoint struct {
	Temperature float64
	Pressure    float64
}

// VLETable holds the equilibrium lookup data generated at column
// construction. It is reporting data only; the stage loop computes
// equilibrium ratios directly from the correlation.
type VLETable struct {
	Components    []Component
	Temperatures  []float64
	Pressures     []map[string]float64
	MoleFractions []map[string]float64
}

// GenerateVLE samples the correlation at 11 evenly spaced temperatures
// between 300 and 400 K. Mole fractions are drawn uniformly from [0.1, 0.9)
// using the supplied source, so tables are reproducible for a fixed seed.
func GenerateVLE(components []Component, rng *rand.Rand) *VLETable {
	const points = 11
	table := &VLETable{
		Components:    components,
		Temperatures:  make([]float64, 0, points),
		Pressures:     make([]map[string]float64, 0, points),
		MoleFractions: make([]map[string]float64, 0, points),
	}

	for i := 0; i < points; i++ {
		T := ReferenceTemperature + 100*float64(i)/float64(points-1)
		pressures := make(map[string]float64, len(components))
		fractions := make(map[string]float64, len(components))
		for _, comp := range components {
			pressures[comp.Name] = comp.VaporPressure(T)
			fractions[comp.Name] = 0.1 + 0.8*rng.Float64()
		}
		table.Temperatures = append(table.Temperatures, T)
		table.Pressures = append(table.Pressures, pressures)
		table.MoleFractions = append(table.MoleFractions, fractions)
	}

	return table
}

// PressuresAt evaluates the correlation for every component at an arbitrary
// temperature, not just the tabulated ones.
func (t *VLETable) PressuresAt(T float64) map[string]float64 {
	pressures := make(map[string]float64, len(t.Components))
	for _, comp := range t.Components {
		pressures[comp.Name] = comp.VaporPressure(T)
	}
	return pressures
}

// VLLETable maps "name1-name2" pair keys to sampled pair pressures.
type VLLETable map[string][]VLEPoint

// GenerateVLLE samples the averaged-coefficient correlation for every
// unordered component pair (i < j) from 300 K to 390 K in 10 K steps.
func GenerateVLLE(components []Component) VLLETable {
	table := make(VLLETable)
	for i, a := range components {
		for j, b := range components {
			if i >= j {
				continue
			}
			key := fmt.Sprintf("%s-%s", a.Name, b.Name)
			points := make([]VLEPoint, 0, 10)
			for T := 300.0; T < 400.0; T += 10.0 {
				points = append(points, VLEPoint{
					Temperature: T,
					Pressure:    PairVaporPressure(a, b, T),
				})
			}
			table[key] = points
		}
	}
	return table
}

package config

import "sort"

// Presets are named ready-to-run column configurations.
var Presets = map[string]*Config{
	"ternary": DefaultConfig(),
	"wide": {
		Components: DefaultConfig().Components,
		Feed:       map[string]float64{"A": 0.5, "B": 0.3, "C": 0.2},
		Stages:     30, FeedStage: 15,
		RefluxRatio: DefaultRefluxRatio,
		Condenser:   "partial", Reboiler: "steam",
		Seed: DefaultSeed,
	},
	"binary": {
		Components: []ComponentConfig{
			{Name: "A", MolecularWeight: 78.11, HeatOfVaporization: 35.69, VaporPressureCoeff: 0.5, LiquidDensity: 0.789, SpecificHeatLiquid: 1.2, SpecificHeatVapor: 2.0},
			{Name: "B", MolecularWeight: 92.14, HeatOfVaporization: 38.25, VaporPressureCoeff: 0.6, LiquidDensity: 0.846, SpecificHeatLiquid: 1.3, SpecificHeatVapor: 2.1},
		},
		Feed:   map[string]float64{"A": 0.6, "B": 0.4},
		Stages: 10, FeedStage: 5,
		RefluxRatio: DefaultRefluxRatio,
		Condenser:   DefaultCondenser, Reboiler: DefaultReboiler,
		Seed: DefaultSeed,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/distsim/internal/column"
	"github.com/san-kum/distsim/internal/thermo"
)

const (
	DefaultStages      = 20
	DefaultFeedStage   = 10
	DefaultRefluxRatio = 1.5
	DefaultCondenser   = "total"
	DefaultReboiler    = "steam"
	DefaultSeed        = 42
)

type ComponentConfig struct {
	Name               string  `yaml:"name"`
	MolecularWeight    float64 `yaml:"molecular_weight"`
	HeatOfVaporization float64 `yaml:"heat_of_vaporization"`
	VaporPressureCoeff float64 `yaml:"vapor_pressure_coeff"`
	LiquidDensity      float64 `yaml:"liquid_density"`
	SpecificHeatLiquid float64 `yaml:"specific_heat_liquid"`
	SpecificHeatVapor  float64 `yaml:"specific_heat_vapor"`
}

type Config struct {
	Components  []ComponentConfig  `yaml:"components"`
	Feed        map[string]float64 `yaml:"feed"`
	Stages      int                `yaml:"stages"`
	FeedStage   int                `yaml:"feed_stage"`
	RefluxRatio float64            `yaml:"reflux_ratio"`
	Condenser   string             `yaml:"condenser"`
	Reboiler    string             `yaml:"reboiler"`
	Seed        int64              `yaml:"seed"`
}

// DefaultConfig is the ternary A/B/C benchmark column.
func DefaultConfig() *Config {
	return &Config{
		Components: []ComponentConfig{
			{Name: "A", MolecularWeight: 78.11, HeatOfVaporization: 35.69, VaporPressureCoeff: 0.5, LiquidDensity: 0.789, SpecificHeatLiquid: 1.2, SpecificHeatVapor: 2.0},
			{Name: "B", MolecularWeight: 92.14, HeatOfVaporization: 38.25, VaporPressureCoeff: 0.6, LiquidDensity: 0.846, SpecificHeatLiquid: 1.3, SpecificHeatVapor: 2.1},
			{Name: "C", MolecularWeight: 114.23, HeatOfVaporization: 45.10, VaporPressureCoeff: 0.7, LiquidDensity: 0.892, SpecificHeatLiquid: 1.4, SpecificHeatVapor: 2.2},
		},
		Feed:        map[string]float64{"A": 0.5, "B": 0.3, "C": 0.2},
		Stages:      DefaultStages,
		FeedStage:   DefaultFeedStage,
		RefluxRatio: DefaultRefluxRatio,
		Condenser:   DefaultCondenser,
		Reboiler:    DefaultReboiler,
		Seed:        DefaultSeed,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// BuildComponents converts the config records into thermo components,
// preserving declaration order.
func (c *Config) BuildComponents() []thermo.Component {
	components := make([]thermo.Component, 0, len(c.Components))
	for _, cc := range c.Components {
		components = append(components, thermo.Component{
			Name:               cc.Name,
			MolecularWeight:    cc.MolecularWeight,
			HeatOfVaporization: cc.HeatOfVaporization,
			VaporPressureCoeff: cc.VaporPressureCoeff,
			LiquidDensity:      cc.LiquidDensity,
			SpecificHeatLiquid: cc.SpecificHeatLiquid,
			SpecificHeatVapor:  cc.SpecificHeatVapor,
		})
	}
	return components
}

// BuildColumn assembles a validated column from the config.
func (c *Config) BuildColumn() (*column.Column, error) {
	return column.New(c.BuildComponents(), column.Feed(c.Feed), column.Config{
		RefluxRatio: c.RefluxRatio,
		Stages:      c.Stages,
		FeedStage:   c.FeedStage,
		Condenser:   c.Condenser,
		Reboiler:    c.Reboiler,
		Seed:        c.Seed,
	}, nil)
}

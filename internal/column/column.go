package column

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/distsim/internal/optim"
	"github.com/san-kum/distsim/internal/thermo"
)

// Reflux ratio search bounds.
const (
	RefluxLower = 1.0
	RefluxUpper = 10.0
)

// Config carries the scalar column configuration. FeedStage, Condenser and
// Reboiler are stored and reported but never read by the computation.
type Config struct {
	RefluxRatio float64
	Stages      int
	FeedStage   int
	Condenser   string
	Reboiler    string
	Seed        int64
}

// Column aggregates components, feed and derived equilibrium data, and
// collects stage records during simulation. Not safe for concurrent use.
type Column struct {
	Components  []thermo.Component
	Feed        Feed
	RefluxRatio float64
	NumStages   int
	FeedStage   int
	Condenser   string
	Reboiler    string

	Volatility map[string]float64
	VLE        *thermo.VLETable
	VLLE       thermo.VLLETable

	Stages    []Stage
	TotalDuty float64
}

// New validates the configuration and builds a column with its equilibrium
// tables precomputed. Every feed key must name a component and every
// component must have a feed entry; violations are fatal configuration
// errors. A nil rng is replaced by one seeded from cfg.Seed.
func New(components []thermo.Component, feed Feed, cfg Config, rng *rand.Rand) (*Column, error) {
	if len(components) == 0 {
		return nil, ErrNoComponents
	}
	if cfg.Stages < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrStageCount, cfg.Stages)
	}

	names := make(map[string]bool, len(components))
	for _, comp := range components {
		if names[comp.Name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateComponent, comp.Name)
		}
		names[comp.Name] = true
	}

	for name, val := range feed {
		if !names[name] {
			return nil, fmt.Errorf("%w: %s", ErrUnknownFeedComponent, name)
		}
		if val < 0 {
			return nil, fmt.Errorf("%w: %s = %v", ErrNegativeFeed, name, val)
		}
	}
	for _, comp := range components {
		if _, ok := feed[comp.Name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingFeedEntry, comp.Name)
		}
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	return &Column{
		Components:  components,
		Feed:        feed.Clone(),
		RefluxRatio: cfg.RefluxRatio,
		NumStages:   cfg.Stages,
		FeedStage:   cfg.FeedStage,
		Condenser:   cfg.Condenser,
		Reboiler:    cfg.Reboiler,
		Volatility:  thermo.RelativeVolatilities(components),
		VLE:         thermo.GenerateVLE(components, rng),
		VLLE:        thermo.GenerateVLLE(components),
	}, nil
}

// EquilibriumRatios returns the pseudo K-value per component at T, walking
// the ordered component list.
func (c *Column) EquilibriumRatios(T float64) map[string]float64 {
	pressures := c.VLE.PressuresAt(T)
	ratios := make(map[string]float64, len(c.Components))
	for _, comp := range c.Components {
		ratios[comp.Name] = pressures[comp.Name] / thermo.ReferencePressure
	}
	return ratios
}

// CostFunction is the synthetic reflux cost: sum of reflux*s over stages
// 1..N, i.e. reflux * N(N+1)/2. Strictly increasing in reflux, so the
// bounded minimizer always lands on the lower bound.
func (c *Column) CostFunction(refluxRatio float64) float64 {
	total := 0.0
	for stage := 1; stage <= c.NumStages; stage++ {
		total += refluxRatio * float64(stage)
	}
	return total
}

// OptimizedReflux minimizes the cost function over [1, 10] starting from
// guess and returns the argmin without touching stored state.
func (c *Column) OptimizedReflux(guess float64) float64 {
	return optim.Minimize(c.CostFunction, guess, RefluxLower, RefluxUpper, optim.DefaultTolerance)
}

// OptimizeReflux minimizes the cost function and stores the result as the
// column's reflux ratio.
func (c *Column) OptimizeReflux() float64 {
	c.RefluxRatio = c.OptimizedReflux(c.RefluxRatio)
	return c.RefluxRatio
}

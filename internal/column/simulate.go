package column

import (
	"context"
	"sync"

	"github.com/san-kum/distsim/internal/thermo"
)

// StagePressure is the constant stage pressure in kPa.
const StagePressure = thermo.ReferencePressure

// StageTemperature returns the linear stage-index temperature rule,
// 300 + 10*s K.
func StageTemperature(stage int) float64 {
	return thermo.ReferenceTemperature + 10*float64(stage)
}

func (c *Column) computeStage(number int, refluxRatio float64) Stage {
	T := StageTemperature(number)
	ratios := c.EquilibriumRatios(T)

	compositions := make(map[string]Composition, len(c.Components))
	for _, comp := range c.Components {
		vapor := ratios[comp.Name] * c.Feed[comp.Name] * refluxRatio
		compositions[comp.Name] = Composition{
			Vapor:  vapor,
			Liquid: c.Feed[comp.Name] - vapor,
		}
	}

	return Stage{
		Number:       number,
		Feed:         c.Feed,
		Reflux:       refluxRatio,
		Temperature:  T,
		Pressure:     StagePressure,
		Compositions: compositions,
	}
}

// SimulateStage computes stage number at the given reflux ratio, appends the
// record and accumulates its energy balance into the column total.
func (c *Column) SimulateStage(number int, refluxRatio float64) Stage {
	stage := c.computeStage(number, refluxRatio)
	c.TotalDuty += c.EnergyBalance(stage)
	c.Stages = append(c.Stages, stage)
	return stage
}

// EnergyBalance is the per-stage heat-capacity-weighted scalar:
// sum over components of vapor*cpV*T - liquid*cpL*T. Not a true enthalpy
// balance.
func (c *Column) EnergyBalance(stage Stage) float64 {
	Q := 0.0
	for _, comp := range c.Components {
		split := stage.Compositions[comp.Name]
		Q += split.Vapor * comp.SpecificHeatVapor * stage.Temperature
		Q -= split.Liquid * comp.SpecificHeatLiquid * stage.Temperature
	}
	return Q
}

// MassBalance returns the total vapor and liquid flows of a stage, summed
// over the ordered component list.
func (c *Column) MassBalance(stage Stage) (totalVapor, totalLiquid float64) {
	for _, comp := range c.Components {
		split := stage.Compositions[comp.Name]
		totalVapor += split.Vapor
		totalLiquid += split.Liquid
	}
	return totalVapor, totalLiquid
}

// Simulate optimizes the reflux ratio and walks stages 1..N in order,
// replacing any previous stage records. It returns the optimized reflux.
func (c *Column) Simulate(ctx context.Context) (float64, error) {
	refluxRatio := c.OptimizeReflux()

	c.Stages = c.Stages[:0]
	c.TotalDuty = 0

	for stage := 1; stage <= c.NumStages; stage++ {
		select {
		case <-ctx.Done():
			return refluxRatio, ctx.Err()
		default:
		}
		c.SimulateStage(stage, refluxRatio)
	}

	return refluxRatio, nil
}

// SimulateParallel computes the independent stages concurrently, then
// appends them in stage order so records and the duty reduction order match
// the sequential path exactly. workers below 1 falls back to 1.
func (c *Column) SimulateParallel(ctx context.Context, workers int) (float64, error) {
	if workers < 1 {
		workers = 1
	}
	refluxRatio := c.OptimizeReflux()

	stages := make([]Stage, c.NumStages)
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for number := range jobs {
				stages[number-1] = c.computeStage(number, refluxRatio)
			}
		}()
	}

	var canceled error
	for number := 1; number <= c.NumStages; number++ {
		select {
		case <-ctx.Done():
			canceled = ctx.Err()
		case jobs <- number:
			continue
		}
		break
	}
	close(jobs)
	wg.Wait()

	if canceled != nil {
		return refluxRatio, canceled
	}

	c.Stages = c.Stages[:0]
	c.TotalDuty = 0
	for _, stage := range stages {
		c.TotalDuty += c.EnergyBalance(stage)
		c.Stages = append(c.Stages, stage)
	}

	return refluxRatio, nil
}

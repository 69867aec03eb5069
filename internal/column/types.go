package column

// Feed maps component names to non-negative mole fractions or flows.
// Nothing enforces that fractions sum to 1.
type Feed map[string]float64

// Clone returns an independent copy of the feed.
func (f Feed) Clone() Feed {
	c := make(Feed, len(f))
	for name, val := range f {
		c[name] = val
	}
	return c
}

// Composition is the vapor/liquid split of one component on one stage.
// Liquid is the residual feed - vapor, so the pair always reconciles with the
// feed amount; vapor exceeding the feed leaves a negative liquid, which is
// kept as-is.
type Composition struct {
	Vapor  float64
	Liquid float64
}

// Stage is the immutable per-tray snapshot appended during simulation.
type Stage struct {
	Number       int
	Feed         Feed
	Reflux       float64
	Distillate   float64
	Bottoms      float64
	Temperature  float64
	Pressure     float64
	Compositions map[string]Composition
}

package simulation

import (
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/engine"
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/params"
)

// Scenario defines one model experiment.
type Scenario struct {
	Name string

	// Overrides is applied over schema defaults, keyed by parameter id
	// (global ids or tier_<tierId>_<field>).
	Overrides map[string]float64

	// Solver, when non-nil, replaces the default fixed-point constants.
	Solver *engine.SolverConfig
}

// Values builds the flat parameter map for the scenario.
func (s Scenario) Values() params.Values {
	v := params.Defaults()
	for id, val := range s.Overrides {
		v[id] = val
	}
	return v
}

// AllTiers applies the same override value to one field of every tier,
// e.g. AllTiers("maxSigma", 0) for a world where AI never substitutes.
func AllTiers(field string, value float64) map[string]float64 {
	m := make(map[string]float64, params.NumTiers)
	for _, id := range params.TierIDs {
		m[params.TierKey(id, field)] = value
	}
	return m
}

// Merge combines override maps; later maps win on key collisions.
func Merge(maps ...map[string]float64) map[string]float64 {
	out := make(map[string]float64)
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

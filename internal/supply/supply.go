// Package supply projects compute capacity and compute unit cost.
//
// Each series compounds a rate that itself decays year over year, and every
// call re-derives the full product from the base year. There is no cached
// running state, so results for any year are reproducible regardless of
// evaluation order. With decay 0 the products reduce to plain constant-rate
// compounding.
package supply

import (
	"math"

	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/params"
)

// Snapshot holds the supply-side figures for one year.
type Snapshot struct {
	Year int

	// RawCapacity is installed compute in FLOP/s.
	RawCapacity float64

	// EfficiencyMultiplier is the cumulative algorithmic-efficiency gain
	// since the base year (>= 1).
	EfficiencyMultiplier float64

	// EffectiveCapacity is RawCapacity * EfficiencyMultiplier, FLOP/s of
	// base-year-equivalent compute.
	EffectiveCapacity float64

	// UnitCost is the production cost of one FLOP, $/FLOP.
	UnitCost float64
}

// Project computes the supply snapshot for a calendar year.
func Project(cfg params.ModelConfig, year int) Snapshot {
	n := year - params.BaseYear

	raw := cfg.ComputeBase * math.Pow(10, cfg.ComputeExponent)
	for y := 0; y < n; y++ {
		raw *= 1 + cfg.ComputeGrowthRate*math.Pow(1-cfg.ComputeGrowthDecay, float64(y))
	}

	eff := 1.0
	factor := 1 + cfg.EfficiencyImprovement
	for y := 0; y < n; y++ {
		eff *= math.Pow(factor, math.Pow(1-cfg.EfficiencyDecay, float64(y)))
	}

	cost := cfg.ComputeCostBase * math.Pow(10, cfg.ComputeCostExponent)
	for y := 0; y < n; y++ {
		cost *= 1 - cfg.CostDeclineRate*math.Pow(1-cfg.CostDeclineDecay, float64(y))
	}

	return Snapshot{
		Year:                 year,
		RawCapacity:          raw,
		EfficiencyMultiplier: eff,
		EffectiveCapacity:    raw * eff,
		UnitCost:             cost,
	}
}

// Package demand models cognitive-work-hour demand growth. Three
// multiplicative components act on the base-year demand pool: baseline
// GDP/population growth, a σ-gated Jevons effect from falling AI costs,
// and new-task creation as AI substitutability rises.
package demand

import (
	"math"

	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/curve"
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/params"
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/supply"
)

// minCostReductionFactor floors the relative-cost ratio inside the Jevons
// log term so a collapse to (near) free compute cannot blow up demand.
const minCostReductionFactor = 0.01

// Breakdown holds one year's demand figures and growth components.
type Breakdown struct {
	Year int

	// Baseline is the compounded GDP/population growth multiplier.
	Baseline float64

	// AIInduced is the share-weighted average of the per-tier Jevons
	// multipliers (each tier's own multiplier gates on its own σ).
	AIInduced float64

	// NewTasks is the new-task-creation multiplier.
	NewTasks float64

	// TierHours is demanded work per tier, in hours.
	TierHours [params.NumTiers]float64

	// TotalHours is the sum over TierHours.
	TotalHours float64
}

// Project computes the demand breakdown for a year. The supply snapshots
// provide the compounded cost decline and efficiency gain that drive the
// Jevons component.
func Project(cfg params.ModelConfig, year int, base, now supply.Snapshot) Breakdown {
	n := float64(year - params.BaseYear)

	b := Breakdown{Year: year}
	b.Baseline = math.Pow(1+cfg.DemandGrowthRate, n)

	// Relative cost of an effective unit of compute vs the base year.
	relCost := 1.0
	if base.UnitCost > 0 && now.EfficiencyMultiplier > 0 {
		relCost = (now.UnitCost / base.UnitCost) / now.EfficiencyMultiplier
	}
	costReductionFactor := math.Max(minCostReductionFactor, relCost)

	b.NewTasks = 1 + cfg.NewTaskCreationRate*(curve.Average(cfg, float64(year))-curve.Average(cfg, params.BaseYear))

	y := float64(year)
	for i, tier := range cfg.Tiers {
		// Each tier's demand inflation gates on its own σ: tiers AI
		// cannot yet touch see no Jevons effect.
		induced := 1 + cfg.DemandElasticity*curve.Sigma(tier, y)*math.Log10(1/costReductionFactor)
		if induced < 1 {
			induced = 1
		}
		b.AIInduced += tier.Share * induced

		hours := cfg.BaseDemandHours * tier.Share * b.Baseline * induced * b.NewTasks
		b.TierHours[i] = hours
		b.TotalHours += hours
	}

	return b
}

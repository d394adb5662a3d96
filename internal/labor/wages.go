package labor

import (
	"math"

	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/params"
)

// Tightness is labor demand over effective labor supply for a tier. The
// denominator is guarded so zero supply yields a large but finite ratio.
func Tightness(demandHours, supplyHours float64) float64 {
	return demandHours / math.Max(supplyHours, 1)
}

// EquilibriumWage maps a tier's tightness to its market wage. Shortages
// (tightness >= 1) push wages up along a power curve; surpluses adjust
// downward only halfway, wages being sticky in that direction. The result
// is clamped to [wage floor, task value].
func EquilibriumWage(tier params.TierConfig, tightness float64) (wage float64, atCeiling bool) {
	if tightness >= 1 {
		wage = tier.WageFloor * math.Pow(tightness, tier.WageElasticity)
	} else {
		wage = tier.WageFloor * (0.5 + 0.5*tightness)
	}
	if wage < tier.WageFloor {
		wage = tier.WageFloor
	}
	if wage >= tier.TaskValue {
		return tier.TaskValue, true
	}
	return wage, false
}

package engine

import (
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/auction"
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/params"
)

// TierAllocation is the per-tier result for one projected year.
type TierAllocation struct {
	Tier  params.TierID `json:"tier"`
	Sigma float64       `json:"sigma"`

	DemandHours float64 `json:"demandHours"`
	HoursAI     float64 `json:"hoursAI"`
	HoursHuman  float64 `json:"hoursHuman"`
	HoursUnmet  float64 `json:"hoursUnmet"`

	// AIShare and HumanShare are relative to hours actually done
	// (unmet excluded); they sum to 1 whenever any work happens.
	AIShare    float64 `json:"aiShare"`
	HumanShare float64 `json:"humanShare"`

	AIMarketCostPerHour     float64 `json:"aiMarketCostPerHour"`
	AIProductionCostPerHour float64 `json:"aiProductionCostPerHour"`

	Wage          float64 `json:"wage"`
	Tightness     float64 `json:"tightness"`
	WageAtCeiling bool    `json:"wageAtCeiling"`

	Binding auction.Constraint `json:"bindingConstraint"`
}

// YearlyProjection is one year's full snapshot.
type YearlyProjection struct {
	Year int `json:"year"`

	// Supply side.
	RawComputeFlops       float64 `json:"rawComputeFlops"`       // FLOP/s
	EffectiveComputeFlops float64 `json:"effectiveComputeFlops"` // FLOP/s
	EfficiencyMultiplier  float64 `json:"efficiencyMultiplier"`
	ComputeUnitCost       float64 `json:"computeUnitCost"` // $/FLOP

	// Demand side with its three growth components.
	TotalDemandHours float64 `json:"totalDemandHours"`
	BaselineGrowth   float64 `json:"baselineGrowth"`
	AIInducedGrowth  float64 `json:"aiInducedGrowth"`
	NewTaskGrowth    float64 `json:"newTaskGrowth"`

	// Market clearing.
	MarketPricePerFLOP    float64 `json:"marketPricePerFlop"`
	ProductionCostPerFLOP float64 `json:"productionCostPerFlop"`
	ScarcityPremium       float64 `json:"scarcityPremium"`
	ComputeSlackFraction  float64 `json:"computeSlackFraction"`

	// Aggregates.
	TotalHoursAI    float64 `json:"totalHoursAI"`
	TotalHoursHuman float64 `json:"totalHoursHuman"`
	TotalHoursUnmet float64 `json:"totalHoursUnmet"`
	AIShare         float64 `json:"aiShare"`
	HumanShare      float64 `json:"humanShare"`

	Tiers [params.NumTiers]TierAllocation `json:"tiers"`

	// PrimaryConstraint is the binding constraint covering the largest
	// slice of demanded work this year.
	PrimaryConstraint auction.Constraint `json:"primaryConstraint"`

	SolverIterations int  `json:"solverIterations"`
	SolverConverged  bool `json:"solverConverged"`
}

// Outputs is the full projection: yearly snapshots in ascending year order
// plus summary statistics.
type Outputs struct {
	Years []YearlyProjection `json:"years"`

	// CrossoverYear is the first year the demand-weighted AI production
	// cost per hour falls below the demand-weighted equilibrium wage.
	// Zero when it never happens inside the horizon.
	CrossoverYear int `json:"crossoverYear"`

	// ComputeSufficiencyYear is the first year more than 10% of auctioned
	// compute goes unused. Zero when compute stays binding throughout.
	ComputeSufficiencyYear int `json:"computeSufficiencyYear"`

	FinalAIShare    float64 `json:"finalAIShare"`
	FinalHumanShare float64 `json:"finalHumanShare"`
	FinalUnmetHours float64 `json:"finalUnmetHours"`
}

// Final returns the last projected year.
func (o *Outputs) Final() YearlyProjection {
	return o.Years[len(o.Years)-1]
}

// ForYear returns the projection for a calendar year, or false when the
// year is outside the horizon.
func (o *Outputs) ForYear(year int) (YearlyProjection, bool) {
	i := year - params.BaseYear
	if i < 0 || i >= len(o.Years) {
		return YearlyProjection{}, false
	}
	return o.Years[i], true
}

package params

import (
	"fmt"
	"math"
)

// TierConfig is the typed per-tier configuration the engine consumes.
type TierConfig struct {
	ID    TierID
	Label string

	FlopsPerHour float64 // 10^flopsExponent, FLOPs per work-hour
	Share        float64 // normalized share of total cognitive work

	InitialSigma   float64
	MaxSigma       float64
	SigmaMidpoint  float64
	SigmaSteepness float64
	DeploymentLag  float64

	HumanCapable float64

	WageFloor      float64 // humanWageFloor * wageMultiplier, $/hr
	TaskValue      float64 // wage ceiling, $/hr
	WageElasticity float64
}

// ModelConfig is the typed configuration aggregate built once from a flat
// Values map at the boundary. All engine packages take this, never the map.
type ModelConfig struct {
	TargetYear int

	BaseDemandHours float64
	WorkforceHours  float64

	DemandGrowthRate    float64
	DemandElasticity    float64
	NewTaskCreationRate float64

	ComputeBase        float64 // mantissa of base capacity, FLOP/s
	ComputeExponent    float64 // power of 10 of base capacity
	ComputeGrowthRate  float64
	ComputeGrowthDecay float64

	EfficiencyImprovement float64
	EfficiencyDecay       float64

	ComputeCostBase     float64 // mantissa of base unit cost, $/FLOP
	ComputeCostExponent float64
	CostDeclineRate     float64
	CostDeclineDecay    float64

	HumanWageFloor float64

	Tiers [NumTiers]TierConfig
}

// ConfigFromValues builds the typed configuration from a flat value map,
// applying tier-default fallbacks and renormalizing tier shares to sum
// to 1. Out-of-range values are the caller's problem (Values.Clamp); the
// engine does not re-validate.
func ConfigFromValues(v Values) ModelConfig {
	cfg := ModelConfig{
		TargetYear:            int(v.Get(ParamYear)),
		BaseDemandHours:       v.Get(ParamBaseDemandHours),
		WorkforceHours:        v.Get(ParamWorkforceHours),
		DemandGrowthRate:      v.Get(ParamDemandGrowthRate),
		DemandElasticity:      v.Get(ParamDemandElasticity),
		NewTaskCreationRate:   v.Get(ParamNewTaskCreation),
		ComputeBase:           v.Get(ParamComputeBase),
		ComputeExponent:       v.Get(ParamComputeExponent),
		ComputeGrowthRate:     v.Get(ParamComputeGrowthRate),
		ComputeGrowthDecay:    v.Get(ParamComputeGrowthDec),
		EfficiencyImprovement: v.Get(ParamEfficiencyImprove),
		EfficiencyDecay:       v.Get(ParamEfficiencyDecay),
		ComputeCostBase:       v.Get(ParamComputeCostBase),
		ComputeCostExponent:   v.Get(ParamComputeCostExp),
		CostDeclineRate:       v.Get(ParamCostDeclineRate),
		CostDeclineDecay:      v.Get(ParamCostDeclineDecay),
		HumanWageFloor:        v.Get(ParamHumanWageFloor),
	}

	shareSum := 0.0
	for i, td := range TierDefs {
		tc := TierConfig{
			ID:             td.ID,
			Label:          td.Label,
			FlopsPerHour:   math.Pow(10, v.GetTier(td.ID, FieldFlops)),
			Share:          v.GetTier(td.ID, FieldShare),
			InitialSigma:   v.GetTier(td.ID, FieldInitialSigma),
			MaxSigma:       v.GetTier(td.ID, FieldMaxSigma),
			SigmaMidpoint:  v.GetTier(td.ID, FieldSigmaMidpoint),
			SigmaSteepness: v.GetTier(td.ID, FieldSigmaSteepness),
			DeploymentLag:  v.GetTier(td.ID, FieldDeploymentLag),
			HumanCapable:   v.GetTier(td.ID, FieldHumanCapable),
			WageFloor:      cfg.HumanWageFloor * v.GetTier(td.ID, FieldWageMultiplier),
			TaskValue:      v.GetTier(td.ID, FieldTaskValue),
			WageElasticity: v.GetTier(td.ID, FieldWageElasticity),
		}
		shareSum += tc.Share
		cfg.Tiers[i] = tc
	}

	// Renormalize shares so they always sum to 1.
	if shareSum > 0 {
		for i := range cfg.Tiers {
			cfg.Tiers[i].Share /= shareSum
		}
	}

	return cfg
}

// Validate reports configuration problems that the engine itself tolerates
// silently: a non-monotonic humanCapable sequence across tiers produces
// negative or zero-width skill bands downstream. Only interactive
// boundaries (CLI, MCP) call this; the engine never does.
func (c ModelConfig) Validate() error {
	for i := 1; i < NumTiers; i++ {
		if c.Tiers[i].HumanCapable > c.Tiers[i-1].HumanCapable {
			return fmt.Errorf("humanCapable must be non-increasing with difficulty: %s (%.3f) > %s (%.3f)",
				c.Tiers[i].ID, c.Tiers[i].HumanCapable, c.Tiers[i-1].ID, c.Tiers[i-1].HumanCapable)
		}
	}
	if c.TargetYear < BaseYear {
		return fmt.Errorf("target year %d precedes base year %d", c.TargetYear, BaseYear)
	}
	return nil
}

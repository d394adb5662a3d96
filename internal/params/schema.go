// Package params defines the parameter schema for the projection engine:
// global parameter definitions, the five fixed task tiers, the flat
// string-keyed value map used at the serialization boundary, and the typed
// ModelConfig the engine actually consumes.
package params

// ParameterDef describes one tunable global parameter.
type ParameterDef struct {
	ID      string
	Label   string
	Unit    string
	Group   string
	Min     float64
	Max     float64
	Default float64
}

// Global parameter ids.
const (
	ParamYear              = "year"
	ParamBaseDemandHours   = "baseDemandHours"
	ParamWorkforceHours    = "workforceHours"
	ParamDemandGrowthRate  = "demandGrowthRate"
	ParamDemandElasticity  = "demandElasticity"
	ParamNewTaskCreation   = "newTaskCreationRate"
	ParamComputeBase       = "computeBase"
	ParamComputeExponent   = "computeExponent"
	ParamComputeGrowthRate = "computeGrowthRate"
	ParamComputeGrowthDec  = "computeGrowthDecay"
	ParamEfficiencyImprove = "efficiencyImprovement"
	ParamEfficiencyDecay   = "efficiencyDecay"
	ParamComputeCostBase   = "computeCostBase"
	ParamComputeCostExp    = "computeCostExponent"
	ParamCostDeclineRate   = "costDeclineRate"
	ParamCostDeclineDecay  = "costDeclineDecay"
	ParamHumanWageFloor    = "humanWageFloor"
)

// GlobalDefs lists every global parameter in display order.
var GlobalDefs = []ParameterDef{
	{ID: ParamYear, Label: "Target year", Unit: "year", Group: "scenario", Min: 2025, Max: 2050, Default: 2040},
	{ID: ParamBaseDemandHours, Label: "Base-year cognitive work demand", Unit: "hours/yr", Group: "demand", Min: 1e11, Max: 1e13, Default: 2.4e12},
	{ID: ParamWorkforceHours, Label: "Human workforce capacity", Unit: "hours/yr", Group: "labor", Min: 1e11, Max: 1e13, Default: 2.4e12},
	{ID: ParamDemandGrowthRate, Label: "Baseline demand growth", Unit: "frac/yr", Group: "demand", Min: 0, Max: 0.1, Default: 0.03},
	{ID: ParamDemandElasticity, Label: "Demand elasticity to AI cost declines", Unit: "", Group: "demand", Min: 0, Max: 2, Default: 0.4},
	{ID: ParamNewTaskCreation, Label: "New-task creation rate", Unit: "", Group: "demand", Min: 0, Max: 2, Default: 0.3},
	{ID: ParamComputeBase, Label: "Base compute capacity (mantissa)", Unit: "", Group: "supply", Min: 1, Max: 10, Default: 5},
	{ID: ParamComputeExponent, Label: "Base compute capacity (exponent)", Unit: "log10 FLOP/s", Group: "supply", Min: 18, Max: 24, Default: 21},
	{ID: ParamComputeGrowthRate, Label: "Compute growth rate", Unit: "frac/yr", Group: "supply", Min: 0, Max: 2, Default: 0.8},
	{ID: ParamComputeGrowthDec, Label: "Compute growth decay", Unit: "frac/yr", Group: "supply", Min: 0, Max: 0.5, Default: 0},
	{ID: ParamEfficiencyImprove, Label: "Algorithmic efficiency improvement", Unit: "frac/yr", Group: "supply", Min: 0, Max: 2, Default: 0.5},
	{ID: ParamEfficiencyDecay, Label: "Efficiency improvement decay", Unit: "frac/yr", Group: "supply", Min: 0, Max: 0.5, Default: 0},
	{ID: ParamComputeCostBase, Label: "Base compute cost (mantissa)", Unit: "", Group: "supply", Min: 0.1, Max: 10, Default: 1},
	{ID: ParamComputeCostExp, Label: "Base compute cost (exponent)", Unit: "log10 $/FLOP", Group: "supply", Min: -21, Max: -15, Default: -18},
	{ID: ParamCostDeclineRate, Label: "Compute cost decline", Unit: "frac/yr", Group: "supply", Min: 0, Max: 0.9, Default: 0.3},
	{ID: ParamCostDeclineDecay, Label: "Cost decline decay", Unit: "frac/yr", Group: "supply", Min: 0, Max: 0.5, Default: 0},
	{ID: ParamHumanWageFloor, Label: "Human wage floor", Unit: "$/hr", Group: "labor", Min: 1, Max: 100, Default: 15},
}

// AllDefs returns every parameter definition: globals first, then the
// synthesized tier_<tierId>_<field> entries in tier order. The returned
// slice is freshly built on each call.
func AllDefs() []ParameterDef {
	defs := make([]ParameterDef, 0, len(GlobalDefs)+NumTiers*len(TierFields))
	defs = append(defs, GlobalDefs...)
	for _, td := range TierDefs {
		for _, field := range TierFields {
			min, max := tierFieldRange(field)
			defs = append(defs, ParameterDef{
				ID:      TierKey(td.ID, field),
				Label:   td.Label + " " + field,
				Group:   "tier:" + string(td.ID),
				Min:     min,
				Max:     max,
				Default: tierDefault(td, field),
			})
		}
	}
	return defs
}

// Lookup returns the definition for a parameter id, or false if the id is
// not part of the schema.
func Lookup(id string) (ParameterDef, bool) {
	for _, d := range AllDefs() {
		if d.ID == id {
			return d, true
		}
	}
	return ParameterDef{}, false
}

// Defaults returns a fresh flat value map seeded with every parameter's
// schema default.
func Defaults() Values {
	v := make(Values, len(GlobalDefs)+NumTiers*len(TierFields))
	for _, d := range AllDefs() {
		v[d.ID] = d.Default
	}
	return v
}

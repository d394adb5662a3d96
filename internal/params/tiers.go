package params

// TierID identifies one of the five fixed task tiers, ordered from the
// easiest cognitive work to the hardest.
type TierID string

const (
	TierRoutine  TierID = "routine"
	TierStandard TierID = "standard"
	TierComplex  TierID = "complex"
	TierExpert   TierID = "expert"
	TierFrontier TierID = "frontier"
)

// NumTiers is the fixed tier count. The engine never handles a variable
// number of tiers; arrays of this size are indexed by tier order.
const NumTiers = 5

// TierIDs lists the tiers in difficulty order, easiest first.
var TierIDs = [NumTiers]TierID{TierRoutine, TierStandard, TierComplex, TierExpert, TierFrontier}

// Tier field names used to synthesize flat parameter keys
// (tier_<tierId>_<field>).
const (
	FieldFlops          = "flops"
	FieldShare          = "share"
	FieldInitialSigma   = "initialSigma"
	FieldMaxSigma       = "maxSigma"
	FieldSigmaMidpoint  = "sigmaMidpoint"
	FieldSigmaSteepness = "sigmaSteepness"
	FieldDeploymentLag  = "deploymentLag"
	FieldHumanCapable   = "humanCapable"
	FieldWageMultiplier = "wageMultiplier"
	FieldTaskValue      = "taskValue"
	FieldWageElasticity = "wageElasticity"
)

// TierFields lists every per-tier field in schema order.
var TierFields = []string{
	FieldFlops,
	FieldShare,
	FieldInitialSigma,
	FieldMaxSigma,
	FieldSigmaMidpoint,
	FieldSigmaSteepness,
	FieldDeploymentLag,
	FieldHumanCapable,
	FieldWageMultiplier,
	FieldTaskValue,
	FieldWageElasticity,
}

// TierDef holds the static definition and default values for one tier.
type TierDef struct {
	ID    TierID
	Label string

	// FlopsExponent is the compute requirement as a power of 10, in
	// FLOPs per work-hour.
	FlopsExponent float64

	// Share is the tier's default share of total cognitive work.
	Share float64

	// Substitutability curve defaults.
	InitialSigma   float64
	MaxSigma       float64
	SigmaMidpoint  float64 // calendar year at which the curve is halfway
	SigmaSteepness float64
	DeploymentLag  float64 // years between capability and deployment

	// HumanCapable is the cumulative fraction of the workforce able to
	// perform this tier or any easier one. Must be non-increasing with
	// difficulty; the engine does not validate this (see Config.Validate).
	HumanCapable float64

	// Wage parameters: the tier's wage floor is the global humanWageFloor
	// times WageMultiplier, and TaskValue is the wage ceiling in $/hr.
	WageMultiplier float64
	TaskValue      float64
	WageElasticity float64
}

// TierDefs holds the default definition for each tier, in difficulty order.
var TierDefs = [NumTiers]TierDef{
	{
		ID: TierRoutine, Label: "Routine",
		FlopsExponent: 12, Share: 0.35,
		InitialSigma: 0.30, MaxSigma: 0.95, SigmaMidpoint: 2027, SigmaSteepness: 0.50, DeploymentLag: 1.0,
		HumanCapable: 1.00, WageMultiplier: 1.0, TaskValue: 25, WageElasticity: 0.30,
	},
	{
		ID: TierStandard, Label: "Standard",
		FlopsExponent: 13, Share: 0.30,
		InitialSigma: 0.15, MaxSigma: 0.90, SigmaMidpoint: 2029, SigmaSteepness: 0.45, DeploymentLag: 1.5,
		HumanCapable: 0.85, WageMultiplier: 1.4, TaskValue: 45, WageElasticity: 0.35,
	},
	{
		ID: TierComplex, Label: "Complex",
		FlopsExponent: 14, Share: 0.20,
		InitialSigma: 0.05, MaxSigma: 0.80, SigmaMidpoint: 2031, SigmaSteepness: 0.40, DeploymentLag: 2.0,
		HumanCapable: 0.55, WageMultiplier: 2.2, TaskValue: 90, WageElasticity: 0.40,
	},
	{
		ID: TierExpert, Label: "Expert",
		FlopsExponent: 15, Share: 0.10,
		InitialSigma: 0.02, MaxSigma: 0.65, SigmaMidpoint: 2034, SigmaSteepness: 0.35, DeploymentLag: 3.0,
		HumanCapable: 0.25, WageMultiplier: 4.0, TaskValue: 180, WageElasticity: 0.50,
	},
	{
		ID: TierFrontier, Label: "Frontier",
		FlopsExponent: 16, Share: 0.05,
		InitialSigma: 0.00, MaxSigma: 0.45, SigmaMidpoint: 2038, SigmaSteepness: 0.30, DeploymentLag: 4.0,
		HumanCapable: 0.05, WageMultiplier: 8.0, TaskValue: 400, WageElasticity: 0.60,
	},
}

// TierKey builds the flat-map key for a per-tier parameter,
// e.g. TierKey("routine", "maxSigma") -> "tier_routine_maxSigma".
func TierKey(id TierID, field string) string {
	return "tier_" + string(id) + "_" + field
}

// tierDefault returns the default value of a tier field from its TierDef.
func tierDefault(def TierDef, field string) float64 {
	switch field {
	case FieldFlops:
		return def.FlopsExponent
	case FieldShare:
		return def.Share
	case FieldInitialSigma:
		return def.InitialSigma
	case FieldMaxSigma:
		return def.MaxSigma
	case FieldSigmaMidpoint:
		return def.SigmaMidpoint
	case FieldSigmaSteepness:
		return def.SigmaSteepness
	case FieldDeploymentLag:
		return def.DeploymentLag
	case FieldHumanCapable:
		return def.HumanCapable
	case FieldWageMultiplier:
		return def.WageMultiplier
	case FieldTaskValue:
		return def.TaskValue
	case FieldWageElasticity:
		return def.WageElasticity
	}
	return 0
}

// tierFieldRange returns the clamping range for a tier field. Ranges are
// deliberately loose; they bound the UI sliders, not the math.
func tierFieldRange(field string) (min, max float64) {
	switch field {
	case FieldFlops:
		return 9, 20
	case FieldShare:
		return 0, 1
	case FieldInitialSigma, FieldMaxSigma, FieldHumanCapable:
		return 0, 1
	case FieldSigmaMidpoint:
		return 2024, 2060
	case FieldSigmaSteepness:
		return 0.05, 2
	case FieldDeploymentLag:
		return 0, 10
	case FieldWageMultiplier:
		return 0.5, 20
	case FieldTaskValue:
		return 1, 2000
	case FieldWageElasticity:
		return 0, 2
	}
	return 0, 0
}

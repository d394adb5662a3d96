// Package auction clears the scarce-compute market for one year. Tiers bid
// for compute at reservation prices derived from the wages they displace;
// compute is granted greedily in price order, the marginal served tier sets
// a uniform clearing price, and residual demand falls to human labor via
// the skill-band allocator.
package auction

import (
	"math"
	"sort"

	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/labor"
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/params"
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/supply"
)

// Non-tunable market constants. These are deliberately not part of the
// parameter schema.
const (
	// SecondsPerYear converts FLOP/s capacity into FLOPs per year.
	SecondsPerYear = 31_536_000

	// AIUtilization is the fraction of installed compute available for
	// cognitive work (the rest covers training, overhead, and downtime).
	AIUtilization = 0.5

	// trivialAllocationFraction: a tier receiving less than this fraction
	// of its requested compute is treated as effectively unserved.
	trivialAllocationFraction = 0.01

	// slackFraction: when more than this fraction of auctioned compute
	// goes unused, scarcity pricing collapses to production cost.
	slackFraction = 0.10
)

// Constraint tags the single factor limiting a tier's AI adoption.
type Constraint string

const (
	ConstraintCost             Constraint = "cost"
	ConstraintCompute          Constraint = "compute"
	ConstraintSubstitutability Constraint = "substitutability"
	ConstraintHumanCapacity    Constraint = "humanCapacity"
)

// TierResult is one tier's cleared position.
type TierResult struct {
	Sigma           float64
	DemandHours     float64
	MaxAIHours      float64 // demand * σ, the substitutability cap
	EffFlopsPerHour float64 // raw FLOPs/hr divided by the efficiency multiplier

	ProductionCostPerHour float64 // unit cost * effective FLOPs/hr
	MarketCostPerHour     float64 // clearing price * effective FLOPs/hr
	ReservationPerFLOP    float64 // min(wage, task value) / effective FLOPs/hr

	HoursAI    float64
	HoursHuman float64
	HoursUnmet float64

	Binding Constraint
}

// Result is the cleared market for one year.
type Result struct {
	Tiers [params.NumTiers]TierResult

	// MarketPricePerFLOP is the uniform price set by the clearing tier,
	// never below ProductionCostPerFLOP.
	MarketPricePerFLOP    float64
	ProductionCostPerFLOP float64
	ScarcityPremium       float64 // market / production, >= 1

	AvailableFlops float64
	UsedFlops      float64

	Labor labor.Allocation
}

// Clear runs the compute auction and the human allocation for one year.
// sigmas and wages are indexed in tier order; demandHours is the per-tier
// demand the market must serve.
func Clear(cfg params.ModelConfig, snap supply.Snapshot, demandHours, sigmas, wages [params.NumTiers]float64) Result {
	res := Result{
		ProductionCostPerFLOP: snap.UnitCost,
		AvailableFlops:        snap.RawCapacity * SecondsPerYear * AIUtilization,
	}

	for i, tier := range cfg.Tiers {
		tr := &res.Tiers[i]
		tr.Sigma = sigmas[i]
		tr.DemandHours = demandHours[i]
		tr.MaxAIHours = demandHours[i] * sigmas[i]
		tr.EffFlopsPerHour = tier.FlopsPerHour / math.Max(snap.EfficiencyMultiplier, 1e-12)
		tr.ProductionCostPerHour = snap.UnitCost * tr.EffFlopsPerHour
		tr.ReservationPerFLOP = math.Min(wages[i], tier.TaskValue) / tr.EffFlopsPerHour
	}

	// Auction: serve tiers in descending reservation-price order. Tiers
	// whose willingness to pay does not even cover production cost do not
	// bid at all.
	order := make([]int, 0, params.NumTiers)
	for i := range res.Tiers {
		if res.Tiers[i].ReservationPerFLOP >= snap.UnitCost && res.Tiers[i].MaxAIHours > 0 {
			order = append(order, i)
		}
	}
	sort.Slice(order, func(a, b int) bool {
		return res.Tiers[order[a]].ReservationPerFLOP > res.Tiers[order[b]].ReservationPerFLOP
	})

	available := res.AvailableFlops
	clearing := -1
	for _, i := range order {
		tr := &res.Tiers[i]
		want := tr.MaxAIHours * tr.EffFlopsPerHour
		granted := math.Min(want, available)
		available -= granted
		tr.HoursAI = granted / tr.EffFlopsPerHour
		if want > 0 && granted > trivialAllocationFraction*want {
			clearing = i
		}
		if available <= 0 {
			break
		}
	}
	res.UsedFlops = res.AvailableFlops - available

	// The clearing tier's reservation price is the uniform market price;
	// with enough slack left over there is no scarcity and price falls
	// back to production cost.
	res.MarketPricePerFLOP = snap.UnitCost
	if clearing >= 0 && available < slackFraction*res.AvailableFlops {
		res.MarketPricePerFLOP = math.Max(res.Tiers[clearing].ReservationPerFLOP, snap.UnitCost)
	}
	if snap.UnitCost > 0 {
		res.ScarcityPremium = res.MarketPricePerFLOP / snap.UnitCost
	} else {
		res.ScarcityPremium = 1
	}

	for i := range res.Tiers {
		res.Tiers[i].MarketCostPerHour = res.MarketPricePerFLOP * res.Tiers[i].EffFlopsPerHour
	}

	// Residual demand falls to the skill-band allocator.
	var need [params.NumTiers]float64
	for i := range res.Tiers {
		need[i] = math.Max(0, res.Tiers[i].DemandHours-res.Tiers[i].HoursAI)
	}
	res.Labor = labor.Allocate(cfg, labor.BuildBands(cfg), need, wages)

	for i := range res.Tiers {
		res.Tiers[i].HoursHuman = res.Labor.TierHours[i]
		res.Tiers[i].HoursUnmet = res.Labor.Unfilled[i]
	}

	classify(cfg, &res, wages)
	return res
}

// classify assigns each tier's binding constraint. The priority order is
// part of the model's contract: cost, then compute, then substitutability,
// then human capacity, defaulting to substitutability.
func classify(cfg params.ModelConfig, res *Result, wages [params.NumTiers]float64) {
	globalExhausted := res.Labor.RemainingBandHours <= 1e-9*cfg.WorkforceHours

	for i := range res.Tiers {
		tr := &res.Tiers[i]
		willing := math.Min(wages[i], cfg.Tiers[i].TaskValue)

		negligibleAI := tr.MaxAIHours <= 0 || tr.HoursAI <= trivialAllocationFraction*tr.MaxAIHours
		fullAllocation := tr.MaxAIHours > 0 && tr.HoursAI >= tr.MaxAIHours*(1-1e-9)
		humanSaturated := tr.HoursUnmet > 1e-9*math.Max(tr.DemandHours, 1)

		switch {
		case willing < tr.ProductionCostPerHour:
			tr.Binding = ConstraintCost
		case willing < tr.MarketCostPerHour && negligibleAI:
			tr.Binding = ConstraintCompute
		case fullAllocation:
			tr.Binding = ConstraintSubstitutability
		case humanSaturated || globalExhausted:
			tr.Binding = ConstraintHumanCapacity
		default:
			tr.Binding = ConstraintSubstitutability
		}
	}
}

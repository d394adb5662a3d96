// Package labor converts cumulative workforce-capability fractions into
// exclusive skill bands and allocates human work-hours across tiers. It
// also computes per-tier equilibrium wages from labor-market tightness.
package labor

import (
	"sort"

	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/params"
)

// Band is an exclusive slice of the workforce whose hardest performable
// tier is MaxTier. Band members may work their own tier or any easier one,
// never a harder one.
type Band struct {
	MaxTier int     // index into params.TierIDs
	Hours   float64 // total work-hours this band can supply per year
}

// BuildBands derives the exclusive bands from the tiers' cumulative
// humanCapable fractions: band[i] = humanCapable[i] - humanCapable[i+1],
// with the hardest tier keeping its full fraction. When the capability
// sequence is non-increasing (an unchecked precondition, see
// params.ModelConfig.Validate) the bands partition workforceHours exactly.
func BuildBands(cfg params.ModelConfig) [params.NumTiers]Band {
	var bands [params.NumTiers]Band
	for i := 0; i < params.NumTiers; i++ {
		width := cfg.Tiers[i].HumanCapable
		if i+1 < params.NumTiers {
			width -= cfg.Tiers[i+1].HumanCapable
		}
		bands[i] = Band{MaxTier: i, Hours: cfg.WorkforceHours * width}
	}
	return bands
}

// Allocation is the result of assigning band hours against residual tier
// demand.
type Allocation struct {
	// TierHours is the human work assigned to each tier.
	TierHours [params.NumTiers]float64

	// Unfilled is demand left unmet at each tier after all accessible
	// bands were exhausted (or zero when demand ran out first).
	Unfilled [params.NumTiers]float64

	// CapableHours is the workforce capacity able to perform each tier
	// (workforceHours * humanCapable), before any assignment. Tightness
	// is computed against this, not against the assigned hours.
	CapableHours [params.NumTiers]float64

	// RemainingBandHours is the workforce capacity left over after
	// allocation, summed across bands.
	RemainingBandHours float64
}

// Allocate greedily assigns worker-hours to tiers. Bands are consumed from
// the most skilled to the least, and within a band hours flow to the
// highest-paying accessible tier first, capped by remaining tier demand
// and remaining band hours. Higher-skill workers therefore preferentially
// fill higher-wage tiers, and any residual unmet demand reflects true
// human-capacity exhaustion.
func Allocate(cfg params.ModelConfig, bands [params.NumTiers]Band, need [params.NumTiers]float64, wages [params.NumTiers]float64) Allocation {
	var out Allocation
	for i := range cfg.Tiers {
		out.CapableHours[i] = cfg.WorkforceHours * cfg.Tiers[i].HumanCapable
	}

	remaining := need

	for b := params.NumTiers - 1; b >= 0; b-- {
		bandLeft := bands[b].Hours
		if bandLeft <= 0 {
			continue
		}

		// Accessible tiers for this band, highest wage first.
		accessible := make([]int, 0, bands[b].MaxTier+1)
		for t := 0; t <= bands[b].MaxTier; t++ {
			accessible = append(accessible, t)
		}
		sort.Slice(accessible, func(x, y int) bool {
			return wages[accessible[x]] > wages[accessible[y]]
		})

		for _, t := range accessible {
			if bandLeft <= 0 {
				break
			}
			take := remaining[t]
			if take > bandLeft {
				take = bandLeft
			}
			if take <= 0 {
				continue
			}
			out.TierHours[t] += take
			remaining[t] -= take
			bandLeft -= take
		}

		out.RemainingBandHours += bandLeft
	}

	out.Unfilled = remaining
	return out
}

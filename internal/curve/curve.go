// Package curve computes per-tier substitutability values. σ is the
// fraction of a tier's work AI could perform if cost and compute were no
// constraint, following a logistic adoption curve shifted by a deployment
// lag (the gap between a capability existing and it being deployed).
package curve

import (
	"math"

	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/params"
)

// Sigma returns a tier's effective substitutability for a calendar year,
// clamped to [0, 1]. Degenerate curve parameters (steepness <= 0,
// max < initial) are the schema layer's responsibility, not checked here.
func Sigma(tier params.TierConfig, year float64) float64 {
	effectiveYear := year - tier.DeploymentLag
	s := tier.InitialSigma + (tier.MaxSigma-tier.InitialSigma)/
		(1+math.Exp(-tier.SigmaSteepness*(effectiveYear-tier.SigmaMidpoint)))
	return clamp01(s)
}

// Average returns the share-weighted mean σ across all tiers for a year.
// Shares are assumed normalized (params.ConfigFromValues guarantees this).
func Average(cfg params.ModelConfig, year float64) float64 {
	avg := 0.0
	for _, tier := range cfg.Tiers {
		avg += tier.Share * Sigma(tier, year)
	}
	return avg
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

package engine

import (
	"math"

	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/auction"
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/labor"
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/logging"
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/params"
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/supply"
)

// SolverConfig bounds the wage/compute fixed-point iteration.
type SolverConfig struct {
	// MaxIterations caps the loop; hitting it is not an error, the
	// best-effort last state is kept (damping keeps it bounded).
	MaxIterations int

	// Tolerance is the relative per-tier wage change under which the
	// iteration counts as converged.
	Tolerance float64

	// Damping is the weight kept on the old wage each update:
	// wage <- Damping*old + (1-Damping)*new.
	Damping float64
}

// DefaultSolverConfig returns the standard solver constants.
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{
		MaxIterations: 20,
		Tolerance:     0.01,
		Damping:       0.7,
	}
}

// solveYear finds the joint wage/compute equilibrium for one year. Wages
// and compute bids are circular: higher wages raise reservation prices and
// draw more compute, while AI allocation displaces human demand and
// changes tightness. The loop damps wage updates until no tier's wage
// moves more than the tolerance, then reruns the auction once with the
// converged wages so prices, allocations, and constraint tags are
// mutually consistent.
func solveYear(
	cfg params.ModelConfig,
	sc SolverConfig,
	snap supply.Snapshot,
	demandHours, sigmas [params.NumTiers]float64,
	trace *logging.TraceLogger,
) (auction.Result, [params.NumTiers]float64, [params.NumTiers]float64, [params.NumTiers]bool, int, bool) {
	var wages, tightness [params.NumTiers]float64
	var atCeiling [params.NumTiers]bool
	for i, tier := range cfg.Tiers {
		wages[i] = tier.WageFloor
	}

	converged := false
	iterations := 0
	for iter := 0; iter < sc.MaxIterations; iter++ {
		iterations = iter + 1
		res := auction.Clear(cfg, snap, demandHours, sigmas, wages)

		maxDelta := 0.0
		for i, tier := range cfg.Tiers {
			need := math.Max(0, demandHours[i]-res.Tiers[i].HoursAI)
			tightness[i] = labor.Tightness(need, res.Labor.CapableHours[i])
			target, ceil := labor.EquilibriumWage(tier, tightness[i])
			atCeiling[i] = ceil

			next := sc.Damping*wages[i] + (1-sc.Damping)*target
			if wages[i] > 0 {
				delta := math.Abs(next-wages[i]) / wages[i]
				if delta > maxDelta {
					maxDelta = delta
				}
			}
			wages[i] = next
		}

		trace.Log(map[string]any{
			"event":     "solver_iteration",
			"year":      snap.Year,
			"iteration": iterations,
			"max_delta": maxDelta,
		})

		if maxDelta < sc.Tolerance {
			converged = true
			break
		}
	}

	// Final consistency pass: the last auction ran with pre-update wages,
	// so clear once more and re-derive the constraint classification with
	// the converged vector.
	final := auction.Clear(cfg, snap, demandHours, sigmas, wages)
	return final, wages, tightness, atCeiling, iterations, converged
}

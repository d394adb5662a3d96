// Package engine orchestrates the full multi-year projection: per-year
// substitutability, supply, and demand feed a joint wage/compute
// equilibrium solver, and the yearly snapshots roll up into summary
// statistics. Years carry no state between each other (every compounded
// series re-derives from the base year), so the year loop fans out across
// goroutines without changing results.
package engine

import (
	"sync"

	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/auction"
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/curve"
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/demand"
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/logging"
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/params"
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/supply"
)

// Run projects the model for a flat parameter map using default solver
// constants. This is the primary external entry point.
func Run(values params.Values) *Outputs {
	return RunConfig(params.ConfigFromValues(values), DefaultSolverConfig(), nil)
}

// RunConfig projects the model for an already-typed configuration. trace
// may be nil.
func RunConfig(cfg params.ModelConfig, sc SolverConfig, trace *logging.TraceLogger) *Outputs {
	years := params.HorizonYears(cfg.TargetYear)
	base := supply.Project(cfg, params.BaseYear)

	out := &Outputs{Years: make([]YearlyProjection, len(years))}

	var wg sync.WaitGroup
	for idx, year := range years {
		wg.Add(1)
		go func(idx, year int) {
			defer wg.Done()
			out.Years[idx] = projectYear(cfg, sc, base, year, trace)
		}(idx, year)
	}
	wg.Wait()

	summarize(out)
	return out
}

// projectYear computes one year's snapshot end to end.
func projectYear(cfg params.ModelConfig, sc SolverConfig, base supply.Snapshot, year int, trace *logging.TraceLogger) YearlyProjection {
	snap := supply.Project(cfg, year)
	dem := demand.Project(cfg, year, base, snap)

	var sigmas [params.NumTiers]float64
	for i, tier := range cfg.Tiers {
		sigmas[i] = curve.Sigma(tier, float64(year))
	}

	res, wages, tightness, atCeiling, iters, converged := solveYear(cfg, sc, snap, dem.TierHours, sigmas, trace)

	yp := YearlyProjection{
		Year:                  year,
		RawComputeFlops:       snap.RawCapacity,
		EffectiveComputeFlops: snap.EffectiveCapacity,
		EfficiencyMultiplier:  snap.EfficiencyMultiplier,
		ComputeUnitCost:       snap.UnitCost,
		TotalDemandHours:      dem.TotalHours,
		BaselineGrowth:        dem.Baseline,
		AIInducedGrowth:       dem.AIInduced,
		NewTaskGrowth:         dem.NewTasks,
		MarketPricePerFLOP:    res.MarketPricePerFLOP,
		ProductionCostPerFLOP: res.ProductionCostPerFLOP,
		ScarcityPremium:       res.ScarcityPremium,
		SolverIterations:      iters,
		SolverConverged:       converged,
	}
	if res.AvailableFlops > 0 {
		yp.ComputeSlackFraction = (res.AvailableFlops - res.UsedFlops) / res.AvailableFlops
	}

	constraintHours := make(map[auction.Constraint]float64, 4)
	for i := range res.Tiers {
		tr := res.Tiers[i]
		ta := TierAllocation{
			Tier:                    cfg.Tiers[i].ID,
			Sigma:                   tr.Sigma,
			DemandHours:             tr.DemandHours,
			HoursAI:                 tr.HoursAI,
			HoursHuman:              tr.HoursHuman,
			HoursUnmet:              tr.HoursUnmet,
			AIMarketCostPerHour:     tr.MarketCostPerHour,
			AIProductionCostPerHour: tr.ProductionCostPerHour,
			Wage:                    wages[i],
			Tightness:               tightness[i],
			WageAtCeiling:           atCeiling[i],
			Binding:                 tr.Binding,
		}
		if done := tr.HoursAI + tr.HoursHuman; done > 0 {
			ta.AIShare = tr.HoursAI / done
			ta.HumanShare = tr.HoursHuman / done
		}
		yp.Tiers[i] = ta

		yp.TotalHoursAI += tr.HoursAI
		yp.TotalHoursHuman += tr.HoursHuman
		yp.TotalHoursUnmet += tr.HoursUnmet
		constraintHours[tr.Binding] += tr.DemandHours
	}

	if done := yp.TotalHoursAI + yp.TotalHoursHuman; done > 0 {
		yp.AIShare = yp.TotalHoursAI / done
		yp.HumanShare = yp.TotalHoursHuman / done
	}

	// The primary constraint is whichever tag binds the most demanded
	// work this year. Tier order breaks ties deterministically.
	best := auction.Constraint("")
	bestHours := -1.0
	for i := range res.Tiers {
		c := res.Tiers[i].Binding
		if constraintHours[c] > bestHours {
			best, bestHours = c, constraintHours[c]
		}
	}
	yp.PrimaryConstraint = best

	return yp
}

// summarize resolves the two first-occurrence trackers and final-year
// shares. With years computed in parallel, "first" must be the minimum
// qualifying year, so this runs as a single ascending scan afterwards.
func summarize(out *Outputs) {
	for _, yp := range out.Years {
		if out.CrossoverYear == 0 && aiCostCompetitive(yp) {
			out.CrossoverYear = yp.Year
		}
		if out.ComputeSufficiencyYear == 0 && yp.ComputeSlackFraction > 0.10 {
			out.ComputeSufficiencyYear = yp.Year
		}
	}

	final := out.Final()
	out.FinalAIShare = final.AIShare
	out.FinalHumanShare = final.HumanShare
	out.FinalUnmetHours = final.TotalHoursUnmet
}

// aiCostCompetitive reports whether the demand-weighted AI production cost
// per hour undercuts the demand-weighted equilibrium wage.
func aiCostCompetitive(yp YearlyProjection) bool {
	var cost, wage, hours float64
	for _, ta := range yp.Tiers {
		cost += ta.AIProductionCostPerHour * ta.DemandHours
		wage += ta.Wage * ta.DemandHours
		hours += ta.DemandHours
	}
	if hours == 0 {
		return false
	}
	return cost/hours < wage/hours
}

package simulation

import (
	"math"
	"testing"

	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/engine"
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/params"
)

// AssertHoursBalance asserts that for every tier in every year,
// AI + human + unmet hours equals the tier's demand, within tolerance.
func AssertHoursBalance(t *testing.T, out *engine.Outputs) {
	t.Helper()
	for _, yp := range out.Years {
		for _, ta := range yp.Tiers {
			sum := ta.HoursAI + ta.HoursHuman + ta.HoursUnmet
			if relDiff(sum, ta.DemandHours) > 1e-6 {
				t.Errorf("AssertHoursBalance: year %d tier %s: ai+human+unmet = %.6g, demand = %.6g",
					yp.Year, ta.Tier, sum, ta.DemandHours)
			}
		}
	}
}

// AssertWageBounds asserts that every tier's wage stays inside
// [wage floor, task value] in every year.
func AssertWageBounds(t *testing.T, out *engine.Outputs, cfg params.ModelConfig) {
	t.Helper()
	for _, yp := range out.Years {
		for i, ta := range yp.Tiers {
			floor, ceiling := cfg.Tiers[i].WageFloor, cfg.Tiers[i].TaskValue
			if ta.Wage < floor-1e-9 || ta.Wage > ceiling+1e-9 {
				t.Errorf("AssertWageBounds: year %d tier %s: wage %.4f outside [%.4f, %.4f]",
					yp.Year, ta.Tier, ta.Wage, floor, ceiling)
			}
		}
	}
}

// AssertSigmaBounds asserts 0 <= σ <= 1 for every tier and year.
func AssertSigmaBounds(t *testing.T, out *engine.Outputs) {
	t.Helper()
	for _, yp := range out.Years {
		for _, ta := range yp.Tiers {
			if ta.Sigma < 0 || ta.Sigma > 1 {
				t.Errorf("AssertSigmaBounds: year %d tier %s: sigma %.6f outside [0, 1]",
					yp.Year, ta.Tier, ta.Sigma)
			}
		}
	}
}

// AssertScarcityInvariant asserts market price >= production cost and
// scarcity premium >= 1 in every year.
func AssertScarcityInvariant(t *testing.T, out *engine.Outputs) {
	t.Helper()
	for _, yp := range out.Years {
		if yp.MarketPricePerFLOP < yp.ProductionCostPerFLOP*(1-1e-12) {
			t.Errorf("AssertScarcityInvariant: year %d: market price %.6g below production cost %.6g",
				yp.Year, yp.MarketPricePerFLOP, yp.ProductionCostPerFLOP)
		}
		if yp.ScarcityPremium < 1-1e-12 {
			t.Errorf("AssertScarcityInvariant: year %d: scarcity premium %.6f < 1", yp.Year, yp.ScarcityPremium)
		}
	}
}

// AssertShareSums asserts that per-tier AI and human shares sum to 1
// wherever any work is done, and that valid binding tags are set.
func AssertShareSums(t *testing.T, out *engine.Outputs) {
	t.Helper()
	for _, yp := range out.Years {
		for _, ta := range yp.Tiers {
			if ta.HoursAI+ta.HoursHuman > 0 {
				if math.Abs(ta.AIShare+ta.HumanShare-1) > 1e-9 {
					t.Errorf("AssertShareSums: year %d tier %s: aiShare+humanShare = %.9f",
						yp.Year, ta.Tier, ta.AIShare+ta.HumanShare)
				}
			}
			if ta.Binding == "" {
				t.Errorf("AssertShareSums: year %d tier %s: missing binding constraint", yp.Year, ta.Tier)
			}
		}
	}
}

// AssertNoAIHours asserts total AI hours are exactly zero in every year.
func AssertNoAIHours(t *testing.T, out *engine.Outputs) {
	t.Helper()
	for _, yp := range out.Years {
		if yp.TotalHoursAI != 0 {
			t.Errorf("AssertNoAIHours: year %d: total AI hours %.6g, want 0", yp.Year, yp.TotalHoursAI)
		}
	}
}

// AssertYearsAscending asserts the projection covers the base year through
// at least the minimum horizon, with consecutive ascending years.
func AssertYearsAscending(t *testing.T, out *engine.Outputs) {
	t.Helper()
	if out.Years[0].Year != params.BaseYear {
		t.Errorf("AssertYearsAscending: first year %d, want %d", out.Years[0].Year, params.BaseYear)
	}
	for i := 1; i < len(out.Years); i++ {
		if out.Years[i].Year != out.Years[i-1].Year+1 {
			t.Errorf("AssertYearsAscending: year %d follows %d", out.Years[i].Year, out.Years[i-1].Year)
		}
	}
	if out.Final().Year < params.MinHorizonYear {
		t.Errorf("AssertYearsAscending: final year %d before minimum horizon %d", out.Final().Year, params.MinHorizonYear)
	}
}

// relDiff returns |a-b| relative to the larger magnitude, or the absolute
// difference when both are tiny.
func relDiff(a, b float64) float64 {
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale < 1 {
		return math.Abs(a - b)
	}
	return math.Abs(a-b) / scale
}

package auction

import (
	"math"
	"testing"

	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/params"
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/supply"
)

func defaultConfig() params.ModelConfig {
	return params.ConfigFromValues(params.Defaults())
}

func defaultWages(cfg params.ModelConfig) [params.NumTiers]float64 {
	var w [params.NumTiers]float64
	for i, tier := range cfg.Tiers {
		w[i] = tier.WageFloor
	}
	return w
}

func TestClear_RoutineProductionCost(t *testing.T) {
	// Routine tier, $1/exaFLOP, 4x efficiency, 10^12 FLOPs/hr: an AI hour
	// costs 1e-18 * 1e12/4 = $2.5e-7, far below the $15 wage floor.
	cfg := defaultConfig()
	snap := supply.Snapshot{
		Year:                 2026,
		RawCapacity:          1e22,
		EfficiencyMultiplier: 4,
		EffectiveCapacity:    4e22,
		UnitCost:             1e-18,
	}

	var demand, sigmas [params.NumTiers]float64
	demand[0] = 1e12
	sigmas[0] = 0.5
	res := Clear(cfg, snap, demand, sigmas, defaultWages(cfg))

	routine := res.Tiers[0]
	if math.Abs(routine.EffFlopsPerHour-2.5e11) > 1 {
		t.Errorf("EffFlopsPerHour = %v, want 2.5e11", routine.EffFlopsPerHour)
	}
	if relDiff(routine.ProductionCostPerHour, 2.5e-7) > 1e-9 {
		t.Errorf("ProductionCostPerHour = %v, want 2.5e-7", routine.ProductionCostPerHour)
	}
	if routine.ProductionCostPerHour >= cfg.Tiers[0].WageFloor {
		t.Error("AI production cost should be far below the wage floor")
	}
	if routine.HoursAI <= 0 {
		t.Error("cost-effective tier with abundant compute should receive AI hours")
	}
}

func TestClear_HoursBalancePerTier(t *testing.T) {
	cfg := defaultConfig()
	snap := supply.Project(cfg, 2032)

	var demand, sigmas [params.NumTiers]float64
	for i := range demand {
		demand[i] = cfg.BaseDemandHours * cfg.Tiers[i].Share
		sigmas[i] = 0.4
	}
	res := Clear(cfg, snap, demand, sigmas, defaultWages(cfg))

	for i, tr := range res.Tiers {
		got := tr.HoursAI + tr.HoursHuman + tr.HoursUnmet
		if math.Abs(got-tr.DemandHours) > tr.DemandHours*1e-9 {
			t.Errorf("tier %d: AI+human+unmet = %v, want demand %v", i, got, tr.DemandHours)
		}
		if tr.HoursAI > tr.MaxAIHours*(1+1e-9) {
			t.Errorf("tier %d: HoursAI %v exceeds substitutability cap %v", i, tr.HoursAI, tr.MaxAIHours)
		}
	}
}

func TestClear_ScarcityInvariant(t *testing.T) {
	cfg := defaultConfig()

	// Tiny compute pool forces scarcity pricing.
	snap := supply.Snapshot{
		Year:                 2030,
		RawCapacity:          1e15,
		EfficiencyMultiplier: 1,
		EffectiveCapacity:    1e15,
		UnitCost:             1e-18,
	}

	var demand, sigmas [params.NumTiers]float64
	for i := range demand {
		demand[i] = cfg.BaseDemandHours * cfg.Tiers[i].Share
		sigmas[i] = 0.8
	}
	res := Clear(cfg, snap, demand, sigmas, defaultWages(cfg))

	if res.MarketPricePerFLOP < res.ProductionCostPerFLOP {
		t.Errorf("market price %v below production cost %v", res.MarketPricePerFLOP, res.ProductionCostPerFLOP)
	}
	if res.ScarcityPremium < 1 {
		t.Errorf("ScarcityPremium = %v, want >= 1", res.ScarcityPremium)
	}
	if res.ScarcityPremium <= 1 {
		t.Error("exhausted compute should carry a scarcity premium above 1")
	}
	if res.UsedFlops > res.AvailableFlops*(1+1e-9) {
		t.Errorf("UsedFlops %v exceeds AvailableFlops %v", res.UsedFlops, res.AvailableFlops)
	}
}

func TestClear_SlackCollapsesToProductionCost(t *testing.T) {
	cfg := defaultConfig()

	// Vast compute pool: most of it idles, so no scarcity premium.
	snap := supply.Snapshot{
		Year:                 2030,
		RawCapacity:          1e30,
		EfficiencyMultiplier: 1,
		EffectiveCapacity:    1e30,
		UnitCost:             1e-18,
	}

	var demand, sigmas [params.NumTiers]float64
	for i := range demand {
		demand[i] = cfg.BaseDemandHours * cfg.Tiers[i].Share
		sigmas[i] = 0.8
	}
	res := Clear(cfg, snap, demand, sigmas, defaultWages(cfg))

	if res.MarketPricePerFLOP != snap.UnitCost {
		t.Errorf("market price = %v, want production cost %v with slack", res.MarketPricePerFLOP, snap.UnitCost)
	}
	if res.ScarcityPremium != 1 {
		t.Errorf("ScarcityPremium = %v, want 1 with slack", res.ScarcityPremium)
	}
}

func TestClear_HighestReservationServedFirst(t *testing.T) {
	cfg := defaultConfig()

	// Compute covers only part of total AI-capable demand. Frontier work
	// displaces the most valuable wages per FLOP when tiers need equal
	// compute per hour, so squeeze the pool and check the cheap tier gets
	// starved before the expensive ones.
	snap := supply.Snapshot{
		Year:                 2035,
		RawCapacity:          1e16,
		EfficiencyMultiplier: 1,
		EffectiveCapacity:    1e16,
		UnitCost:             1e-18,
	}

	var demand, sigmas [params.NumTiers]float64
	for i := range demand {
		demand[i] = 1e11
		sigmas[i] = 1
	}
	wages := defaultWages(cfg)
	res := Clear(cfg, snap, demand, sigmas, wages)

	// Reservation per FLOP falls with tier compute intensity here: routine
	// pays 15/1e12 per FLOP, frontier only 120/1e16. Routine must be served
	// in full before frontier sees anything.
	if res.Tiers[0].ReservationPerFLOP <= res.Tiers[4].ReservationPerFLOP {
		t.Fatalf("expected routine reservation %v > frontier %v",
			res.Tiers[0].ReservationPerFLOP, res.Tiers[4].ReservationPerFLOP)
	}
	if res.Tiers[4].HoursAI > 0 && res.Tiers[0].HoursAI < res.Tiers[0].MaxAIHours*(1-1e-9) {
		t.Error("frontier served while the higher-reservation routine tier was rationed")
	}
}

func TestClear_PricedOutTierDoesNotBid(t *testing.T) {
	cfg := defaultConfig()

	// Unit cost so high that no wage covers an AI hour.
	snap := supply.Snapshot{
		Year:                 2026,
		RawCapacity:          1e22,
		EfficiencyMultiplier: 1,
		EffectiveCapacity:    1e22,
		UnitCost:             1e-9,
	}

	var demand, sigmas [params.NumTiers]float64
	for i := range demand {
		demand[i] = 1e11
		sigmas[i] = 0.9
	}
	res := Clear(cfg, snap, demand, sigmas, defaultWages(cfg))

	for i, tr := range res.Tiers {
		if tr.HoursAI != 0 {
			t.Errorf("tier %d got %v AI hours while priced out", i, tr.HoursAI)
		}
		if tr.Binding != ConstraintCost {
			t.Errorf("tier %d binding = %q, want %q", i, tr.Binding, ConstraintCost)
		}
	}
	if res.UsedFlops != 0 {
		t.Errorf("UsedFlops = %v, want 0", res.UsedFlops)
	}
}

func TestClear_ZeroSigmaMeansSubstitutabilityBound(t *testing.T) {
	cfg := defaultConfig()
	snap := supply.Project(cfg, 2030)

	var demand, sigmas [params.NumTiers]float64
	for i := range demand {
		demand[i] = 1e10
	}
	res := Clear(cfg, snap, demand, sigmas, defaultWages(cfg))

	for i, tr := range res.Tiers {
		if tr.HoursAI != 0 {
			t.Errorf("tier %d got AI hours with σ = 0", i)
		}
		if tr.Binding != ConstraintSubstitutability {
			t.Errorf("tier %d binding = %q, want %q", i, tr.Binding, ConstraintSubstitutability)
		}
	}
}

func TestClear_FullAllocationBindsOnSubstitutability(t *testing.T) {
	cfg := defaultConfig()
	snap := supply.Snapshot{
		Year:                 2030,
		RawCapacity:          1e30,
		EfficiencyMultiplier: 1,
		EffectiveCapacity:    1e30,
		UnitCost:             1e-18,
	}

	var demand, sigmas [params.NumTiers]float64
	demand[0] = 1e11
	sigmas[0] = 0.5
	res := Clear(cfg, snap, demand, sigmas, defaultWages(cfg))

	routine := res.Tiers[0]
	if relDiff(routine.HoursAI, routine.MaxAIHours) > 1e-9 {
		t.Errorf("HoursAI = %v, want full σ cap %v", routine.HoursAI, routine.MaxAIHours)
	}
	if routine.Binding != ConstraintSubstitutability {
		t.Errorf("binding = %q, want %q", routine.Binding, ConstraintSubstitutability)
	}
}

func relDiff(a, b float64) float64 {
	if b == 0 {
		return math.Abs(a)
	}
	return math.Abs(a-b) / math.Abs(b)
}

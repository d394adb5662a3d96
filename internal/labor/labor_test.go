package labor

import (
	"math"
	"testing"

	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/params"
)

func defaultConfig() params.ModelConfig {
	return params.ConfigFromValues(params.Defaults())
}

func TestBuildBands_PartitionsWorkforce(t *testing.T) {
	cfg := defaultConfig()
	bands := BuildBands(cfg)

	sum := 0.0
	for i, b := range bands {
		if b.MaxTier != i {
			t.Errorf("band %d MaxTier = %d, want %d", i, b.MaxTier, i)
		}
		if b.Hours < 0 {
			t.Errorf("band %d has negative hours %v", i, b.Hours)
		}
		sum += b.Hours
	}

	// With humanCapable[0] = 1 the bands partition the workforce exactly.
	if math.Abs(sum-cfg.WorkforceHours) > cfg.WorkforceHours*1e-9 {
		t.Errorf("band hours sum %v, want workforceHours %v", sum, cfg.WorkforceHours)
	}
}

func TestBuildBands_Widths(t *testing.T) {
	cfg := defaultConfig()
	bands := BuildBands(cfg)

	// routine band = 1.00 - 0.85, frontier band keeps its full 0.05.
	wantRoutine := cfg.WorkforceHours * (1.00 - 0.85)
	if math.Abs(bands[0].Hours-wantRoutine) > 1 {
		t.Errorf("routine band = %v, want %v", bands[0].Hours, wantRoutine)
	}
	wantFrontier := cfg.WorkforceHours * 0.05
	if math.Abs(bands[4].Hours-wantFrontier) > 1 {
		t.Errorf("frontier band = %v, want %v", bands[4].Hours, wantFrontier)
	}
}

func TestAllocate_ConservesHours(t *testing.T) {
	cfg := defaultConfig()
	bands := BuildBands(cfg)

	need := [params.NumTiers]float64{8e11, 7e11, 5e11, 3e11, 2e11}
	wages := [params.NumTiers]float64{15, 21, 33, 60, 120}
	alloc := Allocate(cfg, bands, need, wages)

	assigned := 0.0
	for i := range need {
		assigned += alloc.TierHours[i]
		got := alloc.TierHours[i] + alloc.Unfilled[i]
		if math.Abs(got-need[i]) > need[i]*1e-9 {
			t.Errorf("tier %d: assigned+unfilled = %v, want demand %v", i, got, need[i])
		}
	}

	bandTotal := 0.0
	for _, b := range bands {
		bandTotal += b.Hours
	}
	if math.Abs(assigned+alloc.RemainingBandHours-bandTotal) > bandTotal*1e-9 {
		t.Errorf("assigned %v + remaining %v != band total %v", assigned, alloc.RemainingBandHours, bandTotal)
	}
}

func TestAllocate_RespectsSkillCeiling(t *testing.T) {
	cfg := defaultConfig()
	bands := BuildBands(cfg)

	// Demand only at the frontier tier. Only the frontier band can serve it.
	var need [params.NumTiers]float64
	need[4] = cfg.WorkforceHours
	wages := [params.NumTiers]float64{15, 21, 33, 60, 120}
	alloc := Allocate(cfg, bands, need, wages)

	if math.Abs(alloc.TierHours[4]-bands[4].Hours) > 1 {
		t.Errorf("frontier assignment = %v, want band capacity %v", alloc.TierHours[4], bands[4].Hours)
	}
	for i := 0; i < 4; i++ {
		if alloc.TierHours[i] != 0 {
			t.Errorf("tier %d got %v hours with zero demand", i, alloc.TierHours[i])
		}
	}
	if alloc.Unfilled[4] <= 0 {
		t.Error("expected unmet frontier demand when only one band is capable")
	}
}

func TestAllocate_SkilledWorkersPreferHigherWages(t *testing.T) {
	cfg := defaultConfig()
	bands := BuildBands(cfg)

	// Expert-tier demand small enough for the frontier band alone; the
	// frontier band should cover it before spilling down, because expert
	// pays more than anything below it.
	var need [params.NumTiers]float64
	need[3] = bands[4].Hours / 2
	need[0] = cfg.WorkforceHours
	wages := [params.NumTiers]float64{15, 21, 33, 60, 120}
	alloc := Allocate(cfg, bands, need, wages)

	if math.Abs(alloc.TierHours[3]-need[3]) > 1 {
		t.Errorf("expert demand unfilled: got %v, want %v", alloc.TierHours[3], need[3])
	}
	if alloc.Unfilled[3] > 1 {
		t.Errorf("expert Unfilled = %v, want 0", alloc.Unfilled[3])
	}
}

func TestAllocate_CapableHours(t *testing.T) {
	cfg := defaultConfig()
	alloc := Allocate(cfg, BuildBands(cfg), [params.NumTiers]float64{}, [params.NumTiers]float64{})

	for i, tier := range cfg.Tiers {
		want := cfg.WorkforceHours * tier.HumanCapable
		if alloc.CapableHours[i] != want {
			t.Errorf("CapableHours[%d] = %v, want %v", i, alloc.CapableHours[i], want)
		}
	}
}

func TestTightness_GuardsZeroSupply(t *testing.T) {
	if got := Tightness(1e12, 0); got != 1e12 {
		t.Errorf("Tightness with zero supply = %v, want demand/1", got)
	}
	if got := Tightness(5e11, 1e12); got != 0.5 {
		t.Errorf("Tightness = %v, want 0.5", got)
	}
}

func TestEquilibriumWage(t *testing.T) {
	tier := params.TierConfig{WageFloor: 20, TaskValue: 100, WageElasticity: 0.5}

	tests := []struct {
		name      string
		tightness float64
		want      float64
		atCeiling bool
	}{
		{"balanced market pays floor", 1, 20, false},
		{"shortage raises wage", 4, 40, false},
		{"severe shortage caps at task value", 100, 100, true},
		{"surplus adjusts down halfway but floors", 0.5, 20, false},
		{"zero tightness floors", 0, 20, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wage, atCeiling := EquilibriumWage(tier, tt.tightness)
			if math.Abs(wage-tt.want) > 1e-9 {
				t.Errorf("wage = %v, want %v", wage, tt.want)
			}
			if atCeiling != tt.atCeiling {
				t.Errorf("atCeiling = %v, want %v", atCeiling, tt.atCeiling)
			}
		})
	}
}

func TestEquilibriumWage_MonotoneInTightness(t *testing.T) {
	tier := params.TierConfig{WageFloor: 20, TaskValue: 500, WageElasticity: 0.4}
	prev := 0.0
	for tight := 0.0; tight <= 20; tight += 0.25 {
		wage, _ := EquilibriumWage(tier, tight)
		if wage < prev {
			t.Fatalf("wage decreased at tightness %v: %v < %v", tight, wage, prev)
		}
		if wage < tier.WageFloor || wage > tier.TaskValue {
			t.Fatalf("wage %v outside [floor, taskValue]", wage)
		}
		prev = wage
	}
}

package engine_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/engine"
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/params"
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/simulation"
)

func TestRun_DefaultsInvariants(t *testing.T) {
	runner := simulation.NewRunner(t)
	scenario := simulation.Scenario{Name: "defaults"}
	out := runner.Run(scenario)

	cfg := params.ConfigFromValues(scenario.Values())
	simulation.AssertYearsAscending(t, out)
	simulation.AssertHoursBalance(t, out)
	simulation.AssertWageBounds(t, out, cfg)
	simulation.AssertSigmaBounds(t, out)
	simulation.AssertScarcityInvariant(t, out)
	simulation.AssertShareSums(t, out)
}

func TestRun_Idempotent(t *testing.T) {
	v := params.Defaults()
	a := engine.Run(v)
	b := engine.Run(v)

	if !reflect.DeepEqual(a, b) {
		t.Error("two runs with identical parameters differ")
	}
}

func TestRun_ZeroMaxSigmaMeansNoAI(t *testing.T) {
	runner := simulation.NewRunner(t)
	out := runner.Run(simulation.Scenario{
		Name: "no substitution",
		Overrides: simulation.Merge(
			simulation.AllTiers(params.FieldInitialSigma, 0),
			simulation.AllTiers(params.FieldMaxSigma, 0),
		),
	})

	simulation.AssertNoAIHours(t, out)
	for _, yp := range out.Years {
		want := yp.TotalDemandHours - yp.TotalHoursUnmet
		if relDiff(yp.TotalHoursHuman, want) > 1e-6 {
			t.Errorf("year %d: human hours %.6g, want demand minus unmet %.6g",
				yp.Year, yp.TotalHoursHuman, want)
		}
	}
	if out.FinalAIShare != 0 {
		t.Errorf("FinalAIShare = %v, want 0", out.FinalAIShare)
	}
}

func TestRun_MaxSigmaMonotonicity(t *testing.T) {
	runner := simulation.NewRunner(t)
	key := params.TierKey(params.TierComplex, params.FieldMaxSigma)

	low := runner.Run(simulation.Scenario{
		Name:      "low complex maxSigma",
		Overrides: map[string]float64{key: 0.4},
	})
	high := runner.Run(simulation.Scenario{
		Name:      "high complex maxSigma",
		Overrides: map[string]float64{key: 0.8},
	})

	for i := range low.Years {
		lo := low.Years[i].Tiers[2]
		hi := high.Years[i].Tiers[2]
		if hi.AIShare < lo.AIShare-1e-9 {
			t.Errorf("year %d: raising maxSigma lowered complex AI share: %.6f -> %.6f",
				low.Years[i].Year, lo.AIShare, hi.AIShare)
		}
	}
}

func TestRun_AISectorGrowsOverHorizon(t *testing.T) {
	runner := simulation.NewRunner(t)
	out := runner.Run(simulation.Scenario{Name: "defaults"})

	first, _ := out.ForYear(params.BaseYear)
	if out.FinalAIShare <= first.AIShare {
		t.Errorf("final AI share %.4f should exceed base-year share %.4f",
			out.FinalAIShare, first.AIShare)
	}
	if out.FinalAIShare <= 0 || out.FinalAIShare >= 1 {
		t.Errorf("FinalAIShare = %v, want strictly inside (0, 1)", out.FinalAIShare)
	}
	if math.Abs(out.FinalAIShare+out.FinalHumanShare-1) > 1e-9 {
		t.Errorf("final shares sum to %v", out.FinalAIShare+out.FinalHumanShare)
	}
}

func TestRun_CrossoverYearUnderDefaults(t *testing.T) {
	runner := simulation.NewRunner(t)
	out := runner.Run(simulation.Scenario{Name: "defaults"})

	// Cheap effective compute makes AI hours cost-competitive well inside
	// the horizon under defaults.
	if out.CrossoverYear == 0 {
		t.Fatal("expected a crossover year under default parameters")
	}
	if out.CrossoverYear < params.BaseYear || out.CrossoverYear > params.MinHorizonYear {
		t.Errorf("CrossoverYear = %d, outside horizon", out.CrossoverYear)
	}
}

func TestRun_SolverConvergesUnderDefaults(t *testing.T) {
	runner := simulation.NewRunner(t)
	out := runner.Run(simulation.Scenario{Name: "defaults"})

	sc := engine.DefaultSolverConfig()
	for _, yp := range out.Years {
		if !yp.SolverConverged {
			t.Errorf("year %d: solver did not converge", yp.Year)
		}
		if yp.SolverIterations < 1 || yp.SolverIterations > sc.MaxIterations {
			t.Errorf("year %d: SolverIterations = %d, outside [1, %d]",
				yp.Year, yp.SolverIterations, sc.MaxIterations)
		}
		if yp.PrimaryConstraint == "" {
			t.Errorf("year %d: missing primary constraint", yp.Year)
		}
	}
}

func TestRun_TargetYearExtendsHorizon(t *testing.T) {
	runner := simulation.NewRunner(t)
	out := runner.Run(simulation.Scenario{
		Name:      "long horizon",
		Overrides: map[string]float64{params.ParamYear: 2048},
	})

	// Target year inside the minimum horizon does not shorten it.
	if got := out.Final().Year; got != params.MinHorizonYear {
		t.Errorf("final year = %d, want %d", got, params.MinHorizonYear)
	}

	if _, ok := out.ForYear(2048); !ok {
		t.Error("ForYear(2048) should be inside the horizon")
	}
	if _, ok := out.ForYear(2060); ok {
		t.Error("ForYear(2060) should be outside the horizon")
	}
	if _, ok := out.ForYear(2023); ok {
		t.Error("ForYear(2023) should be outside the horizon")
	}
}

func TestRun_UnknownKeysIgnored(t *testing.T) {
	v := params.Defaults()
	base := engine.Run(v)

	v2 := v.Clone()
	v2["someFutureParameter"] = 42
	withJunk := engine.Run(v2)

	if !reflect.DeepEqual(base, withJunk) {
		t.Error("unknown parameter keys should not change the projection")
	}
}

func relDiff(a, b float64) float64 {
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale < 1 {
		return math.Abs(a - b)
	}
	return math.Abs(a-b) / scale
}

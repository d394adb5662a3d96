package simulation

import (
	"testing"

	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/engine"
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/params"
)

// Runner executes model scenarios for a test.
type Runner struct {
	t *testing.T
}

// NewRunner creates a simulation runner.
func NewRunner(t *testing.T) *Runner {
	t.Helper()
	return &Runner{t: t}
}

// Run executes the scenario and returns the full projection.
func (r *Runner) Run(scenario Scenario) *engine.Outputs {
	r.t.Helper()

	values := scenario.Values()
	cfg := params.ConfigFromValues(values)

	sc := engine.DefaultSolverConfig()
	if scenario.Solver != nil {
		sc = *scenario.Solver
	}

	out := engine.RunConfig(cfg, sc, nil)
	if len(out.Years) == 0 {
		r.t.Fatalf("scenario %q: projection produced no years", scenario.Name)
	}
	return out
}

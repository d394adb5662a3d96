package mcp

import (
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/engine"
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/sensitivity"
)

// RunInput defines the input for the labor_run tool. Any parameter left
// out of Params falls back to its schema default; values are clamped to
// their declared ranges before the run.
type RunInput struct {
	Params map[string]float64 `json:"params,omitempty" jsonschema:"Parameter overrides keyed by id (global ids or tier_<tierId>_<field>)"`
}

// RunOutput defines the output for the labor_run tool.
type RunOutput struct {
	CrossoverYear          int     `json:"crossover_year" jsonschema:"First year AI production cost undercuts the demand-weighted wage (0 = never)"`
	ComputeSufficiencyYear int     `json:"compute_sufficiency_year" jsonschema:"First year compute stops binding (0 = never)"`
	FinalAIShare           float64 `json:"final_ai_share" jsonschema:"AI share of done work in the final projected year"`
	FinalHumanShare        float64 `json:"final_human_share" jsonschema:"Human share of done work in the final projected year"`

	Years []engine.YearlyProjection `json:"years" jsonschema:"Full per-year projections in ascending year order"`
}

// SensitivityInput defines the input for the labor_sensitivity tool.
type SensitivityInput struct {
	Params     map[string]float64 `json:"params,omitempty" jsonschema:"Parameter overrides keyed by id"`
	TargetYear int                `json:"target_year" jsonschema:"Calendar year whose human hours the elasticities refer to"`
}

// SensitivityOutput defines the output for the labor_sensitivity tool.
type SensitivityOutput struct {
	TargetYear         int                            `json:"target_year"`
	BaselineHumanHours float64                        `json:"baseline_human_hours"`
	Results            []sensitivity.ParamSensitivity `json:"results" jsonschema:"Per-parameter elasticities ranked by magnitude; the top 5 carry key=true"`
}

// ParametersInput defines the (empty) input for the labor_parameters tool.
type ParametersInput struct{}

// ParameterInfo is one schema entry.
type ParameterInfo struct {
	ID      string  `json:"id"`
	Label   string  `json:"label"`
	Unit    string  `json:"unit,omitempty"`
	Group   string  `json:"group"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Default float64 `json:"default"`
}

// ParametersOutput defines the output for the labor_parameters tool.
type ParametersOutput struct {
	Parameters []ParameterInfo `json:"parameters"`
}

package mcp

import (
	"context"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/engine"
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/params"
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/sensitivity"
)

// valuesFromOverrides merges caller overrides over schema defaults and
// clamps to declared ranges. Unknown ids are rejected rather than
// silently ignored.
func valuesFromOverrides(overrides map[string]float64) (params.Values, error) {
	v := params.Defaults()
	for id, val := range overrides {
		if _, ok := params.Lookup(id); !ok {
			return nil, fmt.Errorf("unknown parameter %q", id)
		}
		v[id] = val
	}
	return v.Clamp(), nil
}

func (s *Server) handleRun(ctx context.Context, req *sdk.CallToolRequest, args RunInput) (*sdk.CallToolResult, RunOutput, error) {
	values, err := valuesFromOverrides(args.Params)
	if err != nil {
		return nil, RunOutput{}, err
	}

	cfg := params.ConfigFromValues(values)
	if err := cfg.Validate(); err != nil {
		return nil, RunOutput{}, fmt.Errorf("invalid configuration: %w", err)
	}

	out := engine.RunConfig(cfg, s.solver, nil)

	return nil, RunOutput{
		CrossoverYear:          out.CrossoverYear,
		ComputeSufficiencyYear: out.ComputeSufficiencyYear,
		FinalAIShare:           out.FinalAIShare,
		FinalHumanShare:        out.FinalHumanShare,
		Years:                  out.Years,
	}, nil
}

func (s *Server) handleSensitivity(ctx context.Context, req *sdk.CallToolRequest, args SensitivityInput) (*sdk.CallToolResult, SensitivityOutput, error) {
	if args.TargetYear < params.BaseYear {
		return nil, SensitivityOutput{}, fmt.Errorf("target year %d precedes base year %d", args.TargetYear, params.BaseYear)
	}

	values, err := valuesFromOverrides(args.Params)
	if err != nil {
		return nil, SensitivityOutput{}, err
	}

	analysis := sensitivity.Calculate(values, args.TargetYear)

	return nil, SensitivityOutput{
		TargetYear:         analysis.TargetYear,
		BaselineHumanHours: analysis.BaselineHumanHours,
		Results:            analysis.Results,
	}, nil
}

func (s *Server) handleParameters(ctx context.Context, req *sdk.CallToolRequest, args ParametersInput) (*sdk.CallToolResult, ParametersOutput, error) {
	defs := params.AllDefs()
	out := ParametersOutput{Parameters: make([]ParameterInfo, 0, len(defs))}
	for _, d := range defs {
		out.Parameters = append(out.Parameters, ParameterInfo{
			ID:      d.ID,
			Label:   d.Label,
			Unit:    d.Unit,
			Group:   d.Group,
			Min:     d.Min,
			Max:     d.Max,
			Default: d.Default,
		})
	}
	return nil, out, nil
}

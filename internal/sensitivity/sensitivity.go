// Package sensitivity estimates how strongly each global parameter moves
// total human hours in a target year, by central finite differences over
// ±10% perturbations. Each perturbed run is a full independent model run,
// so the scan fans out across goroutines.
package sensitivity

import (
	"math"
	"sort"
	"sync"

	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/engine"
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/params"
)

// perturbation is the relative parameter shift used for the finite
// difference.
const perturbation = 0.10

// keyParameterCount is how many top-|sensitivity| parameters get flagged.
const keyParameterCount = 5

// ParamSensitivity is one parameter's elasticity estimate.
type ParamSensitivity struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	BaseValue   float64 `json:"baseValue"`
	Sensitivity float64 `json:"sensitivity"`
	Key         bool    `json:"key"`
}

// Analysis is the ranked sensitivity report.
type Analysis struct {
	TargetYear         int                `json:"targetYear"`
	BaselineHumanHours float64            `json:"baselineHumanHours"`
	Results            []ParamSensitivity `json:"results"`
}

// Calculate runs the finite-difference scan over every non-tier parameter
// (the target-year parameter itself excluded). Parameters with a zero
// baseline value are reported with sensitivity exactly 0, since a
// percentage perturbation of zero is undefined.
func Calculate(values params.Values, targetYear int) *Analysis {
	// Make sure the horizon reaches the target year regardless of the
	// caller's "year" setting.
	base := values.Clone()
	if int(base.Get(params.ParamYear)) < targetYear {
		base[params.ParamYear] = float64(targetYear)
	}

	baseline := humanHoursAt(engine.Run(base), targetYear)

	analysis := &Analysis{
		TargetYear:         targetYear,
		BaselineHumanHours: baseline,
	}

	scanned := make([]params.ParameterDef, 0, len(params.GlobalDefs))
	for _, def := range params.GlobalDefs {
		if def.ID == params.ParamYear {
			continue
		}
		scanned = append(scanned, def)
	}

	analysis.Results = make([]ParamSensitivity, len(scanned))

	var wg sync.WaitGroup
	for i, def := range scanned {
		wg.Add(1)
		go func(i int, def params.ParameterDef) {
			defer wg.Done()
			analysis.Results[i] = scanOne(base, def, targetYear, baseline)
		}(i, def)
	}
	wg.Wait()

	sort.SliceStable(analysis.Results, func(a, b int) bool {
		return math.Abs(analysis.Results[a].Sensitivity) > math.Abs(analysis.Results[b].Sensitivity)
	})
	for i := range analysis.Results {
		analysis.Results[i].Key = i < keyParameterCount
	}

	return analysis
}

// scanOne perturbs a single parameter both ways and estimates the
// elasticity of target-year human hours with respect to it.
func scanOne(base params.Values, def params.ParameterDef, targetYear int, baselineHours float64) ParamSensitivity {
	v0 := base.Get(def.ID)
	ps := ParamSensitivity{ID: def.ID, Label: def.Label, BaseValue: v0}

	if v0 == 0 || baselineHours == 0 {
		return ps
	}

	up := base.Clone()
	up[def.ID] = v0 * (1 + perturbation)
	up.Clamp()

	down := base.Clone()
	down[def.ID] = v0 * (1 - perturbation)
	down.Clamp()

	hoursUp := humanHoursAt(engine.Run(up), targetYear)
	hoursDown := humanHoursAt(engine.Run(down), targetYear)

	ps.Sensitivity = ((hoursUp - hoursDown) / 2) / (v0 * perturbation) * (v0 / baselineHours)
	return ps
}

// humanHoursAt pulls total human hours for the target year, falling back
// to the final projected year when the target lies outside the horizon.
func humanHoursAt(out *engine.Outputs, targetYear int) float64 {
	if yp, ok := out.ForYear(targetYear); ok {
		return yp.TotalHoursHuman
	}
	return out.Final().TotalHoursHuman
}

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/params"
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/sensitivity"
)

// newSensitivityCmd creates the 'sensitivity' command.
func newSensitivityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sensitivity",
		Short: "Rank parameters by their effect on human hours",
		Long: `Perturbs every global parameter ±10% and ranks them by the elasticity
of target-year total human hours. Runs 2N+1 full projections in parallel.

Examples:
  ailabor sensitivity --target-year 2040
  ailabor sensitivity --target-year 2035 --set computeGrowthRate=1.0 --json`,
		RunE: runSensitivity,
	}

	cmd.Flags().Int("target-year", 2040, "Calendar year the elasticities refer to")
	cmd.Flags().String("scenario", "", "Scenario YAML file with parameter overrides")
	cmd.Flags().StringArray("set", nil, "Parameter override key=value (repeatable)")

	return cmd
}

func runSensitivity(cmd *cobra.Command, args []string) error {
	jsonOut, _ := cmd.Flags().GetBool("json")
	targetYear, _ := cmd.Flags().GetInt("target-year")
	scenarioPath, _ := cmd.Flags().GetString("scenario")
	sets, _ := cmd.Flags().GetStringArray("set")

	if targetYear < params.BaseYear {
		return fmt.Errorf("target year %d precedes base year %d", targetYear, params.BaseYear)
	}

	values, err := resolveValues(scenarioPath, sets)
	if err != nil {
		return err
	}

	analysis := sensitivity.Calculate(values, targetYear)

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(analysis)
	}

	fmt.Printf("Sensitivity of %d human hours (baseline %.3g hrs):\n\n",
		analysis.TargetYear, analysis.BaselineHumanHours)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PARAMETER\tBASE\tELASTICITY\tKEY")
	for _, ps := range analysis.Results {
		key := ""
		if ps.Key {
			key = "*"
		}
		fmt.Fprintf(w, "%s\t%.4g\t%+.4f\t%s\n", ps.ID, ps.BaseValue, ps.Sensitivity, key)
	}
	w.Flush()
	return nil
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/config"
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/engine"
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/logging"
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/params"
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/store"
)

// newRunCmd creates the 'run' command: a full multi-year projection.
func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Project the AI/human division of cognitive work",
		Long: `Runs the projection engine from 2024 through max(year, 2050) and prints
a per-year summary plus the five-tier breakdown for the target year.

Examples:
  ailabor run
  ailabor run --set year=2045 --set computeGrowthRate=1.2
  ailabor run --scenario scenarios/cheap-compute.yaml --json
  ailabor run --save "cheap compute baseline"`,
		RunE: runRun,
	}

	cmd.Flags().String("scenario", "", "Scenario YAML file with parameter overrides")
	cmd.Flags().StringArray("set", nil, "Parameter override key=value (repeatable)")
	cmd.Flags().String("save", "", "Persist the run under the given name")

	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	jsonOut, _ := cmd.Flags().GetBool("json")
	scenarioPath, _ := cmd.Flags().GetString("scenario")
	sets, _ := cmd.Flags().GetStringArray("set")
	saveName, _ := cmd.Flags().GetString("save")

	appCfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.NewLogger(appCfg.Logging.Level, os.Stderr)

	values, err := resolveValues(scenarioPath, sets)
	if err != nil {
		return err
	}

	cfg := params.ConfigFromValues(values)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	trace := logging.NewTraceLogger(appCfg.StateDir(), appCfg.Logging.Level)
	defer trace.Close()

	out := engine.RunConfig(cfg, solverFromConfig(appCfg), trace)

	if saveName != "" {
		runStore, err := store.NewRunStore(appCfg.StateDir())
		if err != nil {
			return fmt.Errorf("opening run store: %w", err)
		}
		defer runStore.Close()

		id, err := runStore.SaveRun(context.Background(), saveName, values, out)
		if err != nil {
			return fmt.Errorf("saving run: %w", err)
		}
		logger.Info("run saved", "id", id, "name", saveName)
	}

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(out)
	}

	printProjection(out, cfg.TargetYear)
	return nil
}

// printProjection renders the human-readable projection summary.
func printProjection(out *engine.Outputs, targetYear int) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "YEAR\tDEMAND (hrs)\tAI\tHUMAN\tUNMET\tPREMIUM\tCONSTRAINT")
	for _, yp := range out.Years {
		fmt.Fprintf(w, "%d\t%.3g\t%.1f%%\t%.1f%%\t%.3g\t%.2fx\t%s\n",
			yp.Year, yp.TotalDemandHours,
			yp.AIShare*100, yp.HumanShare*100,
			yp.TotalHoursUnmet, yp.ScarcityPremium, yp.PrimaryConstraint)
	}
	w.Flush()

	if yp, ok := out.ForYear(targetYear); ok {
		fmt.Printf("\nTier breakdown for %d:\n", targetYear)
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "TIER\tσ\tAI hrs\tHUMAN hrs\tUNMET hrs\tWAGE $/hr\tAI $/hr\tCONSTRAINT")
		for _, ta := range yp.Tiers {
			fmt.Fprintf(tw, "%s\t%.2f\t%.3g\t%.3g\t%.3g\t%.2f\t%.4g\t%s\n",
				ta.Tier, ta.Sigma, ta.HoursAI, ta.HoursHuman, ta.HoursUnmet,
				ta.Wage, ta.AIMarketCostPerHour, ta.Binding)
		}
		tw.Flush()
	}

	fmt.Println()
	if out.CrossoverYear > 0 {
		fmt.Printf("AI cost-competitive from: %d\n", out.CrossoverYear)
	} else {
		fmt.Println("AI cost-competitive from: never (within horizon)")
	}
	if out.ComputeSufficiencyYear > 0 {
		fmt.Printf("Compute stops binding from: %d\n", out.ComputeSufficiencyYear)
	} else {
		fmt.Println("Compute stops binding from: never (within horizon)")
	}
	fmt.Printf("Final-year shares: AI %.1f%%, human %.1f%%\n",
		out.FinalAIShare*100, out.FinalHumanShare*100)
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/config"
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/store"
)

// newHistoryCmd creates the 'history' command for saved runs.
func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List or inspect saved runs",
		Long: `Lists runs saved with 'run --save'. With an id argument, prints that
run's parameters and summary.

Examples:
  ailabor history
  ailabor history 3 --json
  ailabor history --delete 3`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistory,
	}

	cmd.Flags().Int64("delete", 0, "Delete the run with the given id")

	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	jsonOut, _ := cmd.Flags().GetBool("json")
	deleteID, _ := cmd.Flags().GetInt64("delete")

	appCfg, err := config.Load()
	if err != nil {
		return err
	}

	runStore, err := store.NewRunStore(appCfg.StateDir())
	if err != nil {
		return fmt.Errorf("opening run store: %w", err)
	}
	defer runStore.Close()

	ctx := context.Background()

	if deleteID > 0 {
		if err := runStore.DeleteRun(ctx, deleteID); err != nil {
			return err
		}
		fmt.Printf("deleted run %d\n", deleteID)
		return nil
	}

	if len(args) == 1 {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid run id %q", args[0])
		}
		run, err := runStore.GetRun(ctx, id)
		if err != nil {
			return err
		}
		if jsonOut {
			return json.NewEncoder(os.Stdout).Encode(run)
		}
		fmt.Printf("Run %d: %s (saved %s)\n", run.ID, run.Name, run.CreatedAt.Format(time.RFC3339))
		fmt.Printf("Target year %d, final AI share %.1f%%, crossover %d\n",
			run.TargetYear, run.FinalAIShare*100, run.CrossoverYear)
		printProjection(run.Outputs, run.TargetYear)
		return nil
	}

	runs, err := runStore.ListRuns(ctx)
	if err != nil {
		return err
	}
	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Println("no saved runs")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSAVED\tTARGET\tAI SHARE\tCROSSOVER")
	for _, rs := range runs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%.1f%%\t%d\n",
			rs.ID, rs.Name, rs.CreatedAt.Format("2006-01-02 15:04"),
			rs.TargetYear, rs.FinalAIShare*100, rs.CrossoverYear)
	}
	return w.Flush()
}

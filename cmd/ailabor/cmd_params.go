package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/params"
)

// newParamsCmd creates the 'params' command: schema listing and defaults.
func newParamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "List the parameter schema and default values",
		RunE:  runParams,
	}

	cmd.Flags().Bool("defaults", false, "Print only the default value map")
	cmd.Flags().String("group", "", "Filter by group (scenario, demand, supply, labor, tier:<id>)")

	return cmd
}

func runParams(cmd *cobra.Command, args []string) error {
	jsonOut, _ := cmd.Flags().GetBool("json")
	defaultsOnly, _ := cmd.Flags().GetBool("defaults")
	group, _ := cmd.Flags().GetString("group")

	if defaultsOnly {
		if jsonOut {
			return json.NewEncoder(os.Stdout).Encode(params.Defaults())
		}
		defs := params.AllDefs()
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, d := range defs {
			fmt.Fprintf(w, "%s\t%.6g\n", d.ID, d.Default)
		}
		return w.Flush()
	}

	defs := params.AllDefs()
	if group != "" {
		filtered := defs[:0]
		for _, d := range defs {
			if d.Group == group {
				filtered = append(filtered, d)
			}
		}
		defs = filtered
	}

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(defs)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tGROUP\tMIN\tMAX\tDEFAULT\tUNIT")
	for _, d := range defs {
		fmt.Fprintf(w, "%s\t%s\t%.4g\t%.4g\t%.4g\t%s\n", d.ID, d.Group, d.Min, d.Max, d.Default, d.Unit)
	}
	return w.Flush()
}

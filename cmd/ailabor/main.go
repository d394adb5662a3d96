package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/config"
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/engine"
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/params"
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/scenario"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "ailabor",
		Short: "AI/human cognitive labor projection model",
		Long: `ailabor projects how a fixed pool of cognitive work divides between AI
and human labor year by year, under compute scarcity, imperfect
substitutability, skill-stratified human capacity, and growing demand.

Parameters are supplied as flat key=value overrides or scenario files;
the engine returns a full multi-year projection and can rank parameters
by sensitivity.`,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON (for downstream consumers)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newSensitivityCmd(),
		newParamsCmd(),
		newHistoryCmd(),
		newMCPServerCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				fmt.Printf("{\"version\":%q}\n", version)
			} else {
				fmt.Printf("ailabor version %s\n", version)
			}
		},
	}
}

// resolveValues builds the parameter map for a command invocation:
// defaults, then an optional scenario file, then --set overrides, clamped.
func resolveValues(scenarioPath string, sets []string) (params.Values, error) {
	values := params.Defaults()

	if scenarioPath != "" {
		sc, err := scenario.LoadFile(scenarioPath)
		if err != nil {
			return nil, err
		}
		values = sc.Values()
	}

	for _, kv := range sets {
		key, raw, found := strings.Cut(kv, "=")
		if !found {
			return nil, fmt.Errorf("invalid --set %q: expected key=value", kv)
		}
		if _, ok := params.Lookup(key); !ok {
			return nil, fmt.Errorf("unknown parameter %q", key)
		}
		val, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %q: %w", key, err)
		}
		values[key] = val
	}

	return values.Clamp(), nil
}

// solverFromConfig builds the engine solver constants, honoring any
// operator overrides from the app config.
func solverFromConfig(cfg *config.Config) engine.SolverConfig {
	sc := engine.DefaultSolverConfig()
	if cfg.Solver.MaxIterations > 0 {
		sc.MaxIterations = cfg.Solver.MaxIterations
	}
	if cfg.Solver.Tolerance > 0 {
		sc.Tolerance = cfg.Solver.Tolerance
	}
	if cfg.Solver.Damping > 0 {
		sc.Damping = cfg.Solver.Damping
	}
	return sc
}

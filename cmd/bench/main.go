// bench - zmin benchmark suite runner
//
// Runs a YAML-defined benchmark suite (or a built-in default) across the
// minification modes and prints per-mode timing, size savings and
// throughput as a table or CSV.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hydepwns/zmin-go/internal/bench"
)

func main() {
	if err := newBenchCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bench:", err)
		os.Exit(1)
	}
}

func newBenchCmd() *cobra.Command {
	var asCSV bool

	cmd := &cobra.Command{
		Use:          "bench [suite.yaml]",
		Short:        "Run a zmin benchmark suite",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			suite := defaultSuite()
			if len(args) > 0 {
				loaded, err := bench.LoadSuite(args[0])
				if err != nil {
					return err
				}
				suite = loaded
			}

			results, err := bench.NewRunner(suite).Run()
			if err != nil {
				return err
			}
			if asCSV {
				return bench.WriteCSV(cmd.OutOrStdout(), results)
			}
			return bench.WriteTable(cmd.OutOrStdout(), results)
		},
	}
	cmd.Flags().BoolVar(&asCSV, "csv", false, "emit CSV instead of a table")
	return cmd
}

// defaultSuite covers the size range where the mode trade-offs show up.
func defaultSuite() *bench.Suite {
	return &bench.Suite{
		Name: "default",
		Cases: []bench.Case{
			{Name: "small 256KB", Generate: &bench.GenerateSpec{SizeMB: 0.25, Seed: 1}},
			{Name: "medium 2MB", Generate: &bench.GenerateSpec{SizeMB: 2, Seed: 2}},
			{Name: "large 16MB", Generate: &bench.GenerateSpec{SizeMB: 16, Seed: 3}, Iterations: 3},
		},
	}
}

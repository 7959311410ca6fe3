package main

import (
	"github.com/aretw0/statespace/internal/cli"
	"github.com/spf13/cobra"
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve <problem>",
	Short: "Solve a problem and print the path",
	Long: `Solves a problem file, or a problem of the catalog in --dir by ID, and prints the
configurations from the initial state to the goal.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := commonOptions(cmd)
		if err != nil {
			return err
		}
		withMetrics, _ := cmd.Flags().GetBool("metrics")

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		return cli.RunSolve(ctx, args[0], opts, overrides(cmd), withMetrics)
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)

	addSearchFlags(solveCmd)
	solveCmd.Flags().Bool("metrics", false, "Print search metrics in Prometheus text format")
}

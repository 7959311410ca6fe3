package main

import (
	"github.com/aretw0/statespace/internal/cli"
	"github.com/aretw0/statespace/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <problem>",
	Short: "Export the explored search tree",
	Long:  `Solves a problem and outputs a Mermaid diagram (graph TD) of the expanded configurations with the path highlighted.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := commonOptions(cmd)
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		return cli.RunGraph(ctx, args[0], opts, overrides(cmd), limit)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	addSearchFlags(graphCmd)
	graphCmd.Flags().Int("limit", graph.DefaultLimit, "Maximum number of configurations drawn")
}

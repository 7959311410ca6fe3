package main

import (
	"github.com/aretw0/statespace/internal/cli"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the problems of the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := commonOptions(cmd)
		if err != nil {
			return err
		}
		return cli.RunList(cmd.Context(), opts)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

package main

import (
	"github.com/aretw0/statespace/internal/cli"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate game positions",
}

var tictactoeCmd = &cobra.Command{
	Use:     "tictactoe",
	Aliases: []string{"ttt"},
	Short:   "Evaluate a tic-tac-toe board by open lines",
	Long: `Prints the open-line evaluation of a board for the given player and the suggested move.
Rows are separated by '|' and empty cells written as '.', for example "X..|.O.|...".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := commonOptions(cmd)
		if err != nil {
			return err
		}
		board, _ := cmd.Flags().GetString("board")
		player, _ := cmd.Flags().GetString("player")
		return cli.RunEval(board, player, opts)
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.AddCommand(tictactoeCmd)

	tictactoeCmd.Flags().String("board", "...|...|...", "Board to evaluate")
	tictactoeCmd.Flags().String("player", "X", "Player to move (X or O)")
}

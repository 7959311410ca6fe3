package main

import (
	"fmt"
	"os"

	"github.com/aretw0/statespace/internal/cli"
	"github.com/aretw0/statespace/internal/logging"
	"github.com/aretw0/statespace/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "statespace",
	Short: "Statespace solves puzzles by searching their state space",
	Long: `Statespace runs breadth-first search, A* and hill climbing over the 8-puzzle,
Blocks World and water jug problems described in YAML, JSON, HCL or Markdown files.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		tui.PrintBanner(cmd.OutOrStdout())
		_ = cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("dir", ".", "Directory containing the problem catalog")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().Bool("render", false, "Render markdown output for the terminal")
}

// commonOptions builds the options shared by every subcommand from the persistent flags.
func commonOptions(cmd *cobra.Command) (cli.Options, error) {
	dir, _ := cmd.Flags().GetString("dir")
	levelName, _ := cmd.Flags().GetString("log-level")
	formatName, _ := cmd.Flags().GetString("log-format")
	render, _ := cmd.Flags().GetBool("render")

	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return cli.Options{}, err
	}
	format, err := logging.ParseFormat(formatName)
	if err != nil {
		return cli.Options{}, err
	}

	return cli.Options{
		Dir:    dir,
		Logger: logging.New(level, format),
		Out:    cmd.OutOrStdout(),
		Render: render,
	}, nil
}

// overrides reads the search flags shared by solve and graph.
func overrides(cmd *cobra.Command) cli.Overrides {
	alg, _ := cmd.Flags().GetString("algorithm")
	heuristic, _ := cmd.Flags().GetString("heuristic")
	limit, _ := cmd.Flags().GetInt("max-expansions")
	seed, _ := cmd.Flags().GetInt64("seed")
	return cli.Overrides{
		Algorithm:     alg,
		Heuristic:     heuristic,
		MaxExpansions: limit,
		Seed:          seed,
	}
}

func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("algorithm", "a", "", "Override the algorithm (bfs, astar, hill)")
	cmd.Flags().String("heuristic", "", "Override the heuristic")
	cmd.Flags().Int("max-expansions", 0, "Stop after this many expansions (0 keeps the problem's limit, -1 removes it)")
	cmd.Flags().Int64("seed", 0, "Seed for hill climbing restarts")
}

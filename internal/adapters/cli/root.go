package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	savePath   string
	seed       int64
	noDatabase bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tradewinds",
		Short: "Tradewinds - a day-granular market simulation and trade engine",
		Long: `Tradewinds simulates prices, stock and trade events across a world of
cities, and executes trades against that market.

Examples:
  tradewinds advance --days 30
  tradewinds market prices --city 1
  tradewinds market trend --city 1 --good 9
  tradewinds market events
  tradewinds trade buy --city 1 --good 1 --quantity 10 --gold 5000
  tradewinds trade sell --city 3 --good 1 --quantity 10
  tradewinds routes --from 1 --max 5`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&savePath, "save", "",
		"Path to the JSON save file (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0,
		"RNG seed for a reproducible session (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&noDatabase, "no-db", false,
		"Disable the trade ledger database")

	rootCmd.AddCommand(NewMarketCommand())
	rootCmd.AddCommand(NewTradeCommand())
	rootCmd.AddCommand(NewRoutesCommand())
	rootCmd.AddCommand(NewAdvanceCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

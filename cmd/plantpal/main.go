// Package main is the entry point for the plantpal CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/plantpal/internal/cli"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "plantpal",
	Short: "plantpal - a houseplant watering tracker",
	Long: `plantpal keeps track of your houseplants: how often each one needs water,
how much sun it likes, and when you last watered it.

Every plant is overdue, due today, or healthy. Plants that are overdue or due
today show up in the watering reminder.

Run without a subcommand to open the interactive terminal UI.`,
	Version:       Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	Args:          cobra.NoArgs,
	RunE:          runTUI,
}

var (
	flagDir      string
	flagToday    string
	flagNoColor  bool
	flagLogLevel string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", ".", "directory holding plant data and config")
	rootCmd.PersistentFlags().StringVar(&flagToday, "today", "", "reference date, e.g. 2024-01-09 or \"next friday\"")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (overrides log_level in config)")

	// Replaced by our own completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.SetVersionTemplate("plantpal version {{.Version}}\n")
}

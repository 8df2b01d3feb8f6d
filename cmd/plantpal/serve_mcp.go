package main

import (
	"time"

	"github.com/jacksmith/plantpal/internal/mcpserver"
	"github.com/spf13/cobra"
)

var serveMCPCmd = &cobra.Command{
	Use:   "serve-mcp",
	Short: "Serve plant data to MCP clients over stdio",
	Long: `Run a Model Context Protocol server on stdin/stdout.

Tools (all read-only):
  list_plants         plants with due date and status, filterable
  plant_stats         overdue / due today / healthy counts
  watering_reminders  plants that need water and the reminder message

The plant file is re-read on every call, so changes made with other
commands show up immediately. Logs go to stderr.`,
	Args: cobra.NoArgs,
	RunE: runServeMCP,
}

func init() {
	rootCmd.AddCommand(serveMCPCmd)
}

func runServeMCP(cmd *cobra.Command, args []string) error {
	a, err := openApp(appOptions{noLoad: true})
	if err != nil {
		return err
	}
	defer a.Close()

	now := time.Now
	if flagToday != "" {
		today := a.today
		now = func() time.Time { return today }
	}

	a.logger.Info().Str("dir", a.storage.Root()).Msg("serving MCP over stdio")
	return mcpserver.Serve(mcpserver.Config{
		Store:            a.store,
		ReminderTemplate: a.cfg.ReminderTemplate,
		Version:          Version,
		Logger:           a.logger,
		Now:              now,
	})
}

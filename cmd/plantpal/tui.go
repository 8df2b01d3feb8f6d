package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jacksmith/plantpal/internal/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive plant list",
	Long: `Open the terminal UI. This is also what plantpal does with no subcommand.

Keys:
  ↑/↓    move          a  add plant      enter  details
  w      mark watered  d  delete         s      save
  t      light/dark    c  copy reminder  q      quit

Changes are kept in memory until you press s. Quitting with unsaved changes
asks for a second q. Logs go to plantpal.log in the data directory.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

var tuiTheme string

func init() {
	tuiCmd.Flags().StringVar(&tuiTheme, "theme", "", "start with this theme (light, dark)")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	a, err := openApp(appOptions{logFile: true})
	if err != nil {
		return err
	}
	defer a.Close()

	themeName := a.cfg.Theme
	if tuiTheme != "" {
		themeName = tuiTheme
	}

	m := tui.New(a.coll, tui.Options{
		Theme:            tui.ThemeByName(themeName),
		Today:            a.today,
		ReminderTemplate: a.cfg.ReminderTemplate,
		Photos:           a.photos,
		Logger:           a.logger,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run terminal UI: %w", err)
	}
	return nil
}

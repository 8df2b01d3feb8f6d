package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/jacksmith/plantpal/internal/ops"
	"github.com/spf13/cobra"
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Print the watering reminder",
	Long: `Print a reminder listing every plant that is overdue or due today.

The message comes from reminder_template in .plantpal.yaml, a mustache
template with plants (each with a name), count and today. When no plant
needs water it says so and nothing is copied.

Use --copy to put the reminder on the clipboard as well.`,
	Args: cobra.NoArgs,
	RunE: runRemind,
}

var remindCopy bool

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

func init() {
	remindCmd.Flags().BoolVar(&remindCopy, "copy", false, "copy the reminder to the clipboard")
	rootCmd.AddCommand(remindCmd)
}

func runRemind(cmd *cobra.Command, args []string) error {
	a, err := openApp(appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	names := a.coll.Reminders(a.today)
	if len(names) == 0 {
		fmt.Println("No plants need water.")
		return nil
	}

	msg, err := ops.RenderReminder(a.cfg.ReminderTemplate, names, a.today)
	if err != nil {
		return err
	}
	fmt.Println(msg)

	if remindCopy {
		if err := writeClipboard(msg); err != nil {
			return fmt.Errorf("failed to copy reminder: %w", err)
		}
		fmt.Println("(copied to clipboard)")
	}
	return nil
}

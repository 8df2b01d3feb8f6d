package main

import (
	"fmt"

	"github.com/jacksmith/plantpal/internal/cli"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count plants by watering status",
	Long: `Show how many plants are overdue, due today, and healthy.

Every plant falls in exactly one group, so the three counts add up to the total.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	a, err := openApp(appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	stats := a.coll.Stats(a.today)
	fmt.Printf("Total:      %d\n", stats.Total)
	fmt.Printf("Overdue:    %s\n", cli.Red(fmt.Sprint(stats.Overdue)))
	fmt.Printf("Due today:  %s\n", cli.Yellow(fmt.Sprint(stats.DueToday)))
	fmt.Printf("Healthy:    %s\n", cli.Green(fmt.Sprint(stats.Healthy)))
	return nil
}

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jacksmith/plantpal/internal/cli"
	"github.com/jacksmith/plantpal/internal/model"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List plants",
	Long: `List plants in collection order with their watering status.

The first column is the plant number used by show, water and remove.

Filter flags:
  --needs-water  Show only plants that are overdue or due today
  --status       Show only plants with one status: overdue, due_today, healthy
                 (prefixes work, e.g. --status over)`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	listNeedsWater bool
	listStatus     string
)

func init() {
	listCmd.Flags().BoolVarP(&listNeedsWater, "needs-water", "n", false, "show only plants that need water")
	listCmd.Flags().StringVar(&listStatus, "status", "", "filter by status (overdue, due_today, healthy)")

	listCmd.RegisterFlagCompletionFunc("status", completeStatus)

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	var status model.WaterStatus
	if listStatus != "" {
		s, err := cli.Match("status", listStatus, statusChoices())
		if err != nil {
			return err
		}
		status = model.WaterStatus(s)
	}

	a, err := openApp(appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	plants := a.coll.All()
	if len(plants) == 0 {
		fmt.Println("No plants yet. Add one with: plantpal add <name> --water <days>")
		return nil
	}

	table := cli.NewTable()
	table.SetMaxWidth(2, cli.DefaultMaxNameWidth)
	rows := 0
	for i := range plants {
		p := &plants[i]
		st := model.ComputeStatus(p, a.today)
		if status != "" && st != status {
			continue
		}
		if listNeedsWater && !model.NeedsWater(p, a.today) {
			continue
		}
		table.AddRow(
			strconv.Itoa(i+1),
			cli.StatusLabel(st),
			p.Name,
			cli.DueText(p, a.today),
			cli.Gray(string(p.Sunlight)+" sun"),
		)
		rows++
	}

	if rows == 0 {
		fmt.Println("No plants found.")
		return nil
	}
	table.Render(os.Stdout)
	return nil
}

func statusChoices() []string {
	return []string{string(model.StatusOverdue), string(model.StatusDueToday), string(model.StatusHealthy)}
}

package main

import (
	"fmt"

	"github.com/jacksmith/plantpal/internal/cli"
	"github.com/jacksmith/plantpal/internal/model"
	"github.com/jacksmith/plantpal/internal/photo"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <plant>",
	Short: "Show plant details",
	Long: `Show every field of a plant along with its next watering date and status.

The plant can be given by list number, ID prefix, or name (case-insensitive,
unique prefixes work).`,
	Args:              cobra.ExactArgs(1),
	RunE:              runShow,
	ValidArgsFunction: completePlantRefs,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := openApp(appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	p, err := a.resolve(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s  %s\n", p.Name, cli.StatusLabel(model.ComputeStatus(&p, a.today)))
	fmt.Printf("  ID:            %s\n", p.ID)
	fmt.Printf("  Water every:   %s\n", days(p.WaterIntervalDays))
	fmt.Printf("  Sunlight:      %s\n", p.Sunlight)
	fmt.Printf("  Last watered:  %s (%s)\n", p.LastWatered.Format(model.DateLayout), cli.WateredText(&p, a.today))
	fmt.Printf("  Next watering: %s (%s)\n", model.DueDate(&p).Format(model.DateLayout), cli.DueText(&p, a.today))

	switch {
	case p.ImagePath == "":
		fmt.Printf("  Image:         %s\n", cli.Gray("(none)"))
	case !photo.Exists(p.ImagePath):
		fmt.Printf("  Image:         %s %s\n", p.ImagePath, cli.Red("(missing)"))
	default:
		fmt.Printf("  Image:         %s\n", p.ImagePath)
	}
	return nil
}

func days(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

package main

import (
	"fmt"

	"github.com/jacksmith/plantpal/internal/cli"
	"github.com/jacksmith/plantpal/internal/model"
	"github.com/spf13/cobra"
)

var waterCmd = &cobra.Command{
	Use:   "water <plant>...",
	Short: "Mark plants as watered today",
	Long: `Set the last watered date of one or more plants to today (or --today).

Plants can be given by list number, ID prefix, or name. All references are
resolved before anything changes, so one bad reference waters nothing.

Examples:
  plantpal water 1 3
  plantpal water monstera
  plantpal water --today yesterday fern`,
	Args:              cobra.MinimumNArgs(1),
	RunE:              runWater,
	ValidArgsFunction: completePlantRefs,
}

var waterDryRun bool

func init() {
	waterCmd.Flags().BoolVar(&waterDryRun, "dry-run", false, "show what would change without saving")
	rootCmd.AddCommand(waterCmd)
}

func runWater(cmd *cobra.Command, args []string) error {
	a, err := openApp(appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	// Resolve every reference first; a plant named twice is watered once
	var ids []string
	seen := make(map[string]bool)
	for _, ref := range args {
		id, err := a.coll.ResolveID(ref)
		if err != nil {
			return err
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	var names []string
	for _, id := range ids {
		p, err := a.coll.MarkWateredByID(id, a.today)
		if err != nil {
			return err
		}
		names = append(names, p.Name)
	}

	if waterDryRun {
		for _, name := range names {
			fmt.Printf("Would mark %s as watered.\n", name)
		}
		return nil
	}

	if err := a.coll.Save(); err != nil {
		return err
	}

	when := "today"
	if flagToday != "" {
		when = "on " + a.today.Format(model.DateLayout)
	}
	for _, name := range names {
		fmt.Printf("%s marked as watered %s.\n", name, when)
	}
	if remaining := len(a.coll.Reminders(a.today)); remaining > 0 {
		fmt.Println(cli.Yellow(fmt.Sprintf("%d plant(s) still need water.", remaining)))
	}
	return nil
}

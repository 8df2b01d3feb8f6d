package main

import (
	"fmt"

	"github.com/jacksmith/plantpal/internal/ops"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove <plant>",
	Aliases: []string{"rm"},
	Short:   "Remove a plant",
	Long: `Remove a plant from the collection and save.

Plants after it move up one place in the list. A photo stored in photo_dir
is deleted too; photos elsewhere are left alone.`,
	Args:              cobra.ExactArgs(1),
	RunE:              runRemove,
	ValidArgsFunction: completePlantRefs,
}

var removeDryRun bool

func init() {
	removeCmd.Flags().BoolVar(&removeDryRun, "dry-run", false, "show what would be removed without saving")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	a, err := openApp(appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	id, err := a.coll.ResolveID(args[0])
	if err != nil {
		return err
	}
	removed, err := a.coll.Remove(id)
	if err != nil {
		return err
	}

	if removeDryRun {
		fmt.Printf("Would remove %s.\n", removed.Name)
		return nil
	}

	if err := a.coll.Save(); err != nil {
		return err
	}
	ops.DeletePhotos(a.photos, []string{removed.ImagePath}, a.logger)

	fmt.Printf("Removed %s.\n", removed.Name)
	return nil
}

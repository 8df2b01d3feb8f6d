package main

import (
	"fmt"
	"strings"

	"github.com/jacksmith/plantpal/internal/cli"
	"github.com/jacksmith/plantpal/internal/model"
	"github.com/jacksmith/plantpal/internal/ops"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a plant",
	Long: `Add a plant to the collection and save it.

The plant counts as watered today unless --watered says otherwise.

Flags:
  --water     Watering interval in days (required, at least 1)
  --sun       Sunlight need: Low, Medium or High (prefixes work, default Medium)
  --image     Path to a photo; copied into photo_dir when that is configured
  --watered   When it was last watered, e.g. 2024-01-05 or "3 days ago"
  --dry-run   Show what would be added without saving

Examples:
  plantpal add Monstera --water 7
  plantpal add "Snake Plant" --water 14 --sun low --watered yesterday`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var (
	addWater   string
	addSun     string
	addImage   string
	addWatered string
	addDryRun  bool
)

func init() {
	addCmd.Flags().StringVarP(&addWater, "water", "w", "", "watering interval in days")
	addCmd.Flags().StringVarP(&addSun, "sun", "s", string(model.SunlightMedium), "sunlight need (Low, Medium, High)")
	addCmd.Flags().StringVar(&addImage, "image", "", "path to a photo of the plant")
	addCmd.Flags().StringVar(&addWatered, "watered", "", "last watered date (default today)")
	addCmd.Flags().BoolVar(&addDryRun, "dry-run", false, "show the plant without saving")

	addCmd.RegisterFlagCompletionFunc("sun", completeSunlight)

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	name := strings.Join(args, " ")

	// Validate everything before touching the collection
	interval, err := model.ParseInterval(addWater)
	if err != nil {
		return err
	}
	sun, err := model.ParseSunlight(addSun)
	if err != nil {
		return err
	}

	a, err := openApp(appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	watered := a.today
	if addWatered != "" {
		watered, err = cli.ParseDate(addWatered, a.today)
		if err != nil {
			return err
		}
		if watered.After(a.today) {
			return &model.ValidationError{Field: "date", Message: "last watered date cannot be in the future"}
		}
	}

	p, err := model.NewPlant(name, interval, sun, addImage, watered)
	if err != nil {
		return err
	}

	if addDryRun {
		a.coll.Add(*p)
		fmt.Printf("Would add %s as #%d (every %d days, %s sun), next watering %s\n",
			p.Name, a.coll.Len(), p.WaterIntervalDays, p.Sunlight, cli.DueText(p, a.today))
		return nil
	}

	p.ImagePath, err = ops.ImportPhoto(a.photos, p.ImagePath, p.Name)
	if err != nil {
		return err
	}

	a.coll.Add(*p)
	if err := a.coll.Save(); err != nil {
		if p.ImagePath != addImage {
			ops.DeletePhotos(a.photos, []string{p.ImagePath}, a.logger)
		}
		return err
	}

	fmt.Printf("Added %s as #%d (%s), next watering %s\n",
		p.Name, a.coll.Len(), model.ShortID(p.ID), cli.DueText(p, a.today))
	if p.ImagePath != "" && p.ImagePath != addImage {
		fmt.Printf("Photo stored at %s\n", p.ImagePath)
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/plantpal/internal/cli"
	"github.com/jacksmith/plantpal/internal/model"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export plants as YAML or JSON",
	Long: `Write the whole collection to stdout or a file.

Formats:
  yaml  A report with stats, and each plant's due date and status (default)
  json  The plant file format, usable as a plants.json backup

Examples:
  plantpal export > plants.yaml
  plantpal export --format json -o backup.json`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var (
	exportFormat string
	exportOutput string
)

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "yaml", "output format (yaml, json)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")

	exportCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"yaml", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := cli.Match("format", exportFormat, []string{"yaml", "json"})
	if err != nil {
		return err
	}

	a, err := openApp(appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	plants := a.coll.All()
	var data []byte
	switch format {
	case "json":
		data, err = model.EncodePlants(plants)
	default:
		data, err = model.EncodePlantsYAML(plants, a.today)
	}
	if err != nil {
		return err
	}

	if exportOutput == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(exportOutput, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOutput, err)
	}
	fmt.Fprintf(os.Stderr, "Exported %d plant(s) to %s\n", len(plants), exportOutput)
	return nil
}

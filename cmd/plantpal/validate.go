package main

import (
	"fmt"

	"github.com/jacksmith/plantpal/internal/cli"
	"github.com/jacksmith/plantpal/internal/ops"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check data integrity",
	Long: `Load the plant file and check it for problems.

A file that cannot be loaded (bad JSON, empty name, interval below 1, unknown
sunlight level, bad date) is reported with the offending plant number.

Checks for:
- Duplicate IDs (error)
- Last watered dates after today (error)
- Plants sharing a name (warning)
- Image files that no longer exist (warning)

Exits non-zero when errors are found.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	a, err := openApp(appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	issues := ops.Validate(a.coll.All(), a.today)
	if len(issues) == 0 {
		fmt.Println(cli.Green(fmt.Sprintf("No issues found in %d plant(s).", a.coll.Len())))
		return nil
	}

	fmt.Printf("Found %d issue(s):\n\n", len(issues))
	severe := 0
	for _, issue := range issues {
		if issue.Severe() {
			severe++
		}
		fmt.Printf("#%d %s %s\n", issue.Index+1, formatIssueType(issue), issue.Message)
	}

	if severe > 0 {
		return fmt.Errorf("%d error(s) found", severe)
	}
	return nil
}

func formatIssueType(issue ops.Issue) string {
	label := fmt.Sprintf("[%s]", issue.Type)
	if issue.Severe() {
		return cli.Red(label)
	}
	return cli.Yellow(label)
}

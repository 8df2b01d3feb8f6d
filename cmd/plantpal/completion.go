package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/jacksmith/plantpal/internal/model"
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for plantpal.

To load completions:

Bash:
  $ source <(plantpal completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ plantpal completion bash > /etc/bash_completion.d/plantpal
  # macOS:
  $ plantpal completion bash > $(brew --prefix)/etc/bash_completion.d/plantpal

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  # To load completions for each session, execute once:
  $ plantpal completion zsh > "${fpath[1]}/_plantpal"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ plantpal completion fish | source
  # To load completions for each session, execute once:
  $ plantpal completion fish > ~/.config/fish/completions/plantpal.fish
`,
}

var completionBashCmd = &cobra.Command{
	Use:   "bash",
	Short: "Generate bash completion script",
	Long:  "Generate the autocompletion script for bash.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenBashCompletion(os.Stdout)
	},
}

var completionZshCmd = &cobra.Command{
	Use:   "zsh",
	Short: "Generate zsh completion script",
	Long:  "Generate the autocompletion script for zsh.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenZshCompletion(os.Stdout)
	},
}

var completionFishCmd = &cobra.Command{
	Use:   "fish",
	Short: "Generate fish completion script",
	Long:  "Generate the autocompletion script for fish.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenFishCompletion(os.Stdout, true)
	},
}

func init() {
	completionCmd.AddCommand(completionBashCmd)
	completionCmd.AddCommand(completionZshCmd)
	completionCmd.AddCommand(completionFishCmd)
	rootCmd.AddCommand(completionCmd)
}

// completePlantRefs completes list numbers and names of plants.
func completePlantRefs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	a, err := openApp(appOptions{quiet: true})
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	defer a.Close()

	var completions []string
	toCompleteLower := strings.ToLower(toComplete)

	for i, p := range a.coll.All() {
		num := strconv.Itoa(i + 1)
		if strings.HasPrefix(num, toComplete) {
			completions = append(completions, num+"\t"+p.Name)
		}
		// Names with spaces would need quoting, so offer those by number only
		if !strings.ContainsAny(p.Name, " \t") && strings.HasPrefix(strings.ToLower(p.Name), toCompleteLower) {
			completions = append(completions, p.Name+"\t"+string(model.ComputeStatus(&p, a.today)))
		}
	}

	return completions, cobra.ShellCompDirectiveNoFileComp
}

// completeSunlight completes sunlight levels.
func completeSunlight(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var completions []string
	for _, level := range model.SunlightLevels {
		if strings.HasPrefix(strings.ToLower(string(level)), strings.ToLower(toComplete)) {
			completions = append(completions, string(level))
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// completeStatus completes watering statuses.
func completeStatus(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var completions []string
	for _, s := range statusChoices() {
		if strings.HasPrefix(s, strings.ToLower(toComplete)) {
			completions = append(completions, s)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

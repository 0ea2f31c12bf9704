package main

import (
	"strings"

	"github.com/jacksmith/todo/internal/model"
	"github.com/jacksmith/todo/internal/ops"
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion",
	Short: "Generate shell completion scripts",
	Long: `Print a completion script for bash, zsh or fish.

The scripts complete subcommands and, for done and remove, the IDs of
tasks in the current task file. For example:
  source <(todo completion bash)`,
}

var completionBashCmd = &cobra.Command{
	Use:   "bash",
	Short: "Generate bash completion script",
	Long:  "Generate the autocompletion script for bash.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenBashCompletionV2(cmd.OutOrStdout(), true)
	},
}

var completionZshCmd = &cobra.Command{
	Use:   "zsh",
	Short: "Generate zsh completion script",
	Long:  "Generate the autocompletion script for zsh.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenZshCompletion(cmd.OutOrStdout())
	},
}

var completionFishCmd = &cobra.Command{
	Use:   "fish",
	Short: "Generate fish completion script",
	Long:  "Generate the autocompletion script for fish.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
	},
}

func init() {
	completionCmd.AddCommand(completionBashCmd)
	completionCmd.AddCommand(completionZshCmd)
	completionCmd.AddCommand(completionFishCmd)
	rootCmd.AddCommand(completionCmd)
}

// completeTaskIDs completes the ID of any task.
func completeTaskIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeIDs(cmd, args, toComplete, false)
}

// completePendingTaskIDs completes the ID of tasks that are not done yet.
func completePendingTaskIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeIDs(cmd, args, toComplete, true)
}

// completeIDs returns task IDs matching toComplete, described by their titles.
// Only the first argument is completed.
func completeIDs(cmd *cobra.Command, args []string, toComplete string, pendingOnly bool) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	s, err := openStorage(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	tasks, err := ops.ListTasks(s)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, t := range tasks {
		if pendingOnly && t.IsDone() {
			continue
		}
		id := model.FormatTaskID(t.ID)
		if strings.HasPrefix(id, toComplete) {
			completions = append(completions, id+"\t"+truncate(t.Title, 40))
		}
	}

	return completions, cobra.ShellCompDirectiveNoFileComp
}

// truncate shortens a string to the given number of runes, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

package main

import (
	"fmt"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/jacksmith/todo/internal/ops"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a task",
	Long: `Remove a task from the list.

Other tasks keep their IDs, and the removed ID is not handed out again
while higher IDs remain.

Examples:
  todo remove 2`,
	Args:              cobra.ArbitraryArgs,
	RunE:              runRemove,
	ValidArgsFunction: completeTaskIDs,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		printUsage(cmd)
		return nil
	}

	id, err := cli.ParseIDArg(args[0])
	if err != nil {
		return err
	}

	s, err := openStorage(cmd)
	if err != nil {
		return err
	}

	task, err := ops.RemoveTask(s, id)
	if err != nil {
		return reportNotFound(cmd, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed task %d: %s\n", task.ID, task.Title)
	return nil
}

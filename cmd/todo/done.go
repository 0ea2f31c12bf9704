package main

import (
	"fmt"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/jacksmith/todo/internal/ops"
	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task as done",
	Long: `Mark a task as done.

A task that is already done stays done. There is no way to reopen a task.

Examples:
  todo done 3`,
	Args:              cobra.ArbitraryArgs,
	RunE:              runDone,
	ValidArgsFunction: completePendingTaskIDs,
}

func init() {
	rootCmd.AddCommand(doneCmd)
}

func runDone(cmd *cobra.Command, args []string) error {
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

	task, err := ops.CompleteTask(s, id)
	if err != nil {
		return reportNotFound(cmd, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Completed task %d: %s\n", task.ID, task.Title)
	return nil
}

package main

import (
	"github.com/jacksmith/todo/internal/cli"
	"github.com/jacksmith/todo/internal/ops"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List all tasks in the order they were added.

Each line shows the task ID, a checkbox and the title:
  1. [ ] buy milk
  2. [✓] walk dog

Listing never writes. Commands that change the list lock a companion
<file>.lock (todos.json.lock by default), which stays next to the task file.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := openStorage(cmd)
	if err != nil {
		return err
	}

	tasks, err := ops.ListTasks(s)
	if err != nil {
		return err
	}

	cli.RenderTasks(cmd.OutOrStdout(), tasks)
	return nil
}

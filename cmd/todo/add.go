package main

import (
	"fmt"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/jacksmith/todo/internal/ops"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <task...>",
	Short: "Add a new task",
	Long: `Add a new pending task.

All remaining arguments are joined with spaces to form the title, so
quoting is optional.

Examples:
  todo add buy milk
  todo add "call the plumber"`,
	Args: cobra.ArbitraryArgs,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		printUsage(cmd)
		return nil
	}

	s, err := openStorage(cmd)
	if err != nil {
		return err
	}

	task, err := ops.AddTask(s, cli.JoinTitle(args))
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Added task %d: %s\n", task.ID, task.Title)
	return nil
}

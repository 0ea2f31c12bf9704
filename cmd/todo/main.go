// Package main is the entry point for the todo CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/jacksmith/todo/internal/model"
	"github.com/jacksmith/todo/internal/storage"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "todo - a minimal command-line task list",
	Long: `todo keeps a list of short text tasks in a JSON file in the current
directory (todos.json by default).

Examples:
  todo add buy milk
  todo list
  todo done 1
  todo remove 1`,
	Version: Version,
	// Unknown words fall through to the root so they print help instead of failing
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
	SilenceErrors: true,
	SilenceUsage:  true,
}

var (
	flagFile    string
	flagNoColor bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFile, "file", "", "task file (default from .todoconfig.yaml, else todos.json)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Set version template
	rootCmd.SetVersionTemplate("todo version {{.Version}}\n")
}

// openStorage loads .todoconfig.yaml from the working directory, applies
// command-line overrides and returns the task file storage.
func openStorage(cmd *cobra.Command) (*storage.Storage, error) {
	cfg, err := storage.LoadConfig(".")
	if err != nil {
		return nil, err
	}
	if flagFile != "" {
		cfg.DataFile = flagFile
	}

	configureColor(cmd, cfg.Color)
	return storage.Open(".", cfg), nil
}

func configureColor(cmd *cobra.Command, mode storage.ColorMode) {
	switch {
	case flagNoColor || mode == storage.ColorNever:
		cli.SetColorEnabled(false)
	case mode == storage.ColorAlways:
		cli.SetColorEnabled(true)
	default:
		cli.SetColorEnabled(cli.IsTerminal(cmd.OutOrStdout()))
	}
}

// reportNotFound prints a missing-task error to stderr and clears it.
// The save step has already run, so the command still succeeds.
func reportNotFound(cmd *cobra.Command, err error) error {
	var notFound *model.NotFoundError
	if errors.As(err, &notFound) {
		fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatError(err))
		return nil
	}
	return err
}

// printUsage reports a missing argument. The command is a no-op.
func printUsage(cmd *cobra.Command) {
	fmt.Fprintf(cmd.OutOrStdout(), "usage: %s\n", cmd.UseLine())
}

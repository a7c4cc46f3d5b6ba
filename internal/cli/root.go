// Package cli provides the budget-planner commands.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the command tree. Running it without a subcommand
// starts the server.
func NewRootCommand() *cobra.Command {
	serve := newServeCommand()

	root := &cobra.Command{
		Use:   "budget-planner",
		Short: "Personal budget and planner API",
		Long: `budget-planner serves the JSON API for accounts, incomes, expenses,
investments, transfers, categories, tasks and routines.

Example:
  budget-planner serve
  budget-planner series preview --start 2024-01-01 --frequency weekly --weekdays 1,3 --until 2024-01-15`,
		SilenceUsage: true,
		RunE:         serve.RunE,
	}

	root.AddCommand(serve)
	root.AddCommand(newSeriesCommand())
	return root
}

// Execute runs the root command. It is called by main.main().
func Execute() error {
	return NewRootCommand().Execute()
}

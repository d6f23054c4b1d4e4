package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove an employee",
	Long: `Remove the employee with the given ID from the roster.

The ID must match exactly, including case.

Examples:
  ems remove E1
  ems rm M1`,
	Args:              cobra.ExactArgs(1),
	RunE:              runRemove,
	ValidArgsFunction: completeEmployeeIDs,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	r, _, err := openRoster()
	if err != nil {
		return err
	}

	e, err := r.Remove(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s removed (%s).\n", e.ID, e.Name)
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/ems/internal/cli"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all employees",
	Long: `List every employee in roster order.

By default prints a table. Use --plain for one summary line per employee:
  E1 | Bob Lee | Salaried | Joined: 2024-01-15 | Ends: 2026-01-15 | 5000.00`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listPlain bool

func init() {
	listCmd.Flags().BoolVar(&listPlain, "plain", false, "print one summary line per employee")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	r, cfg, err := openRoster()
	if err != nil {
		return err
	}

	if r.Len() == 0 {
		fmt.Println(cli.Gray("No employees."))
		return nil
	}

	if listPlain {
		for _, line := range r.ListAll() {
			fmt.Println(line)
		}
		return nil
	}
	cli.RenderEmployees(os.Stdout, r.List(), cfg.Currency)
	return nil
}

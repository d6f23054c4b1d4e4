package main

import (
	"fmt"

	"github.com/jacksmith/ems/internal/cli"
	"github.com/spf13/cobra"
)

var payrollCmd = &cobra.Command{
	Use:   "payroll",
	Short: "Show the total payroll",
	Long: `Show the sum of every employee's computed salary.

Salaried employees contribute their salary, hourly employees hours x rate,
and managers base + bonus.`,
	Args: cobra.NoArgs,
	RunE: runPayroll,
}

func init() {
	rootCmd.AddCommand(payrollCmd)
}

func runPayroll(cmd *cobra.Command, args []string) error {
	r, cfg, err := openRoster()
	if err != nil {
		return err
	}

	fmt.Printf("Total Payroll: %s\n", cli.FormatMoney(cfg.Currency, r.TotalPayroll()))
	return nil
}

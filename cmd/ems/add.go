package main

import (
	"fmt"
	"strings"

	"github.com/jacksmith/ems/internal/cli"
	"github.com/jacksmith/ems/internal/model"
	"github.com/jacksmith/ems/internal/ops"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <id> <name> <type> <joined> <ends> <amount> [amount2]",
	Short: "Add an employee",
	Long: `Add an employee to the roster.

Dates use the YYYY-MM-DD format. The amounts depend on the type:
  salaried  <salary>
  hourly    <hours> <rate>
  manager   <base> <bonus>

FullTime and PartTime are accepted as aliases of salaried and hourly.
IDs are case-sensitive and must be unique.

Examples:
  ems add E1 "Bob Lee" salaried 2024-01-15 2026-01-15 5000
  ems add E2 Alice hourly 2024-02-01 2024-06-30 10 100
  ems add M1 Carol manager 2020-03-01 2030-03-01 3000 500`,
	Args:              cobra.RangeArgs(6, 7),
	RunE:              runAdd,
	ValidArgsFunction: completeAddArgs,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	r, cfg, err := openRoster()
	if err != nil {
		return err
	}

	in := ops.AddInput{
		ID:       args[0],
		Name:     args[1],
		Type:     args[2],
		JoinDate: args[3],
		EndDate:  args[4],
		Extra1:   args[5],
	}
	if len(args) > 6 {
		in.Extra2 = args[6]
	}

	e, err := r.Add(in)
	if err != nil {
		return err
	}

	fmt.Printf("%s added (%s, %s).\n", cli.Green(e.ID), e.Kind.Label(), cli.FormatMoney(cfg.Currency, e.ComputeSalary()))
	return nil
}

// completeAddArgs completes the type argument of add.
func completeAddArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 2 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var completions []string
	for _, name := range model.KindNames() {
		completions = append(completions, name+"\t"+describeAmounts(model.Kind(name)))
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// describeAmounts lists the amount arguments a kind takes, e.g. "<hours> <rate>".
func describeAmounts(k model.Kind) string {
	names := ops.AmountNames(k)
	args := make([]string, len(names))
	for i, name := range names {
		args[i] = "<" + name + ">"
	}
	return strings.Join(args, " ")
}

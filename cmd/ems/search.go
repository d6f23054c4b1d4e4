package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/ems/internal/cli"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:     "search <query>",
	Aliases: []string{"find"},
	Short:   "Search employees by ID or name",
	Long: `Search for employees whose ID or name contains the query.

Matching is a case-insensitive substring search. Results keep roster order.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

var searchPlain bool

func init() {
	searchCmd.Flags().BoolVar(&searchPlain, "plain", false, "print one summary line per employee")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	r, cfg, err := openRoster()
	if err != nil {
		return err
	}

	matches := r.Search(args[0])
	if len(matches) == 0 {
		fmt.Println("No match found.")
		return nil
	}

	if searchPlain {
		for i := range matches {
			fmt.Println(matches[i].Describe())
		}
		return nil
	}
	cli.RenderEmployees(os.Stdout, matches, cfg.Currency)
	return nil
}

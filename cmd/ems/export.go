package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jacksmith/ems/internal/export"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Export the roster to a spreadsheet",
	Long: `Write the roster to an Excel workbook.

The sheet lists every employee in roster order followed by a total payroll
row. ".xlsx" is appended when the path has no extension.

Examples:
  ems export roster.xlsx
  ems export reports/2024-q1`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	path := args[0]
	if filepath.Ext(path) == "" {
		path += ".xlsx"
	}
	if !strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return fmt.Errorf("export path must end in .xlsx: %s", path)
	}

	r, cfg, err := openRoster()
	if err != nil {
		return err
	}

	if err := export.WriteWorkbook(path, r.List(), export.Options{Currency: cfg.Currency}); err != nil {
		return err
	}

	fmt.Printf("Exported %d employees to %s\n", r.Len(), path)
	return nil
}

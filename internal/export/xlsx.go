// Package export writes the employee roster to spreadsheet workbooks.
package export

import (
	"fmt"

	"github.com/jacksmith/ems/internal/model"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// SheetName is the name of the sheet holding the roster.
const SheetName = "Employees"

// Headers are the column titles of the roster sheet.
var Headers = []string{"ID", "Name", "Type", "Joined", "Ends", "Salary"}

// columnWidths are the widths of the roster columns, in characters.
var columnWidths = []float64{10, 28, 12, 12, 12, 14}

// Options controls workbook formatting.
type Options struct {
	// Currency is prefixed to the salary number format, e.g. "₹".
	Currency string
}

// WriteWorkbook writes employees to a new workbook at path: a bold header
// row, one row per employee in roster order, and a payroll total row.
func WriteWorkbook(path string, employees []model.Employee, opts Options) error {
	f, err := Build(employees, opts)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Build renders the workbook in memory.
func Build(employees []model.Employee, opts Options) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := render(f, employees, opts); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func render(f *excelize.File, employees []model.Employee, opts Options) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	moneyFormat := "#,##0.00"
	if opts.Currency != "" {
		moneyFormat = fmt.Sprintf(`"%s"#,##0.00`, opts.Currency)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFormat})
	if err != nil {
		return fmt.Errorf("failed to create money style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		CustomNumFmt: &moneyFormat,
	})
	if err != nil {
		return fmt.Errorf("failed to create total style: %w", err)
	}

	for i, h := range Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return err
		}
		colName, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(SheetName, colName, colName, columnWidths[i]); err != nil {
			return err
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(Headers), 1)
	if err := f.SetCellStyle(SheetName, "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	total := decimal.Zero
	row := 2
	for _, e := range employees {
		salary := e.ComputeSalary()
		total = total.Add(salary)

		values := []interface{}{
			e.ID,
			e.Name,
			e.Kind.Label(),
			e.JoinDate.Format(model.DateLayout),
			e.EndDate.Format(model.DateLayout),
			salary.InexactFloat64(),
		}
		if err := setRow(f, row, values); err != nil {
			return err
		}
		cell, _ := excelize.CoordinatesToCellName(len(Headers), row)
		if err := f.SetCellStyle(SheetName, cell, cell, moneyStyle); err != nil {
			return err
		}
		row++
	}

	if err := setRow(f, row, []interface{}{"Total Payroll", "", "", "", "", total.InexactFloat64()}); err != nil {
		return err
	}
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(len(Headers), row)
	return f.SetCellStyle(SheetName, first, last, totalStyle)
}

func setRow(f *excelize.File, row int, values []interface{}) error {
	cell, _ := excelize.CoordinatesToCellName(1, row)
	if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}

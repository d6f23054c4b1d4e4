package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jacksmith/ems/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func roster(t *testing.T) []model.Employee {
	t.Helper()
	d := func(s string) time.Time {
		v, err := model.ParseDate(s)
		require.NoError(t, err)
		return v
	}
	return []model.Employee{
		model.NewSalaried("E1", "Bob Lee", d("2024-01-15"), d("2026-01-15"), decimal.RequireFromString("5000")),
		model.NewHourly("E2", "Alice", d("2023-06-01"), d("2023-12-31"), decimal.RequireFromString("10"), decimal.RequireFromString("100")),
		model.NewManager("E3", "Carol", d("2020-03-01"), d("2030-03-01"), decimal.RequireFromString("3000"), decimal.RequireFromString("500")),
	}
}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.xlsx")
	require.NoError(t, WriteWorkbook(path, roster(t), Options{Currency: "$"}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 5)

	assert.Equal(t, Headers, rows[0])
	assert.Equal(t, []string{"E1", "Bob Lee", "Salaried", "2024-01-15", "2026-01-15", "5000"}, rows[1])
	assert.Equal(t, []string{"E2", "Alice", "Hourly", "2023-06-01", "2023-12-31", "1000"}, rows[2])
	assert.Equal(t, []string{"E3", "Carol", "Manager", "2020-03-01", "2030-03-01", "3500"}, rows[3])

	assert.Equal(t, "Total Payroll", rows[4][0])
	assert.Equal(t, "9500", rows[4][len(rows[4])-1])
}

func TestBuildEmptyRoster(t *testing.T) {
	f, err := Build(nil, Options{})
	require.NoError(t, err)
	defer f.Close()

	total, err := f.GetCellValue(SheetName, "F2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "0", total)

	label, err := f.GetCellValue(SheetName, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Total Payroll", label)
}

func TestWriteWorkbookBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "roster.xlsx")
	err := WriteWorkbook(path, roster(t), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write")
}

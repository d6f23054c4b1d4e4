package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jacksmith/ems/internal/cli"
	"github.com/jacksmith/ems/internal/ops"
	"github.com/jacksmith/ems/internal/storage"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// setupTestDir changes into a fresh temporary directory with no config and
// resets global flags.
func setupTestDir(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { os.Chdir(origDir) })

	for _, key := range []string{storage.EnvDataFile, storage.EnvBackend, storage.EnvCurrency, storage.EnvLogLevel} {
		t.Setenv(key, "")
	}

	rootFile = ""
	rootBackend = ""
	rootLogLevel = ""
	listPlain = false
	searchPlain = false

	cli.SetColorEnabled(false)
	t.Cleanup(func() { cli.SetColorEnabled(true) })

	return tmpDir
}

// setupTestDirWithData adds one employee of each kind.
func setupTestDirWithData(t *testing.T) string {
	dir := setupTestDir(t)

	for _, args := range [][]string{
		{"E1", "Bob Lee", "salaried", "2024-01-15", "2026-01-15", "5000"},
		{"E2", "Alice", "hourly", "2024-02-01", "2024-06-30", "10", "100"},
		{"M1", "Carol", "manager", "2020-03-01", "2030-03-01", "3000", "500"},
	} {
		_, err := captureOutput(t, func() error { return runAdd(nil, args) })
		require.NoError(t, err)
	}

	return dir
}

// captureOutput runs fn with os.Stdout redirected and returns what it printed.
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	runErr := fn()

	w.Close()
	var buf bytes.Buffer
	buf.ReadFrom(r)
	os.Stdout = old

	return buf.String(), runErr
}

func TestAddCommand(t *testing.T) {
	dir := setupTestDir(t)

	output, err := captureOutput(t, func() error {
		return runAdd(nil, []string{"E1", "Bob Lee", "FullTime", "2024-01-15", "2026-01-15", "5000"})
	})
	require.NoError(t, err)
	assert.Equal(t, "E1 added (Salaried, ₹5000.00).\n", output)

	// Snapshot written to the default file
	data, err := os.ReadFile(filepath.Join(dir, "employees.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "id: E1")
	assert.Contains(t, string(data), "name: Bob Lee")
}

func TestAddCommandErrors(t *testing.T) {
	setupTestDirWithData(t)

	tests := []struct {
		name   string
		args   []string
		target error
	}{
		{"duplicate", []string{"E1", "Other", "salaried", "2024-01-01", "2024-12-31", "1"}, ops.ErrDuplicateID},
		{"bad date", []string{"E9", "Other", "salaried", "2024-13-40", "2024-12-31", "1"}, ops.ErrInvalidDate},
		{"bad type", []string{"E9", "Other", "intern", "2024-01-01", "2024-12-31", "1"}, ops.ErrUnknownType},
		{"bad number", []string{"E9", "Other", "hourly", "2024-01-01", "2024-12-31", "10"}, ops.ErrInvalidNumber},
		{"amount out of range", []string{"E9", "Other", "hourly", "2024-01-01", "2024-12-31", "1e2000000000", "1e2000000000"}, ops.ErrInvalidNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := captureOutput(t, func() error { return runAdd(nil, tt.args) })
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
		})
	}

	// Nothing was added
	output, err := captureOutput(t, func() error { return runList(nil, nil) })
	require.NoError(t, err)
	assert.NotContains(t, output, "E9")

	output, err = captureOutput(t, func() error { return runPayroll(nil, nil) })
	require.NoError(t, err)
	assert.Equal(t, "Total Payroll: ₹9500.00\n", output)
}

func TestListCommand(t *testing.T) {
	setupTestDirWithData(t)

	output, err := captureOutput(t, func() error { return runList(nil, nil) })
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "SALARY")
	assert.Contains(t, lines[1], "Bob Lee")
	assert.Contains(t, lines[1], "₹5000.00")
	assert.Contains(t, lines[2], "Hourly")
	assert.Contains(t, lines[2], "₹1000.00")
	assert.Contains(t, lines[3], "Manager")
	assert.Contains(t, lines[3], "₹3500.00")
}

func TestListCommandPlain(t *testing.T) {
	setupTestDirWithData(t)
	listPlain = true

	output, err := captureOutput(t, func() error { return runList(nil, nil) })
	require.NoError(t, err)
	assert.Equal(t,
		"E1 | Bob Lee | Salaried | Joined: 2024-01-15 | Ends: 2026-01-15 | 5000.00\n"+
			"E2 | Alice | Hourly | Joined: 2024-02-01 | Ends: 2024-06-30 | 1000.00\n"+
			"M1 | Carol | Manager | Joined: 2020-03-01 | Ends: 2030-03-01 | 3500.00\n",
		output)
}

func TestListCommandEmpty(t *testing.T) {
	setupTestDir(t)

	output, err := captureOutput(t, func() error { return runList(nil, nil) })
	require.NoError(t, err)
	assert.Equal(t, "No employees.\n", output)
}

func TestRemoveCommand(t *testing.T) {
	setupTestDirWithData(t)

	output, err := captureOutput(t, func() error { return runRemove(nil, []string{"E1"}) })
	require.NoError(t, err)
	assert.Equal(t, "E1 removed (Bob Lee).\n", output)

	output, err = captureOutput(t, func() error { return runList(nil, nil) })
	require.NoError(t, err)
	assert.NotContains(t, output, "Bob Lee")
	assert.Contains(t, output, "Alice")
}

func TestRemoveCommandNotFound(t *testing.T) {
	setupTestDirWithData(t)

	_, err := captureOutput(t, func() error { return runRemove(nil, []string{"E9"}) })
	require.Error(t, err)
	assert.ErrorIs(t, err, ops.ErrNotFound)
	assert.Equal(t, "error: employee not found: E9", cli.FormatError(err))
}

func TestSearchCommand(t *testing.T) {
	setupTestDirWithData(t)

	output, err := captureOutput(t, func() error { return runSearch(nil, []string{"bob"}) })
	require.NoError(t, err)
	assert.Contains(t, output, "E1")
	assert.NotContains(t, output, "Alice")
	assert.NotContains(t, output, "Carol")
}

func TestSearchCommandPlain(t *testing.T) {
	setupTestDirWithData(t)
	searchPlain = true

	output, err := captureOutput(t, func() error { return runSearch(nil, []string{"m1"}) })
	require.NoError(t, err)
	assert.Equal(t, "M1 | Carol | Manager | Joined: 2020-03-01 | Ends: 2030-03-01 | 3500.00\n", output)
}

func TestSearchCommandNoResults(t *testing.T) {
	setupTestDirWithData(t)

	output, err := captureOutput(t, func() error { return runSearch(nil, []string{"nobody"}) })
	require.NoError(t, err)
	assert.Equal(t, "No match found.\n", output)
}

func TestPayrollCommand(t *testing.T) {
	setupTestDirWithData(t)

	output, err := captureOutput(t, func() error { return runPayroll(nil, nil) })
	require.NoError(t, err)
	assert.Equal(t, "Total Payroll: ₹9500.00\n", output)
}

func TestPayrollCommandEmpty(t *testing.T) {
	setupTestDir(t)

	output, err := captureOutput(t, func() error { return runPayroll(nil, nil) })
	require.NoError(t, err)
	assert.Equal(t, "Total Payroll: ₹0.00\n", output)
}

func TestExportCommand(t *testing.T) {
	dir := setupTestDirWithData(t)

	output, err := captureOutput(t, func() error { return runExport(nil, []string{"roster"}) })
	require.NoError(t, err)
	assert.Equal(t, "Exported 3 employees to roster.xlsx\n", output)

	f, err := excelize.OpenFile(filepath.Join(dir, "roster.xlsx"))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Employees")
	require.NoError(t, err)
	assert.Len(t, rows, 5)
}

func TestExportCommandRejectsOtherExtensions(t *testing.T) {
	setupTestDirWithData(t)

	_, err := captureOutput(t, func() error { return runExport(nil, []string{"roster.csv"}) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".xlsx")
}

func TestConfigAndFlags(t *testing.T) {
	t.Run("config file sets currency and data file", func(t *testing.T) {
		dir := setupTestDir(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".emsconfig.yaml"), []byte("data_file: staff.yaml\ncurrency: \"$\"\n"), 0644))

		output, err := captureOutput(t, func() error {
			return runAdd(nil, []string{"E1", "Bob", "salaried", "2024-01-01", "2024-12-31", "12.5"})
		})
		require.NoError(t, err)
		assert.Equal(t, "E1 added (Salaried, $12.50).\n", output)

		_, err = os.Stat(filepath.Join(dir, "staff.yaml"))
		assert.NoError(t, err)
	})

	t.Run("file flag selects sqlite backend", func(t *testing.T) {
		dir := setupTestDir(t)
		rootFile = "team.db"

		_, err := captureOutput(t, func() error {
			return runAdd(nil, []string{"E1", "Bob", "manager", "2024-01-01", "2024-12-31", "100", "5"})
		})
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(dir, "team.db"))
		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(dir, "employees.yaml"))
		assert.True(t, os.IsNotExist(err))

		output, err := captureOutput(t, func() error { return runPayroll(nil, nil) })
		require.NoError(t, err)
		assert.Equal(t, "Total Payroll: ₹105.00\n", output)
	})

	t.Run("bad log level is reported", func(t *testing.T) {
		setupTestDir(t)
		rootLogLevel = "chatty"

		_, err := captureOutput(t, func() error { return runList(nil, nil) })
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestCorruptDataFile(t *testing.T) {
	dir := setupTestDir(t)
	path := filepath.Join(dir, "employees.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not: [a snapshot"), 0644))
	rootLogLevel = "disabled"

	_, err := captureOutput(t, func() error { return runList(nil, nil) })
	require.Error(t, err)
	assert.True(t, errors.Is(err, storage.ErrCorruptStore))
	assert.Contains(t, cli.FormatError(err), "fix or move it aside")

	// The file is left untouched
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "not: [a snapshot", string(data))
}

func TestCompleteEmployeeIDs(t *testing.T) {
	setupTestDirWithData(t)

	completions, directive := completeEmployeeIDs(nil, nil, "E")
	assert.Equal(t, []string{"E1\tBob Lee", "E2\tAlice"}, completions)
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)

	completions, _ = completeEmployeeIDs(nil, []string{"E1"}, "")
	assert.Empty(t, completions)
}

func TestCompleteAddArgs(t *testing.T) {
	completions, _ := completeAddArgs(nil, []string{"E1", "Bob"}, "")
	assert.Equal(t, []string{
		"salaried\t<salary>",
		"hourly\t<hours> <rate>",
		"manager\t<base> <bonus>",
	}, completions)

	completions, _ = completeAddArgs(nil, []string{"E1"}, "")
	assert.Empty(t, completions)
}

// Package cli provides CLI infrastructure for ems.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/jacksmith/ems/internal/model"
	"github.com/shopspring/decimal"
	"golang.org/x/term"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// colorEnabled tracks whether color output is enabled.
var colorEnabled = true

func init() {
	colorEnabled = IsTerminal(os.Stdout)
}

// SetColorEnabled allows overriding the color output setting.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled returns whether color output is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// IsTerminal returns true if w is a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func paint(color, s string) string {
	if !colorEnabled {
		return s
	}
	return color + s + colorReset
}

// Green returns s wrapped in green ANSI codes if colors are enabled.
func Green(s string) string { return paint(colorGreen, s) }

// Red returns s wrapped in red ANSI codes if colors are enabled.
func Red(s string) string { return paint(colorRed, s) }

// Yellow returns s wrapped in yellow ANSI codes if colors are enabled.
func Yellow(s string) string { return paint(colorYellow, s) }

// Gray returns s wrapped in gray ANSI codes if colors are enabled.
func Gray(s string) string { return paint(colorGray, s) }

// FormatMoney renders an amount with two decimals after the currency symbol.
func FormatMoney(currency string, d decimal.Decimal) string {
	return currency + d.StringFixed(2)
}

// DefaultMaxNameWidth is the default maximum visible width for name columns.
const DefaultMaxNameWidth = 40

// Table formats columnar output with automatic column width calculation.
type Table struct {
	rows       [][]string
	colWidths  []int
	maxWidths  map[int]int  // optional per-column max visible width
	rightAlign map[int]bool // columns padded on the left
}

// NewTable creates a new empty table.
func NewTable() *Table {
	return &Table{}
}

// SetMaxWidth sets the maximum visible width for a column.
// Content exceeding the limit is truncated with an ellipsis ("...").
func (t *Table) SetMaxWidth(col, maxWidth int) {
	if t.maxWidths == nil {
		t.maxWidths = make(map[int]int)
	}
	t.maxWidths[col] = maxWidth
}

// SetRightAlign right-aligns a column, for amounts.
func (t *Table) SetRightAlign(col int) {
	if t.rightAlign == nil {
		t.rightAlign = make(map[int]bool)
	}
	t.rightAlign[col] = true
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	for len(t.colWidths) < len(cols) {
		t.colWidths = append(t.colWidths, 0)
	}

	for i, col := range cols {
		width := visibleWidth(col)
		if maxW, ok := t.maxWidths[i]; ok && width > maxW {
			width = maxW
		}
		if width > t.colWidths[i] {
			t.colWidths[i] = width
		}
	}

	t.rows = append(t.rows, cols)
}

// Render writes the table to w with columns separated by two spaces.
func (t *Table) Render(w io.Writer) {
	for _, row := range t.rows {
		parts := make([]string, 0, len(row))
		for i, col := range row {
			if maxW, ok := t.maxWidths[i]; ok {
				col = Truncate(col, maxW)
			}
			padding := strings.Repeat(" ", max(0, t.colWidths[i]-visibleWidth(col)))
			switch {
			case t.rightAlign[i]:
				parts = append(parts, padding+col)
			case i < len(t.colWidths)-1:
				parts = append(parts, col+padding)
			default:
				// Last column doesn't need padding
				parts = append(parts, col)
			}
		}
		fmt.Fprintln(w, strings.Join(parts, "  "))
	}
}

// RenderEmployees writes employees as a table with a header row.
func RenderEmployees(w io.Writer, employees []model.Employee, currency string) {
	table := NewTable()
	table.SetMaxWidth(1, DefaultMaxNameWidth)
	table.SetRightAlign(5)
	table.AddRow(Gray("ID"), Gray("NAME"), Gray("TYPE"), Gray("JOINED"), Gray("ENDS"), Gray("SALARY"))
	for _, e := range employees {
		table.AddRow(
			e.ID,
			e.Name,
			e.Kind.Label(),
			e.JoinDate.Format(model.DateLayout),
			e.EndDate.Format(model.DateLayout),
			FormatMoney(currency, e.ComputeSalary()),
		)
	}
	table.Render(w)
}

// Truncate returns s cut to maxWidth visible characters, ending in "..."
// when anything was dropped. Strings containing ANSI codes are returned as is.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if strings.ContainsRune(s, '\033') || utf8.RuneCountInString(s) <= maxWidth {
		return s
	}

	runes := []rune(s)
	const ellipsis = "..."
	if maxWidth <= len(ellipsis) {
		return string(runes[:maxWidth])
	}
	return string(runes[:maxWidth-len(ellipsis)]) + ellipsis
}

// visibleWidth returns the visible width of s, excluding ANSI escape codes.
func visibleWidth(s string) int {
	width := 0
	inEscape := false

	for _, r := range s {
		if r == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		width++
	}

	return width
}

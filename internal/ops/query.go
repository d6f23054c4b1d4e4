package ops

import (
	"slices"
	"strings"

	"github.com/jacksmith/ems/internal/model"
	"github.com/shopspring/decimal"
)

// List returns all employees in roster order.
func (r *Roster) List() []model.Employee {
	return slices.Clone(r.employees)
}

// ListAll returns the Describe line of every employee in roster order.
func (r *Roster) ListAll() []string {
	lines := make([]string, 0, len(r.employees))
	for i := range r.employees {
		lines = append(lines, r.employees[i].Describe())
	}
	return lines
}

// Search returns employees whose ID or name contains query, ignoring case.
// Results keep roster order. An empty query matches everyone.
func (r *Roster) Search(query string) []model.Employee {
	q := strings.ToLower(strings.TrimSpace(query))

	var matches []model.Employee
	for _, e := range r.employees {
		if strings.Contains(strings.ToLower(e.ID), q) || strings.Contains(strings.ToLower(e.Name), q) {
			matches = append(matches, e)
		}
	}
	return matches
}

// TotalPayroll returns the sum of all computed salaries.
func (r *Roster) TotalPayroll() decimal.Decimal {
	total := decimal.Zero
	for i := range r.employees {
		total = total.Add(r.employees[i].ComputeSalary())
	}
	return total
}

// IDs returns every employee ID in roster order.
func (r *Roster) IDs() []string {
	ids := make([]string, 0, len(r.employees))
	for _, e := range r.employees {
		ids = append(ids, e.ID)
	}
	return ids
}

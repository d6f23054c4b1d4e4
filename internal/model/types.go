// Package model defines the core data structures for ems.
package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used for join and end dates.
const DateLayout = "2006-01-02"

// Kind selects the salary rule of an employee.
type Kind string

const (
	KindSalaried Kind = "salaried"
	KindHourly   Kind = "hourly"
	KindManager  Kind = "manager"
)

// Employee is one record in the roster.
//
// Only the amounts belonging to Kind are meaningful; the others stay zero.
type Employee struct {
	ID       string
	Name     string
	JoinDate time.Time
	EndDate  time.Time
	Kind     Kind

	// Salaried
	Salary decimal.Decimal

	// Hourly
	Hours decimal.Decimal
	Rate  decimal.Decimal

	// Manager
	Base  decimal.Decimal
	Bonus decimal.Decimal
}

// NewSalaried returns a salaried employee paid a fixed amount.
func NewSalaried(id, name string, joined, ends time.Time, salary decimal.Decimal) Employee {
	return Employee{ID: id, Name: name, JoinDate: joined, EndDate: ends, Kind: KindSalaried, Salary: salary}
}

// NewHourly returns an hourly employee paid hours × rate.
func NewHourly(id, name string, joined, ends time.Time, hours, rate decimal.Decimal) Employee {
	return Employee{ID: id, Name: name, JoinDate: joined, EndDate: ends, Kind: KindHourly, Hours: hours, Rate: rate}
}

// NewManager returns a manager paid base + bonus.
func NewManager(id, name string, joined, ends time.Time, base, bonus decimal.Decimal) Employee {
	return Employee{ID: id, Name: name, JoinDate: joined, EndDate: ends, Kind: KindManager, Base: base, Bonus: bonus}
}

// ComputeSalary returns the salary of the employee according to its kind.
// An employee without a kind earns zero.
func (e *Employee) ComputeSalary() decimal.Decimal {
	switch e.Kind {
	case KindSalaried:
		return e.Salary
	case KindHourly:
		return e.Hours.Mul(e.Rate)
	case KindManager:
		return e.Base.Add(e.Bonus)
	default:
		return decimal.Zero
	}
}

// Describe returns a single-line summary of the employee.
func (e *Employee) Describe() string {
	return fmt.Sprintf("%s | %s | %s | Joined: %s | Ends: %s | %s",
		e.ID, e.Name, e.Kind.Label(),
		e.JoinDate.Format(DateLayout), e.EndDate.Format(DateLayout),
		e.ComputeSalary().StringFixed(2))
}

// Label returns the display name of the kind.
func (k Kind) Label() string {
	switch k {
	case KindSalaried:
		return "Salaried"
	case KindHourly:
		return "Hourly"
	case KindManager:
		return "Manager"
	default:
		return "Employee"
	}
}

// Amounts returns the number of amount fields the kind takes.
func (k Kind) Amounts() int {
	switch k {
	case KindSalaried:
		return 1
	case KindHourly, KindManager:
		return 2
	default:
		return 0
	}
}

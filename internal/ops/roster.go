package ops

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jacksmith/ems/internal/model"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Roster owns the in-memory employee records for the lifetime of a process.
// Every mutation validates, persists the full snapshot, and only then
// replaces the in-memory records, so memory never runs ahead of the store.
type Roster struct {
	store     Store
	log       zerolog.Logger
	employees []model.Employee
}

// Open loads the snapshot from store and returns a Roster over it.
func Open(store Store, log zerolog.Logger) (*Roster, error) {
	employees, err := store.Load()
	if err != nil {
		return nil, err
	}
	log.Debug().Int("count", len(employees)).Msg("roster loaded")
	return &Roster{store: store, log: log, employees: employees}, nil
}

// AddInput holds the raw form fields of a new employee.
//
// Extra1 and Extra2 carry the kind's amounts: salary for salaried,
// hours and rate for hourly, base and bonus for manager.
type AddInput struct {
	ID       string
	Name     string
	Type     string
	JoinDate string
	EndDate  string
	Extra1   string
	Extra2   string
}

// Add validates in, appends the new employee and saves the roster.
// On any error the roster is unchanged.
func (r *Roster) Add(in AddInput) (*model.Employee, error) {
	e, err := r.build(in)
	if err != nil {
		r.log.Debug().Err(err).Str("id", in.ID).Msg("add rejected")
		return nil, err
	}

	next := append(slices.Clone(r.employees), e)
	if err := r.store.Save(next); err != nil {
		return nil, err
	}
	r.employees = next

	r.log.Info().Str("id", e.ID).Str("kind", string(e.Kind)).Int("count", len(next)).Msg("employee added")
	return &e, nil
}

// build validates in and constructs the employee it describes.
func (r *Roster) build(in AddInput) (model.Employee, error) {
	id := strings.TrimSpace(in.ID)
	name := strings.TrimSpace(in.Name)

	if id == "" {
		return model.Employee{}, ErrMissingID
	}
	if _, ok := r.Get(id); ok {
		return model.Employee{}, fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}

	joined, err := model.ParseDate(in.JoinDate)
	if err != nil {
		return model.Employee{}, fmt.Errorf("join date: %w", err)
	}
	ends, err := model.ParseDate(in.EndDate)
	if err != nil {
		return model.Employee{}, fmt.Errorf("end date: %w", err)
	}

	kind, err := model.ParseKind(in.Type)
	if err != nil {
		return model.Employee{}, err
	}

	amounts := make([]decimal.Decimal, kind.Amounts())
	for i, raw := range []string{in.Extra1, in.Extra2}[:kind.Amounts()] {
		d, err := model.ParseAmount(raw)
		if err != nil {
			return model.Employee{}, fmt.Errorf("%s: %w", amountNames[kind][i], err)
		}
		amounts[i] = d
	}

	switch kind {
	case model.KindSalaried:
		return model.NewSalaried(id, name, joined, ends, amounts[0]), nil
	case model.KindHourly:
		return model.NewHourly(id, name, joined, ends, amounts[0], amounts[1]), nil
	default:
		return model.NewManager(id, name, joined, ends, amounts[0], amounts[1]), nil
	}
}

// amountNames labels the amount fields of each kind in error messages.
var amountNames = map[model.Kind][]string{
	model.KindSalaried: {"salary"},
	model.KindHourly:   {"hours", "rate"},
	model.KindManager:  {"base", "bonus"},
}

// AmountNames returns the labels of the amount fields a kind takes.
func AmountNames(k model.Kind) []string {
	return amountNames[k]
}

// Remove deletes the first employee whose ID equals id and saves the roster.
// Returns ErrNotFound if no employee matches; the roster is then unchanged.
func (r *Roster) Remove(id string) (*model.Employee, error) {
	id = strings.TrimSpace(id)
	i := slices.IndexFunc(r.employees, func(e model.Employee) bool { return e.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	removed := r.employees[i]
	next := slices.Delete(slices.Clone(r.employees), i, i+1)
	if err := r.store.Save(next); err != nil {
		return nil, err
	}
	r.employees = next

	r.log.Info().Str("id", id).Int("count", len(next)).Msg("employee removed")
	return &removed, nil
}

// Get returns the first employee whose ID equals id.
func (r *Roster) Get(id string) (*model.Employee, bool) {
	for i := range r.employees {
		if r.employees[i].ID == id {
			e := r.employees[i]
			return &e, true
		}
	}
	return nil, false
}

// Len returns the number of employees in the roster.
func (r *Roster) Len() int {
	return len(r.employees)
}

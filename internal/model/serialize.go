package model

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// SnapshotVersion is the version written to every snapshot document.
const SnapshotVersion = 1

// ErrSnapshotVersion is returned when a snapshot carries an unsupported version.
var ErrSnapshotVersion = errors.New("unsupported snapshot version")

// Record is the string form of an Employee shared by snapshot codecs.
// Only the amounts belonging to Type are set.
type Record struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	JoinDate string `yaml:"join_date"`
	EndDate  string `yaml:"end_date"`
	Salary   string `yaml:"salary,omitempty"`
	Hours    string `yaml:"hours,omitempty"`
	Rate     string `yaml:"rate,omitempty"`
	Base     string `yaml:"base,omitempty"`
	Bonus    string `yaml:"bonus,omitempty"`
}

// snapshotDoc is the decoded shape of a YAML snapshot.
type snapshotDoc struct {
	Version   int      `yaml:"version"`
	Employees []Record `yaml:"employees"`
}

// ToRecord converts an employee to its string form.
func ToRecord(e Employee) Record {
	r := Record{
		ID:       e.ID,
		Name:     e.Name,
		Type:     string(e.Kind),
		JoinDate: e.JoinDate.Format(DateLayout),
		EndDate:  e.EndDate.Format(DateLayout),
	}
	switch e.Kind {
	case KindSalaried:
		r.Salary = e.Salary.String()
	case KindHourly:
		r.Hours = e.Hours.String()
		r.Rate = e.Rate.String()
	case KindManager:
		r.Base = e.Base.String()
		r.Bonus = e.Bonus.String()
	}
	return r
}

// Employee converts a record back to an employee.
// Unlike the add path, the type must be a canonical kind name.
func (r Record) Employee() (Employee, error) {
	joined, err := ParseDate(r.JoinDate)
	if err != nil {
		return Employee{}, fmt.Errorf("employee %s join_date: %w", r.ID, err)
	}
	ends, err := ParseDate(r.EndDate)
	if err != nil {
		return Employee{}, fmt.Errorf("employee %s end_date: %w", r.ID, err)
	}

	amount := func(field, value string) (decimal.Decimal, error) {
		d, err := ParseAmount(value)
		if err != nil {
			return decimal.Zero, fmt.Errorf("employee %s %s: %w", r.ID, field, err)
		}
		return d, nil
	}

	switch Kind(r.Type) {
	case KindSalaried:
		salary, err := amount("salary", r.Salary)
		if err != nil {
			return Employee{}, err
		}
		return NewSalaried(r.ID, r.Name, joined, ends, salary), nil
	case KindHourly:
		hours, err := amount("hours", r.Hours)
		if err != nil {
			return Employee{}, err
		}
		rate, err := amount("rate", r.Rate)
		if err != nil {
			return Employee{}, err
		}
		return NewHourly(r.ID, r.Name, joined, ends, hours, rate), nil
	case KindManager:
		base, err := amount("base", r.Base)
		if err != nil {
			return Employee{}, err
		}
		bonus, err := amount("bonus", r.Bonus)
		if err != nil {
			return Employee{}, err
		}
		return NewManager(r.ID, r.Name, joined, ends, base, bonus), nil
	default:
		return Employee{}, fmt.Errorf("employee %s: %w: %q", r.ID, ErrUnknownKind, r.Type)
	}
}

// EncodeSnapshot renders the full roster as a YAML snapshot document.
// Records keep their roster order.
func EncodeSnapshot(employees []Employee) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	addIntField(doc, "version", SnapshotVersion)

	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, e := range employees {
		seq.Content = append(seq.Content, buildRecordNode(ToRecord(e)))
	}
	doc.Content = append(doc.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "employees"},
		seq,
	)

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a YAML snapshot document.
func DecodeSnapshot(data []byte) ([]Employee, error) {
	var doc snapshotDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	if doc.Version != SnapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrSnapshotVersion, doc.Version)
	}

	employees := make([]Employee, 0, len(doc.Employees))
	for _, r := range doc.Employees {
		e, err := r.Employee()
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, nil
}

// buildRecordNode creates a yaml.Node for a Record with a fixed field order.
func buildRecordNode(r Record) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}

	addStringField(node, "id", r.ID)
	addStringField(node, "name", r.Name)
	addStringField(node, "type", r.Type)
	addStringField(node, "join_date", r.JoinDate)
	addStringField(node, "end_date", r.EndDate)

	for _, f := range []struct{ key, value string }{
		{"salary", r.Salary},
		{"hours", r.Hours},
		{"rate", r.Rate},
		{"base", r.Base},
		{"bonus", r.Bonus},
	} {
		if f.value != "" {
			addStringField(node, f.key, f.value)
		}
	}

	return node
}

// Helper functions for building yaml.Node

// addStringField tags values as strings so the encoder quotes anything that
// would otherwise resolve to a number, date, bool or null.
func addStringField(node *yaml.Node, key, value string) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: value, Tag: "!!str"},
	)
}

func addIntField(node *yaml.Node, key string, value int) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: strconv.Itoa(value), Tag: "!!int"},
	)
}

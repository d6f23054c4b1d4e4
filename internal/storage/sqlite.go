package storage

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/jacksmith/ems/internal/model"
	_ "modernc.org/sqlite"
)

const createEmployeesTable = `CREATE TABLE IF NOT EXISTS employees (
	position  INTEGER PRIMARY KEY,
	id        TEXT NOT NULL,
	name      TEXT NOT NULL,
	type      TEXT NOT NULL,
	join_date TEXT NOT NULL,
	end_date  TEXT NOT NULL,
	salary    TEXT NOT NULL DEFAULT '',
	hours     TEXT NOT NULL DEFAULT '',
	rate      TEXT NOT NULL DEFAULT '',
	base      TEXT NOT NULL DEFAULT '',
	bonus     TEXT NOT NULL DEFAULT ''
)`

// SQLiteStore keeps the roster in a single SQLite database file.
// Every save replaces the whole table inside one transaction.
type SQLiteStore struct {
	path string
}

// NewSQLiteStore returns a SQLiteStore for the given database path.
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string {
	return s.path
}

func (s *SQLiteStore) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, err
	}
	// One process, one connection.
	db.SetMaxOpenConns(1)
	return db, nil
}

// Load reads all rows in position order. A missing file yields an empty
// roster; the file is not created.
// Returns ErrCorruptStore if the file is not a database, lacks the
// employees table, or holds rows that do not decode.
func (s *SQLiteStore) Load() ([]model.Employee, error) {
	if _, err := os.Stat(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to access %s: %v", ErrCorruptStore, s.path, err)
	}

	db, err := s.open()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %v", ErrCorruptStore, s.path, err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT id, name, type, join_date, end_date, salary, hours, rate, base, bonus
		FROM employees ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptStore, s.path, err)
	}
	defer rows.Close()

	var employees []model.Employee
	for rows.Next() {
		var r model.Record
		if err := rows.Scan(&r.ID, &r.Name, &r.Type, &r.JoinDate, &r.EndDate,
			&r.Salary, &r.Hours, &r.Rate, &r.Base, &r.Bonus); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrCorruptStore, s.path, err)
		}
		e, err := r.Employee()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrCorruptStore, s.path, err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptStore, s.path, err)
	}

	return employees, nil
}

// Save replaces the stored roster. The database and table are created on
// first save. Returns ErrIOFailure on any database error; the previous
// contents survive a failed save.
func (s *SQLiteStore) Save(employees []model.Employee) error {
	db, err := s.open()
	if err != nil {
		return fmt.Errorf("%w: failed to open %s: %v", ErrIOFailure, s.path, err)
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %v", ErrIOFailure, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(createEmployeesTable); err != nil {
		return fmt.Errorf("%w: failed to create employees table: %v", ErrIOFailure, err)
	}
	if _, err := tx.Exec("DELETE FROM employees"); err != nil {
		return fmt.Errorf("%w: failed to clear employees: %v", ErrIOFailure, err)
	}

	stmt, err := tx.Prepare(`INSERT INTO employees
		(position, id, name, type, join_date, end_date, salary, hours, rate, base, bonus)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("%w: failed to prepare insert: %v", ErrIOFailure, err)
	}
	defer stmt.Close()

	for i, e := range employees {
		r := model.ToRecord(e)
		if _, err := stmt.Exec(i, r.ID, r.Name, r.Type, r.JoinDate, r.EndDate,
			r.Salary, r.Hours, r.Rate, r.Base, r.Bonus); err != nil {
			return fmt.Errorf("%w: failed to insert employee %s: %v", ErrIOFailure, r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit: %v", ErrIOFailure, err)
	}
	return nil
}

package ops

import "github.com/jacksmith/ems/internal/model"

// Store defines the persistence interface required by the roster.
// The concrete implementations live in the storage package, but this
// interface allows alternative backends (in-memory, failing) for testing.
type Store interface {
	Load() ([]model.Employee, error)
	Save(employees []model.Employee) error
}

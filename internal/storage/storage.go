// Package storage persists the employee roster as a single snapshot file.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jacksmith/ems/internal/model"
)

var (
	// ErrCorruptStore is returned when a snapshot exists but cannot be decoded.
	ErrCorruptStore = errors.New("corrupt store")

	// ErrIOFailure is returned when a snapshot cannot be written.
	ErrIOFailure = errors.New("i/o failure")
)

// Backend names accepted in configuration.
const (
	BackendYAML   = "yaml"
	BackendSQLite = "sqlite"
)

// Backend loads and saves whole-roster snapshots.
type Backend interface {
	Load() ([]model.Employee, error)
	Save(employees []model.Employee) error
	Path() string
}

// Open returns the backend selected by cfg.
// When cfg.Backend is empty the backend is inferred from the file extension.
func Open(cfg *Config) (Backend, error) {
	if cfg.DataFile == "" {
		return nil, fmt.Errorf("no data file configured")
	}

	backend := strings.ToLower(cfg.Backend)
	if backend == "" {
		backend = BackendFor(cfg.DataFile)
	}

	switch backend {
	case BackendYAML:
		return NewFileStore(cfg.DataFile), nil
	case BackendSQLite:
		return NewSQLiteStore(cfg.DataFile), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want %s or %s)", cfg.Backend, BackendYAML, BackendSQLite)
	}
}

// BackendFor infers a backend name from a data file path.
func BackendFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return BackendSQLite
	default:
		return BackendYAML
	}
}

// FileStore keeps the roster in a YAML snapshot file.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore for the given snapshot path.
// The file is not touched until Load or Save is called.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the snapshot file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the snapshot. A missing file yields an empty roster.
// Returns ErrCorruptStore if the file exists but cannot be read or decoded.
func (s *FileStore) Load() ([]model.Employee, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to read %s: %v", ErrCorruptStore, s.path, err)
	}

	employees, err := model.DecodeSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptStore, s.path, err)
	}
	return employees, nil
}

// Save overwrites the snapshot with the full roster.
// The data is written to a temporary file in the same directory and renamed
// over the snapshot, so a failed save leaves the previous snapshot intact.
// Returns ErrIOFailure on any write error.
func (s *FileStore) Save(employees []model.Employee) error {
	data, err := model.EncodeSnapshot(employees)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: failed to create temp file in %s: %v", ErrIOFailure, dir, err)
	}
	tmpPath := tmp.Name()

	// Clean up the temp file on any failure path
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: failed to write %s: %v", ErrIOFailure, tmpPath, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: failed to sync %s: %v", ErrIOFailure, tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: failed to close %s: %v", ErrIOFailure, tmpPath, err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("%w: failed to set permissions on %s: %v", ErrIOFailure, tmpPath, err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("%w: failed to replace %s: %v", ErrIOFailure, s.path, err)
	}

	committed = true
	return nil
}

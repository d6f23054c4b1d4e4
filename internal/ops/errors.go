// Package ops implements the employee roster operations: validation,
// mutation and persistence of the full snapshot.
package ops

import (
	"errors"

	"github.com/jacksmith/ems/internal/model"
)

// Input validation failures. None of them mutate the roster.
var (
	// ErrMissingID is returned when an add request has a blank ID.
	ErrMissingID = errors.New("employee ID is required")

	// ErrDuplicateID is returned when an ID is already in the roster.
	ErrDuplicateID = errors.New("ID already exists")

	// ErrInvalidDate is returned when a date is not in YYYY-MM-DD form.
	ErrInvalidDate = model.ErrInvalidDate

	// ErrInvalidNumber is returned when an amount is not a non-negative decimal.
	ErrInvalidNumber = model.ErrInvalidNumber

	// ErrUnknownType is returned when the type selector names no kind.
	ErrUnknownType = model.ErrUnknownKind
)

// ErrNotFound is returned when a remove target is not in the roster.
var ErrNotFound = errors.New("employee not found")

// IsValidation reports whether err is an input validation failure.
func IsValidation(err error) bool {
	for _, target := range []error{ErrMissingID, ErrDuplicateID, ErrInvalidDate, ErrInvalidNumber, ErrUnknownType} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

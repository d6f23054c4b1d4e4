package cli

import (
	"errors"

	"github.com/jacksmith/ems/internal/ops"
	"github.com/jacksmith/ems/internal/storage"
)

// hints suggest how to recover from well-known failures.
var hints = []struct {
	target error
	hint   string
}{
	{ops.ErrInvalidDate, "Dates use the YYYY-MM-DD format, e.g. 2024-01-31."},
	{ops.ErrUnknownType, "Type must be salaried, hourly or manager."},
	{ops.ErrInvalidNumber, "Amounts are non-negative decimals, e.g. 1200.50."},
	{ops.ErrDuplicateID, "Use `ems search` to see existing IDs."},
	{storage.ErrCorruptStore, "The data file could not be read; fix or move it aside. It was not modified."},
}

// addUsageHint covers validation failures without a more specific hint.
const addUsageHint = "Run `ems add --help` for the argument format."

// Hint returns a recovery suggestion for err, or "" if there is none.
func Hint(err error) string {
	for _, h := range hints {
		if errors.Is(err, h.target) {
			return h.hint
		}
	}
	if ops.IsValidation(err) {
		return addUsageHint
	}
	return ""
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output and
// appends a hint on its own line when one applies.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	msg := Red("error:") + " " + err.Error()
	if hint := Hint(err); hint != "" {
		msg += "\n" + Yellow(hint)
	}
	return msg
}

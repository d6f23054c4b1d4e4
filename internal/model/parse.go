package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidDate is returned when a date is not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidNumber is returned when an amount is not a non-negative decimal.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrUnknownKind is returned when a type selector names no kind.
	ErrUnknownKind = errors.New("unknown employee type")
)

// kindAliases maps lowercase type selectors to kinds. The form labels of
// the desktop app (FullTime, PartTime) are kept as aliases.
var kindAliases = map[string]Kind{
	"salaried": KindSalaried,
	"fulltime": KindSalaried,
	"hourly":   KindHourly,
	"parttime": KindHourly,
	"manager":  KindManager,
}

// KindNames returns the canonical kind names in display order.
func KindNames() []string {
	return []string{string(KindSalaried), string(KindHourly), string(KindManager)}
}

// ParseKind resolves a type selector to a kind. Matching is case-insensitive.
// Returns ErrUnknownKind if the selector names no kind.
func ParseKind(s string) (Kind, error) {
	k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: %q (want one of %s)", ErrUnknownKind, s, strings.Join(KindNames(), ", "))
	}
	return k, nil
}

// ParseDate parses a calendar date in YYYY-MM-DD form.
// Returns ErrInvalidDate on malformed input or impossible dates like 2024-13-40.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidDate, s)
	}
	return t, nil
}

// Amounts are bounded so that salary arithmetic and fixed-point formatting
// stay cheap: at most MaxAmount, with an exponent within ±maxAmountExponent.
const maxAmountExponent = 18

// MaxAmount is the largest amount ParseAmount accepts.
var MaxAmount = decimal.New(1, 15)

// ParseAmount parses a non-negative decimal amount.
// Returns ErrInvalidNumber if s is not a decimal, is negative, or is out of
// range (above MaxAmount or with more than 18 decimal places).
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a decimal", ErrInvalidNumber, s)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %q must not be negative", ErrInvalidNumber, s)
	}
	// Check the exponent before comparing: Cmp rescales, which is itself
	// unbounded for exponents like 1e2000000000.
	if exp := d.Exponent(); exp > maxAmountExponent || exp < -maxAmountExponent {
		return decimal.Zero, fmt.Errorf("%w: %q is out of range", ErrInvalidNumber, s)
	}
	if d.GreaterThan(MaxAmount) {
		return decimal.Zero, fmt.Errorf("%w: %q exceeds %s", ErrInvalidNumber, s, MaxAmount.String())
	}
	return d, nil
}

package money

import "errors"

// Common money arithmetic errors
var (
	// ErrCurrencyMismatch is returned when two amounts with different
	// currencies are combined. Mixing currencies is never implicit.
	ErrCurrencyMismatch = errors.New("amounts have different currencies")

	// ErrEmptySum is returned when summing an empty slice. The sum of no
	// amounts has no currency, so it is undefined rather than zero.
	ErrEmptySum = errors.New("cannot sum an empty list of amounts")

	// ErrUnsupportedCurrency is returned when an ISO code has no entry in
	// the internal currency table.
	ErrUnsupportedCurrency = errors.New("unsupported currency")
)

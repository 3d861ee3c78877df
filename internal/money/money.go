// Package money provides currency-tagged decimal amounts.
//
// Amounts carry their currency and refuse arithmetic across currency
// boundaries. The currency table is fixed: the internal index feeds the
// credit-note numbering scheme (EUR=00, USD=01), so extending the table is
// a data change here and nowhere else.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency identifies one of the supported settlement currencies.
type Currency struct {
	Symbol        string // Monetary symbol for display ("€", "$")
	ISOCode       string // ISO 4217 code ("EUR", "USD")
	InternalIndex int    // Index used in credit-note numbers (EUR=0, USD=1)
}

// Supported currencies.
var (
	EUR = Currency{Symbol: "€", ISOCode: "EUR", InternalIndex: 0}
	USD = Currency{Symbol: "$", ISOCode: "USD", InternalIndex: 1}
)

var currencies = map[string]Currency{
	EUR.ISOCode: EUR,
	USD.ISOCode: USD,
}

// LookupCurrency resolves an ISO 4217 code (case-insensitive) against the
// internal table. Unknown codes return ErrUnsupportedCurrency.
func LookupCurrency(isoCode string) (Currency, error) {
	c, ok := currencies[strings.ToUpper(isoCode)]
	if !ok {
		return Currency{}, fmt.Errorf("%w: %s", ErrUnsupportedCurrency, isoCode)
	}
	return c, nil
}

// Money is an arbitrary-precision amount tagged with its currency.
type Money struct {
	Amount   decimal.Decimal
	Currency Currency
}

// New returns an amount in the given currency.
func New(amount decimal.Decimal, currency Currency) Money {
	return Money{Amount: amount, Currency: currency}
}

// FromCents converts a smallest-unit integer amount (as Stripe reports
// them) into a Money value.
func FromCents(cents int64, currency Currency) Money {
	return Money{Amount: decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)), Currency: currency}
}

// Add returns m + other. Fails with ErrCurrencyMismatch unless both
// amounts share a currency.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency.ISOCode != other.Currency.ISOCode {
		return Money{}, fmt.Errorf("%w: %s and %s",
			ErrCurrencyMismatch, m.Currency.ISOCode, other.Currency.ISOCode)
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

// Sub returns m - other, with the same currency check as Add.
func (m Money) Sub(other Money) (Money, error) {
	if m.Currency.ISOCode != other.Currency.ISOCode {
		return Money{}, fmt.Errorf("%w: %s and %s",
			ErrCurrencyMismatch, m.Currency.ISOCode, other.Currency.ISOCode)
	}
	return Money{Amount: m.Amount.Sub(other.Amount), Currency: m.Currency}, nil
}

// Abs returns the non-negative version of m.
func (m Money) Abs() Money {
	if m.Amount.IsNegative() {
		return Money{Amount: m.Amount.Neg(), Currency: m.Currency}
	}
	return m
}

// Equal reports whether both amount and currency match.
func (m Money) Equal(other Money) bool {
	return m.Currency.ISOCode == other.Currency.ISOCode && m.Amount.Equal(other.Amount)
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.Amount.IsNegative()
}

// Sum reduces a non-empty slice of amounts. An empty slice is an error:
// there is no currency to express zero in.
func Sum(amounts []Money) (Money, error) {
	if len(amounts) == 0 {
		return Money{}, ErrEmptySum
	}
	total := amounts[0]
	for _, a := range amounts[1:] {
		var err error
		total, err = total.Add(a)
		if err != nil {
			return Money{}, err
		}
	}
	return total, nil
}

// String renders the amount with two decimals and comma-grouped thousands
// ("1,234.50"). The currency symbol is not included; callers that want it
// prepend Currency.Symbol.
func (m Money) String() string {
	s := m.Amount.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

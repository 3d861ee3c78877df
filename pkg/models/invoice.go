// Package models holds the canonical typed entities for Stripe billing
// records. Each entity has exactly one definition here; the stripeapi
// package validates raw API payloads into these structs at the boundary.
package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/biter777/countries"

	"github.com/LeakIX/stripe-accounting/internal/money"
)

// InvoiceStatus is the Stripe invoice lifecycle status.
type InvoiceStatus string

const (
	InvoiceStatusDraft         InvoiceStatus = "draft"
	InvoiceStatusOpen          InvoiceStatus = "open"
	InvoiceStatusPaid          InvoiceStatus = "paid"
	InvoiceStatusVoid          InvoiceStatus = "void"
	InvoiceStatusUncollectible InvoiceStatus = "uncollectible"
)

// Address is a customer postal address.
type Address struct {
	City        string
	CountryCode string // ISO 3166-1 alpha-2
	Line1       string
	Line2       string
	PostalCode  string
	State       string
}

// CountryName resolves the alpha-2 code to the English country name.
// Unknown codes fall back to the raw code.
func (a Address) CountryName() string {
	return countryName(a.CountryCode)
}

// Customer is the invoice counterparty.
type Customer struct {
	Name    string
	Email   string
	Address Address
	VAT     string // VAT identifier; empty for B2C customers
}

// IsB2B reports whether the customer carries a VAT identifier.
func (c Customer) IsB2B() bool {
	return c.VAT != ""
}

// IsBelgiumBased reports whether the customer address is in Belgium.
func (c Customer) IsBelgiumBased() bool {
	return c.Address.CountryCode == "BE"
}

// TaxRate is an applied tax rate, tagged with its jurisdiction.
type TaxRate struct {
	ID          string
	Percentage  float64
	CountryCode string // ISO 3166-1 alpha-2
}

// CountryName resolves the rate's jurisdiction to a country name.
func (t TaxRate) CountryName() string {
	return countryName(t.CountryCode)
}

// countryName resolves an alpha-2 code to the English country name.
// ByName reports unrecognized input as None, not Unknown; both mean the
// code did not resolve, so the raw code is returned instead.
func countryName(code string) string {
	c := countries.ByName(code)
	if c == countries.None || c == countries.Unknown {
		return code
	}
	return c.String()
}

// Product is one invoice line.
type Product struct {
	StripeID         string
	Description      string
	Quantity         int64
	UnitPriceExclTax money.Money
	AmountExclTax    money.Money
	TaxRate          *TaxRate
}

// Invoice is a finalized (or draft) Stripe invoice.
type Invoice struct {
	ID       string
	Number   string // formatted <prefix>-<NNNN>
	Status   InvoiceStatus
	Currency money.Currency
	Customer Customer

	// Totals
	Amount               money.Money // amount due
	Subtotal             money.Money
	SubtotalExcludingTax money.Money
	Total                money.Money
	TotalExcludingTax    money.Money
	Tax                  *money.Money // nil when untaxed

	TaxRate  *TaxRate // nil when untaxed
	Products []Product

	Created     time.Time
	PeriodStart time.Time
	FinalizedAt *time.Time // nil while not finalized
	PDFLink     string
}

func (i *Invoice) IsDraft() bool         { return i.Status == InvoiceStatusDraft }
func (i *Invoice) IsOpen() bool          { return i.Status == InvoiceStatusOpen }
func (i *Invoice) IsPaid() bool          { return i.Status == InvoiceStatusPaid }
func (i *Invoice) IsVoid() bool          { return i.Status == InvoiceStatusVoid }
func (i *Invoice) IsUncollectible() bool { return i.Status == InvoiceStatusUncollectible }

// IsTaxable reports whether tax was applied to the invoice.
func (i *Invoice) IsTaxable() bool {
	return i.TaxRate != nil
}

// NumberSuffix parses the numeric part of the invoice number. Invoice
// numbers order by this suffix, not by string comparison: 25001-0002 comes
// before 25001-0010 and before 25001-10000.
func (i *Invoice) NumberSuffix() (int, error) {
	idx := strings.LastIndex(i.Number, "-")
	if idx < 0 || idx == len(i.Number)-1 {
		return 0, fmt.Errorf("invoice number %q has no numeric suffix", i.Number)
	}
	n, err := strconv.Atoi(i.Number[idx+1:])
	if err != nil {
		return 0, fmt.Errorf("invoice number %q has no numeric suffix: %w", i.Number, err)
	}
	return n, nil
}

// DocumentName is the base name used when downloading the invoice PDF, e.g.
// "20240131 - Invoice 24001-0042 - Status paid".
func (i *Invoice) DocumentName() string {
	date := i.PeriodStart
	if i.FinalizedAt != nil {
		date = *i.FinalizedAt
	}
	return fmt.Sprintf("%s - Invoice %s - Status %s", date.Format("20060102"), i.Number, i.Status)
}

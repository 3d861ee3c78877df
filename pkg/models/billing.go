package models

import (
	"fmt"
	"time"

	"github.com/LeakIX/stripe-accounting/internal/money"
)

// Refund is a refund of a charge, linked back to its invoice.
type Refund struct {
	ID              string
	Status          string
	Created         time.Time
	ChargeID        string
	PaymentIntentID string
	Invoice         *Invoice
}

// IsSucceeded reports whether the refund went through.
func (r Refund) IsSucceeded() bool {
	return r.Status == "succeeded"
}

// Dispute is a chargeback dispute, linked back to its invoice.
type Dispute struct {
	ID       string
	Status   string
	Created  time.Time
	ChargeID string
	Invoice  *Invoice
}

func (d Dispute) IsLost() bool          { return d.Status == "lost" }
func (d Dispute) IsWarningClosed() bool { return d.Status == "warning_closed" }

// CreditNoteMeta describes a credit note Stripe itself already issued.
type CreditNoteMeta struct {
	ID        string
	Number    string
	Created   time.Time
	InvoiceID string
	PDFLink   string
}

// DocumentName is the base name used when downloading the credit-note PDF,
// e.g. "20240131 - Credit note - ABCD-CN-01".
func (c CreditNoteMeta) DocumentName() string {
	return fmt.Sprintf("%s - Credit note - %s", c.Created.Format("20060102"), c.Number)
}

// GeneratedCreditNote is a credit note this tool emits for an invoice.
// Immutable once numbered.
type GeneratedCreditNote struct {
	Number        string // S<YY><CC><OSS>-<NNNN>
	InvoiceNumber string
	IssueDate     time.Time
	Customer      Customer
	Products      []Product

	Subtotal                   money.Money
	SubtotalTax                *money.Money // nil when untaxed
	TaxRate                    *TaxRate     // nil when untaxed
	Amount                     money.Money
	TotalAdjustmentAmount      money.Money
	AdjustmentAppliedToInvoice money.Money
}

// IsTaxable reports whether the underlying invoice carried tax.
func (g GeneratedCreditNote) IsTaxable() bool {
	return g.TaxRate != nil
}

// DocumentBaseName is the file stem for the rendered HTML and PDF outputs.
func (g GeneratedCreditNote) DocumentBaseName() string {
	return fmt.Sprintf("%s-CN-%s-INVOICE-%s", g.IssueDate.Format("20060102"), g.Number, g.InvoiceNumber)
}

// SubscriptionEventKind distinguishes lifecycle events worth reporting.
type SubscriptionEventKind string

const (
	SubscriptionCreated  SubscriptionEventKind = "created"
	SubscriptionCanceled SubscriptionEventKind = "canceled"
)

// SubscriptionEvent is a subscription lifecycle change, reported to a
// reporting platform.
type SubscriptionEvent struct {
	Kind          SubscriptionEventKind
	CustomerEmail string
	OccurredAt    time.Time
}

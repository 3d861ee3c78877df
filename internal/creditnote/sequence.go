package creditnote

import (
	"fmt"
	"time"

	"github.com/LeakIX/stripe-accounting/internal/money"
	"github.com/LeakIX/stripe-accounting/pkg/models"
)

// FormatNumber builds a credit-note number:
//
//	S<YY><CC><OSS>-<NNNN>
//	  |   |   |      |------ sequence number, zero-padded to 4 digits
//	  |   |   |------------- 1 if OSS; always 1 here since every credit
//	  |   |                  note originates from Stripe
//	  |   |----------------- currency index, zero-padded (00=EUR, 01=USD)
//	  |--------------------- 2-digit issue year
func FormatNumber(issueDate time.Time, currency money.Currency, index int) string {
	return fmt.Sprintf("S%02d%02d1-%04d", issueDate.Year()%100, currency.InternalIndex, index)
}

// AssignNumbers turns ordered candidates into numbered credit notes,
// incrementing by one per candidate from firstIndex: no gaps, no reuse
// within one invocation. There is no persisted counter; the caller supplies
// a firstIndex that does not collide with previously issued numbers.
func AssignNumbers(candidates []Candidate, firstIndex int, issueDate time.Time, currency money.Currency) []models.GeneratedCreditNote {
	notes := make([]models.GeneratedCreditNote, 0, len(candidates))
	index := firstIndex
	for _, c := range candidates {
		notes = append(notes, NewGeneratedCreditNote(c.Invoice, FormatNumber(issueDate, currency, index), issueDate))
		index++
	}
	return notes
}

// NewGeneratedCreditNote builds the credit note reversing an invoice in
// full: the adjustment equals the invoice total.
func NewGeneratedCreditNote(inv *models.Invoice, number string, issueDate time.Time) models.GeneratedCreditNote {
	return models.GeneratedCreditNote{
		Number:                     number,
		InvoiceNumber:              inv.Number,
		IssueDate:                  issueDate,
		Customer:                   inv.Customer,
		Products:                   inv.Products,
		Subtotal:                   inv.Subtotal,
		SubtotalTax:                inv.Tax,
		TaxRate:                    inv.TaxRate,
		Amount:                     inv.Amount,
		TotalAdjustmentAmount:      inv.Total,
		AdjustmentAppliedToInvoice: inv.Total,
	}
}

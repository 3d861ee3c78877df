package creditnote

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeakIX/stripe-accounting/internal/money"
	"github.com/LeakIX/stripe-accounting/pkg/models"
)

var issueDate = time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "S24001-0001", FormatNumber(issueDate, money.EUR, 1))
	assert.Equal(t, "S24011-0042", FormatNumber(issueDate, money.USD, 42))
	assert.Equal(t, "S25001-12345", FormatNumber(issueDate.AddDate(1, 0, 0), money.EUR, 12345))
}

func TestAssignNumbersIsSequential(t *testing.T) {
	candidates := []Candidate{
		{Invoice: invoice("25001-0002", models.InvoiceStatusVoid), Reason: ReasonVoided},
		{Invoice: invoice("25001-0005", models.InvoiceStatusPaid), Reason: ReasonRefunded},
		{Invoice: invoice("25001-0010", models.InvoiceStatusVoid), Reason: ReasonVoided},
	}

	notes := AssignNumbers(candidates, 1, issueDate, money.EUR)
	require.Len(t, notes, 3)
	assert.Equal(t, "S24001-0001", notes[0].Number)
	assert.Equal(t, "S24001-0002", notes[1].Number)
	assert.Equal(t, "S24001-0003", notes[2].Number)
	assert.Equal(t, "25001-0002", notes[0].InvoiceNumber)
}

func TestAssignNumbersStartsAtFirstIndex(t *testing.T) {
	candidates := []Candidate{
		{Invoice: invoice("25001-0002", models.InvoiceStatusVoid), Reason: ReasonVoided},
	}

	notes := AssignNumbers(candidates, 17, issueDate, money.EUR)
	require.Len(t, notes, 1)
	assert.Equal(t, "S24001-0017", notes[0].Number)
}

func TestNewGeneratedCreditNoteReversesInvoiceInFull(t *testing.T) {
	tax := money.New(decimal.RequireFromString("21.00"), money.EUR)
	inv := invoice("25001-0002", models.InvoiceStatusVoid)
	inv.Customer = models.Customer{Name: "ACME SRL", Email: "billing@acme.example"}
	inv.Subtotal = money.New(decimal.RequireFromString("100.00"), money.EUR)
	inv.Tax = &tax
	inv.TaxRate = &models.TaxRate{ID: "txr_1", Percentage: 21, CountryCode: "BE"}
	inv.Total = money.New(decimal.RequireFromString("121.00"), money.EUR)

	note := NewGeneratedCreditNote(inv, "S24001-0001", issueDate)
	assert.Equal(t, "S24001-0001", note.Number)
	assert.Equal(t, inv.Number, note.InvoiceNumber)
	assert.Equal(t, inv.Customer, note.Customer)
	assert.True(t, note.IsTaxable())
	assert.True(t, note.TotalAdjustmentAmount.Equal(inv.Total))
	assert.True(t, note.AdjustmentAppliedToInvoice.Equal(inv.Total))
	assert.Equal(t, "20240331-CN-S24001-0001-INVOICE-25001-0002", note.DocumentBaseName())
}

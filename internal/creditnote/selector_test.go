package creditnote

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeakIX/stripe-accounting/internal/money"
	"github.com/LeakIX/stripe-accounting/pkg/models"
)

func invoice(number string, status models.InvoiceStatus) *models.Invoice {
	return &models.Invoice{
		ID:       "in_" + number,
		Number:   number,
		Status:   status,
		Currency: money.EUR,
	}
}

func numbers(candidates []Candidate) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.Invoice.Number)
	}
	return out
}

func TestSelectCandidatesPicksVoidUncollectibleAndSkipsPaid(t *testing.T) {
	in := SelectionInput{
		Invoices: []*models.Invoice{
			invoice("25001-0001", models.InvoiceStatusPaid),
			invoice("25001-0002", models.InvoiceStatusVoid),
			invoice("25001-0003", models.InvoiceStatusUncollectible),
			invoice("25001-0004", models.InvoiceStatusOpen),
		},
	}

	candidates, err := SelectCandidates(in, "EUR", false, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"25001-0002", "25001-0003"}, numbers(candidates))
	assert.Equal(t, ReasonVoided, candidates[0].Reason)
	assert.Equal(t, ReasonUncollectible, candidates[1].Reason)
}

func TestSelectCandidatesIncludeOpen(t *testing.T) {
	in := SelectionInput{
		Invoices: []*models.Invoice{
			invoice("25001-0004", models.InvoiceStatusOpen),
		},
	}

	candidates, err := SelectCandidates(in, "EUR", true, nil)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, ReasonOpen, candidates[0].Reason)
}

func TestSelectCandidatesFiltersCurrency(t *testing.T) {
	usd := invoice("25101-0001", models.InvoiceStatusVoid)
	usd.Currency = money.USD
	in := SelectionInput{
		Invoices: []*models.Invoice{
			usd,
			invoice("25001-0002", models.InvoiceStatusVoid),
		},
	}

	candidates, err := SelectCandidates(in, "EUR", false, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"25001-0002"}, numbers(candidates))
}

func TestSelectCandidatesUnsupportedCurrency(t *testing.T) {
	_, err := SelectCandidates(SelectionInput{}, "GBP", false, nil)
	assert.ErrorIs(t, err, money.ErrUnsupportedCurrency)
}

func TestSelectCandidatesDeduplicatesRefunds(t *testing.T) {
	in := SelectionInput{
		Invoices: []*models.Invoice{
			invoice("25001-0002", models.InvoiceStatusVoid),
		},
		StripeEmitted: []*models.Invoice{
			invoice("25001-0005", models.InvoiceStatusPaid),
		},
		Refunded: []*models.Invoice{
			invoice("25001-0005", models.InvoiceStatusPaid), // already credited by Stripe
			invoice("25001-0002", models.InvoiceStatusVoid), // already voided
			invoice("25001-0007", models.InvoiceStatusPaid),
			invoice("25001-0007", models.InvoiceStatusPaid), // refunded twice
		},
	}

	candidates, err := SelectCandidates(in, "EUR", false, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"25001-0002", "25001-0005", "25001-0007"}, numbers(candidates))
	assert.Equal(t, ReasonRefunded, candidates[2].Reason)
}

func TestSelectCandidatesRefundsAreACatchAll(t *testing.T) {
	// Refunded invoices enter the selection whatever their own status or
	// currency; only the dedup against the other sources applies. A refund
	// is the last chance to catch a credit note forgotten elsewhere.
	paid := invoice("25001-0007", models.InvoiceStatusPaid)
	usd := invoice("25101-0001", models.InvoiceStatusPaid)
	usd.Currency = money.USD
	in := SelectionInput{
		Refunded: []*models.Invoice{paid, usd},
	}

	candidates, err := SelectCandidates(in, "EUR", false, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"25101-0001", "25001-0007"}, numbers(candidates))
	assert.Equal(t, ReasonRefunded, candidates[0].Reason)
}

func TestSelectCandidatesOrdersByNumericSuffix(t *testing.T) {
	in := SelectionInput{
		Invoices: []*models.Invoice{
			invoice("25001-0010", models.InvoiceStatusVoid),
			invoice("25001-0002", models.InvoiceStatusVoid),
			invoice("25001-10000", models.InvoiceStatusVoid),
		},
	}

	candidates, err := SelectCandidates(in, "EUR", false, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"25001-0002", "25001-0010", "25001-10000"}, numbers(candidates))
}

func TestSelectCandidatesUnparseableNumbersSortFirst(t *testing.T) {
	in := SelectionInput{
		Invoices: []*models.Invoice{
			invoice("25001-0002", models.InvoiceStatusVoid),
			invoice("DRAFT", models.InvoiceStatusVoid),
		},
	}

	candidates, err := SelectCandidates(in, "EUR", false, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"DRAFT", "25001-0002"}, numbers(candidates))
}

func TestSelectCandidatesAppliesSkipSet(t *testing.T) {
	in := SelectionInput{
		Invoices: []*models.Invoice{
			invoice("25001-0010", models.InvoiceStatusVoid),
			invoice("25001-0011", models.InvoiceStatusVoid),
			invoice("25001-0012", models.InvoiceStatusVoid),
		},
	}
	skip := ParseSkipList("25001-0010:25001-0011", zerolog.Nop())

	candidates, err := SelectCandidates(in, "EUR", false, skip)
	require.NoError(t, err)
	assert.Equal(t, []string{"25001-0012"}, numbers(candidates))
}

func TestSelectCandidatesIsIdempotent(t *testing.T) {
	in := SelectionInput{
		Invoices: []*models.Invoice{
			invoice("25001-0010", models.InvoiceStatusVoid),
			invoice("25001-0002", models.InvoiceStatusUncollectible),
		},
		Refunded: []*models.Invoice{
			invoice("25001-0007", models.InvoiceStatusPaid),
		},
	}

	first, err := SelectCandidates(in, "EUR", false, nil)
	require.NoError(t, err)
	second, err := SelectCandidates(in, "EUR", false, nil)
	require.NoError(t, err)
	assert.Equal(t, numbers(first), numbers(second))
}

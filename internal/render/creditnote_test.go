package render

import (
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeakIX/stripe-accounting/internal/money"
	"github.com/LeakIX/stripe-accounting/pkg/models"
)

func testRenderer() *Renderer {
	return &Renderer{
		company: Company{
			Name:              "ACME BV",
			AddressLine1:      "Rue Haute 1",
			AddressPostalCode: "1000",
			AddressCity:       "Brussels",
			AddressCountry:    "Belgium",
			Email:             "billing@acme.example",
			VATNumber:         "BE0123456789",
		},
		log: zerolog.Nop(),
	}
}

func eur(s string) money.Money {
	return money.New(decimal.RequireFromString(s), money.EUR)
}

func testNote() models.GeneratedCreditNote {
	return models.GeneratedCreditNote{
		Number:        "S24001-0001",
		InvoiceNumber: "25001-0002",
		IssueDate:     time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		Customer: models.Customer{
			Name:  "Jean Dupont",
			Email: "jean@example.com",
			Address: models.Address{
				Line1:       "Quai des Peniches 2",
				PostalCode:  "1000",
				City:        "Brussels",
				CountryCode: "BE",
			},
		},
		Products: []models.Product{
			{Description: "Pro plan", Quantity: 1, UnitPriceExclTax: eur("100.00"), AmountExclTax: eur("100.00")},
		},
		Subtotal:                   eur("100.00"),
		Amount:                     eur("121.00"),
		TotalAdjustmentAmount:      eur("121.00"),
		AdjustmentAppliedToInvoice: eur("121.00"),
	}
}

func TestRenderHTMLWithoutTax(t *testing.T) {
	html, err := testRenderer().RenderHTML(testNote())
	require.NoError(t, err)

	assert.Contains(t, html, "Credit note S24001-0001")
	assert.Contains(t, html, "Reverses invoice 25001-0002")
	assert.Contains(t, html, "March 31, 2024")
	assert.Contains(t, html, "ACME BV")
	assert.Contains(t, html, "Jean Dupont")
	assert.Contains(t, html, "Pro plan")
	assert.Contains(t, html, "€121.00")
	assert.NotContains(t, html, "VAT (")
}

func TestRenderHTMLWithTax(t *testing.T) {
	note := testNote()
	tax := eur("21.00")
	note.SubtotalTax = &tax
	note.TaxRate = &models.TaxRate{ID: "txr_1", Percentage: 21, CountryCode: "BE"}

	html, err := testRenderer().RenderHTML(note)
	require.NoError(t, err)
	assert.Contains(t, html, "VAT (21%)")
	assert.Contains(t, html, "€21.00")
}

func TestRenderHTMLEscapesCustomerInput(t *testing.T) {
	note := testNote()
	note.Customer.Name = "<script>alert(1)</script>"

	html, err := testRenderer().RenderHTML(note)
	require.NoError(t, err)
	assert.False(t, strings.Contains(html, "<script>alert(1)</script>"))
}

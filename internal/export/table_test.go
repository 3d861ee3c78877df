package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeakIX/stripe-accounting/internal/money"
	"github.com/LeakIX/stripe-accounting/internal/vat"
	"github.com/LeakIX/stripe-accounting/pkg/models"
)

func eur(s string) money.Money {
	return money.New(decimal.RequireFromString(s), money.EUR)
}

func TestWriteCSVRoundTrips(t *testing.T) {
	table := Table{Headers: []string{"a", "b"}}
	table.Append("1", "x")
	table.Append("2", "y")

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, table.WriteCSV(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"1", "x"}, {"2", "y"}}, records)
}

func TestRenderConsoleIncludesHeadersAndRows(t *testing.T) {
	table := Table{Headers: []string{"Country", "Amount"}}
	table.Append("Belgium", "121.00")

	var buf bytes.Buffer
	table.RenderConsole(&buf)
	out := buf.String()
	assert.Contains(t, out, "Country")
	assert.Contains(t, out, "Belgium")
	assert.Contains(t, out, "121.00")
}

func TestPayoutItemsTable(t *testing.T) {
	created := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	p := &models.Payout{
		ID:          "po_1",
		ArrivalDate: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		Items: []models.PayoutLineItem{
			{
				Description: "Subscription update",
				Kind:        models.PayoutItemCharge,
				Gross:       eur("25.00"),
				Net:         eur("24.02"),
				Created:     created,
				RelatedInvoice: &models.Invoice{
					Number: "25001-0002",
					Customer: models.Customer{
						Email:   "jean@example.com",
						Address: models.Address{CountryCode: "FR"},
					},
				},
			},
			{
				Description: "Billing Stripe fee",
				Kind:        models.PayoutItemStripeFee,
				Gross:       eur("-2.90"),
				Net:         eur("-2.90"),
				Created:     created,
			},
		},
	}

	table := PayoutItemsTable(p)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Subscription update", table.Rows[0][0])
	assert.Equal(t, "0.98", table.Rows[0][4])
	assert.Equal(t, "25001-0002", table.Rows[0][6])
	assert.Equal(t, "France", table.Rows[0][8])
	assert.Equal(t, "OSS France", table.Rows[0][9])
	// No related invoice resolved for fee items.
	assert.Equal(t, "", table.Rows[1][6])
}

func TestVATDetailTable(t *testing.T) {
	created := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	item := models.PayoutLineItem{
		Description: "Billing Stripe fee",
		Kind:        models.PayoutItemStripeFee,
		Gross:       eur("-2.90"),
		Net:         eur("-2.90"),
		Created:     created,
	}
	entry := VATDetailEntry{
		Payout: &models.Payout{ID: "po_1", ArrivalDate: created.AddDate(0, 0, 2)},
		Item:   item,
		Report: vat.ReportItem{Category: vat.CategoryBilling, Amount: eur("2.90"), Source: item},
	}

	table := VATDetailTable([]VATDetailEntry{entry})
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "2.90", table.Rows[0][10])
	assert.Equal(t, "Billing Fees", table.Rows[0][11])
	assert.Equal(t, "po_1", table.Rows[0][12])
}

func TestFileNames(t *testing.T) {
	p := &models.Payout{ID: "po_1", ArrivalDate: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "Payout 20240131 - po_1", PayoutFileName(p))

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t,
		"VAT detailed report - Payout items from 20240101 to 20240331",
		VATDetailFileName(from, until))
}

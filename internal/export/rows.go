package export

import (
	"sort"
	"time"

	"github.com/LeakIX/stripe-accounting/internal/money"
	"github.com/LeakIX/stripe-accounting/internal/vat"
	"github.com/LeakIX/stripe-accounting/pkg/models"
)

const tableTimeFormat = "2006-01-02 15:04:05"

// PayoutItemsTable lists the line items of one payout with their related
// invoice and OSS accounting account, when resolved.
func PayoutItemsTable(p *models.Payout) Table {
	t := Table{Headers: []string{
		"description", "type", "Gross amount", "Net amount", "Fee amount",
		"Datetime", "Related invoice", "Client email", "Client country",
		"Related OSS accounting account",
	}}
	for _, item := range p.Items {
		row := []string{
			item.Description,
			string(item.Kind),
			item.Gross.String(),
			item.Net.String(),
			item.Fee().String(),
			item.Created.Format(tableTimeFormat),
			"", "", "", "",
		}
		if inv := item.RelatedInvoice; inv != nil {
			row[6] = inv.Number
			row[7] = inv.Customer.Email
			row[8] = inv.Customer.Address.CountryName()
			row[9] = vat.AccountingBucket(inv.Customer)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// VATDetailEntry is one classified payout line item ready for the detailed
// report.
type VATDetailEntry struct {
	Payout *models.Payout
	Item   models.PayoutLineItem
	Report vat.ReportItem
}

// VATDetailTable builds the detailed VAT report over classified items.
func VATDetailTable(entries []VATDetailEntry) Table {
	t := Table{Headers: []string{
		"description", "type", "Gross amount", "Net amount", "Fee amount",
		"Datetime", "Related invoice", "Client email", "Client country",
		"Related OSS accounting account", "VAT Taxed amount",
		"Tax Description", "Payout ID", "Payout datetime",
	}}
	for _, e := range entries {
		row := []string{
			e.Item.Description,
			string(e.Item.Kind),
			e.Item.Gross.String(),
			e.Item.Net.String(),
			e.Item.Fee().String(),
			e.Item.Created.Format(tableTimeFormat),
			"", "", "", "",
			e.Report.Amount.String(),
			string(e.Report.Category),
			e.Payout.ID,
			e.Payout.ArrivalDate.Format(tableTimeFormat),
		}
		if inv := e.Item.RelatedInvoice; inv != nil {
			row[6] = inv.Number
			row[7] = inv.Customer.Email
			row[8] = inv.Customer.Address.CountryName()
			row[9] = vat.AccountingBucket(inv.Customer)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// CategoryTotalsTable renders per-category VAT sums.
func CategoryTotalsTable(totals map[vat.Category]money.Money) Table {
	t := Table{Headers: []string{"Category", "Amount"}}
	for _, category := range vat.SortedCategories(totals) {
		t.Append(string(category), totals[category].String())
	}
	return t
}

// CountryTable renders the paid-invoice split per country.
func CountryTable(amounts map[string]vat.CountryAmounts) Table {
	t := Table{Headers: []string{"Country", "Excluding Tax", "Including TAX"}}
	for _, country := range sortedCountries(amounts) {
		t.Append(country, amounts[country].ExcludingTax.String(), amounts[country].IncludingTax.String())
	}
	return t
}

func sortedCountries(amounts map[string]vat.CountryAmounts) []string {
	countries := make([]string, 0, len(amounts))
	for country := range amounts {
		countries = append(countries, country)
	}
	sort.Strings(countries)
	return countries
}

// PayoutFileName builds the export file stem for one payout, e.g.
// "Payout 20240131 - po_123".
func PayoutFileName(p *models.Payout) string {
	return "Payout " + p.ArrivalDate.Format("20060102") + " - " + p.ID
}

// VATDetailFileName builds the export file stem for the detailed report.
func VATDetailFileName(from, until time.Time) string {
	return "VAT detailed report - Payout items from " +
		from.Format("20060102") + " to " + until.Format("20060102")
}

package vat

import (
	"fmt"
	"sort"

	"github.com/LeakIX/stripe-accounting/internal/money"
	"github.com/LeakIX/stripe-accounting/pkg/models"
)

// AggregateByCategory sums classified items per category. An empty input is
// an error: a report over nothing has no totals. A category bucket that
// mixes currencies fails with the underlying mismatch error (a single run
// uses one reporting currency, so this indicates corrupted input).
func AggregateByCategory(items []ReportItem) (map[Category]money.Money, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("aggregate VAT items: %w", money.ErrEmptySum)
	}
	perCategory := make(map[Category][]money.Money)
	for _, item := range items {
		perCategory[item.Category] = append(perCategory[item.Category], item.Amount)
	}
	totals := make(map[Category]money.Money, len(perCategory))
	for category, amounts := range perCategory {
		total, err := money.Sum(amounts)
		if err != nil {
			return nil, fmt.Errorf("aggregate category %s: %w", category, err)
		}
		totals[category] = total
	}
	return totals, nil
}

// SortedCategories returns the categories of a totals map in a stable
// display order.
func SortedCategories(totals map[Category]money.Money) []Category {
	cs := make([]Category, 0, len(totals))
	for c := range totals {
		cs = append(cs, c)
	}
	sort.Slice(cs, func(i, j int) bool { return cs[i] < cs[j] })
	return cs
}

// CountryAmounts is the paid-invoice split for one country.
type CountryAmounts struct {
	ExcludingTax money.Money
	IncludingTax money.Money
}

// PerCountry computes, per customer country, the sum of tax-exclusive and
// tax-inclusive totals over paid and taxable invoices. Keys are country
// names. Unpaid or untaxed invoices are left out.
func PerCountry(invoices []*models.Invoice) (map[string]CountryAmounts, error) {
	perCountry := make(map[string][]*models.Invoice)
	for _, inv := range invoices {
		if !inv.IsPaid() || !inv.IsTaxable() {
			continue
		}
		country := inv.Customer.Address.CountryName()
		perCountry[country] = append(perCountry[country], inv)
	}
	amounts := make(map[string]CountryAmounts, len(perCountry))
	for country, invs := range perCountry {
		excl := make([]money.Money, 0, len(invs))
		incl := make([]money.Money, 0, len(invs))
		for _, inv := range invs {
			excl = append(excl, inv.TotalExcludingTax)
			incl = append(incl, inv.Total)
		}
		exclTotal, err := money.Sum(excl)
		if err != nil {
			return nil, fmt.Errorf("sum tax-exclusive totals for %s: %w", country, err)
		}
		inclTotal, err := money.Sum(incl)
		if err != nil {
			return nil, fmt.Errorf("sum tax-inclusive totals for %s: %w", country, err)
		}
		amounts[country] = CountryAmounts{ExcludingTax: exclTotal, IncludingTax: inclTotal}
	}
	return amounts, nil
}

package vat

import (
	"github.com/LeakIX/stripe-accounting/pkg/models"
)

// TaxRateResolver fetches a tax rate by its Stripe id.
type TaxRateResolver func(taxRateID string) (models.TaxRate, error)

// TaxRateCache memoizes tax-rate lookups for one run. Tax rates are
// immutable once created on Stripe, so entries are never invalidated; the
// cache's lifetime bounds how long they are held.
type TaxRateCache struct {
	resolve TaxRateResolver
	byID    map[string]models.TaxRate
}

// NewTaxRateCache wraps a resolver with per-run memoization.
func NewTaxRateCache(resolve TaxRateResolver) *TaxRateCache {
	return &TaxRateCache{
		resolve: resolve,
		byID:    make(map[string]models.TaxRate),
	}
}

// Get returns the tax rate for the id, resolving it at most once.
func (c *TaxRateCache) Get(taxRateID string) (models.TaxRate, error) {
	if rate, ok := c.byID[taxRateID]; ok {
		return rate, nil
	}
	rate, err := c.resolve(taxRateID)
	if err != nil {
		return models.TaxRate{}, err
	}
	c.byID[taxRateID] = rate
	return rate, nil
}

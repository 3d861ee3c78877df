// Package stripeapi is the retrieval collaborator: it pulls billing records
// from the Stripe API, paginates them fully, and validates the raw payloads
// into the typed entities of pkg/models. The accounting core never sees a
// partially parsed record.
package stripeapi

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	stripe "github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/taxrate"

	"github.com/LeakIX/stripe-accounting/internal/logger"
	"github.com/LeakIX/stripe-accounting/internal/vat"
	"github.com/LeakIX/stripe-accounting/pkg/models"
)

const pageLimit = 100

// Window is an inclusive date range at second precision: from 00:00:00 on
// the first day until 23:59:59 on the last.
type Window struct {
	From  time.Time
	Until time.Time
}

// ParseWindow builds a window from two YYYY-MM-DD calendar dates.
func ParseWindow(from, until string) (Window, error) {
	fromDate, err := time.Parse("2006-01-02", from)
	if err != nil {
		return Window{}, fmt.Errorf("invalid from date %q: %w", from, err)
	}
	untilDate, err := time.Parse("2006-01-02", until)
	if err != nil {
		return Window{}, fmt.Errorf("invalid until date %q: %w", until, err)
	}
	return Window{
		From:  fromDate,
		Until: untilDate.Add(23*time.Hour + 59*time.Minute + 59*time.Second),
	}, nil
}

// Contains reports whether t falls inside the window, bounds included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && !t.After(w.Until)
}

// Client retrieves and resolves Stripe billing records.
type Client struct {
	taxRates *vat.TaxRateCache
	log      zerolog.Logger
}

// NewClient configures the Stripe SDK with the secret key and returns a
// client with a fresh per-run tax-rate cache.
func NewClient(secretKey string) *Client {
	stripe.Key = secretKey
	c := &Client{log: logger.WithComponent("stripeapi")}
	c.taxRates = vat.NewTaxRateCache(c.fetchTaxRate)
	return c
}

// TaxRates exposes the per-run tax-rate cache.
func (c *Client) TaxRates() *vat.TaxRateCache {
	return c.taxRates
}

func (c *Client) fetchTaxRate(taxRateID string) (models.TaxRate, error) {
	raw, err := taxrate.Get(taxRateID, nil)
	if err != nil {
		return models.TaxRate{}, retrievalErr("FetchTaxRate", taxRateID, err)
	}
	return models.TaxRate{
		ID:          raw.ID,
		Percentage:  raw.Percentage,
		CountryCode: raw.Country,
	}, nil
}

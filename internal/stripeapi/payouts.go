package stripeapi

import (
	"fmt"
	"time"

	stripe "github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/balancetransaction"
	"github.com/stripe/stripe-go/v74/charge"
	"github.com/stripe/stripe-go/v74/payout"

	"github.com/LeakIX/stripe-accounting/internal/money"
	"github.com/LeakIX/stripe-accounting/pkg/models"
)

// FetchPayouts returns all payouts whose arrival date falls inside the
// window. Items are not loaded; callers needing line items follow up with
// FetchPayoutItems.
func (c *Client) FetchPayouts(window Window) ([]*models.Payout, error) {
	const op = "FetchPayouts"

	params := &stripe.PayoutListParams{}
	params.Limit = stripe.Int64(pageLimit)
	var payouts []*models.Payout
	iter := payout.List(params)
	for iter.Next() {
		raw := iter.Payout()
		arrival := time.Unix(raw.ArrivalDate, 0)
		if !window.Contains(arrival) {
			continue
		}
		currency, err := money.LookupCurrency(string(raw.Currency))
		if err != nil {
			return nil, retrievalErr(op, raw.ID, err)
		}
		payouts = append(payouts, &models.Payout{
			ID:          raw.ID,
			Type:        string(raw.Type),
			Currency:    currency,
			Amount:      money.FromCents(raw.Amount, currency),
			Created:     time.Unix(raw.Created, 0),
			ArrivalDate: arrival,
		})
	}
	if err := iter.Err(); err != nil {
		return nil, retrievalErr(op, "", err)
	}
	c.log.Info().Int("count", len(payouts)).Msg("Retrieved payouts")
	return payouts, nil
}

// FetchPayoutItems loads the balance transactions composing a payout,
// excluding the payout transfer itself, and stores them on the payout.
func (c *Client) FetchPayoutItems(p *models.Payout) error {
	const op = "FetchPayoutItems"

	params := &stripe.BalanceTransactionListParams{
		Payout: stripe.String(p.ID),
	}
	params.Limit = stripe.Int64(pageLimit)
	var items []models.PayoutLineItem
	iter := balancetransaction.List(params)
	for iter.Next() {
		raw := iter.BalanceTransaction()
		if raw.Type == stripe.BalanceTransactionTypePayout {
			continue
		}
		currency, err := money.LookupCurrency(string(raw.Currency))
		if err != nil {
			return retrievalErr(op, raw.ID, err)
		}
		item := models.PayoutLineItem{
			ID:          raw.ID,
			Description: raw.Description,
			Kind:        models.PayoutItemKind(raw.Type),
			Gross:       money.FromCents(raw.Amount, currency),
			Net:         money.FromCents(raw.Net, currency),
			Created:     time.Unix(raw.Created, 0),
		}
		if raw.Source != nil {
			item.SourceID = raw.Source.ID
		}
		items = append(items, item)
	}
	if err := iter.Err(); err != nil {
		return retrievalErr(op, p.ID, err)
	}
	p.Items = items
	return nil
}

// ResolveRelatedInvoice resolves the invoice behind a charge or payment
// line item and stores it on the item. Other item kinds have no related
// invoice and are left untouched.
func (c *Client) ResolveRelatedInvoice(item *models.PayoutLineItem) error {
	const op = "ResolveRelatedInvoice"

	if !item.IsCharge() && !item.IsPayment() {
		return nil
	}
	if item.RelatedInvoice != nil {
		return nil
	}
	if item.SourceID == "" {
		return retrievalErr(op, item.ID,
			fmt.Errorf("%w: %s item has no source charge", ErrMissingRequiredField, item.Kind))
	}
	params := &stripe.ChargeParams{}
	params.AddExpand("invoice")
	ch, err := charge.Get(item.SourceID, params)
	if err != nil {
		return retrievalErr(op, item.SourceID, err)
	}
	if ch.Invoice == nil {
		return nil
	}
	inv, err := c.parseInvoice(ch.Invoice)
	if err != nil {
		return retrievalErr(op, ch.Invoice.ID, err)
	}
	item.RelatedInvoice = inv
	return nil
}

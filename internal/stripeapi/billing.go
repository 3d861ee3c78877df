package stripeapi

import (
	"fmt"
	"time"

	stripe "github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/charge"
	"github.com/stripe/stripe-go/v74/creditnote"
	"github.com/stripe/stripe-go/v74/dispute"
	"github.com/stripe/stripe-go/v74/paymentintent"
	"github.com/stripe/stripe-go/v74/refund"

	"github.com/LeakIX/stripe-accounting/pkg/models"
)

// FetchRefunds returns refunds created inside the window, each resolved to
// its invoice through the payment intent.
func (c *Client) FetchRefunds(window Window) ([]*models.Refund, error) {
	const op = "FetchRefunds"

	params := &stripe.RefundListParams{}
	params.Limit = stripe.Int64(pageLimit)
	var refunds []*models.Refund
	iter := refund.List(params)
	for iter.Next() {
		raw := iter.Refund()
		created := time.Unix(raw.Created, 0)
		if !window.Contains(created) {
			continue
		}
		r := &models.Refund{
			ID:      raw.ID,
			Status:  string(raw.Status),
			Created: created,
		}
		if raw.Charge != nil {
			r.ChargeID = raw.Charge.ID
		}
		if raw.PaymentIntent != nil {
			r.PaymentIntentID = raw.PaymentIntent.ID
		}
		inv, err := c.resolveInvoiceByPaymentIntent(r.PaymentIntentID)
		if err != nil {
			return nil, retrievalErr(op, raw.ID, err)
		}
		r.Invoice = inv
		refunds = append(refunds, r)
	}
	if err := iter.Err(); err != nil {
		return nil, retrievalErr(op, "", err)
	}
	c.log.Info().Int("count", len(refunds)).Msg("Retrieved refunds")
	return refunds, nil
}

// FetchDisputes returns disputes created inside the window, each resolved
// to its invoice through the disputed charge.
func (c *Client) FetchDisputes(window Window) ([]*models.Dispute, error) {
	const op = "FetchDisputes"

	params := &stripe.DisputeListParams{}
	params.Limit = stripe.Int64(pageLimit)
	var disputes []*models.Dispute
	iter := dispute.List(params)
	for iter.Next() {
		raw := iter.Dispute()
		created := time.Unix(raw.Created, 0)
		if !window.Contains(created) {
			continue
		}
		d := &models.Dispute{
			ID:      raw.ID,
			Status:  string(raw.Status),
			Created: created,
		}
		if raw.Charge == nil {
			return nil, retrievalErr(op, raw.ID,
				fmt.Errorf("%w: dispute has no charge", ErrMissingRequiredField))
		}
		d.ChargeID = raw.Charge.ID
		inv, err := c.resolveInvoiceByCharge(raw.Charge.ID)
		if err != nil {
			return nil, retrievalErr(op, raw.ID, err)
		}
		d.Invoice = inv
		disputes = append(disputes, d)
	}
	if err := iter.Err(); err != nil {
		return nil, retrievalErr(op, "", err)
	}
	c.log.Info().Int("count", len(disputes)).Msg("Retrieved disputes")
	return disputes, nil
}

// FetchCreditNotes returns credit notes Stripe issued inside the window.
// Only the credit note's own creation date is bounded; the referenced
// invoice may be older than the window.
func (c *Client) FetchCreditNotes(window Window) ([]models.CreditNoteMeta, error) {
	const op = "FetchCreditNotes"

	params := &stripe.CreditNoteListParams{}
	params.Limit = stripe.Int64(pageLimit)
	var notes []models.CreditNoteMeta
	iter := creditnote.List(params)
	for iter.Next() {
		raw := iter.CreditNote()
		created := time.Unix(raw.Created, 0)
		if !window.Contains(created) {
			continue
		}
		meta := models.CreditNoteMeta{
			ID:      raw.ID,
			Number:  raw.Number,
			Created: created,
			PDFLink: raw.PDF,
		}
		if raw.Invoice != nil {
			meta.InvoiceID = raw.Invoice.ID
		}
		notes = append(notes, meta)
	}
	if err := iter.Err(); err != nil {
		return nil, retrievalErr(op, "", err)
	}
	c.log.Info().Int("count", len(notes)).Msg("Retrieved Stripe-emitted credit notes")
	return notes, nil
}

func (c *Client) resolveInvoiceByCharge(chargeID string) (*models.Invoice, error) {
	params := &stripe.ChargeParams{}
	params.AddExpand("invoice")
	ch, err := charge.Get(chargeID, params)
	if err != nil {
		return nil, err
	}
	if ch.Invoice == nil {
		return nil, fmt.Errorf("%w: charge %s has no invoice", ErrMissingRequiredField, chargeID)
	}
	return c.parseInvoice(ch.Invoice)
}

func (c *Client) resolveInvoiceByPaymentIntent(paymentIntentID string) (*models.Invoice, error) {
	if paymentIntentID == "" {
		return nil, fmt.Errorf("%w: refund has no payment intent", ErrMissingRequiredField)
	}
	pi, err := paymentintent.Get(paymentIntentID, nil)
	if err != nil {
		return nil, err
	}
	if pi.Invoice == nil {
		return nil, fmt.Errorf("%w: payment intent %s has no invoice", ErrMissingRequiredField, paymentIntentID)
	}
	return c.ResolveInvoiceByID(pi.Invoice.ID)
}

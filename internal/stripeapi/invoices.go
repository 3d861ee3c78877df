package stripeapi

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	stripe "github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/invoice"

	"github.com/LeakIX/stripe-accounting/internal/money"
	"github.com/LeakIX/stripe-accounting/pkg/models"
)

// FetchInvoices returns all invoices created inside the window.
func (c *Client) FetchInvoices(window Window) ([]*models.Invoice, error) {
	const op = "FetchInvoices"

	query := fmt.Sprintf("created>%d AND created<%d",
		window.From.Unix(), window.Until.Unix())
	params := &stripe.InvoiceSearchParams{
		SearchParams: stripe.SearchParams{
			Query: query,
			Limit: stripe.Int64(pageLimit),
		},
	}
	var invoices []*models.Invoice
	iter := invoice.Search(params)
	for iter.Next() {
		inv, err := c.parseInvoice(iter.Invoice())
		if err != nil {
			return nil, retrievalErr(op, iter.Invoice().ID, err)
		}
		invoices = append(invoices, inv)
	}
	if err := iter.Err(); err != nil {
		return nil, retrievalErr(op, "", err)
	}
	c.log.Info().
		Int("count", len(invoices)).
		Time("from", window.From).
		Time("until", window.Until).
		Msg("Retrieved invoices")
	return invoices, nil
}

// ResolveInvoiceByID fetches a single invoice by its Stripe id.
func (c *Client) ResolveInvoiceByID(invoiceID string) (*models.Invoice, error) {
	raw, err := invoice.Get(invoiceID, nil)
	if err != nil {
		return nil, retrievalErr("ResolveInvoiceByID", invoiceID, err)
	}
	inv, err := c.parseInvoice(raw)
	if err != nil {
		return nil, retrievalErr("ResolveInvoiceByID", invoiceID, err)
	}
	return inv, nil
}

// ResolveInvoiceByNumber fetches a single invoice by its human-readable
// number.
func (c *Client) ResolveInvoiceByNumber(number string) (*models.Invoice, error) {
	const op = "ResolveInvoiceByNumber"

	params := &stripe.InvoiceSearchParams{
		SearchParams: stripe.SearchParams{
			Query: fmt.Sprintf("number:'%s'", number),
			Limit: stripe.Int64(1),
		},
	}
	iter := invoice.Search(params)
	if !iter.Next() {
		if err := iter.Err(); err != nil {
			return nil, retrievalErr(op, number, err)
		}
		return nil, retrievalErr(op, number, ErrInvoiceNotFound)
	}
	inv, err := c.parseInvoice(iter.Invoice())
	if err != nil {
		return nil, retrievalErr(op, number, err)
	}
	return inv, nil
}

// parseInvoice validates a raw Stripe invoice into the canonical model.
func (c *Client) parseInvoice(raw *stripe.Invoice) (*models.Invoice, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: invoice payload is empty", ErrMissingRequiredField)
	}
	currency, err := money.LookupCurrency(string(raw.Currency))
	if err != nil {
		return nil, err
	}
	customer, err := parseInvoiceCustomer(raw)
	if err != nil {
		return nil, err
	}

	inv := &models.Invoice{
		ID:                   raw.ID,
		Number:               raw.Number,
		Status:               models.InvoiceStatus(raw.Status),
		Currency:             currency,
		Customer:             customer,
		Amount:               money.FromCents(raw.AmountDue, currency),
		Subtotal:             money.FromCents(raw.Subtotal, currency),
		SubtotalExcludingTax: money.FromCents(raw.SubtotalExcludingTax, currency),
		Total:                money.FromCents(raw.Total, currency),
		TotalExcludingTax:    money.FromCents(raw.TotalExcludingTax, currency),
		Created:              time.Unix(raw.Created, 0),
		PeriodStart:          time.Unix(raw.PeriodStart, 0),
		PDFLink:              raw.InvoicePDF,
	}
	if raw.StatusTransitions != nil && raw.StatusTransitions.FinalizedAt != 0 {
		finalized := time.Unix(raw.StatusTransitions.FinalizedAt, 0)
		inv.FinalizedAt = &finalized
	}
	if raw.Tax != 0 {
		if len(raw.TotalTaxAmounts) == 0 || raw.TotalTaxAmounts[0].TaxRate == nil {
			return nil, fmt.Errorf("%w: invoice %s is taxed but has no tax rate", ErrMissingRequiredField, raw.ID)
		}
		rate, err := c.taxRates.Get(raw.TotalTaxAmounts[0].TaxRate.ID)
		if err != nil {
			return nil, err
		}
		inv.TaxRate = &rate
		tax := money.FromCents(raw.Tax, currency)
		inv.Tax = &tax
	}
	if raw.Lines != nil {
		for _, line := range raw.Lines.Data {
			product, err := parseProduct(line, inv.TaxRate)
			if err != nil {
				return nil, err
			}
			inv.Products = append(inv.Products, product)
		}
	}
	return inv, nil
}

func parseInvoiceCustomer(raw *stripe.Invoice) (models.Customer, error) {
	var address models.Address
	if raw.CustomerAddress != nil {
		address = models.Address{
			City:        raw.CustomerAddress.City,
			CountryCode: raw.CustomerAddress.Country,
			Line1:       raw.CustomerAddress.Line1,
			Line2:       raw.CustomerAddress.Line2,
			PostalCode:  raw.CustomerAddress.PostalCode,
			State:       raw.CustomerAddress.State,
		}
	}
	var vatID string
	switch len(raw.CustomerTaxIDs) {
	case 0:
	case 1:
		vatID = raw.CustomerTaxIDs[0].Value
	default:
		return models.Customer{}, fmt.Errorf("%w: invoice %s has %d tax ids",
			ErrAmbiguousTaxIdentity, raw.ID, len(raw.CustomerTaxIDs))
	}
	return models.Customer{
		Name:    raw.CustomerName,
		Email:   raw.CustomerEmail,
		Address: address,
		VAT:     vatID,
	}, nil
}

func parseProduct(line *stripe.InvoiceLineItem, rate *models.TaxRate) (models.Product, error) {
	currency, err := money.LookupCurrency(string(line.Currency))
	if err != nil {
		return models.Product{}, err
	}
	amountExclTax := money.FromCents(line.AmountExcludingTax, currency)
	unitPrice := amountExclTax
	if line.Quantity > 1 {
		unitPrice = money.New(amountExclTax.Amount.Div(decimal.NewFromInt(line.Quantity)), currency)
	}
	return models.Product{
		StripeID:         line.ID,
		Description:      line.Description,
		Quantity:         line.Quantity,
		UnitPriceExclTax: unitPrice,
		AmountExclTax:    amountExclTax,
		TaxRate:          rate,
	}, nil
}

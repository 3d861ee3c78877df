package models

import (
	"time"

	"github.com/LeakIX/stripe-accounting/internal/money"
)

// PayoutItemKind is the balance-transaction type of a payout line item.
type PayoutItemKind string

const (
	PayoutItemCharge      PayoutItemKind = "charge"
	PayoutItemPayment     PayoutItemKind = "payment"
	PayoutItemAdjustment  PayoutItemKind = "adjustment"
	PayoutItemStripeFee   PayoutItemKind = "stripe_fee"
	PayoutItemBankAccount PayoutItemKind = "bank_account"
)

// PayoutLineItem is one balance transaction inside a payout. Immutable once
// retrieved.
type PayoutLineItem struct {
	ID          string
	Description string
	Kind        PayoutItemKind
	Gross       money.Money
	Net         money.Money
	Created     time.Time

	// SourceID is the charge or payment id behind the transaction, used to
	// resolve the related invoice.
	SourceID string

	// RelatedInvoice is resolved lazily by the collaborator for charge and
	// payment items; nil otherwise.
	RelatedInvoice *Invoice
}

// Fee returns gross - net.
func (p PayoutLineItem) Fee() money.Money {
	fee, err := p.Gross.Sub(p.Net)
	if err != nil {
		// Gross and net of one balance transaction always share a currency.
		panic(err)
	}
	return fee
}

func (p PayoutLineItem) IsCharge() bool  { return p.Kind == PayoutItemCharge }
func (p PayoutLineItem) IsPayment() bool { return p.Kind == PayoutItemPayment }

// Payout is a transfer from Stripe to the merchant's bank account.
type Payout struct {
	ID          string
	Type        string
	Currency    money.Currency
	Amount      money.Money
	Created     time.Time
	ArrivalDate time.Time
	Items       []PayoutLineItem
}

// Package vat derives VAT report classifications from Stripe payout line
// items and aggregates them into report totals.
package vat

import (
	"github.com/LeakIX/stripe-accounting/internal/money"
	"github.com/LeakIX/stripe-accounting/pkg/models"
)

// Category is a VAT report category. The set is closed: a line item that
// fits none of them is a classification error, not a catch-all bucket.
type Category string

const (
	CategoryBilling              Category = "Billing Fees"
	CategoryTaxProductFees       Category = "Tax Product Fees"
	CategoryProcessingFeesCard   Category = "Stripe Processing Fees (card)"
	CategoryProcessingFeesOther  Category = "Stripe Processing Fees (other)"
	CategoryRadarFees            Category = "Radar Stripe Fees"
	CategoryRefundForCharges     Category = "Disputes"
	CategoryChargebackWithdrawal Category = "Dispute Fees"
	CategoryBankAccount          Category = "Bank account"
)

// ReportItem is a classified payout line item. Amount is always
// non-negative; Source keeps the originating item for detailed reports.
type ReportItem struct {
	Category Category
	Amount   money.Money
	Source   models.PayoutLineItem
}

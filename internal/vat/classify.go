package vat

import (
	"strings"

	"github.com/LeakIX/stripe-accounting/internal/money"
	"github.com/LeakIX/stripe-accounting/pkg/models"
)

// classificationRule maps a line item to a category and picks which amount
// (gross or fee) is the taxed one.
type classificationRule struct {
	matches  func(models.PayoutLineItem) bool
	category Category
	amount   func(models.PayoutLineItem) money.Money
}

func hasPrefix(prefix string) func(models.PayoutLineItem) bool {
	return func(item models.PayoutLineItem) bool {
		return strings.HasPrefix(item.Description, prefix)
	}
}

func absGross(item models.PayoutLineItem) money.Money { return item.Gross.Abs() }
func absFee(item models.PayoutLineItem) money.Money   { return item.Fee().Abs() }

// classificationRules is evaluated in order; the first match wins. The
// order matters: "Subscription" appears twice, split on the transaction
// kind, and the prefixes are not mutually exclusive in principle.
var classificationRules = []classificationRule{
	{hasPrefix("Billing"), CategoryBilling, absGross},
	{hasPrefix("Automatic Taxes"), CategoryTaxProductFees, absGross},
	{
		func(i models.PayoutLineItem) bool {
			return strings.HasPrefix(i.Description, "Subscription") && i.IsCharge()
		},
		CategoryProcessingFeesCard, absFee,
	},
	{
		func(i models.PayoutLineItem) bool {
			return strings.HasPrefix(i.Description, "Subscription") && i.IsPayment()
		},
		CategoryProcessingFeesOther, absFee,
	},
	{hasPrefix("Radar"), CategoryRadarFees, absGross},
	{hasPrefix("REFUND FOR CHARGE"), CategoryRefundForCharges, absFee},
	{hasPrefix("REFUND FOR PAYMENT"), CategoryBankAccount, absFee},
	{hasPrefix("Chargeback withdrawal"), CategoryChargebackWithdrawal, absFee},
}

// Classify maps a payout line item to its VAT report item. The payout is
// only used for error diagnostics. Pure: no retrieval happens here.
func Classify(payout *models.Payout, item models.PayoutLineItem) (ReportItem, error) {
	for _, rule := range classificationRules {
		if rule.matches(item) {
			return ReportItem{
				Category: rule.category,
				Amount:   rule.amount(item),
				Source:   item,
			}, nil
		}
	}
	return ReportItem{}, &UnclassifiableLineItemError{
		Description:   item.Description,
		PayoutID:      payout.ID,
		PayoutArrival: payout.ArrivalDate,
		PayoutType:    payout.Type,
	}
}

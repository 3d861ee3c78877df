package vat

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeakIX/stripe-accounting/internal/money"
	"github.com/LeakIX/stripe-accounting/pkg/models"
)

func eur(s string) money.Money {
	return money.New(decimal.RequireFromString(s), money.EUR)
}

func lineItem(description string, kind models.PayoutItemKind, gross, net string) models.PayoutLineItem {
	return models.PayoutLineItem{
		Description: description,
		Kind:        kind,
		Gross:       eur(gross),
		Net:         eur(net),
	}
}

func testPayout() *models.Payout {
	return &models.Payout{
		ID:          "po_test",
		Type:        "bank_account",
		ArrivalDate: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestClassifyBillingUsesAbsoluteGross(t *testing.T) {
	item := lineItem("Billing Stripe fee", models.PayoutItemStripeFee, "-2.90", "-2.90")

	report, err := Classify(testPayout(), item)
	require.NoError(t, err)
	assert.Equal(t, CategoryBilling, report.Category)
	assert.True(t, report.Amount.Equal(eur("2.90")))
}

func TestClassifyAutomaticTaxesUsesAbsoluteGross(t *testing.T) {
	item := lineItem("Automatic Taxes Stripe fee", models.PayoutItemStripeFee, "-1.20", "-1.20")

	report, err := Classify(testPayout(), item)
	require.NoError(t, err)
	assert.Equal(t, CategoryTaxProductFees, report.Category)
	assert.True(t, report.Amount.Equal(eur("1.20")))
}

func TestClassifySubscriptionSplitsOnTransactionKind(t *testing.T) {
	charge := lineItem("Subscription update", models.PayoutItemCharge, "25.00", "24.02")
	payment := lineItem("Subscription update", models.PayoutItemPayment, "25.00", "24.40")

	report, err := Classify(testPayout(), charge)
	require.NoError(t, err)
	assert.Equal(t, CategoryProcessingFeesCard, report.Category)
	assert.True(t, report.Amount.Equal(eur("0.98")), "card fee is gross minus net")

	report, err = Classify(testPayout(), payment)
	require.NoError(t, err)
	assert.Equal(t, CategoryProcessingFeesOther, report.Category)
	assert.True(t, report.Amount.Equal(eur("0.60")))
}

func TestClassifyRadarUsesAbsoluteGross(t *testing.T) {
	item := lineItem("Radar fee", models.PayoutItemStripeFee, "-0.05", "-0.05")

	report, err := Classify(testPayout(), item)
	require.NoError(t, err)
	assert.Equal(t, CategoryRadarFees, report.Category)
	assert.True(t, report.Amount.Equal(eur("0.05")))
}

func TestClassifyRefundsAndChargebacksUseAbsoluteFee(t *testing.T) {
	cases := []struct {
		description string
		kind        models.PayoutItemKind
		gross, net  string
		category    Category
		amount      string
	}{
		{"REFUND FOR CHARGE ch_1", models.PayoutItemCharge, "-25.00", "-25.25", CategoryRefundForCharges, "0.25"},
		{"REFUND FOR PAYMENT py_1", models.PayoutItemPayment, "-25.00", "-25.25", CategoryBankAccount, "0.25"},
		{"Chargeback withdrawal for ch_1", models.PayoutItemAdjustment, "-25.00", "-40.00", CategoryChargebackWithdrawal, "15.00"},
	}
	for _, tc := range cases {
		report, err := Classify(testPayout(), lineItem(tc.description, tc.kind, tc.gross, tc.net))
		require.NoError(t, err, tc.description)
		assert.Equal(t, tc.category, report.Category, tc.description)
		assert.True(t, report.Amount.Equal(eur(tc.amount)), tc.description)
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	// "Billing" outranks the Subscription rules even for charge items.
	item := lineItem("Billing Stripe fee", models.PayoutItemCharge, "-2.90", "-2.90")

	report, err := Classify(testPayout(), item)
	require.NoError(t, err)
	assert.Equal(t, CategoryBilling, report.Category)
}

func TestClassifyUnknownDescriptionFailsWithDiagnostics(t *testing.T) {
	item := lineItem("Mystery adjustment", models.PayoutItemAdjustment, "1.00", "1.00")

	_, err := Classify(testPayout(), item)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnclassifiableLineItem)

	var uerr *UnclassifiableLineItemError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "Mystery adjustment", uerr.Description)
	assert.Equal(t, "po_test", uerr.PayoutID)
	assert.Equal(t, "bank_account", uerr.PayoutType)
}

func TestClassifyKeepsSourceItem(t *testing.T) {
	item := lineItem("Billing Stripe fee", models.PayoutItemStripeFee, "-2.90", "-2.90")

	report, err := Classify(testPayout(), item)
	require.NoError(t, err)
	assert.Equal(t, item.Description, report.Source.Description)
}

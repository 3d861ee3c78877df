package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressCountryName(t *testing.T) {
	assert.Equal(t, "Belgium", Address{CountryCode: "BE"}.CountryName())
	assert.Equal(t, "France", Address{CountryCode: "FR"}.CountryName())
	// Unresolved codes fall back to the raw value, never to a placeholder
	// country name.
	assert.Equal(t, "XX", Address{CountryCode: "XX"}.CountryName())
	assert.Equal(t, "", Address{}.CountryName())
}

func TestTaxRateCountryName(t *testing.T) {
	assert.Equal(t, "Belgium", TaxRate{CountryCode: "BE"}.CountryName())
	assert.Equal(t, "XX", TaxRate{CountryCode: "XX"}.CountryName())
}

func TestCustomerIsB2B(t *testing.T) {
	assert.True(t, Customer{VAT: "BE0123456789"}.IsB2B())
	assert.False(t, Customer{}.IsB2B())
}

func TestInvoiceNumberSuffix(t *testing.T) {
	inv := &Invoice{Number: "25001-0042"}
	n, err := inv.NumberSuffix()
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	inv = &Invoice{Number: "25001-10000"}
	n, err = inv.NumberSuffix()
	require.NoError(t, err)
	assert.Equal(t, 10000, n)
}

func TestInvoiceNumberSuffixErrors(t *testing.T) {
	for _, number := range []string{"DRAFT", "25001-", "25001-00AB"} {
		inv := &Invoice{Number: number}
		_, err := inv.NumberSuffix()
		assert.Error(t, err, number)
	}
}

func TestInvoiceDocumentNamePrefersFinalizationDate(t *testing.T) {
	finalized := time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC)
	inv := &Invoice{
		Number:      "25001-0042",
		Status:      InvoiceStatusPaid,
		PeriodStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		FinalizedAt: &finalized,
	}
	assert.Equal(t, "20240131 - Invoice 25001-0042 - Status paid", inv.DocumentName())

	inv.FinalizedAt = nil
	assert.Equal(t, "20240101 - Invoice 25001-0042 - Status paid", inv.DocumentName())
}

func TestCreditNoteMetaDocumentName(t *testing.T) {
	meta := CreditNoteMeta{
		Number:  "ABCD-CN-01",
		Created: time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, "20240131 - Credit note - ABCD-CN-01", meta.DocumentName())
}

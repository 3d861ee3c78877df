package vat

import (
	"fmt"

	"github.com/LeakIX/stripe-accounting/pkg/models"
)

// intracomCountryCodes is the EU/EEA/CH intra-community set relevant to OSS
// bucketing. From https://www.destatis.de/Europa/EN/Country/Country-Codes.html
var intracomCountryCodes = map[string]struct{}{
	"AT": {}, "BE": {}, "BG": {}, "HR": {}, "CY": {}, "CZ": {}, "DK": {},
	"EE": {}, "FI": {}, "FR": {}, "DE": {}, "GR": {}, "HU": {}, "IE": {},
	"IT": {}, "LT": {}, "LV": {}, "LU": {}, "MT": {}, "NL": {}, "PL": {},
	"PT": {}, "RO": {}, "SK": {}, "SI": {}, "ES": {}, "SE": {}, "IS": {},
	"LI": {}, "NO": {}, "CH": {},
}

// IsIntracom reports whether the alpha-2 code belongs to the
// intra-community set.
func IsIntracom(countryCode string) bool {
	_, ok := intracomCountryCodes[countryCode]
	return ok
}

// AccountingBucket returns the OSS accounting account for a customer:
// "OSS EXTRACOM" for B2C customers outside the intra-community set,
// "OSS <country>" for B2C customers inside it, and the customer name for
// B2B customers (an internal reference, not a VAT bucket).
func AccountingBucket(customer models.Customer) string {
	if customer.IsB2B() {
		return customer.Name
	}
	if !IsIntracom(customer.Address.CountryCode) {
		return "OSS EXTRACOM"
	}
	return fmt.Sprintf("OSS %s", customer.Address.CountryName())
}

package vat

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnclassifiableLineItem is returned when a payout line item matches no
// classification rule.
var ErrUnclassifiableLineItem = errors.New("cannot assign a VAT report category")

// UnclassifiableLineItemError carries the diagnostics an operator needs to
// extend the rule table: the unmatched description plus the payout it came
// from.
type UnclassifiableLineItemError struct {
	Description   string
	PayoutID      string
	PayoutArrival time.Time
	PayoutType    string
}

// Error implements the error interface.
func (e *UnclassifiableLineItemError) Error() string {
	return fmt.Sprintf(
		"cannot assign a VAT report category: description is %q, payout is %s (%s) and payout type is %s",
		e.Description, e.PayoutID, e.PayoutArrival.Format(time.RFC3339), e.PayoutType)
}

// Is matches ErrUnclassifiableLineItem for errors.Is.
func (e *UnclassifiableLineItemError) Is(target error) bool {
	return target == ErrUnclassifiableLineItem
}

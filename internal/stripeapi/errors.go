package stripeapi

import (
	"errors"
	"fmt"
)

// Common retrieval errors
var (
	// ErrMissingRequiredField is returned when a Stripe record lacks a field
	// the accounting pipeline depends on. Parsing fails fast at the boundary
	// instead of propagating half-built entities.
	ErrMissingRequiredField = errors.New("missing required field on Stripe record")

	// ErrAmbiguousTaxIdentity is returned when a customer or invoice carries
	// more than one tax id. Only a single tax identity is supported.
	ErrAmbiguousTaxIdentity = errors.New("only one customer tax id is supported")

	// ErrInvoiceNotFound is returned when an invoice lookup by number
	// matches nothing.
	ErrInvoiceNotFound = errors.New("invoice not found")
)

// RetrievalError wraps a Stripe API failure with the operation and record
// that triggered it.
type RetrievalError struct {
	// Op is the operation that failed (e.g. "FetchPayouts").
	Op string

	// RecordID identifies the record involved, when known.
	RecordID string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *RetrievalError) Error() string {
	if e.RecordID != "" {
		return fmt.Sprintf("stripeapi: %s failed for %s: %v", e.Op, e.RecordID, e.Err)
	}
	return fmt.Sprintf("stripeapi: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *RetrievalError) Unwrap() error {
	return e.Err
}

func retrievalErr(op, recordID string, err error) error {
	if err == nil {
		return nil
	}
	return &RetrievalError{Op: op, RecordID: recordID, Err: err}
}

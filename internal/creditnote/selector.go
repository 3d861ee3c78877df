package creditnote

import (
	"sort"

	"github.com/LeakIX/stripe-accounting/internal/money"
	"github.com/LeakIX/stripe-accounting/pkg/models"
)

// Reason records how a candidate entered the selection, for traceability.
type Reason string

const (
	ReasonVoided        Reason = "voided"
	ReasonUncollectible Reason = "uncollectible"
	ReasonOpen          Reason = "open"
	ReasonStripeEmitted Reason = "stripe-emitted"
	ReasonDisputed      Reason = "disputed"
	ReasonRefunded      Reason = "refunded"
)

// Candidate is an invoice flagged for credit-note emission.
type Candidate struct {
	Invoice *models.Invoice
	Reason  Reason
}

// SelectionInput holds the four independently retrieved collections a
// selection works over. All collections are expected to be pre-filtered to
// the reporting window by the retrieval collaborator.
type SelectionInput struct {
	// Invoices is the full invoice window; the selector picks the voided,
	// uncollectible and (optionally) open ones.
	Invoices []*models.Invoice

	// StripeEmitted are the invoices behind credit notes Stripe already
	// issued in the window. Included to keep the numbering continuous.
	StripeEmitted []*models.Invoice

	// Disputed are the invoices behind disputes opened in the window.
	Disputed []*models.Invoice

	// Refunded are the invoices behind refunds in the window. Normally a
	// Stripe credit note exists for each refund, but one may have been
	// forgotten, so refunds act as a catch-all deduplicated against the rest.
	Refunded []*models.Invoice
}

// SelectCandidates returns the deduplicated, ordered invoices needing a new
// credit note. Voided/uncollectible/open invoices are filtered to the
// requested currency. The voided, stripe-emitted and disputed collections
// are kept as-is even if they overlap (each source is expected disjoint in
// practice); refunded invoices are appended only when their number is not
// already present. The skip set removes matching numbers last. Ordering is
// ascending by the numeric suffix of the invoice number, ties keeping
// discovery order.
func SelectCandidates(in SelectionInput, currencyISO string, includeOpen bool, skip SkipSet) ([]Candidate, error) {
	currency, err := money.LookupCurrency(currencyISO)
	if err != nil {
		return nil, err
	}

	var candidates []Candidate
	for _, inv := range in.Invoices {
		if inv.Currency.ISOCode != currency.ISOCode {
			continue
		}
		switch {
		case inv.IsVoid():
			candidates = append(candidates, Candidate{Invoice: inv, Reason: ReasonVoided})
		case inv.IsUncollectible():
			candidates = append(candidates, Candidate{Invoice: inv, Reason: ReasonUncollectible})
		case inv.IsOpen() && includeOpen:
			candidates = append(candidates, Candidate{Invoice: inv, Reason: ReasonOpen})
		}
	}
	for _, inv := range in.StripeEmitted {
		candidates = append(candidates, Candidate{Invoice: inv, Reason: ReasonStripeEmitted})
	}
	for _, inv := range in.Disputed {
		candidates = append(candidates, Candidate{Invoice: inv, Reason: ReasonDisputed})
	}

	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		seen[c.Invoice.Number] = struct{}{}
	}
	for _, inv := range in.Refunded {
		if _, ok := seen[inv.Number]; ok {
			continue
		}
		seen[inv.Number] = struct{}{}
		candidates = append(candidates, Candidate{Invoice: inv, Reason: ReasonRefunded})
	}

	// Numeric ordering: 25001-0002 before 25001-0010. Unparseable numbers
	// sort first, keeping discovery order among themselves.
	sort.SliceStable(candidates, func(i, j int) bool {
		return numberSortKey(candidates[i].Invoice) < numberSortKey(candidates[j].Invoice)
	})

	filtered := candidates[:0]
	for _, c := range candidates {
		if skip.Contains(c.Invoice.Number) {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered, nil
}

func numberSortKey(inv *models.Invoice) int {
	n, err := inv.NumberSuffix()
	if err != nil {
		return -1
	}
	return n
}

// Package creditnote selects the invoices that need a credit note over a
// date window and assigns them sequential, jurisdiction-encoded numbers.
package creditnote

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// SkipSet is a set of invoice numbers excluded from credit-note emission.
type SkipSet map[string]struct{}

// Contains reports whether the invoice number is excluded.
func (s SkipSet) Contains(invoiceNumber string) bool {
	_, ok := s[invoiceNumber]
	return ok
}

// ParseSkipList parses a comma-separated exclusion list. Single numbers are
// taken literally; "PFX-0010:PFX-0020" expands to every number in the
// inclusive range. Malformed tokens (mismatched prefixes, non-numeric
// bounds) are logged as warnings and kept literal so a typo never silently
// widens the emission set.
func ParseSkipList(spec string, log zerolog.Logger) SkipSet {
	skip := make(SkipSet)
	if spec == "" {
		return skip
	}
	for _, token := range strings.Split(spec, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if !strings.Contains(token, ":") {
			skip[token] = struct{}{}
			continue
		}
		expanded, err := expandRange(token)
		if err != nil {
			log.Warn().
				Str("token", token).
				Err(err).
				Msg("Invalid invoice range format, keeping token literal. Expected PREFIX-NNNN:PREFIX-NNNN")
			skip[token] = struct{}{}
			continue
		}
		for _, number := range expanded {
			skip[number] = struct{}{}
		}
	}
	return skip
}

func expandRange(token string) ([]string, error) {
	start, end, _ := strings.Cut(token, ":")
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)

	startPrefix, startNum, err := splitNumber(start)
	if err != nil {
		return nil, err
	}
	endPrefix, endNum, err := splitNumber(end)
	if err != nil {
		return nil, err
	}
	if startPrefix != endPrefix {
		return nil, fmt.Errorf("range bounds have different prefixes: %s vs %s", startPrefix, endPrefix)
	}
	var numbers []string
	for n := startNum; n <= endNum; n++ {
		numbers = append(numbers, fmt.Sprintf("%s-%04d", startPrefix, n))
	}
	return numbers, nil
}

func splitNumber(invoiceNumber string) (prefix string, n int, err error) {
	parts := strings.Split(invoiceNumber, "-")
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("invalid invoice number %q", invoiceNumber)
	}
	n, err = strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, fmt.Errorf("invalid invoice number %q: %w", invoiceNumber, err)
	}
	return parts[0], n, nil
}

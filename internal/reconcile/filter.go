package reconcile

import "strings"

// Query filters a merged ledger. Zero-value fields are inactive; active
// fields are ANDed together.
type Query struct {
	// Text matches case-insensitively against the counterparty name or the
	// reference number.
	Text string
	// Kind requires an exact source-kind match.
	Kind Kind
	// Status requires an exact match on the mapped display status.
	Status string
}

// Filter returns the entries matching the query, preserving order.
func Filter(entries []Entry, q Query) []Entry {
	text := strings.ToLower(strings.TrimSpace(q.Text))

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if text != "" &&
			!strings.Contains(strings.ToLower(e.Counterparty), text) &&
			!strings.Contains(strings.ToLower(e.Reference), text) {
			continue
		}
		if q.Kind != "" && e.Kind != q.Kind {
			continue
		}
		if q.Status != "" && e.Status != q.Status {
			continue
		}
		out = append(out, e)
	}
	return out
}

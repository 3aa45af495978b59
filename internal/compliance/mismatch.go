// Package compliance flags GST mismatches and aggregates TDS across the
// books' heterogeneous sources.
package compliance

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/taxledger/internal/document"
)

// Class is the GST compliance classification of a single document.
type Class string

const (
	// Matched: counterparty id present and tax charged.
	Matched Class = "Matched"
	// Mismatched: tax charged without a counterparty id, or an id present
	// on a non-zero document with no tax at all.
	Mismatched Class = "Mismatched"
)

// Record is the per-document classification result. Missing is a separate
// bucket that may overlap Mismatched: it marks any document without a
// counterparty registration id.
type Record struct {
	Reference  string          `json:"reference_number"`
	Class      Class           `json:"class"`
	Missing    bool            `json:"missing"`
	TotalTax   decimal.Decimal `json:"total_tax"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// Classify buckets one document. Matched and Mismatched are mutually
// exclusive; a fully zero document with no id is neither, only Missing.
func Classify(d document.TaxableDocument) Record {
	totals := document.Totals(d.Items)
	// presence only: a malformed id still identifies the counterparty for
	// matching purposes, validity is the classification engine's concern
	hasID := strings.TrimSpace(d.CounterpartyGSTIN) != ""

	r := Record{
		Reference:  d.Reference,
		Missing:    !hasID,
		TotalTax:   totals.TotalTax,
		GrandTotal: totals.GrandTotal,
	}
	switch {
	case hasID && totals.TotalTax.IsPositive():
		r.Class = Matched
	case !hasID && totals.TotalTax.IsPositive():
		r.Class = Mismatched
	case hasID && totals.TotalTax.IsZero() && totals.GrandTotal.IsPositive():
		r.Class = Mismatched
	}
	return r
}

// Summary aggregates classification over the Approved documents of a
// collection.
type Summary struct {
	MatchedCount   int             `json:"matched_count"`
	MismatchCount  int             `json:"mismatch_count"`
	MismatchAmount decimal.Decimal `json:"mismatch_amount"`
	MissingCount   int             `json:"missing_count"`
	MissingAmount  decimal.Decimal `json:"missing_amount"`
	// ExcessCredit is the total tax already claimed or collected across
	// all approved documents.
	ExcessCredit decimal.Decimal `json:"excess_credit"`
	Records      []Record        `json:"records"`
}

// Summarize classifies every document and aggregates the Approved ones.
func Summarize(docs []document.TaxableDocument) Summary {
	s := Summary{Records: make([]Record, 0, len(docs))}
	for _, d := range docs {
		r := Classify(d)
		s.Records = append(s.Records, r)

		if !d.Approved() {
			continue
		}
		switch r.Class {
		case Matched:
			s.MatchedCount++
		case Mismatched:
			s.MismatchCount++
			s.MismatchAmount = s.MismatchAmount.Add(r.GrandTotal)
		}
		if r.Missing {
			s.MissingCount++
			s.MissingAmount = s.MissingAmount.Add(r.GrandTotal)
		}
		s.ExcessCredit = s.ExcessCredit.Add(r.TotalTax)
	}
	return s
}

package gst

import (
	"github.com/shopspring/decimal"
	"github.com/smallbiznis/taxledger/internal/document"
)

// DefaultNominalRate is the fallback combined tax percentage for a line that
// has no rate set yet.
var DefaultNominalRate = decimal.NewFromInt(18)

var two = decimal.NewFromInt(2)

// ApplyRates returns a copy of items with CGST/SGST/IGST rewritten to match
// the classification, preserving each line's combined tax percentage. A line
// whose heads are all zero gets defaultNominal (DefaultNominalRate when the
// argument is zero). Undetermined is a no-op copy: existing rates, including
// non-zero ones, are never overwritten. Non-tax fields are never touched.
//
// Re-applying the same classification is idempotent.
func ApplyRates(t Type, items []document.LineItem, defaultNominal decimal.Decimal) []document.LineItem {
	out := make([]document.LineItem, len(items))
	copy(out, items)
	if t == Undetermined {
		return out
	}

	if defaultNominal.IsZero() {
		defaultNominal = DefaultNominalRate
	}

	for i := range out {
		nominal := out[i].NominalTaxRate()
		if nominal.IsZero() {
			nominal = defaultNominal
		}
		switch t {
		case IntraState:
			half := nominal.Div(two)
			out[i].CGSTRate = half
			out[i].SGSTRate = half
			out[i].IGSTRate = decimal.Zero
		case InterState:
			out[i].IGSTRate = nominal
			out[i].CGSTRate = decimal.Zero
			out[i].SGSTRate = decimal.Zero
		}
	}
	return out
}

// Reclassify is the convenience used when a counterparty id changes: it
// classifies and applies in one step.
func Reclassify(company, counterparty Registration, items []document.LineItem, defaultNominal decimal.Decimal) (Type, []document.LineItem) {
	t := Classify(company, counterparty)
	return t, ApplyRates(t, items, defaultNominal)
}

// Package document contains the shared financial document model used by
// every computation engine: line items, taxable documents and the totals
// calculator. All money and percentage values are decimal.Decimal; the zero
// value is 0, which is also the documented default for any numeric field the
// upstream books API omits.
package document

import (
	"time"

	"github.com/shopspring/decimal"
)

// ApprovalStatus is the workflow state gating whether a document counts
// toward financial totals.
type ApprovalStatus string

const (
	StatusPending   ApprovalStatus = "Pending"
	StatusApproved  ApprovalStatus = "Approved"
	StatusRejected  ApprovalStatus = "Rejected"
	StatusDraft     ApprovalStatus = "Draft"
	StatusCancelled ApprovalStatus = "Cancelled"
)

// LineItem is a single line on an invoice, bill, purchase order or asset
// purchase. At most one of {CGSTRate+SGSTRate} or {IGSTRate} is non-zero
// outside of transient edit states.
type LineItem struct {
	Name            string          `json:"name"`
	HSNCode         string          `json:"hsn_code"`
	Quantity        decimal.Decimal `json:"quantity"`
	Rate            decimal.Decimal `json:"rate"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	CGSTRate        decimal.Decimal `json:"cgst_rate"`
	SGSTRate        decimal.Decimal `json:"sgst_rate"`
	IGSTRate        decimal.Decimal `json:"igst_rate"`
}

// TaxableValue is the line amount after discount, before tax.
func (li LineItem) TaxableValue() decimal.Decimal {
	gross := li.Quantity.Mul(li.Rate)
	return gross.Sub(gross.Mul(li.DiscountPercent).Div(hundred))
}

// NominalTaxRate is the combined tax percentage currently on the line,
// regardless of how it is split across heads.
func (li LineItem) NominalTaxRate() decimal.Decimal {
	return li.CGSTRate.Add(li.SGSTRate).Add(li.IGSTRate)
}

// TaxableDocument is an invoice, bill, purchase order or asset purchase as
// returned by the books API.
type TaxableDocument struct {
	Reference        string          `json:"reference_number"`
	CounterpartyName string          `json:"counterparty_name"`
	CounterpartyGSTIN string         `json:"counterparty_gstin"`
	ApprovalStatus   ApprovalStatus  `json:"approval_status"`
	Status           string          `json:"status"`
	Date             time.Time       `json:"date"`
	Items            []LineItem      `json:"items"`
	TDSAmount        decimal.Decimal `json:"tds_amount"`
}

// Approved reports whether the document counts toward financial totals.
func (d TaxableDocument) Approved() bool {
	return d.ApprovalStatus == StatusApproved
}

package document

import "github.com/shopspring/decimal"

// TotalsResult is the full totals block for a line-item list.
type TotalsResult struct {
	SubTotal      decimal.Decimal `json:"sub_total"`
	DiscountTotal decimal.Decimal `json:"discount_total"`
	TaxableValue  decimal.Decimal `json:"taxable_value"`
	CGSTAmount    decimal.Decimal `json:"cgst_amount"`
	SGSTAmount    decimal.Decimal `json:"sgst_amount"`
	IGSTAmount    decimal.Decimal `json:"igst_amount"`
	TotalTax      decimal.Decimal `json:"total_tax"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
}

// Totals computes subtotal, discount, per-head tax amounts and grand total
// for a line-item list. An empty or nil list yields an all-zero result.
// Inputs are assumed validated non-negative; this calculator does not reject.
func Totals(items []LineItem) TotalsResult {
	var r TotalsResult
	for _, li := range items {
		gross := li.Quantity.Mul(li.Rate)
		discount := gross.Mul(li.DiscountPercent).Div(hundred)
		taxable := gross.Sub(discount)

		r.SubTotal = r.SubTotal.Add(gross)
		r.DiscountTotal = r.DiscountTotal.Add(discount)
		r.TaxableValue = r.TaxableValue.Add(taxable)
		r.CGSTAmount = r.CGSTAmount.Add(taxable.Mul(li.CGSTRate).Div(hundred))
		r.SGSTAmount = r.SGSTAmount.Add(taxable.Mul(li.SGSTRate).Div(hundred))
		r.IGSTAmount = r.IGSTAmount.Add(taxable.Mul(li.IGSTRate).Div(hundred))
	}
	r.TotalTax = r.CGSTAmount.Add(r.SGSTAmount).Add(r.IGSTAmount)
	r.GrandTotal = r.SubTotal.Sub(r.DiscountTotal).Add(r.TotalTax)
	return r
}

// GrandTotal is a shorthand for callers that only need the final figure.
func GrandTotal(items []LineItem) decimal.Decimal {
	return Totals(items).GrandTotal
}

// TotalTax sums all three tax heads for the list.
func TotalTax(items []LineItem) decimal.Decimal {
	return Totals(items).TotalTax
}

package compliance

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/taxledger/internal/document"
)

// TDSSource identifies which collection a TDS row came from.
type TDSSource string

const (
	TDSFromBill    TDSSource = "Bill"
	TDSFromPayment TDSSource = "Payment"
	TDSFromNote    TDSSource = "CreditDebitNote"
)

// TDSStatusPayable marks withheld tax not yet remitted.
const TDSStatusPayable = "Payable"

// TDSRow is one withholding entry in the merged TDS view. Note amounts are
// negative: a credit/debit note reverses tax withheld on the underlying bill.
type TDSRow struct {
	Date         time.Time       `json:"date"`
	Reference    string          `json:"reference_number"`
	Counterparty string          `json:"counterparty_name"`
	Source       TDSSource       `json:"source"`
	Status       string          `json:"status"`
	Amount       decimal.Decimal `json:"amount"`
}

// TDSSummary is the aggregate over the merged rows. Interest is always zero:
// no interest computation exists upstream and none is invented here.
type TDSSummary struct {
	TotalTDS decimal.Decimal `json:"total_tds"`
	Paid     decimal.Decimal `json:"paid"`
	Payable  decimal.Decimal `json:"payable"`
	Interest decimal.Decimal `json:"interest"`
	Rows     []TDSRow        `json:"rows"`
}

// AggregateTDS merges withholding amounts from bills, payments and
// credit/debit notes. Each source contributes only Approved documents with a
// positive TDS amount; note amounts are sign-inverted before merging. The
// merged list is sorted by document date, newest first.
func AggregateTDS(bills, payments, notes []document.TaxableDocument) TDSSummary {
	rows := make([]TDSRow, 0, len(bills)+len(payments)+len(notes))

	collect := func(docs []document.TaxableDocument, source TDSSource, invert bool) {
		for _, d := range docs {
			if !d.Approved() || !d.TDSAmount.IsPositive() {
				continue
			}
			amount := d.TDSAmount
			if invert {
				amount = amount.Neg()
			}
			rows = append(rows, TDSRow{
				Date:         d.Date,
				Reference:    d.Reference,
				Counterparty: d.CounterpartyName,
				Source:       source,
				Status:       d.Status,
				Amount:       amount,
			})
		}
	}
	collect(bills, TDSFromBill, false)
	collect(payments, TDSFromPayment, false)
	collect(notes, TDSFromNote, true)

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.After(rows[j].Date)
	})

	s := TDSSummary{Rows: rows}
	for _, r := range rows {
		s.TotalTDS = s.TotalTDS.Add(r.Amount)
		if r.Source == TDSFromPayment {
			s.Paid = s.Paid.Add(r.Amount)
		}
		if r.Status == TDSStatusPayable {
			s.Payable = s.Payable.Add(r.Amount)
		}
	}
	return s
}

// Package reconcile merges dated AR or AP documents into a single outstanding
// ledger and computes the reconciliation summary.
package reconcile

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/taxledger/internal/document"
)

// Role selects which side of the books is being reconciled.
type Role string

const (
	AR Role = "receivable"
	AP Role = "payable"
)

// Kind identifies the source collection a ledger entry came from.
type Kind string

const (
	KindInvoice    Kind = "Invoice"
	KindCollection Kind = "Collection"
	KindCreditNote Kind = "CreditNote"
	KindBill       Kind = "Bill"
	KindPayment    Kind = "Payment"
	KindDebitNote  Kind = "DebitNote"
)

// settlement reports whether the kind records money movement (collection or
// payment) rather than a document amount.
func (k Kind) settlement() bool {
	return k == KindCollection || k == KindPayment
}

// note reports whether the kind is a credit/debit note.
func (k Kind) note() bool {
	return k == KindCreditNote || k == KindDebitNote
}

// Record is a dated source document, normalized from whichever collection it
// was fetched from. Amount is the document's grand total; NetAmount, when
// present, overrides Amount for settlements (the books API reports the net
// figure after deductions on collections and payments).
type Record struct {
	Date           time.Time               `json:"date"`
	Reference      string                  `json:"reference_number"`
	Counterparty   string                  `json:"counterparty_name"`
	ApprovalStatus document.ApprovalStatus `json:"approval_status"`
	Status         string                  `json:"status"`
	Amount         decimal.Decimal         `json:"amount"`
	NetAmount      decimal.NullDecimal     `json:"net_amount"`
}

// effectiveAmount is netAmount when present, else amount.
func (r Record) effectiveAmount() decimal.Decimal {
	if r.NetAmount.Valid {
		return r.NetAmount.Decimal
	}
	return r.Amount
}

// Sources are the three collections feeding one reconciliation: documents
// (invoices or bills), settlements (collections or payments) and notes
// (credit or debit notes).
type Sources struct {
	Documents   []Record
	Settlements []Record
	Notes       []Record
}

// Summary is the outstanding-balance computation for one role.
type Summary struct {
	Role           Role            `json:"role"`
	TotalInvoiced  decimal.Decimal `json:"total_invoiced"`
	TotalSettled   decimal.Decimal `json:"total_settled"`
	NotesAmount    decimal.Decimal `json:"notes_amount"`
	AdjustedTotal  decimal.Decimal `json:"adjusted_total"`
	Unreconciled   decimal.Decimal `json:"unreconciled"`
}

// Summarize computes the outstanding balance for the role. Only Approved
// documents and settlements count; notes additionally require a status other
// than Cancelled.
func Summarize(role Role, src Sources) Summary {
	s := Summary{Role: role}

	for _, r := range src.Documents {
		if r.ApprovalStatus != document.StatusApproved {
			continue
		}
		s.TotalInvoiced = s.TotalInvoiced.Add(r.Amount)
	}
	for _, r := range src.Settlements {
		if r.ApprovalStatus != document.StatusApproved {
			continue
		}
		s.TotalSettled = s.TotalSettled.Add(r.effectiveAmount())
	}
	for _, r := range src.Notes {
		if r.ApprovalStatus != document.StatusApproved || r.Status == string(document.StatusCancelled) {
			continue
		}
		s.NotesAmount = s.NotesAmount.Add(r.Amount)
	}

	s.AdjustedTotal = s.TotalInvoiced.Sub(s.NotesAmount)
	s.Unreconciled = s.AdjustedTotal.Sub(s.TotalSettled)
	return s
}

// Entry is one row of the merged transaction ledger. Entries are derived on
// every recompute and never persisted.
type Entry struct {
	Date         time.Time       `json:"date"`
	Reference    string          `json:"reference_number"`
	Counterparty string          `json:"counterparty_name"`
	Kind         Kind            `json:"kind"`
	Amount       decimal.Decimal `json:"amount"`
	Status       string          `json:"status"`
}

// Ledger merges all three sources into one flat list, newest first.
func Ledger(role Role, src Sources) []Entry {
	docKind, settleKind, noteKind := kindsFor(role)

	entries := make([]Entry, 0, len(src.Documents)+len(src.Settlements)+len(src.Notes))
	appendAll := func(records []Record, kind Kind) {
		for _, r := range records {
			amount := r.Amount
			if kind.settlement() {
				amount = r.effectiveAmount()
			}
			entries = append(entries, Entry{
				Date:         r.Date,
				Reference:    r.Reference,
				Counterparty: r.Counterparty,
				Kind:         kind,
				Amount:       amount,
				Status:       DisplayStatus(kind, r),
			})
		}
	}
	appendAll(src.Documents, docKind)
	appendAll(src.Settlements, settleKind)
	appendAll(src.Notes, noteKind)

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return entries
}

func kindsFor(role Role) (doc, settle, note Kind) {
	if role == AP {
		return KindBill, KindPayment, KindDebitNote
	}
	return KindInvoice, KindCollection, KindCreditNote
}

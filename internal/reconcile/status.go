package reconcile

import "github.com/smallbiznis/taxledger/internal/document"

const (
	statusPendingApproval = "Pending Approval"
	statusRejected        = "Rejected"
	statusCompleted       = "Completed"
	statusIssued          = "Issued"
	statusDraft           = "Draft"
)

// DisplayStatus maps a record's workflow state to the status shown in the
// merged ledger. Settlements collapse to a three-state display; other kinds
// pass the document's own status through, falling back to Issued for
// invoices/bills and Draft for notes.
func DisplayStatus(kind Kind, r Record) string {
	if kind.settlement() {
		switch r.ApprovalStatus {
		case document.StatusPending:
			return statusPendingApproval
		case document.StatusRejected:
			return statusRejected
		default:
			return statusCompleted
		}
	}

	switch r.ApprovalStatus {
	case document.StatusPending:
		return string(document.StatusPending)
	case document.StatusRejected:
		return statusRejected
	}
	if r.Status != "" {
		return r.Status
	}
	if kind.note() {
		return statusDraft
	}
	return statusIssued
}

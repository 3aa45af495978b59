// Package gst derives the tax structure of a transaction from the two party
// registration ids and rewrites line-item rates to match it.
package gst

import "strings"

// RegistrationLength is the fixed length of a GSTIN.
const RegistrationLength = 15

// Registration is a 15-character GST registration identifier. The first two
// characters encode the state.
type Registration string

// Valid reports whether the id has the canonical 15-character form.
func (r Registration) Valid() bool {
	return len(strings.TrimSpace(string(r))) == RegistrationLength
}

// StateCode returns the two-character state prefix, or "" for a malformed id.
func (r Registration) StateCode() string {
	s := strings.TrimSpace(string(r))
	if len(s) != RegistrationLength {
		return ""
	}
	return strings.ToUpper(s[:2])
}

// Type is the GST structure of a transaction.
type Type string

const (
	// IntraState splits the nominal rate equally across CGST and SGST.
	IntraState Type = "intra_state"
	// InterState applies the full nominal rate as IGST.
	InterState Type = "inter_state"
	// Undetermined means a party id is absent or malformed. Callers must
	// leave existing line-item rates untouched.
	Undetermined Type = "undetermined"
)

// Classify derives the transaction's GST structure from the reporting
// company's and the counterparty's registration ids. Either id missing or
// malformed yields Undetermined; classification never fails.
func Classify(company, counterparty Registration) Type {
	if !company.Valid() || !counterparty.Valid() {
		return Undetermined
	}
	if company.StateCode() == counterparty.StateCode() {
		return IntraState
	}
	return InterState
}

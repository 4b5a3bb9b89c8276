// Package models defines the data types of the campuspark client core:
// user profiles, sessions, parking history records, demo accounts and
// top-up requests.
package models

import (
	"github.com/shopspring/decimal"
)

// UserProfile is the authenticated student's account record. The JSON tags
// match the locally persisted "user" entry, not the backend payload (the
// api package owns the wire format).
//
// StudentID is the stable natural key and immutable once assigned.
// Balance must never go negative.
type UserProfile struct {
	StudentID   string          `json:"mssv"`
	DisplayName string          `json:"name"`
	Balance     decimal.Decimal `json:"balance"`
	RFIDTag     string          `json:"id_rfid,omitempty"`
	BankLinked  bool            `json:"bank_linked"`
}

// ProfileUpdate is a partial profile change. Nil fields are left untouched
// by Apply. StudentID is deliberately absent: it cannot be reassigned.
type ProfileUpdate struct {
	DisplayName *string
	Balance     *decimal.Decimal
	RFIDTag     *string
	BankLinked  *bool
}

// Apply merges the update into a copy of p and returns it.
func (p UserProfile) Apply(u ProfileUpdate) UserProfile {
	if u.DisplayName != nil {
		p.DisplayName = *u.DisplayName
	}
	if u.Balance != nil {
		p.Balance = *u.Balance
	}
	if u.RFIDTag != nil {
		p.RFIDTag = *u.RFIDTag
	}
	if u.BankLinked != nil {
		p.BankLinked = *u.BankLinked
	}
	return p
}

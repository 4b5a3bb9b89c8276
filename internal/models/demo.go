package models

import "github.com/shopspring/decimal"

// DemoAccount is one entry of the bundled fallback dataset. The password is
// plaintext because the dataset only exists to keep the app usable without
// a backend; it is never persisted beyond the process lifetime.
type DemoAccount struct {
	StudentID   string
	Password    string
	DisplayName string
	RFIDTag     string
	Balance     decimal.Decimal
}

// Profile converts the demo account into the profile shape the rest of the
// core works with.
func (a DemoAccount) Profile() UserProfile {
	return UserProfile{
		StudentID:   a.StudentID,
		DisplayName: a.DisplayName,
		Balance:     a.Balance,
		RFIDTag:     a.RFIDTag,
	}
}

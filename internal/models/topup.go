package models

import "github.com/shopspring/decimal"

// DefaultTopUpMethod is the payment method the backend assumes when the
// caller does not pick one.
const DefaultTopUpMethod = "Chuyển khoản"

// TopUpRequest describes a balance top-up. Amount must be strictly
// positive; validation happens before any network call.
type TopUpRequest struct {
	StudentID     string
	Amount        decimal.Decimal
	Method        string
	TransactionID string
	Note          string
}

// TopUpReceipt is the backend's confirmation of a processed top-up.
type TopUpReceipt struct {
	Success       bool
	Message       string
	TransactionID string
}

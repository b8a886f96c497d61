package ledger

import "time"

// CreateAccountRequest is the request body for creating an account. The
// opening balance is in minor units.
type CreateAccountRequest struct {
	Name           string `json:"name" validate:"required"`
	OpeningBalance int64  `json:"opening_balance"`
}

// CreateTransactionRequest is the request body for creating a bank
// transaction. Amount is signed, in minor units, and must be non-zero.
type CreateTransactionRequest struct {
	AccountID string    `json:"account_id" validate:"required,uuid"`
	Amount    int64     `json:"amount" validate:"required"`
	Date      time.Time `json:"date"`
	Note      string    `json:"note"`
}

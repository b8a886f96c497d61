package dto

import (
	"time"

	"github.com/google/uuid"
)

// TransactionCreate carries the fields needed to persist a bank transaction.
// Amount is signed, in minor units.
type TransactionCreate struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Amount    int64
	Date      time.Time
	Note      string
}

// TransactionRead is the read-optimized projection of a bank transaction.
type TransactionRead struct {
	ID         uuid.UUID `json:"id"`
	AccountID  uuid.UUID `json:"account_id"`
	Amount     int64     `json:"amount"`
	Date       time.Time `json:"date"`
	Reconciled bool      `json:"reconciled"`
	Note       string    `json:"note,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// TransactionFilter narrows transaction listings. Nil fields are ignored.
type TransactionFilter struct {
	AccountID  *uuid.UUID
	Reconciled *bool
	From       *time.Time
	To         *time.Time
}

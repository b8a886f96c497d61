// Package domain holds the core entities of the bookkeeping backend and the
// sentinel errors shared across services.
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Account is a bank account tracked by the ledger. Balance is held in minor
// units (cents) so that applying and reverting transaction effects is exact.
type Account struct {
	ID        uuid.UUID
	Name      string
	Balance   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BankTransaction is a single movement against an account. Amount is signed,
// in minor units: a positive amount credits the account, a negative amount
// debits it. The reconciled flag carries no balance effect.
type BankTransaction struct {
	ID         uuid.UUID
	AccountID  uuid.UUID
	Amount     int64
	Date       time.Time
	Reconciled bool
	Note       string
	CreatedAt  time.Time
}

// NewBankTransaction builds a transaction for the given account. The amount
// must be non-zero; a zero date defaults to now.
func NewBankTransaction(accountID uuid.UUID, amount int64, date time.Time, note string) (*BankTransaction, error) {
	if accountID == uuid.Nil {
		return nil, fmt.Errorf("%w: account id is required", ErrValidation)
	}
	if amount == 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, ErrZeroAmount)
	}
	if date.IsZero() {
		date = time.Now().UTC()
	}
	return &BankTransaction{
		ID:        uuid.New(),
		AccountID: accountID,
		Amount:    amount,
		Date:      date,
		Note:      note,
	}, nil
}

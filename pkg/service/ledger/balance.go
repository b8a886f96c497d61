package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/omaradel/ledgerbook/pkg/repository"
)

// Balance mutator. Sign convention: a positive amount credits the account
// (raises the balance), a negative amount debits it. applyEffect and
// revertEffect are exact int64 inverses, so apply-then-revert restores the
// original balance unit for unit.
//
// Both must be called with a repository obtained from the unit-of-work scope
// that also carries the record mutation, otherwise the pairing guarantee is
// lost.

// applyEffect adds the transaction amount to the referenced account balance.
// Returns domain.ErrAccountNotFound when the account does not resolve.
func applyEffect(ctx context.Context, accounts repository.AccountRepository, accountID uuid.UUID, amount int64) error {
	return accounts.AddToBalance(ctx, accountID, amount)
}

// revertEffect applies the inverse delta of applyEffect.
func revertEffect(ctx context.Context, accounts repository.AccountRepository, accountID uuid.UUID, amount int64) error {
	return accounts.AddToBalance(ctx, accountID, -amount)
}

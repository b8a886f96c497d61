package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/omaradel/ledgerbook/pkg/domain"
	"github.com/omaradel/ledgerbook/pkg/dto"
	"github.com/omaradel/ledgerbook/pkg/repository"
)

// CreateTransaction persists a bank transaction and applies its balance
// effect inside one unit of work. On any failure the whole scope rolls back:
// no record, no balance change.
func (s *Service) CreateTransaction(ctx context.Context, create dto.TransactionCreate) (*dto.TransactionRead, error) {
	tx, err := domain.NewBankTransaction(create.AccountID, create.Amount, create.Date, create.Note)
	if err != nil {
		return nil, err
	}
	create.ID = tx.ID
	create.Date = tx.Date

	logger := s.logger.With(
		"transactionID", create.ID,
		"accountID", create.AccountID,
		"amount", create.Amount,
	)

	var read *dto.TransactionRead
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.Accounts()
		if err != nil {
			return err
		}
		txRepo, err := uow.Transactions()
		if err != nil {
			return err
		}
		// The effect goes first: a missing account aborts the scope before
		// the record exists.
		if err := applyEffect(ctx, accounts, create.AccountID, create.Amount); err != nil {
			return err
		}
		if err := txRepo.Create(ctx, create); err != nil {
			return err
		}
		read, err = txRepo.Get(ctx, create.ID)
		return err
	})
	if err != nil {
		logger.Error("create transaction failed", "error", err)
		return nil, err
	}
	logger.Info("transaction created")
	return read, nil
}

// DeleteTransaction reverts the balance effect and removes the record inside
// one unit of work. An absent id returns domain.ErrNotFound with no side
// effect; a failed revert leaves record and balance untouched.
func (s *Service) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	logger := s.logger.With("transactionID", id)

	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		txRepo, err := uow.Transactions()
		if err != nil {
			return err
		}
		accounts, err := uow.Accounts()
		if err != nil {
			return err
		}
		rec, err := txRepo.Get(ctx, id)
		if err != nil {
			return err
		}
		if err := revertEffect(ctx, accounts, rec.AccountID, rec.Amount); err != nil {
			return fmt.Errorf("reverting balance effect: %w", err)
		}
		return txRepo.Delete(ctx, id)
	})
	if err != nil {
		logger.Error("delete transaction failed", "error", err)
		return err
	}
	logger.Info("transaction deleted")
	return nil
}

// Reconcile marks a transaction as matched against an external statement.
// It never touches the account balance.
func (s *Service) Reconcile(ctx context.Context, id uuid.UUID) (*dto.TransactionRead, error) {
	txRepo, err := s.uow.Transactions()
	if err != nil {
		return nil, err
	}
	if err := txRepo.SetReconciled(ctx, id, true); err != nil {
		s.logger.Error("reconcile failed", "transactionID", id, "error", err)
		return nil, err
	}
	s.logger.Info("transaction reconciled", "transactionID", id)
	return txRepo.Get(ctx, id)
}

// ListTransactions returns transactions matching the filter. Empty results
// are an empty slice, not an error.
func (s *Service) ListTransactions(ctx context.Context, filter dto.TransactionFilter) ([]*dto.TransactionRead, error) {
	txRepo, err := s.uow.Transactions()
	if err != nil {
		return nil, err
	}
	return txRepo.List(ctx, filter)
}

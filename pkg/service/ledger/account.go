package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/omaradel/ledgerbook/pkg/domain"
	"github.com/omaradel/ledgerbook/pkg/dto"
	"github.com/omaradel/ledgerbook/pkg/repository"
)

// CreateAccount persists a new account and returns its projection.
func (s *Service) CreateAccount(ctx context.Context, create dto.AccountCreate) (*dto.AccountRead, error) {
	if strings.TrimSpace(create.Name) == "" {
		return nil, fmt.Errorf("%w: account name is required", domain.ErrValidation)
	}
	create.ID = uuid.New()

	var read *dto.AccountRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.Accounts()
		if err != nil {
			return err
		}
		if err := accounts.Create(ctx, create); err != nil {
			return err
		}
		read, err = accounts.Get(ctx, create.ID)
		return err
	})
	if err != nil {
		s.logger.Error("create account failed", "name", create.Name, "error", err)
		return nil, err
	}
	s.logger.Info("account created", "accountID", read.ID, "name", read.Name)
	return read, nil
}

// GetAccount returns an account with its current balance.
func (s *Service) GetAccount(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error) {
	accounts, err := s.uow.Accounts()
	if err != nil {
		return nil, err
	}
	return accounts.Get(ctx, id)
}

// ListAccounts returns all accounts.
func (s *Service) ListAccounts(ctx context.Context) ([]*dto.AccountRead, error) {
	accounts, err := s.uow.Accounts()
	if err != nil {
		return nil, err
	}
	return accounts.List(ctx)
}

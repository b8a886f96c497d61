package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/omaradel/ledgerbook/pkg/domain"
	"github.com/omaradel/ledgerbook/pkg/dto"
	"github.com/omaradel/ledgerbook/pkg/repository"
	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates an account repository over the provided
// *gorm.DB session.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// Create implements repository.AccountRepository.
func (r *accountRepository) Create(ctx context.Context, create dto.AccountCreate) error {
	acct := Account{
		ID:      create.ID,
		Name:    create.Name,
		Balance: create.OpeningBalance,
	}
	return r.db.WithContext(ctx).Create(&acct).Error
}

// Get implements repository.AccountRepository.
func (r *accountRepository) Get(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error) {
	var acct Account
	if err := r.db.WithContext(ctx).First(&acct, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return mapAccountToDTO(&acct), nil
}

// List implements repository.AccountRepository.
func (r *accountRepository) List(ctx context.Context) ([]*dto.AccountRead, error) {
	var accts []Account
	if err := r.db.WithContext(ctx).Order("created_at").Find(&accts).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.AccountRead, 0, len(accts))
	for i := range accts {
		result = append(result, mapAccountToDTO(&accts[i]))
	}
	return result, nil
}

// AddToBalance implements repository.AccountRepository. The delta is applied
// in a single UPDATE so the read-modify-write happens inside the database.
func (r *accountRepository) AddToBalance(ctx context.Context, id uuid.UUID, delta int64) error {
	res := r.db.WithContext(ctx).
		Model(&Account{}).
		Where("id = ?", id).
		UpdateColumn("balance", gorm.Expr("balance + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func mapAccountToDTO(acct *Account) *dto.AccountRead {
	return &dto.AccountRead{
		ID:        acct.ID,
		Name:      acct.Name,
		Balance:   acct.Balance,
		CreatedAt: acct.CreatedAt,
		UpdatedAt: acct.UpdatedAt,
	}
}

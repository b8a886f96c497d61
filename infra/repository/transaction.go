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

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a bank-transaction repository over the
// provided *gorm.DB session.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

// Create implements repository.TransactionRepository.
func (r *transactionRepository) Create(ctx context.Context, create dto.TransactionCreate) error {
	tx := BankTransaction{
		ID:        create.ID,
		AccountID: create.AccountID,
		Amount:    create.Amount,
		Date:      create.Date,
		Note:      create.Note,
	}
	return r.db.WithContext(ctx).Create(&tx).Error
}

// Get implements repository.TransactionRepository.
func (r *transactionRepository) Get(ctx context.Context, id uuid.UUID) (*dto.TransactionRead, error) {
	var tx BankTransaction
	if err := r.db.WithContext(ctx).First(&tx, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mapTransactionToDTO(&tx), nil
}

// Delete implements repository.TransactionRepository.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&BankTransaction{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetReconciled implements repository.TransactionRepository.
func (r *transactionRepository) SetReconciled(ctx context.Context, id uuid.UUID, reconciled bool) error {
	res := r.db.WithContext(ctx).
		Model(&BankTransaction{}).
		Where("id = ?", id).
		UpdateColumn("reconciled", reconciled)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List implements repository.TransactionRepository.
func (r *transactionRepository) List(ctx context.Context, filter dto.TransactionFilter) ([]*dto.TransactionRead, error) {
	q := r.db.WithContext(ctx).Model(&BankTransaction{})
	if filter.AccountID != nil {
		q = q.Where("account_id = ?", *filter.AccountID)
	}
	if filter.Reconciled != nil {
		q = q.Where("reconciled = ?", *filter.Reconciled)
	}
	if filter.From != nil {
		q = q.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("date <= ?", *filter.To)
	}
	var txs []BankTransaction
	if err := q.Order("date desc").Find(&txs).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.TransactionRead, 0, len(txs))
	for i := range txs {
		result = append(result, mapTransactionToDTO(&txs[i]))
	}
	return result, nil
}

func mapTransactionToDTO(tx *BankTransaction) *dto.TransactionRead {
	return &dto.TransactionRead{
		ID:         tx.ID,
		AccountID:  tx.AccountID,
		Amount:     tx.Amount,
		Date:       tx.Date,
		Reconciled: tx.Reconciled,
		Note:       tx.Note,
		CreatedAt:  tx.CreatedAt,
	}
}

package repository

import (
	"context"

	"github.com/omaradel/ledgerbook/pkg/repository"
	"gorm.io/gorm"
)

// UoW implements repository.UnitOfWork over a gorm transaction. Repositories
// obtained inside Do share the transaction session; outside Do they use the
// bare connection.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a unit of work for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs fn inside a database transaction. A non-nil error from fn rolls the
// transaction back.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// Accounts implements repository.UnitOfWork.
func (u *UoW) Accounts() (repository.AccountRepository, error) {
	return NewAccountRepository(u.session()), nil
}

// Transactions implements repository.UnitOfWork.
func (u *UoW) Transactions() (repository.TransactionRepository, error) {
	return NewTransactionRepository(u.session()), nil
}

// RefreshTokens implements repository.UnitOfWork.
func (u *UoW) RefreshTokens() (repository.RefreshTokenRepository, error) {
	return NewRefreshTokenRepository(u.session()), nil
}

// Users implements repository.UnitOfWork.
func (u *UoW) Users() (repository.UserRepository, error) {
	return NewUserRepository(u.session()), nil
}

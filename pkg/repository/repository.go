// Package repository defines the persistence contracts consumed by the
// services. Implementations live under infra/repository.
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/omaradel/ledgerbook/pkg/dto"
)

// AccountRepository persists accounts and their balances.
type AccountRepository interface {
	Create(ctx context.Context, create dto.AccountCreate) error
	Get(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error)
	List(ctx context.Context) ([]*dto.AccountRead, error)
	// AddToBalance applies a signed delta to the account's balance in a
	// single statement. Returns domain.ErrAccountNotFound when the id does
	// not resolve.
	AddToBalance(ctx context.Context, id uuid.UUID, delta int64) error
}

// TransactionRepository persists bank transactions.
type TransactionRepository interface {
	Create(ctx context.Context, create dto.TransactionCreate) error
	Get(ctx context.Context, id uuid.UUID) (*dto.TransactionRead, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetReconciled(ctx context.Context, id uuid.UUID, reconciled bool) error
	List(ctx context.Context, filter dto.TransactionFilter) ([]*dto.TransactionRead, error)
}

// RefreshTokenRepository persists refresh tokens keyed by token value.
type RefreshTokenRepository interface {
	Create(ctx context.Context, create dto.RefreshTokenCreate) error
	Get(ctx context.Context, token string) (*dto.RefreshTokenRead, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// UserRepository persists users.
type UserRepository interface {
	Create(ctx context.Context, create dto.UserCreate) error
	Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error)
	GetByEmail(ctx context.Context, email string) (*dto.UserRead, error)
	GetByUsername(ctx context.Context, username string) (*dto.UserRead, error)
}

// DocumentRepository provides type-safe CRUD over a bookkeeping document
// collection. Patch updates use column-name keys.
type DocumentRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	Get(ctx context.Context, id uuid.UUID) (*T, error)
	List(ctx context.Context) ([]*T, error)
	Update(ctx context.Context, id uuid.UUID, patch map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error
}

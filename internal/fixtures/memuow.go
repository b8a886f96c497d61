// Package fixtures provides an in-memory UnitOfWork used by service and
// handler tests. Do snapshots all state before running the callback and
// restores it on error, mirroring the commit/rollback semantics of the real
// gorm unit of work.
package fixtures

import (
	"context"
	"maps"
	"time"

	"github.com/google/uuid"
	"github.com/omaradel/ledgerbook/pkg/domain"
	"github.com/omaradel/ledgerbook/pkg/dto"
	"github.com/omaradel/ledgerbook/pkg/repository"
)

// MemUoW is an in-memory repository.UnitOfWork.
type MemUoW struct {
	AccountRows map[uuid.UUID]*dto.AccountRead
	TxRows      map[uuid.UUID]*dto.TransactionRead
	TokenRows   map[string]*dto.RefreshTokenRead
	UserRows    map[uuid.UUID]*dto.UserRead

	// FailTransactionCreate forces the next transaction insert to fail,
	// for exercising rollback paths.
	FailTransactionCreate bool
}

// NewMemUoW creates an empty in-memory unit of work.
func NewMemUoW() *MemUoW {
	return &MemUoW{
		AccountRows: map[uuid.UUID]*dto.AccountRead{},
		TxRows:      map[uuid.UUID]*dto.TransactionRead{},
		TokenRows:   map[string]*dto.RefreshTokenRead{},
		UserRows:    map[uuid.UUID]*dto.UserRead{},
	}
}

// SeedAccount adds an account with the given balance and returns its id.
func (m *MemUoW) SeedAccount(name string, balance int64) uuid.UUID {
	id := uuid.New()
	m.AccountRows[id] = &dto.AccountRead{ID: id, Name: name, Balance: balance, CreatedAt: time.Now()}
	return id
}

// SeedUser adds a user and returns its id.
func (m *MemUoW) SeedUser(username, email, hashedPassword string) uuid.UUID {
	id := uuid.New()
	m.UserRows[id] = &dto.UserRead{ID: id, Username: username, Email: email, HashedPassword: hashedPassword, CreatedAt: time.Now()}
	return id
}

// Do implements repository.UnitOfWork with snapshot/restore rollback.
func (m *MemUoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	accounts := snapshotAccounts(m.AccountRows)
	txs := snapshotTxs(m.TxRows)
	tokens := snapshotTokens(m.TokenRows)
	users := snapshotUsers(m.UserRows)
	if err := fn(m); err != nil {
		m.AccountRows, m.TxRows, m.TokenRows, m.UserRows = accounts, txs, tokens, users
		return err
	}
	return nil
}

// Accounts implements repository.UnitOfWork.
func (m *MemUoW) Accounts() (repository.AccountRepository, error) {
	return &memAccounts{m}, nil
}

// Transactions implements repository.UnitOfWork.
func (m *MemUoW) Transactions() (repository.TransactionRepository, error) {
	return &memTransactions{m}, nil
}

// RefreshTokens implements repository.UnitOfWork.
func (m *MemUoW) RefreshTokens() (repository.RefreshTokenRepository, error) {
	return &memTokens{m}, nil
}

// Users implements repository.UnitOfWork.
func (m *MemUoW) Users() (repository.UserRepository, error) {
	return &memUsers{m}, nil
}

func snapshotAccounts(src map[uuid.UUID]*dto.AccountRead) map[uuid.UUID]*dto.AccountRead {
	dst := make(map[uuid.UUID]*dto.AccountRead, len(src))
	for k, v := range src {
		cp := *v
		dst[k] = &cp
	}
	return dst
}

func snapshotTxs(src map[uuid.UUID]*dto.TransactionRead) map[uuid.UUID]*dto.TransactionRead {
	dst := make(map[uuid.UUID]*dto.TransactionRead, len(src))
	for k, v := range src {
		cp := *v
		dst[k] = &cp
	}
	return dst
}

func snapshotTokens(src map[string]*dto.RefreshTokenRead) map[string]*dto.RefreshTokenRead {
	dst := make(map[string]*dto.RefreshTokenRead, len(src))
	for k, v := range src {
		cp := *v
		dst[k] = &cp
	}
	return dst
}

func snapshotUsers(src map[uuid.UUID]*dto.UserRead) map[uuid.UUID]*dto.UserRead {
	dst := make(map[uuid.UUID]*dto.UserRead, len(src))
	maps.Copy(dst, src)
	return dst
}

type memAccounts struct{ m *MemUoW }

func (r *memAccounts) Create(ctx context.Context, create dto.AccountCreate) error {
	r.m.AccountRows[create.ID] = &dto.AccountRead{
		ID:        create.ID,
		Name:      create.Name,
		Balance:   create.OpeningBalance,
		CreatedAt: time.Now(),
	}
	return nil
}

func (r *memAccounts) Get(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error) {
	acct, ok := r.m.AccountRows[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	cp := *acct
	return &cp, nil
}

func (r *memAccounts) List(ctx context.Context) ([]*dto.AccountRead, error) {
	out := make([]*dto.AccountRead, 0, len(r.m.AccountRows))
	for _, acct := range r.m.AccountRows {
		cp := *acct
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memAccounts) AddToBalance(ctx context.Context, id uuid.UUID, delta int64) error {
	acct, ok := r.m.AccountRows[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	acct.Balance += delta
	return nil
}

type memTransactions struct{ m *MemUoW }

func (r *memTransactions) Create(ctx context.Context, create dto.TransactionCreate) error {
	if r.m.FailTransactionCreate {
		return domain.ErrValidation
	}
	r.m.TxRows[create.ID] = &dto.TransactionRead{
		ID:        create.ID,
		AccountID: create.AccountID,
		Amount:    create.Amount,
		Date:      create.Date,
		Note:      create.Note,
		CreatedAt: time.Now(),
	}
	return nil
}

func (r *memTransactions) Get(ctx context.Context, id uuid.UUID) (*dto.TransactionRead, error) {
	tx, ok := r.m.TxRows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *tx
	return &cp, nil
}

func (r *memTransactions) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.m.TxRows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.m.TxRows, id)
	return nil
}

func (r *memTransactions) SetReconciled(ctx context.Context, id uuid.UUID, reconciled bool) error {
	tx, ok := r.m.TxRows[id]
	if !ok {
		return domain.ErrNotFound
	}
	tx.Reconciled = reconciled
	return nil
}

func (r *memTransactions) List(ctx context.Context, filter dto.TransactionFilter) ([]*dto.TransactionRead, error) {
	out := []*dto.TransactionRead{}
	for _, tx := range r.m.TxRows {
		if filter.AccountID != nil && tx.AccountID != *filter.AccountID {
			continue
		}
		if filter.Reconciled != nil && tx.Reconciled != *filter.Reconciled {
			continue
		}
		if filter.From != nil && tx.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && tx.Date.After(*filter.To) {
			continue
		}
		cp := *tx
		out = append(out, &cp)
	}
	return out, nil
}

type memTokens struct{ m *MemUoW }

func (r *memTokens) Create(ctx context.Context, create dto.RefreshTokenCreate) error {
	r.m.TokenRows[create.Token] = &dto.RefreshTokenRead{
		Token:     create.Token,
		UserID:    create.UserID,
		UserAgent: create.UserAgent,
		ExpiresAt: create.ExpiresAt,
		CreatedAt: time.Now(),
	}
	return nil
}

func (r *memTokens) Get(ctx context.Context, token string) (*dto.RefreshTokenRead, error) {
	rec, ok := r.m.TokenRows[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (r *memTokens) Delete(ctx context.Context, token string) error {
	if _, ok := r.m.TokenRows[token]; !ok {
		return domain.ErrNotFound
	}
	delete(r.m.TokenRows, token)
	return nil
}

func (r *memTokens) DeleteExpired(ctx context.Context) (int64, error) {
	var n int64
	now := time.Now().UTC()
	for token, rec := range r.m.TokenRows {
		if now.After(rec.ExpiresAt) {
			delete(r.m.TokenRows, token)
			n++
		}
	}
	return n, nil
}

type memUsers struct{ m *MemUoW }

func (r *memUsers) Create(ctx context.Context, create dto.UserCreate) error {
	for _, u := range r.m.UserRows {
		if u.Username == create.Username || u.Email == create.Email {
			return domain.ErrAlreadyExists
		}
	}
	r.m.UserRows[create.ID] = &dto.UserRead{
		ID:             create.ID,
		Username:       create.Username,
		Email:          create.Email,
		HashedPassword: create.HashedPassword,
		CreatedAt:      time.Now(),
	}
	return nil
}

func (r *memUsers) Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error) {
	u, ok := r.m.UserRows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (r *memUsers) GetByEmail(ctx context.Context, email string) (*dto.UserRead, error) {
	for _, u := range r.m.UserRows {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memUsers) GetByUsername(ctx context.Context, username string) (*dto.UserRead, error) {
	for _, u := range r.m.UserRows {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

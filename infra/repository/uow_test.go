package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/omaradel/ledgerbook/pkg/repository"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestUoW_DoCommits(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUoW(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := uow.Do(context.Background(), func(txUow repository.UnitOfWork) error {
		accounts, err := txUow.Accounts()
		require.NoError(t, err)
		assert.NotNil(t, accounts)

		transactions, err := txUow.Transactions()
		require.NoError(t, err)
		assert.NotNil(t, transactions)

		tokens, err := txUow.RefreshTokens()
		require.NoError(t, err)
		assert.NotNil(t, tokens)

		users, err := txUow.Users()
		require.NoError(t, err)
		assert.NotNil(t, users)

		return nil
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUoW_DoRollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUoW(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := uow.Do(context.Background(), func(txUow repository.UnitOfWork) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUoW_RepositoriesOutsideTransaction(t *testing.T) {
	db, _ := newMockDB(t)
	uow := NewUoW(db)

	accounts, err := uow.Accounts()
	require.NoError(t, err)
	assert.NotNil(t, accounts)

	transactions, err := uow.Transactions()
	require.NoError(t, err)
	assert.NotNil(t, transactions)

	tokens, err := uow.RefreshTokens()
	require.NoError(t, err)
	assert.NotNil(t, tokens)

	users, err := uow.Users()
	require.NoError(t, err)
	assert.NotNil(t, users)
}

package repository

import "context"

// UnitOfWork is the transaction boundary shared by all repositories. Every
// repository obtained from the UnitOfWork passed to Do's callback is bound to
// the same database transaction, so multi-step mutations either all commit or
// all roll back.
type UnitOfWork interface {
	// Do executes fn within a transaction boundary. If fn returns an error
	// the transaction is rolled back and the error is returned unchanged.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// Repository accessors bound to the current transaction, or to the bare
	// connection when called outside Do.
	Accounts() (AccountRepository, error)
	Transactions() (TransactionRepository, error)
	RefreshTokens() (RefreshTokenRepository, error)
	Users() (UserRepository, error)
}

// Package ledger provides the business logic for bank accounts and bank
// transactions, including the atomic balance-consistency protocol: a
// transaction record and its balance effect are always created or destroyed
// together inside one unit of work.
package ledger

import (
	"log/slog"

	"github.com/omaradel/ledgerbook/pkg/repository"
)

// Service orchestrates account and bank-transaction operations over a unit
// of work. It holds no state of its own.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a ledger service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

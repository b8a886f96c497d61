// Package books provides uniform CRUD logic for bookkeeping documents
// (invoices, estimates, expenses, vendors, projects, timesheets). The
// resources share no cross-document invariants, so one generic service
// covers all of them.
package books

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/omaradel/ledgerbook/pkg/domain"
	"github.com/omaradel/ledgerbook/pkg/repository"
)

// protectedFields may never be patched by clients.
var protectedFields = []string{"id", "created_at", "updated_at"}

// Service is a generic CRUD service over one document collection.
type Service[T any] struct {
	repo   repository.DocumentRepository[T]
	logger *slog.Logger
	name   string
}

// New creates a document service; name labels log lines ("invoice", ...).
func New[T any](repo repository.DocumentRepository[T], logger *slog.Logger, name string) *Service[T] {
	return &Service[T]{repo: repo, logger: logger, name: name}
}

// Create persists a new document.
func (s *Service[T]) Create(ctx context.Context, entity *T) error {
	if err := s.repo.Create(ctx, entity); err != nil {
		s.logger.Error("create failed", "resource", s.name, "error", err)
		return err
	}
	s.logger.Info("created", "resource", s.name)
	return nil
}

// Get returns one document by id.
func (s *Service[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	return s.repo.Get(ctx, id)
}

// List returns every document in the collection.
func (s *Service[T]) List(ctx context.Context) ([]*T, error) {
	return s.repo.List(ctx)
}

// Update applies a partial patch and returns the updated document. Keys for
// protected columns are stripped before the patch reaches the store.
func (s *Service[T]) Update(ctx context.Context, id uuid.UUID, patch map[string]any) (*T, error) {
	for _, field := range protectedFields {
		delete(patch, field)
	}
	if len(patch) == 0 {
		return nil, fmt.Errorf("%w: empty patch", domain.ErrValidation)
	}
	if err := s.repo.Update(ctx, id, patch); err != nil {
		s.logger.Error("update failed", "resource", s.name, "id", id, "error", err)
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

// Delete removes one document by id.
func (s *Service[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete failed", "resource", s.name, "id", id, "error", err)
		return err
	}
	s.logger.Info("deleted", "resource", s.name, "id", id)
	return nil
}

package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/omaradel/ledgerbook/pkg/domain"
	"github.com/omaradel/ledgerbook/pkg/repository"
	"gorm.io/gorm"
)

type documentRepository[T any] struct {
	db *gorm.DB
}

// NewDocumentRepository creates a generic CRUD repository for a bookkeeping
// document model.
func NewDocumentRepository[T any](db *gorm.DB) repository.DocumentRepository[T] {
	return &documentRepository[T]{db: db}
}

// Create implements repository.DocumentRepository.
func (r *documentRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// Get implements repository.DocumentRepository.
func (r *documentRepository[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// List implements repository.DocumentRepository.
func (r *documentRepository[T]) List(ctx context.Context) ([]*T, error) {
	var entities []T
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&entities).Error; err != nil {
		return nil, err
	}
	result := make([]*T, 0, len(entities))
	for i := range entities {
		result = append(result, &entities[i])
	}
	return result, nil
}

// Update implements repository.DocumentRepository.
func (r *documentRepository[T]) Update(ctx context.Context, id uuid.UUID, patch map[string]any) error {
	var model T
	res := r.db.WithContext(ctx).Model(&model).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete implements repository.DocumentRepository.
func (r *documentRepository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	var model T
	res := r.db.WithContext(ctx).Delete(&model, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

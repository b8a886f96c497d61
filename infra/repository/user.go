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

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a user repository over the provided *gorm.DB
// session.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create implements repository.UserRepository.
func (r *userRepository) Create(ctx context.Context, create dto.UserCreate) error {
	u := User{
		ID:             create.ID,
		Username:       create.Username,
		Email:          create.Email,
		HashedPassword: create.HashedPassword,
	}
	if err := r.db.WithContext(ctx).Create(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Get implements repository.UserRepository.
func (r *userRepository) Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error) {
	return r.getBy(ctx, "id = ?", id)
}

// GetByEmail implements repository.UserRepository.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*dto.UserRead, error) {
	return r.getBy(ctx, "email = ?", email)
}

// GetByUsername implements repository.UserRepository.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*dto.UserRead, error) {
	return r.getBy(ctx, "username = ?", username)
}

func (r *userRepository) getBy(ctx context.Context, query string, arg any) (*dto.UserRead, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &dto.UserRead{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		HashedPassword: u.HashedPassword,
		CreatedAt:      u.CreatedAt,
	}, nil
}

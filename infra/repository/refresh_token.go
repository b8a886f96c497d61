package repository

import (
	"context"
	"errors"
	"time"

	"github.com/omaradel/ledgerbook/pkg/domain"
	"github.com/omaradel/ledgerbook/pkg/dto"
	"github.com/omaradel/ledgerbook/pkg/repository"
	"gorm.io/gorm"
)

type refreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository creates a refresh-token repository over the
// provided *gorm.DB session.
func NewRefreshTokenRepository(db *gorm.DB) repository.RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

// Create implements repository.RefreshTokenRepository.
func (r *refreshTokenRepository) Create(ctx context.Context, create dto.RefreshTokenCreate) error {
	rec := RefreshToken{
		Token:     create.Token,
		UserID:    create.UserID,
		UserAgent: create.UserAgent,
		ExpiresAt: create.ExpiresAt,
	}
	return r.db.WithContext(ctx).Create(&rec).Error
}

// Get implements repository.RefreshTokenRepository.
func (r *refreshTokenRepository) Get(ctx context.Context, token string) (*dto.RefreshTokenRead, error) {
	var rec RefreshToken
	if err := r.db.WithContext(ctx).First(&rec, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &dto.RefreshTokenRead{
		Token:     rec.Token,
		UserID:    rec.UserID,
		UserAgent: rec.UserAgent,
		ExpiresAt: rec.ExpiresAt,
		CreatedAt: rec.CreatedAt,
	}, nil
}

// Delete implements repository.RefreshTokenRepository.
func (r *refreshTokenRepository) Delete(ctx context.Context, token string) error {
	res := r.db.WithContext(ctx).Delete(&RefreshToken{}, "token = ?", token)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteExpired implements repository.RefreshTokenRepository.
func (r *refreshTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&RefreshToken{}, "expires_at < ?", time.Now().UTC())
	return res.RowsAffected, res.Error
}

package auth

import (
	"context"
	"errors"
	"time"

	"github.com/omaradel/ledgerbook/pkg/domain"
	"github.com/omaradel/ledgerbook/pkg/dto"
	"github.com/omaradel/ledgerbook/pkg/repository"
)

// Session is the result of a successful login, signup, or refresh: a new
// refresh token plus a short-lived access token.
type Session struct {
	User             *dto.UserRead
	AccessToken      string
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// Refresh rotates a presented refresh token: the old record is deleted and a
// successor bound to the same user is issued, all inside one unit of work. A
// token that is unknown, expired, or already rotated fails with
// domain.ErrInvalidToken; there is no grace window for the predecessor.
func (s *Service) Refresh(ctx context.Context, presented, userAgent string) (*Session, error) {
	log := s.logger.With("context", "Refresh")
	if presented == "" {
		return nil, domain.ErrInvalidToken
	}

	var session *Session
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		tokens, err := uow.RefreshTokens()
		if err != nil {
			return err
		}
		rec, err := tokens.Get(ctx, presented)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrInvalidToken
			}
			return err
		}
		if err := tokens.Delete(ctx, presented); err != nil {
			return err
		}
		if time.Now().UTC().After(rec.ExpiresAt) {
			// Expired tokens never rotate; PurgeExpiredTokens reaps the rows.
			return domain.ErrInvalidToken
		}
		users, err := uow.Users()
		if err != nil {
			return err
		}
		u, err := users.Get(ctx, rec.UserID)
		if err != nil {
			return err
		}
		session, err = s.openSession(ctx, uow, u, userAgent)
		return err
	})
	if err != nil {
		log.Warn("Refresh failed", "error", err)
		return nil, err
	}
	log.Info("Refresh successful", "userID", session.User.ID)
	return session, nil
}

// Logout deletes the presented refresh token. A token that is already gone
// is not an error.
func (s *Service) Logout(ctx context.Context, presented string) error {
	if presented == "" {
		return nil
	}
	tokens, err := s.uow.RefreshTokens()
	if err != nil {
		return err
	}
	if err := tokens.Delete(ctx, presented); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	s.logger.Info("Logout successful")
	return nil
}

// PurgeExpiredTokens removes refresh tokens past their expiry and returns
// how many were dropped.
func (s *Service) PurgeExpiredTokens(ctx context.Context) (int64, error) {
	tokens, err := s.uow.RefreshTokens()
	if err != nil {
		return 0, err
	}
	return tokens.DeleteExpired(ctx)
}

// openSession issues a refresh token record and mints an access token for
// the user, using repositories from the caller's unit of work.
func (s *Service) openSession(ctx context.Context, uow repository.UnitOfWork, u *dto.UserRead, userAgent string) (*Session, error) {
	tokens, err := uow.RefreshTokens()
	if err != nil {
		return nil, err
	}
	rt := domain.NewRefreshToken(u.ID, userAgent, s.refresh.Expiry)
	if err := tokens.Create(ctx, dto.RefreshTokenCreate{
		Token:     rt.Token,
		UserID:    rt.UserID,
		UserAgent: rt.UserAgent,
		ExpiresAt: rt.ExpiresAt,
	}); err != nil {
		return nil, err
	}
	access, err := s.GenerateAccessToken(u)
	if err != nil {
		return nil, err
	}
	return &Session{
		User:             u,
		AccessToken:      access,
		RefreshToken:     rt.Token,
		RefreshExpiresAt: rt.ExpiresAt,
	}, nil
}

// Package auth provides credential checks, access-token minting, and
// refresh-token rotation.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/omaradel/ledgerbook/pkg/config"
	"github.com/omaradel/ledgerbook/pkg/domain"
	"github.com/omaradel/ledgerbook/pkg/dto"
	"github.com/omaradel/ledgerbook/pkg/repository"
	"github.com/omaradel/ledgerbook/pkg/utils"
)

// Service implements signup, login, and the refresh-token session protocol.
type Service struct {
	uow     repository.UnitOfWork
	jwtCfg  config.Jwt
	refresh config.RefreshToken
	logger  *slog.Logger
}

// New creates an auth service.
func New(uow repository.UnitOfWork, jwtCfg config.Jwt, refresh config.RefreshToken, logger *slog.Logger) *Service {
	return &Service{uow: uow, jwtCfg: jwtCfg, refresh: refresh, logger: logger}
}

// Signup creates a user and opens a session for it.
func (s *Service) Signup(ctx context.Context, username, email, password, userAgent string) (*Session, error) {
	log := s.logger.With("context", "Signup", "username", username)
	if !utils.IsEmail(email) {
		return nil, fmt.Errorf("%w: invalid email", domain.ErrValidation)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", domain.ErrValidation)
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	create := dto.UserCreate{
		ID:             uuid.New(),
		Username:       username,
		Email:          email,
		HashedPassword: hashed,
	}
	var session *Session
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.Users()
		if err != nil {
			return err
		}
		if err := users.Create(ctx, create); err != nil {
			return err
		}
		u, err := users.Get(ctx, create.ID)
		if err != nil {
			return err
		}
		session, err = s.openSession(ctx, uow, u, userAgent)
		return err
	})
	if err != nil {
		log.Error("Signup failed", "error", err)
		return nil, err
	}
	log.Info("Signup successful", "userID", session.User.ID)
	return session, nil
}

// Login verifies credentials by username or email and opens a session.
func (s *Service) Login(ctx context.Context, identity, password, userAgent string) (*Session, error) {
	log := s.logger.With("context", "Login", "identity", identity)

	var session *Session
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.Users()
		if err != nil {
			return err
		}
		var u *dto.UserRead
		if utils.IsEmail(identity) {
			u, err = users.GetByEmail(ctx, identity)
		} else {
			u, err = users.GetByUsername(ctx, identity)
		}
		if err != nil {
			// Burn a hash comparison so unknown identities take as long as
			// wrong passwords.
			const dummyHash = "$2a$14$7zFqzDbD3RrlkMTczbXG9OWZ0FLOXjIxXzSZ.QZxkVXjXcx7QZQiC"
			_ = utils.CheckPasswordHash(password, dummyHash)
			return domain.ErrUnauthorized
		}
		if !utils.CheckPasswordHash(password, u.HashedPassword) {
			return domain.ErrUnauthorized
		}
		session, err = s.openSession(ctx, uow, u, userAgent)
		return err
	})
	if err != nil {
		log.Error("Login failed", "error", err)
		return nil, err
	}
	log.Info("Login successful", "userID", session.User.ID)
	return session, nil
}

package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserCreate carries the fields needed to persist a new user.
type UserCreate struct {
	ID             uuid.UUID
	Username       string
	Email          string
	HashedPassword string
}

// UserRead is the read-optimized projection of a user. HashedPassword is
// included for credential checks and must never be serialized to clients.
type UserRead struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

// RefreshTokenCreate carries the fields needed to persist a refresh token.
type RefreshTokenCreate struct {
	Token     string
	UserID    uuid.UUID
	UserAgent string
	ExpiresAt time.Time
}

// RefreshTokenRead is the read-optimized projection of a refresh token.
type RefreshTokenRead struct {
	Token     string
	UserID    uuid.UUID
	UserAgent string
	ExpiresAt time.Time
	CreatedAt time.Time
}

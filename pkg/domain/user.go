package domain

import (
	"time"

	"github.com/google/uuid"
)

// User owns refresh tokens and authenticates against the API.
type User struct {
	ID             uuid.UUID
	Username       string
	Email          string
	HashedPassword string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

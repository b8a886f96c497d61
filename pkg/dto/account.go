// Package dto defines the data transfer objects exchanged between services
// and repositories.
package dto

import (
	"time"

	"github.com/google/uuid"
)

// AccountCreate carries the fields needed to persist a new account.
type AccountCreate struct {
	ID             uuid.UUID
	Name           string
	OpeningBalance int64
}

// AccountRead is the read-optimized projection of an account.
type AccountRead struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package domain

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/google/uuid"
)

// RefreshToken is a long-lived credential identified by its opaque token
// value. Rotation deletes the presented record and issues a successor, so at
// most one record per issuance chain is ever valid.
type RefreshToken struct {
	Token     string
	UserID    uuid.UUID
	UserAgent string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// NewRefreshToken mints a token for the given user and device, valid for ttl.
func NewRefreshToken(userID uuid.UUID, userAgent string, ttl time.Duration) *RefreshToken {
	return &RefreshToken{
		Token:     NewTokenValue(),
		UserID:    userID,
		UserAgent: userAgent,
		ExpiresAt: time.Now().UTC().Add(ttl),
	}
}

// Expired reports whether the token is past its expiry.
func (t *RefreshToken) Expired() bool {
	return time.Now().UTC().After(t.ExpiresAt)
}

// NewTokenValue returns 32 bytes of cryptographic randomness, base64url
// encoded without padding.
func NewTokenValue() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(buf)
}

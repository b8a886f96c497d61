package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/omaradel/ledgerbook/pkg/domain"
)

func TestNewRefreshToken(t *testing.T) {
	userID := uuid.New()
	token := domain.NewRefreshToken(userID, "go-test", time.Hour)

	assert.NotEmpty(t, token.Token)
	assert.Equal(t, userID, token.UserID)
	assert.Equal(t, "go-test", token.UserAgent)
	assert.False(t, token.Expired())

	stale := domain.NewRefreshToken(userID, "go-test", -time.Minute)
	assert.True(t, stale.Expired())
}

func TestNewTokenValue_Unique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 32; i++ {
		v := domain.NewTokenValue()
		assert.Len(t, v, 43, "32 raw bytes base64url encode to 43 chars")
		assert.False(t, seen[v], "token values must not repeat")
		seen[v] = true
	}
}

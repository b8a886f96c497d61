package auth_test

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omaradel/ledgerbook/pkg/domain"
)

func parseToken(t *testing.T, signed string) *jwt.Token {
	t.Helper()
	token, err := jwt.Parse(signed, func(tk *jwt.Token) (any, error) {
		return []byte(jwtCfg.Secret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	return token
}

func TestGetCurrentUserID_NilToken(t *testing.T) {
	svc := newService(nil)

	_, err := svc.GetCurrentUserID(nil)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestGetCurrentUserID_MissingClaim(t *testing.T) {
	svc := newService(nil)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"foo": "bar"})
	_, err := svc.GetCurrentUserID(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

package auth_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omaradel/ledgerbook/internal/fixtures"
	"github.com/omaradel/ledgerbook/pkg/config"
	"github.com/omaradel/ledgerbook/pkg/domain"
	"github.com/omaradel/ledgerbook/pkg/dto"
	authsvc "github.com/omaradel/ledgerbook/pkg/service/auth"
	"github.com/omaradel/ledgerbook/pkg/utils"
)

var (
	jwtCfg     = config.Jwt{Secret: "test-secret", Issuer: "ledgerbook-test", Expiry: 15 * time.Minute}
	refreshCfg = config.RefreshToken{CookieName: "refresh_token", Expiry: 168 * time.Hour}
)

func newService(uow *fixtures.MemUoW) *authsvc.Service {
	return authsvc.New(uow, jwtCfg, refreshCfg, slog.Default())
}

func seedUser(t *testing.T, uow *fixtures.MemUoW, username, email, password string) {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	require.NoError(t, err)
	uow.SeedUser(username, email, hashed)
}

func TestLogin_IssuesSession(t *testing.T) {
	uow := fixtures.NewMemUoW()
	seedUser(t, uow, "alice", "alice@example.com", "correct horse")
	svc := newService(uow)

	session, err := svc.Login(context.Background(), "alice", "correct horse", "go-test")
	require.NoError(t, err)
	assert.NotEmpty(t, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)
	assert.Contains(t, uow.TokenRows, session.RefreshToken)
	assert.Equal(t, "go-test", uow.TokenRows[session.RefreshToken].UserAgent)

	// Same user, by email.
	byEmail, err := svc.Login(context.Background(), "alice@example.com", "correct horse", "go-test")
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, byEmail.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	uow := fixtures.NewMemUoW()
	seedUser(t, uow, "alice", "alice@example.com", "correct horse")
	svc := newService(uow)

	_, err := svc.Login(context.Background(), "alice", "wrong", "go-test")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Empty(t, uow.TokenRows, "no token may be issued on failed login")
}

func TestLogin_UnknownIdentity(t *testing.T) {
	uow := fixtures.NewMemUoW()
	svc := newService(uow)

	_, err := svc.Login(context.Background(), "nobody", "whatever", "go-test")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRefresh_RotatesToken(t *testing.T) {
	uow := fixtures.NewMemUoW()
	seedUser(t, uow, "alice", "alice@example.com", "correct horse")
	svc := newService(uow)

	session, err := svc.Login(context.Background(), "alice", "correct horse", "go-test")
	require.NoError(t, err)
	first := session.RefreshToken

	rotated, err := svc.Refresh(context.Background(), first, "go-test-2")
	require.NoError(t, err)
	assert.NotEqual(t, first, rotated.RefreshToken)
	assert.NotEmpty(t, rotated.AccessToken)
	assert.NotContains(t, uow.TokenRows, first, "rotation must invalidate the predecessor")
	assert.Contains(t, uow.TokenRows, rotated.RefreshToken)
	assert.Equal(t, session.User.ID, rotated.User.ID)

	// Replay of the rotated token must fail.
	_, err = svc.Refresh(context.Background(), first, "go-test-2")
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestRefresh_UnknownToken(t *testing.T) {
	uow := fixtures.NewMemUoW()
	svc := newService(uow)

	_, err := svc.Refresh(context.Background(), "bogus", "go-test")
	require.ErrorIs(t, err, domain.ErrInvalidToken)

	_, err = svc.Refresh(context.Background(), "", "go-test")
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestRefresh_ExpiredToken(t *testing.T) {
	uow := fixtures.NewMemUoW()
	userID := uow.SeedUser("alice", "alice@example.com", "x")
	uow.TokenRows["stale"] = &dto.RefreshTokenRead{
		Token:     "stale",
		UserID:    userID,
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	svc := newService(uow)

	_, err := svc.Refresh(context.Background(), "stale", "go-test")
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestLogout_Idempotent(t *testing.T) {
	uow := fixtures.NewMemUoW()
	seedUser(t, uow, "alice", "alice@example.com", "correct horse")
	svc := newService(uow)

	session, err := svc.Login(context.Background(), "alice", "correct horse", "go-test")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), session.RefreshToken))
	assert.Empty(t, uow.TokenRows)

	// Second logout with the same (now absent) token is not an error.
	require.NoError(t, svc.Logout(context.Background(), session.RefreshToken))
	require.NoError(t, svc.Logout(context.Background(), ""))
}

func TestSignup_CreatesUserAndSession(t *testing.T) {
	uow := fixtures.NewMemUoW()
	svc := newService(uow)

	session, err := svc.Signup(context.Background(), "bob", "bob@example.com", "long enough", "go-test")
	require.NoError(t, err)
	assert.Equal(t, "bob", session.User.Username)
	assert.Contains(t, uow.TokenRows, session.RefreshToken)
	assert.Len(t, uow.UserRows, 1)

	// Duplicate signup rolls back the whole scope.
	_, err = svc.Signup(context.Background(), "bob", "bob@example.com", "long enough", "go-test")
	require.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.Len(t, uow.UserRows, 1)
	assert.Len(t, uow.TokenRows, 1)
}

func TestSignup_Validation(t *testing.T) {
	uow := fixtures.NewMemUoW()
	svc := newService(uow)

	_, err := svc.Signup(context.Background(), "bob", "not-an-email", "long enough", "go-test")
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Signup(context.Background(), "bob", "bob@example.com", "short", "go-test")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestGetCurrentUserID_RoundTrip(t *testing.T) {
	uow := fixtures.NewMemUoW()
	seedUser(t, uow, "alice", "alice@example.com", "correct horse")
	svc := newService(uow)

	session, err := svc.Login(context.Background(), "alice", "correct horse", "go-test")
	require.NoError(t, err)

	token := parseToken(t, session.AccessToken)
	userID, err := svc.GetCurrentUserID(token)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, userID)
}

package ledger_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omaradel/ledgerbook/internal/fixtures"
	"github.com/omaradel/ledgerbook/pkg/config"
	"github.com/omaradel/ledgerbook/pkg/dto"
	authsvc "github.com/omaradel/ledgerbook/pkg/service/auth"
	ledgersvc "github.com/omaradel/ledgerbook/pkg/service/ledger"
	ledgerapi "github.com/omaradel/ledgerbook/webapi/ledger"
)

var testCfg = &config.App{
	Jwt:          config.Jwt{Secret: "test-secret", Issuer: "ledgerbook-test", Expiry: 15 * time.Minute},
	RefreshToken: config.RefreshToken{CookieName: "refresh_token", Expiry: 168 * time.Hour},
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setup(t *testing.T) (*fiber.App, *fixtures.MemUoW, string) {
	t.Helper()
	uow := fixtures.NewMemUoW()
	app := fiber.New()
	ledgerapi.Routes(app, ledgersvc.New(uow, slog.Default()), testCfg)

	auth := authsvc.New(uow, testCfg.Jwt, testCfg.RefreshToken, slog.Default())
	token, err := auth.GenerateAccessToken(&dto.UserRead{ID: uuid.New(), Username: "tester", Email: "t@example.com"})
	require.NoError(t, err)
	return app, uow, token
}

func request(t *testing.T, app *fiber.App, method, target, token string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestCreateTransaction_Handler(t *testing.T) {
	app, uow, token := setup(t)
	accountID := uow.SeedAccount("Checking", 10000)

	resp := request(t, app, fiber.MethodPost, "/bank-transactions", token, fiber.Map{
		"account_id": accountID.String(),
		"amount":     -3000,
		"note":       "rent",
	})
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	var tx dto.TransactionRead
	require.NoError(t, json.Unmarshal(env.Data, &tx))
	assert.Equal(t, int64(-3000), tx.Amount)
	assert.Equal(t, int64(7000), uow.AccountRows[accountID].Balance)
}

func TestCreateTransaction_Handler_ZeroAmount(t *testing.T) {
	app, uow, token := setup(t)
	accountID := uow.SeedAccount("Checking", 10000)

	resp := request(t, app, fiber.MethodPost, "/bank-transactions", token, fiber.Map{
		"account_id": accountID.String(),
		"amount":     0,
	})
	defer resp.Body.Close() //nolint:errcheck
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, int64(10000), uow.AccountRows[accountID].Balance)
}

func TestCreateTransaction_Handler_UnknownAccount(t *testing.T) {
	app, uow, token := setup(t)

	resp := request(t, app, fiber.MethodPost, "/bank-transactions", token, fiber.Map{
		"account_id": uuid.New().String(),
		"amount":     500,
	})
	defer resp.Body.Close() //nolint:errcheck
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, uow.TxRows)
}

func TestTransactionRoutes_RequireJWT(t *testing.T) {
	app, _, _ := setup(t)

	resp := request(t, app, fiber.MethodGet, "/bank-transactions", "", nil)
	defer resp.Body.Close() //nolint:errcheck
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "missing JWT")

	resp = request(t, app, fiber.MethodGet, "/bank-transactions", "not-a-token", nil)
	defer resp.Body.Close() //nolint:errcheck
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "malformed JWT")
}

func TestDeleteTransaction_Handler(t *testing.T) {
	app, uow, token := setup(t)
	accountID := uow.SeedAccount("Checking", 100)

	resp := request(t, app, fiber.MethodPost, "/bank-transactions", token, fiber.Map{
		"account_id": accountID.String(),
		"amount":     -30,
	})
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	var tx dto.TransactionRead
	require.NoError(t, json.Unmarshal(env.Data, &tx))
	require.Equal(t, int64(70), uow.AccountRows[accountID].Balance)

	resp = request(t, app, fiber.MethodDelete, "/bank-transactions/"+tx.ID.String(), token, nil)
	defer resp.Body.Close() //nolint:errcheck
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, int64(100), uow.AccountRows[accountID].Balance)

	// Second delete: 404, balance untouched.
	resp = request(t, app, fiber.MethodDelete, "/bank-transactions/"+tx.ID.String(), token, nil)
	defer resp.Body.Close() //nolint:errcheck
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, int64(100), uow.AccountRows[accountID].Balance)
}

func TestReconcile_Handler(t *testing.T) {
	app, uow, token := setup(t)
	accountID := uow.SeedAccount("Checking", 100)

	resp := request(t, app, fiber.MethodPost, "/bank-transactions", token, fiber.Map{
		"account_id": accountID.String(),
		"amount":     -30,
	})
	defer resp.Body.Close() //nolint:errcheck
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	var tx dto.TransactionRead
	require.NoError(t, json.Unmarshal(env.Data, &tx))

	resp = request(t, app, fiber.MethodPatch, fmt.Sprintf("/bank-transactions/%s/reconcile", tx.ID), token, nil)
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	var reconciled dto.TransactionRead
	require.NoError(t, json.Unmarshal(env.Data, &reconciled))
	assert.True(t, reconciled.Reconciled)
	assert.Equal(t, int64(70), uow.AccountRows[accountID].Balance)
}

func TestListTransactions_Handler_Filter(t *testing.T) {
	app, uow, token := setup(t)
	accountID := uow.SeedAccount("Checking", 0)

	for _, amount := range []int64{100, -50} {
		resp := request(t, app, fiber.MethodPost, "/bank-transactions", token, fiber.Map{
			"account_id": accountID.String(),
			"amount":     amount,
		})
		resp.Body.Close() //nolint:errcheck
	}

	resp := request(t, app, fiber.MethodGet, "/bank-transactions?reconciled=false&account_id="+accountID.String(), token, nil)
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	var txs []dto.TransactionRead
	require.NoError(t, json.Unmarshal(env.Data, &txs))
	assert.Len(t, txs, 2)

	resp = request(t, app, fiber.MethodGet, "/bank-transactions?account_id=not-a-uuid", token, nil)
	defer resp.Body.Close() //nolint:errcheck
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAccounts_Handler(t *testing.T) {
	app, _, token := setup(t)

	resp := request(t, app, fiber.MethodPost, "/accounts", token, fiber.Map{
		"name":            "Savings",
		"opening_balance": 2500,
	})
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	var acct dto.AccountRead
	require.NoError(t, json.Unmarshal(env.Data, &acct))
	assert.Equal(t, int64(2500), acct.Balance)

	resp = request(t, app, fiber.MethodGet, "/accounts/"+acct.ID.String(), token, nil)
	defer resp.Body.Close() //nolint:errcheck
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = request(t, app, fiber.MethodGet, "/accounts/"+uuid.New().String(), token, nil)
	defer resp.Body.Close() //nolint:errcheck
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

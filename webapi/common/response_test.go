package common_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omaradel/ledgerbook/pkg/domain"
	"github.com/omaradel/ledgerbook/webapi/common"
)

func TestErrorToStatusCode(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{domain.ErrValidation, fiber.StatusBadRequest},
		{domain.ErrZeroAmount, fiber.StatusBadRequest},
		{domain.ErrAccountNotFound, fiber.StatusBadRequest},
		{domain.ErrNotFound, fiber.StatusNotFound},
		{domain.ErrInvalidToken, fiber.StatusUnauthorized},
		{domain.ErrUnauthorized, fiber.StatusUnauthorized},
		{domain.ErrAlreadyExists, fiber.StatusConflict},
		{fmt.Errorf("wrapped: %w", domain.ErrNotFound), fiber.StatusNotFound},
		{errors.New("anything else"), fiber.StatusInternalServerError},
		{nil, fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, common.ErrorToStatusCode(tc.err), "error %v", tc.err)
	}
}

func TestProblemDetailsJSON(t *testing.T) {
	app := fiber.New()
	app.Get("/missing", func(c *fiber.Ctx) error {
		return common.ProblemDetailsJSON(c, "Transaction not found", domain.ErrNotFound)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/missing", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get(fiber.HeaderContentType))

	var pd common.ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	assert.Equal(t, "Transaction not found", pd.Title)
	assert.Equal(t, fiber.StatusNotFound, pd.Status)
	assert.Equal(t, "/missing", pd.Instance)
	assert.Equal(t, domain.ErrNotFound.Error(), pd.Detail)
}

func TestProblemDetailsJSON_HidesInternalDetail(t *testing.T) {
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return common.ProblemDetailsJSON(c, "Something went wrong", errors.New("pq: connection refused"))
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var pd common.ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	assert.Empty(t, pd.Detail, "internal error text must not leak")
}

func TestProblemDetailsJSON_Extras(t *testing.T) {
	app := fiber.New()
	app.Get("/custom", func(c *fiber.Ctx) error {
		return common.ProblemDetailsJSON(c, "Teapot", errors.New("ignored"), fiber.StatusTeapot, "short and stout")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/custom", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)

	var pd common.ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	assert.Equal(t, "short and stout", pd.Detail)
}

func TestSuccessResponseJSON(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c *fiber.Ctx) error {
		return common.SuccessResponseJSON(c, fiber.StatusOK, "All good", fiber.Map{"n": 1})
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ok", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body common.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, fiber.StatusOK, body.Status)
	assert.Equal(t, "All good", body.Message)
}

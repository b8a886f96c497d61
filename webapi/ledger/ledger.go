// Package ledger exposes the account and bank-transaction HTTP routes.
package ledger

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/omaradel/ledgerbook/pkg/config"
	"github.com/omaradel/ledgerbook/pkg/dto"
	ledgersvc "github.com/omaradel/ledgerbook/pkg/service/ledger"
	"github.com/omaradel/ledgerbook/webapi/common"
	"github.com/omaradel/ledgerbook/webapi/middleware"
)

// Routes registers the ledger endpoints:
//   - POST   /accounts                          : create an account
//   - GET    /accounts                          : list accounts
//   - GET    /accounts/:id                      : get an account with balance
//   - POST   /bank-transactions                 : create a transaction and apply its effect
//   - GET    /bank-transactions                 : list, filterable by account, date range, reconciled
//   - PATCH  /bank-transactions/:id/reconcile   : mark reconciled
//   - DELETE /bank-transactions/:id             : revert effect and delete
func Routes(app *fiber.App, svc *ledgersvc.Service, cfg *config.App) {
	protected := middleware.Protected(cfg.Jwt)
	app.Post("/accounts", protected, CreateAccount(svc))
	app.Get("/accounts", protected, ListAccounts(svc))
	app.Get("/accounts/:id", protected, GetAccount(svc))
	app.Post("/bank-transactions", protected, CreateTransaction(svc))
	app.Get("/bank-transactions", protected, ListTransactions(svc))
	app.Patch("/bank-transactions/:id/reconcile", protected, Reconcile(svc))
	app.Delete("/bank-transactions/:id", protected, DeleteTransaction(svc))
}

// CreateAccount returns a handler that creates a new account.
func CreateAccount(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err
		}
		acct, err := svc.CreateAccount(c.Context(), dto.AccountCreate{
			Name:           input.Name,
			OpeningBalance: input.OpeningBalance,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to create account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created", acct)
	}
}

// GetAccount returns a handler that fetches one account with its balance.
func GetAccount(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", nil, fiber.StatusBadRequest)
		}
		acct, err := svc.GetAccount(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to fetch account", err, fiber.StatusNotFound)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account fetched", acct)
	}
}

// ListAccounts returns a handler that lists all accounts.
func ListAccounts(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accts, err := svc.ListAccounts(c.Context())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list accounts", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Accounts fetched", accts)
	}
}

// CreateTransaction returns a handler that creates a bank transaction and
// applies its balance effect atomically.
func CreateTransaction(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateTransactionRequest](c)
		if input == nil {
			return err
		}
		accountID, err := uuid.Parse(input.AccountID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", nil, fiber.StatusBadRequest)
		}
		tx, err := svc.CreateTransaction(c.Context(), dto.TransactionCreate{
			AccountID: accountID,
			Amount:    input.Amount,
			Date:      input.Date,
			Note:      input.Note,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to create transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Transaction created", tx)
	}
}

// ListTransactions returns a handler that lists transactions, filterable by
// account_id, reconciled, from, and to query parameters.
func ListTransactions(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter, err := parseFilter(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid filter", nil, err.Error(), fiber.StatusBadRequest)
		}
		txs, err := svc.ListTransactions(c.Context(), filter)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list transactions", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions fetched", txs)
	}
}

// Reconcile returns a handler that sets the reconciled flag. The account
// balance is untouched.
func Reconcile(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid transaction ID", nil, fiber.StatusBadRequest)
		}
		tx, err := svc.Reconcile(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to reconcile transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction reconciled", tx)
	}
}

// DeleteTransaction returns a handler that reverts the balance effect and
// deletes the record atomically.
func DeleteTransaction(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid transaction ID", nil, fiber.StatusBadRequest)
		}
		if err := svc.DeleteTransaction(c.Context(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete transaction", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func parseFilter(c *fiber.Ctx) (dto.TransactionFilter, error) {
	var filter dto.TransactionFilter
	if raw := c.Query("account_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, err
		}
		filter.AccountID = &id
	}
	if raw := c.Query("reconciled"); raw != "" {
		reconciled := raw == "true" || raw == "1"
		filter.Reconciled = &reconciled
	}
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, err
		}
		filter.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, err
		}
		filter.To = &to
	}
	return filter, nil
}

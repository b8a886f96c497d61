// Package app assembles the services and the Fiber application.
package app

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"

	infrarepo "github.com/omaradel/ledgerbook/infra/repository"
	"github.com/omaradel/ledgerbook/pkg/config"
	"github.com/omaradel/ledgerbook/pkg/domain"
	"github.com/omaradel/ledgerbook/pkg/repository"
	authsvc "github.com/omaradel/ledgerbook/pkg/service/auth"
	bookssvc "github.com/omaradel/ledgerbook/pkg/service/books"
	ledgersvc "github.com/omaradel/ledgerbook/pkg/service/ledger"
	authapi "github.com/omaradel/ledgerbook/webapi/auth"
	booksapi "github.com/omaradel/ledgerbook/webapi/books"
	"github.com/omaradel/ledgerbook/webapi/common"
	ledgerapi "github.com/omaradel/ledgerbook/webapi/ledger"
)

// Deps carries everything the application needs to run.
type Deps struct {
	DB     *gorm.DB
	Uow    repository.UnitOfWork
	Config *config.App
	Logger *slog.Logger
}

// New builds all services and returns the Fiber app with routes registered.
func New(deps Deps) *fiber.App {
	ledgerSvc := ledgersvc.New(deps.Uow, deps.Logger)
	authSvc := authsvc.New(deps.Uow, deps.Config.Jwt, deps.Config.RefreshToken, deps.Logger)

	app := fiber.New(fiber.Config{
		AppName: "ledgerbook",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})
	app.Use(recover.New())
	app.Use(limiter.New(limiter.Config{
		Max:        deps.Config.RateLimit.MaxRequests,
		Expiration: deps.Config.RateLimit.Window,
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(c, "Too Many Requests", nil, fiber.StatusTooManyRequests)
		},
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return common.SuccessResponseJSON(c, fiber.StatusOK, "ok", nil)
	})

	authapi.Routes(app, authSvc, deps.Config)
	ledgerapi.Routes(app, ledgerSvc, deps.Config)
	registerBooks(app, deps)

	return app
}

// registerBooks mounts the CRUD surface for every bookkeeping document type.
func registerBooks(app *fiber.App, deps Deps) {
	booksapi.Register(app, "/invoices",
		bookssvc.New(infrarepo.NewDocumentRepository[domain.Invoice](deps.DB), deps.Logger, "invoice"), deps.Config)
	booksapi.Register(app, "/estimates",
		bookssvc.New(infrarepo.NewDocumentRepository[domain.Estimate](deps.DB), deps.Logger, "estimate"), deps.Config)
	booksapi.Register(app, "/expenses",
		bookssvc.New(infrarepo.NewDocumentRepository[domain.Expense](deps.DB), deps.Logger, "expense"), deps.Config)
	booksapi.Register(app, "/vendors",
		bookssvc.New(infrarepo.NewDocumentRepository[domain.Vendor](deps.DB), deps.Logger, "vendor"), deps.Config)
	booksapi.Register(app, "/projects",
		bookssvc.New(infrarepo.NewDocumentRepository[domain.Project](deps.DB), deps.Logger, "project"), deps.Config)
	booksapi.Register(app, "/timesheets",
		bookssvc.New(infrarepo.NewDocumentRepository[domain.Timesheet](deps.DB), deps.Logger, "timesheet"), deps.Config)
}

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/charmbracelet/log"

	"github.com/omaradel/ledgerbook/app"
	"github.com/omaradel/ledgerbook/infra"
	infrarepo "github.com/omaradel/ledgerbook/infra/repository"
	"github.com/omaradel/ledgerbook/pkg/config"
	"github.com/omaradel/ledgerbook/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, cfg.Log.Prefix, cfg.Log.TimeFormat)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := infra.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	a := app.New(app.Deps{
		DB:     db,
		Uow:    infrarepo.NewUoW(db),
		Config: cfg,
		Logger: logger,
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		logger.Info("shutting down")
		if err := a.Shutdown(); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "env", cfg.Env, "addr", addr)
	return a.Listen(addr)
}

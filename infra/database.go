// Package infra wires the persistence engine.
package infra

import (
	"errors"
	"time"

	"github.com/omaradel/ledgerbook/infra/repository"
	"github.com/omaradel/ledgerbook/pkg/config"
	"github.com/omaradel/ledgerbook/pkg/domain"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDBConnection opens a pooled Postgres connection. In development the
// gorm statement logger is enabled.
func NewDBConnection(cnf config.DB, appEnv string) (*gorm.DB, error) {
	if cnf.Url == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	logMode := logger.Silent
	if appEnv == "development" {
		logMode = logger.Info
	}

	connection, err := gorm.Open(postgres.Open(cnf.Url), &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		// Surfaces unique-constraint violations as gorm.ErrDuplicatedKey.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	return connection, nil
}

// Migrate creates or updates the schema for every persisted collection.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&repository.Account{},
		&repository.BankTransaction{},
		&repository.RefreshToken{},
		&repository.User{},
		&domain.Invoice{},
		&domain.Estimate{},
		&domain.Expense{},
		&domain.Vendor{},
		&domain.Project{},
		&domain.Timesheet{},
	)
}

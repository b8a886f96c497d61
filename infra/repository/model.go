// Package repository contains the GORM persistence layer: database models,
// repository implementations, and the unit of work.
package repository

import (
	"time"

	"github.com/google/uuid"
)

// Account represents an account record in the database. Balance is stored in
// minor units.
type Account struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Balance   int64     `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string { return "accounts" }

// BankTransaction represents a bank transaction record in the database.
type BankTransaction struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount     int64     `gorm:"not null"`
	Date       time.Time `gorm:"index"`
	Reconciled bool      `gorm:"not null;default:false"`
	Note       string
	CreatedAt  time.Time
}

// TableName specifies the table name for the BankTransaction model.
func (BankTransaction) TableName() string { return "bank_transactions" }

// RefreshToken represents a refresh token record, keyed by the opaque token
// value.
type RefreshToken struct {
	Token     string    `gorm:"primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	UserAgent string
	ExpiresAt time.Time `gorm:"index"`
	CreatedAt time.Time
}

// TableName specifies the table name for the RefreshToken model.
func (RefreshToken) TableName() string { return "refresh_tokens" }

// User represents a user record in the database.
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username       string    `gorm:"uniqueIndex;not null"`
	Email          string    `gorm:"uniqueIndex;not null"`
	HashedPassword string    `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for the User model.
func (User) TableName() string { return "users" }

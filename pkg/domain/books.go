package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Bookkeeping documents. Each type is an independent collection with no
// cross-resource invariants; monetary fields use decimal to stay exact.
// The structs double as GORM models, with columns matching the json names.

// Invoice is a bill issued to a customer.
type Invoice struct {
	ID           uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	Number       string          `json:"number" validate:"required"`
	CustomerName string          `json:"customer_name" validate:"required"`
	Description  string          `json:"description"`
	Total        decimal.Decimal `json:"total" gorm:"type:numeric(14,2)"`
	Status       string          `json:"status" validate:"omitempty,oneof=draft sent paid overdue"`
	IssuedAt     time.Time       `json:"issued_at"`
	DueAt        time.Time       `json:"due_at"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// TableName specifies the table name for the Invoice model.
func (Invoice) TableName() string { return "invoices" }

// Estimate is a quote that may later convert to an invoice.
type Estimate struct {
	ID           uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	Number       string          `json:"number" validate:"required"`
	CustomerName string          `json:"customer_name" validate:"required"`
	Description  string          `json:"description"`
	Total        decimal.Decimal `json:"total" gorm:"type:numeric(14,2)"`
	Status       string          `json:"status" validate:"omitempty,oneof=draft sent accepted declined"`
	ExpiresAt    time.Time       `json:"expires_at"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// TableName specifies the table name for the Estimate model.
func (Estimate) TableName() string { return "estimates" }

// Expense is money spent, optionally tied to a vendor or project.
type Expense struct {
	ID          uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	VendorID    *uuid.UUID      `json:"vendor_id" gorm:"type:uuid"`
	ProjectID   *uuid.UUID      `json:"project_id" gorm:"type:uuid"`
	Category    string          `json:"category" validate:"required"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:numeric(14,2)"`
	SpentAt     time.Time       `json:"spent_at"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TableName specifies the table name for the Expense model.
func (Expense) TableName() string { return "expenses" }

// Vendor is a supplier expenses can be attributed to.
type Vendor struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" validate:"required"`
	Email     string    `json:"email" validate:"omitempty,email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Vendor model.
func (Vendor) TableName() string { return "vendors" }

// Project groups expenses and timesheets for a client engagement.
type Project struct {
	ID         uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	Name       string          `json:"name" validate:"required"`
	ClientName string          `json:"client_name"`
	HourlyRate decimal.Decimal `json:"hourly_rate" gorm:"type:numeric(10,2)"`
	Active     bool            `json:"active"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// TableName specifies the table name for the Project model.
func (Project) TableName() string { return "projects" }

// Timesheet records hours worked against a project.
type Timesheet struct {
	ID        uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	ProjectID uuid.UUID       `json:"project_id" gorm:"type:uuid;index" validate:"required"`
	Hours     decimal.Decimal `json:"hours" gorm:"type:numeric(6,2)"`
	Notes     string          `json:"notes"`
	WorkedAt  time.Time       `json:"worked_at"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TableName specifies the table name for the Timesheet model.
func (Timesheet) TableName() string { return "timesheets" }

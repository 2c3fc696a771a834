// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BusinessRecordType distinguishes a business unit's revenue records from
// its expense records.
type BusinessRecordType string

const (
	BusinessRecordRevenue BusinessRecordType = "revenue"
	BusinessRecordExpense BusinessRecordType = "expense"
)

// BusinessRecord is a raw sales or expense record owned by the business
// sales subsystem. Amounts are stored as decimals in major units; the
// statement engine normalizes them at its adapter boundary.
type BusinessRecord struct {
	ID          uuid.UUID
	BusinessID  uuid.UUID
	Type        BusinessRecordType
	Amount      decimal.Decimal
	Date        time.Time
	Description string
}

// SalaryPayment is a raw payroll record owned by the payroll subsystem.
type SalaryPayment struct {
	ID           uuid.UUID
	EmployeeName string
	Amount       decimal.Decimal
	PaidDate     time.Time
}

// AgencySale is a raw record owned by the agency subsystem. Each sale
// carries both the revenue it generated and the commission paid out; the
// two sides are reported as separate statement lines, never netted.
type AgencySale struct {
	ID         uuid.UUID
	AgencyName string
	Revenue    decimal.Decimal
	Commission decimal.Decimal
	Date       time.Time
}

// ManualEntry is a user-entered statement row. It is the only record kind
// persisted directly as a statement record; everything else is derived.
type ManualEntry struct {
	ID            uuid.UUID
	StatementType StatementType
	Category      string
	SubCategory   string
	Amount        decimal.Decimal
	Date          time.Time
	Description   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewManualEntry creates a new ManualEntry entity.
func NewManualEntry(
	statementType StatementType,
	category, subCategory string,
	amount decimal.Decimal,
	date time.Time,
	description string,
) *ManualEntry {
	now := time.Now().UTC()

	return &ManualEntry{
		ID:            uuid.New(),
		StatementType: statementType,
		Category:      category,
		SubCategory:   subCategory,
		Amount:        amount,
		Date:          date,
		Description:   description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Investment is a raw capital investment record. It is tracked as a
// dedicated record type, parallel to the manual investing categories; both
// ledgers feed the investing cash flow.
type Investment struct {
	ID          uuid.UUID
	BusinessID  *uuid.UUID
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	Description string
}

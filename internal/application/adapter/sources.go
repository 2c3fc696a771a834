// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/bizsuite/backend/internal/domain/entity"
)

// BusinessSalesSource is the read contract over the business sales
// subsystem. Records are raw; the statement engine normalizes them.
type BusinessSalesSource interface {
	// FetchSales retrieves revenue and expense records inside the range,
	// optionally limited to a single business unit.
	FetchSales(ctx context.Context, dateRange entity.DateRange, businessID *uuid.UUID) ([]entity.BusinessRecord, error)
}

// PayrollSource is the read contract over the payroll subsystem.
type PayrollSource interface {
	// FetchSalaries retrieves salary payments whose paid date falls inside the range.
	FetchSalaries(ctx context.Context, dateRange entity.DateRange) ([]entity.SalaryPayment, error)
}

// AgencyCommissionSource is the read contract over the agency subsystem.
type AgencyCommissionSource interface {
	// FetchAgencySales retrieves agency sales inside the range. Each record
	// carries both generated revenue and the commission paid.
	FetchAgencySales(ctx context.Context, dateRange entity.DateRange) ([]entity.AgencySale, error)
}

// ManualEntryStore persists user-entered statement rows. Reads feed the
// statement engine; writes back the manual-entry CRUD screens.
type ManualEntryStore interface {
	// FetchEntries retrieves manual entries of one statement type inside the range.
	FetchEntries(ctx context.Context, statementType entity.StatementType, dateRange entity.DateRange) ([]entity.ManualEntry, error)

	// Create persists a new manual entry.
	Create(ctx context.Context, entry *entity.ManualEntry) error

	// FindByID retrieves a manual entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ManualEntry, error)

	// List retrieves manual entries of one statement type, newest first.
	List(ctx context.Context, statementType entity.StatementType) ([]entity.ManualEntry, error)

	// Update persists changes to an existing manual entry.
	Update(ctx context.Context, entry *entity.ManualEntry) error

	// Delete removes a manual entry by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

// InvestmentStore is the read contract over the capital investment subsystem.
type InvestmentStore interface {
	// FetchInvestments retrieves investment records inside the range,
	// optionally limited to a single business unit.
	FetchInvestments(ctx context.Context, dateRange entity.DateRange, businessID *uuid.UUID) ([]entity.Investment, error)
}

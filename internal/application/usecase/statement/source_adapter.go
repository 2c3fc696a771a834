// Package statement implements the financial statement engine: source
// normalization, aggregation, statement building, and consistency checks.
package statement

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizsuite/backend/internal/application/adapter"
	"github.com/bizsuite/backend/internal/domain/entity"
	"github.com/bizsuite/backend/internal/domain/taxonomy"
)

// Source adapts one origin subsystem to the canonical ledger entry shape.
// Implementations are read-only and safe for concurrent use; a failed
// fetch never aborts the aggregation of the remaining sources.
type Source interface {
	// Type identifies the origin subsystem.
	Type() entity.SourceType

	// Entries fetches the subsystem's records for the range and normalizes
	// them into canonical ledger entries with positive minor-unit amounts.
	Entries(ctx context.Context, dateRange entity.DateRange, businessID *uuid.UUID) ([]entity.LedgerEntry, error)
}

// toMinorUnits converts a decimal major-unit amount into integer minor
// currency units, as a positive magnitude. This is the only place floats
// or decimals are allowed to touch a statement amount.
func toMinorUnits(amount decimal.Decimal) int64 {
	return amount.Abs().Shift(2).Round(0).IntPart()
}

// BusinessSalesAdapter normalizes a business unit's sales and expense
// records. Revenue records become sales_revenue lines, expense records the
// generic business_expense line.
type BusinessSalesAdapter struct {
	source adapter.BusinessSalesSource
}

// NewBusinessSalesAdapter creates a new BusinessSalesAdapter instance.
func NewBusinessSalesAdapter(source adapter.BusinessSalesSource) *BusinessSalesAdapter {
	return &BusinessSalesAdapter{source: source}
}

// Type identifies the origin subsystem.
func (a *BusinessSalesAdapter) Type() entity.SourceType {
	return entity.SourceBusinessSale
}

// Entries fetches and normalizes business records for the range.
func (a *BusinessSalesAdapter) Entries(
	ctx context.Context,
	dateRange entity.DateRange,
	businessID *uuid.UUID,
) ([]entity.LedgerEntry, error) {
	records, err := a.source.FetchSales(ctx, dateRange, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch business sales: %w", err)
	}

	entries := make([]entity.LedgerEntry, 0, len(records))
	for _, rec := range records {
		category := taxonomy.CodeSalesRevenue
		if rec.Type == entity.BusinessRecordExpense {
			category = taxonomy.CodeBusinessExpense
		}

		entries = append(entries, entity.LedgerEntry{
			ID:               uuid.New(),
			SourceType:       entity.SourceBusinessSale,
			StatementType:    entity.StatementTypePL,
			Category:         category,
			AmountMinorUnits: toMinorUnits(rec.Amount),
			Date:             rec.Date,
			Description:      rec.Description,
			ProvenanceRef:    rec.ID.String(),
		})
	}
	return entries, nil
}

// PayrollAdapter normalizes salary payments into the SG&A personnel
// expense line.
type PayrollAdapter struct {
	source adapter.PayrollSource
}

// NewPayrollAdapter creates a new PayrollAdapter instance.
func NewPayrollAdapter(source adapter.PayrollSource) *PayrollAdapter {
	return &PayrollAdapter{source: source}
}

// Type identifies the origin subsystem.
func (a *PayrollAdapter) Type() entity.SourceType {
	return entity.SourcePayroll
}

// Entries fetches and normalizes salary payments for the range.
func (a *PayrollAdapter) Entries(
	ctx context.Context,
	dateRange entity.DateRange,
	_ *uuid.UUID,
) ([]entity.LedgerEntry, error) {
	payments, err := a.source.FetchSalaries(ctx, dateRange)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch salaries: %w", err)
	}

	entries := make([]entity.LedgerEntry, 0, len(payments))
	for _, p := range payments {
		entries = append(entries, entity.LedgerEntry{
			ID:               uuid.New(),
			SourceType:       entity.SourcePayroll,
			StatementType:    entity.StatementTypePL,
			Category:         taxonomy.CodePersonnelExpense,
			AmountMinorUnits: toMinorUnits(p.Amount),
			Date:             p.PaidDate,
			Description:      "Salary payment",
			ProvenanceRef:    p.ID.String(),
		})
	}
	return entries, nil
}

// AgencyCommissionAdapter normalizes agency sales. Each sale yields two
// entries, a revenue line and a commission expense line; they stay
// separate category totals and are never netted before aggregation.
type AgencyCommissionAdapter struct {
	source adapter.AgencyCommissionSource
}

// NewAgencyCommissionAdapter creates a new AgencyCommissionAdapter instance.
func NewAgencyCommissionAdapter(source adapter.AgencyCommissionSource) *AgencyCommissionAdapter {
	return &AgencyCommissionAdapter{source: source}
}

// Type identifies the origin subsystem.
func (a *AgencyCommissionAdapter) Type() entity.SourceType {
	return entity.SourceAgencyCommission
}

// Entries fetches and normalizes agency sales for the range.
func (a *AgencyCommissionAdapter) Entries(
	ctx context.Context,
	dateRange entity.DateRange,
	_ *uuid.UUID,
) ([]entity.LedgerEntry, error) {
	sales, err := a.source.FetchAgencySales(ctx, dateRange)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch agency sales: %w", err)
	}

	entries := make([]entity.LedgerEntry, 0, len(sales)*2)
	for _, sale := range sales {
		entries = append(entries,
			entity.LedgerEntry{
				ID:               uuid.New(),
				SourceType:       entity.SourceAgencyCommission,
				StatementType:    entity.StatementTypePL,
				Category:         taxonomy.CodeAgencyRevenue,
				AmountMinorUnits: toMinorUnits(sale.Revenue),
				Date:             sale.Date,
				Description:      "Agency sale: " + sale.AgencyName,
				ProvenanceRef:    sale.ID.String(),
			},
			entity.LedgerEntry{
				ID:               uuid.New(),
				SourceType:       entity.SourceAgencyCommission,
				StatementType:    entity.StatementTypePL,
				Category:         taxonomy.CodeAgencyCommissionExpense,
				AmountMinorUnits: toMinorUnits(sale.Commission),
				Date:             sale.Date,
				Description:      "Agency commission: " + sale.AgencyName,
				ProvenanceRef:    sale.ID.String(),
			},
		)
	}
	return entries, nil
}

// ManualEntryAdapter passes user-entered statement rows through to the
// aggregator. Category codes are validated there against the taxonomy, so
// a stray code drops a single entry instead of failing the fetch.
type ManualEntryAdapter struct {
	store adapter.ManualEntryStore
}

// NewManualEntryAdapter creates a new ManualEntryAdapter instance.
func NewManualEntryAdapter(store adapter.ManualEntryStore) *ManualEntryAdapter {
	return &ManualEntryAdapter{store: store}
}

// Type identifies the origin subsystem.
func (a *ManualEntryAdapter) Type() entity.SourceType {
	return entity.SourceManualEntry
}

// Entries fetches manual entries of all three statement types for the range.
func (a *ManualEntryAdapter) Entries(
	ctx context.Context,
	dateRange entity.DateRange,
	_ *uuid.UUID,
) ([]entity.LedgerEntry, error) {
	statementTypes := []entity.StatementType{
		entity.StatementTypePL,
		entity.StatementTypeBS,
		entity.StatementTypeCF,
	}

	var entries []entity.LedgerEntry
	for _, st := range statementTypes {
		rows, err := a.store.FetchEntries(ctx, st, dateRange)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch manual entries: %w", err)
		}

		for _, row := range rows {
			entries = append(entries, entity.LedgerEntry{
				ID:               uuid.New(),
				SourceType:       entity.SourceManualEntry,
				StatementType:    row.StatementType,
				Category:         row.Category,
				SubCategory:      row.SubCategory,
				AmountMinorUnits: toMinorUnits(row.Amount),
				Date:             row.Date,
				Description:      row.Description,
				ProvenanceRef:    row.ID.String(),
			})
		}
	}
	return entries, nil
}

// InvestmentAdapter normalizes dedicated investment records into the
// reserved investment_outlay line. The code is distinct from the manual
// investing categories, so both ledgers are summed into investing cash
// flow without double counting.
type InvestmentAdapter struct {
	store adapter.InvestmentStore
}

// NewInvestmentAdapter creates a new InvestmentAdapter instance.
func NewInvestmentAdapter(store adapter.InvestmentStore) *InvestmentAdapter {
	return &InvestmentAdapter{store: store}
}

// Type identifies the origin subsystem.
func (a *InvestmentAdapter) Type() entity.SourceType {
	return entity.SourceInvestment
}

// Entries fetches and normalizes investment records for the range.
func (a *InvestmentAdapter) Entries(
	ctx context.Context,
	dateRange entity.DateRange,
	businessID *uuid.UUID,
) ([]entity.LedgerEntry, error) {
	investments, err := a.store.FetchInvestments(ctx, dateRange, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch investments: %w", err)
	}

	entries := make([]entity.LedgerEntry, 0, len(investments))
	for _, inv := range investments {
		entries = append(entries, entity.LedgerEntry{
			ID:               uuid.New(),
			SourceType:       entity.SourceInvestment,
			StatementType:    entity.StatementTypeCF,
			Category:         taxonomy.CodeInvestmentOutlay,
			SubCategory:      inv.Category,
			AmountMinorUnits: toMinorUnits(inv.Amount),
			Date:             inv.Date,
			Description:      inv.Description,
			ProvenanceRef:    inv.ID.String(),
		})
	}
	return entries, nil
}

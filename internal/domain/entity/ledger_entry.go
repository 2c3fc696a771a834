// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SourceType identifies the subsystem a ledger entry originates from.
type SourceType string

const (
	SourceBusinessSale     SourceType = "business_sale"
	SourcePayroll          SourceType = "payroll"
	SourceAgencyCommission SourceType = "agency_commission"
	SourceManualEntry      SourceType = "manual_entry"
	SourceInvestment       SourceType = "investment"
)

// LedgerEntry is the canonical, normalized ledger record produced by a
// source adapter. Amounts are positive magnitudes in minor currency units;
// sign semantics are carried by the category's flow tag, not by the number.
// Entries from business sales, payroll, agency commissions, and investments
// are derived fresh on every request; only manual entries are persisted
// directly as statement records.
type LedgerEntry struct {
	ID            uuid.UUID
	SourceType    SourceType
	StatementType StatementType
	Category      string
	SubCategory   string
	// AmountMinorUnits is the amount in minor currency units. Integer
	// arithmetic end to end; floats never enter the pipeline.
	AmountMinorUnits int64
	Date             time.Time
	Description      string
	// ProvenanceRef points back at the originating record for traceability.
	ProvenanceRef string
}

// DateRange is an inclusive date interval. Start must not be after End.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Valid reports whether the range is well formed (start <= end, both set).
func (r DateRange) Valid() bool {
	return !r.Start.IsZero() && !r.End.IsZero() && !r.End.Before(r.Start)
}

// Contains reports whether d falls inside the inclusive range.
func (r DateRange) Contains(d time.Time) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// CategoryTotal is the aggregated amount for one grouping key within a
// single statement type. Totals are created fresh per request and never
// mutated.
type CategoryTotal struct {
	StatementType StatementType
	Category      string
	SubCategory   string
	Total         int64
}

// Package statement implements the financial statement engine.
package statement

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bizsuite/backend/internal/domain/entity"
	domainerror "github.com/bizsuite/backend/internal/domain/error"
)

// ComputeStatementInput represents the input for computing a statement.
type ComputeStatementInput struct {
	StatementType entity.StatementType
	DateRange     entity.DateRange
	// BusinessID optionally narrows the computation to one business unit.
	BusinessID *uuid.UUID
}

// Result is a computed statement for one request: the requested snapshot,
// its category totals, and the deficiencies surfaced as metadata. A
// partial or warning-bearing result is still a result; nothing here blocks
// the view.
type Result struct {
	StatementType  entity.StatementType
	DateRange      entity.DateRange
	BusinessID     *uuid.UUID
	CategoryTotals []entity.CategoryTotal

	// Exactly one of the snapshots below is set, matching StatementType.
	PL *entity.PLSnapshot
	BS *entity.BSSnapshot
	CF *entity.CFSnapshot

	IsPartial     bool
	FailedSources []entity.SourceType
	Warnings      []entity.Warning
}

// ComputeStatementUseCase derives a PL, BS, or CF statement from all
// registered sources. The engine is stateless: each execution recomputes
// from scratch, so concurrent callers need no coordination.
type ComputeStatementUseCase struct {
	sources []Source
	cache   SnapshotCache
}

// NewComputeStatementUseCase creates a new ComputeStatementUseCase instance.
// cache may be nil; the engine then always recomputes.
func NewComputeStatementUseCase(sources []Source, cache SnapshotCache) *ComputeStatementUseCase {
	return &ComputeStatementUseCase{
		sources: sources,
		cache:   cache,
	}
}

// Execute computes the requested statement for the range and scope.
//
// All three snapshots are always built internally: the PL net profit feeds
// the balance sheet's retained earnings and the operating cash flow, and
// the consistency checker needs the full trio. Only the requested snapshot
// is returned.
func (uc *ComputeStatementUseCase) Execute(
	ctx context.Context,
	input ComputeStatementInput,
) (*Result, error) {
	if err := validateStatementInput(input); err != nil {
		return nil, err
	}

	key := cacheKey(input.StatementType, input.DateRange, input.BusinessID)
	if uc.cache != nil {
		cached, found, err := uc.cache.Get(ctx, key)
		if err != nil {
			slog.Debug("Snapshot cache read failed, recomputing", "error", err)
		} else if found {
			return cached, nil
		}
	}

	start := time.Now()
	entries, failedSources := fetchEntries(ctx, uc.sources, input.DateRange, input.BusinessID)
	totals, warnings := Aggregate(entries)

	pl := BuildPL(totals)
	bs := BuildBS(totals, pl.NetProfit)
	cf := BuildCF(totals, pl.NetProfit)

	for _, src := range failedSources {
		warnings = append(warnings, entity.Warning{
			Code:    entity.WarnSourceUnavailable,
			Message: "source " + string(src) + " was unavailable; its records are missing from this statement",
		})
	}
	warnings = append(warnings, CheckConsistency(bs, cf)...)

	result := &Result{
		StatementType:  input.StatementType,
		DateRange:      input.DateRange,
		BusinessID:     input.BusinessID,
		CategoryTotals: filterTotals(totals, input.StatementType),
		IsPartial:      len(failedSources) > 0,
		FailedSources:  failedSources,
		Warnings:       warnings,
	}

	switch input.StatementType {
	case entity.StatementTypePL:
		result.PL = &pl
	case entity.StatementTypeBS:
		result.BS = &bs
	case entity.StatementTypeCF:
		result.CF = &cf
	}

	slog.Info("Statement computed",
		"statement_type", string(input.StatementType),
		"entries", len(entries),
		"totals", len(result.CategoryTotals),
		"partial", result.IsPartial,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	// Partial results are never cached; the missing source may be back on
	// the next request.
	if uc.cache != nil && !result.IsPartial {
		if err := uc.cache.Set(ctx, key, result); err != nil {
			slog.Debug("Snapshot cache write failed", "error", err)
		}
	}

	return result, nil
}

// validateStatementInput rejects caller errors before any fetch is attempted.
func validateStatementInput(input ComputeStatementInput) error {
	if !input.StatementType.IsValid() {
		return domainerror.NewStatementError(
			domainerror.ErrCodeInvalidStatementType,
			"statement type must be: pl, bs, or cf",
			domainerror.ErrInvalidStatementType,
		)
	}
	return validateDateRange(input.DateRange)
}

// validateDateRange rejects missing or inverted date ranges.
func validateDateRange(dateRange entity.DateRange) error {
	if dateRange.Start.IsZero() {
		return domainerror.NewStatementError(
			domainerror.ErrCodeMissingStartDate,
			"start_date is required",
			domainerror.ErrMissingStartDate,
		)
	}
	if dateRange.End.IsZero() {
		return domainerror.NewStatementError(
			domainerror.ErrCodeMissingEndDate,
			"end_date is required",
			domainerror.ErrMissingEndDate,
		)
	}
	if dateRange.End.Before(dateRange.Start) {
		return domainerror.NewStatementError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must not be before start_date",
			domainerror.ErrInvalidDateRange,
		)
	}
	return nil
}

// Package manualentry contains manual statement entry use cases.
package manualentry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bizsuite/backend/internal/application/adapter"
	"github.com/bizsuite/backend/internal/application/usecase/statement"
	"github.com/bizsuite/backend/internal/domain/entity"
	domainerror "github.com/bizsuite/backend/internal/domain/error"
	"github.com/bizsuite/backend/internal/domain/taxonomy"
)

// MaxDescriptionLength is the maximum allowed length for entry descriptions.
const MaxDescriptionLength = 255

// CreateEntryInput represents the input for manual entry creation.
type CreateEntryInput struct {
	StatementType entity.StatementType
	Category      string
	SubCategory   string // Optional
	Amount        decimal.Decimal
	Date          time.Time
	Description   string // Optional
}

// CreateEntryOutput represents the output of manual entry creation.
type CreateEntryOutput struct {
	Entry *entity.ManualEntry
}

// CreateEntryUseCase handles manual entry creation logic.
type CreateEntryUseCase struct {
	entryStore adapter.ManualEntryStore
	cache      statement.SnapshotCache
}

// NewCreateEntryUseCase creates a new CreateEntryUseCase instance. The
// cache may be nil when snapshot caching is disabled.
func NewCreateEntryUseCase(entryStore adapter.ManualEntryStore, cache statement.SnapshotCache) *CreateEntryUseCase {
	return &CreateEntryUseCase{
		entryStore: entryStore,
		cache:      cache,
	}
}

// Execute performs the manual entry creation.
func (uc *CreateEntryUseCase) Execute(ctx context.Context, input CreateEntryInput) (*CreateEntryOutput, error) {
	if err := validateEntryFields(input.StatementType, input.Category, input.Amount, input.Date, input.Description); err != nil {
		return nil, err
	}

	entry := entity.NewManualEntry(
		input.StatementType,
		input.Category,
		input.SubCategory,
		input.Amount,
		input.Date,
		input.Description,
	)

	if err := uc.entryStore.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create manual entry: %w", err)
	}

	invalidateSnapshots(ctx, uc.cache)

	return &CreateEntryOutput{
		Entry: entry,
	}, nil
}

// validateEntryFields enforces the rules shared by create and update:
// the statement type must be valid, the category must exist in the
// taxonomy and belong to that statement type, the amount must be a
// positive magnitude, and the date must be set.
func validateEntryFields(statementType entity.StatementType, category string, amount decimal.Decimal, date time.Time, description string) error {
	if !statementType.IsValid() {
		return domainerror.NewStatementError(
			domainerror.ErrCodeInvalidStatementType,
			"statement type must be 'pl', 'bs' or 'cf'",
			domainerror.ErrInvalidStatementType,
		)
	}

	cat, err := taxonomy.Lookup(category)
	if err != nil {
		return domainerror.NewManualEntryError(
			domainerror.ErrCodeManualEntryCategoryUnknown,
			fmt.Sprintf("category %q is not part of the taxonomy", category),
			domainerror.ErrManualEntryCategoryUnknown,
		)
	}
	if cat.StatementType != statementType {
		return domainerror.NewManualEntryError(
			domainerror.ErrCodeManualEntryCategoryMismatch,
			fmt.Sprintf("category %q belongs to the %s statement", category, cat.StatementType),
			domainerror.ErrManualEntryCategoryMismatch,
		)
	}

	if !amount.IsPositive() {
		return domainerror.NewManualEntryError(
			domainerror.ErrCodeManualEntryAmountInvalid,
			"amount must be a positive magnitude; direction comes from the category",
			domainerror.ErrManualEntryAmountInvalid,
		)
	}

	if date.IsZero() {
		return domainerror.NewManualEntryError(
			domainerror.ErrCodeManualEntryDateMissing,
			"date is required",
			domainerror.ErrManualEntryDateMissing,
		)
	}

	if len(description) > MaxDescriptionLength {
		return domainerror.NewManualEntryError(
			domainerror.ErrCodeManualEntryDescriptionLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrManualEntryDescriptionTooLong,
		)
	}

	return nil
}

// invalidateSnapshots drops cached statement results after a write. The
// write already succeeded, so a failed invalidation is logged and
// swallowed rather than surfaced to the caller.
func invalidateSnapshots(ctx context.Context, cache statement.SnapshotCache) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		slog.Warn("failed to invalidate statement cache", "error", err)
	}
}

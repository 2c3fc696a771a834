// Package manualentry contains manual statement entry use cases.
package manualentry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizsuite/backend/internal/application/adapter"
	"github.com/bizsuite/backend/internal/application/usecase/statement"
	"github.com/bizsuite/backend/internal/domain/entity"
	domainerror "github.com/bizsuite/backend/internal/domain/error"
)

// UpdateEntryInput represents the input for manual entry updates. The
// statement type is immutable; moving a row between statements is a
// delete plus a create.
type UpdateEntryInput struct {
	EntryID     uuid.UUID
	Category    string
	SubCategory string
	Amount      decimal.Decimal
	Date        time.Time
	Description string
}

// UpdateEntryOutput represents the output of manual entry updates.
type UpdateEntryOutput struct {
	Entry *entity.ManualEntry
}

// UpdateEntryUseCase handles manual entry update logic.
type UpdateEntryUseCase struct {
	entryStore adapter.ManualEntryStore
	cache      statement.SnapshotCache
}

// NewUpdateEntryUseCase creates a new UpdateEntryUseCase instance. The
// cache may be nil when snapshot caching is disabled.
func NewUpdateEntryUseCase(entryStore adapter.ManualEntryStore, cache statement.SnapshotCache) *UpdateEntryUseCase {
	return &UpdateEntryUseCase{
		entryStore: entryStore,
		cache:      cache,
	}
}

// Execute performs the manual entry update.
func (uc *UpdateEntryUseCase) Execute(ctx context.Context, input UpdateEntryInput) (*UpdateEntryOutput, error) {
	entry, err := uc.entryStore.FindByID(ctx, input.EntryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrManualEntryNotFound) {
			return nil, domainerror.NewManualEntryError(
				domainerror.ErrCodeManualEntryNotFound,
				"manual entry not found",
				domainerror.ErrManualEntryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find manual entry: %w", err)
	}

	if err := validateEntryFields(entry.StatementType, input.Category, input.Amount, input.Date, input.Description); err != nil {
		return nil, err
	}

	entry.Category = input.Category
	entry.SubCategory = input.SubCategory
	entry.Amount = input.Amount
	entry.Date = input.Date
	entry.Description = input.Description
	entry.UpdatedAt = time.Now().UTC()

	if err := uc.entryStore.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update manual entry: %w", err)
	}

	invalidateSnapshots(ctx, uc.cache)

	return &UpdateEntryOutput{
		Entry: entry,
	}, nil
}

// Package manualentry contains manual statement entry use cases.
package manualentry

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/bizsuite/backend/internal/application/adapter"
	"github.com/bizsuite/backend/internal/application/usecase/statement"
	domainerror "github.com/bizsuite/backend/internal/domain/error"
)

// DeleteEntryInput represents the input for manual entry deletion.
type DeleteEntryInput struct {
	EntryID uuid.UUID
}

// DeleteEntryOutput represents the output of manual entry deletion.
type DeleteEntryOutput struct {
	Success bool
}

// DeleteEntryUseCase handles manual entry deletion logic.
type DeleteEntryUseCase struct {
	entryStore adapter.ManualEntryStore
	cache      statement.SnapshotCache
}

// NewDeleteEntryUseCase creates a new DeleteEntryUseCase instance. The
// cache may be nil when snapshot caching is disabled.
func NewDeleteEntryUseCase(entryStore adapter.ManualEntryStore, cache statement.SnapshotCache) *DeleteEntryUseCase {
	return &DeleteEntryUseCase{
		entryStore: entryStore,
		cache:      cache,
	}
}

// Execute performs the manual entry deletion.
func (uc *DeleteEntryUseCase) Execute(ctx context.Context, input DeleteEntryInput) (*DeleteEntryOutput, error) {
	if _, err := uc.entryStore.FindByID(ctx, input.EntryID); err != nil {
		if errors.Is(err, domainerror.ErrManualEntryNotFound) {
			return nil, domainerror.NewManualEntryError(
				domainerror.ErrCodeManualEntryNotFound,
				"manual entry not found",
				domainerror.ErrManualEntryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find manual entry: %w", err)
	}

	if err := uc.entryStore.Delete(ctx, input.EntryID); err != nil {
		return nil, fmt.Errorf("failed to delete manual entry: %w", err)
	}

	invalidateSnapshots(ctx, uc.cache)

	return &DeleteEntryOutput{
		Success: true,
	}, nil
}

// Package manualentry contains manual statement entry use cases.
package manualentry

import (
	"context"
	"fmt"

	"github.com/bizsuite/backend/internal/application/adapter"
	"github.com/bizsuite/backend/internal/domain/entity"
	domainerror "github.com/bizsuite/backend/internal/domain/error"
)

// ListEntriesInput represents the input for listing manual entries.
type ListEntriesInput struct {
	StatementType entity.StatementType
}

// ListEntriesOutput represents the output of listing manual entries.
type ListEntriesOutput struct {
	Entries []entity.ManualEntry
}

// ListEntriesUseCase handles manual entry listing logic.
type ListEntriesUseCase struct {
	entryStore adapter.ManualEntryStore
}

// NewListEntriesUseCase creates a new ListEntriesUseCase instance.
func NewListEntriesUseCase(entryStore adapter.ManualEntryStore) *ListEntriesUseCase {
	return &ListEntriesUseCase{
		entryStore: entryStore,
	}
}

// Execute lists manual entries of one statement type, newest first.
func (uc *ListEntriesUseCase) Execute(ctx context.Context, input ListEntriesInput) (*ListEntriesOutput, error) {
	if !input.StatementType.IsValid() {
		return nil, domainerror.NewStatementError(
			domainerror.ErrCodeInvalidStatementType,
			"statement type must be 'pl', 'bs' or 'cf'",
			domainerror.ErrInvalidStatementType,
		)
	}

	entries, err := uc.entryStore.List(ctx, input.StatementType)
	if err != nil {
		return nil, fmt.Errorf("failed to list manual entries: %w", err)
	}

	return &ListEntriesOutput{
		Entries: entries,
	}, nil
}

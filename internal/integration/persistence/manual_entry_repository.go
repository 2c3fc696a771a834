// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bizsuite/backend/internal/application/adapter"
	"github.com/bizsuite/backend/internal/domain/entity"
	domainerror "github.com/bizsuite/backend/internal/domain/error"
	"github.com/bizsuite/backend/internal/integration/persistence/model"
)

// manualEntryRepository implements the adapter.ManualEntryStore interface.
type manualEntryRepository struct {
	db *gorm.DB
}

// NewManualEntryRepository creates a new manual entry repository instance.
func NewManualEntryRepository(db *gorm.DB) adapter.ManualEntryStore {
	return &manualEntryRepository{
		db: db,
	}
}

// FetchEntries retrieves manual entries of one statement type inside the range.
func (r *manualEntryRepository) FetchEntries(ctx context.Context, statementType entity.StatementType, dateRange entity.DateRange) ([]entity.ManualEntry, error) {
	var entryModels []model.ManualEntryModel
	result := r.db.WithContext(ctx).
		Where("statement_type = ?", string(statementType)).
		Where("date >= ? AND date <= ?", dateRange.Start, dateRange.End).
		Order("date ASC, created_at ASC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	return toEntries(entryModels), nil
}

// Create persists a new manual entry.
func (r *manualEntryRepository) Create(ctx context.Context, entry *entity.ManualEntry) error {
	entryModel := model.ManualEntryFromEntity(entry)
	result := r.db.WithContext(ctx).Create(entryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a manual entry by its ID.
func (r *manualEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ManualEntry, error) {
	var entryModel model.ManualEntryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrManualEntryNotFound
		}
		return nil, result.Error
	}
	entry := entryModel.ToEntity()
	return &entry, nil
}

// List retrieves manual entries of one statement type, newest first.
func (r *manualEntryRepository) List(ctx context.Context, statementType entity.StatementType) ([]entity.ManualEntry, error) {
	var entryModels []model.ManualEntryModel
	result := r.db.WithContext(ctx).
		Where("statement_type = ?", string(statementType)).
		Order("date DESC, created_at DESC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	return toEntries(entryModels), nil
}

// Update persists changes to an existing manual entry.
func (r *manualEntryRepository) Update(ctx context.Context, entry *entity.ManualEntry) error {
	entryModel := model.ManualEntryFromEntity(entry)
	result := r.db.WithContext(ctx).
		Model(&model.ManualEntryModel{}).
		Where("id = ?", entry.ID).
		Updates(entryModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrManualEntryNotFound
	}
	return nil
}

// Delete removes a manual entry by its ID.
func (r *manualEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ManualEntryModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrManualEntryNotFound
	}
	return nil
}

func toEntries(entryModels []model.ManualEntryModel) []entity.ManualEntry {
	entries := make([]entity.ManualEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}
	return entries
}

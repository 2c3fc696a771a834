// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bizsuite/backend/internal/application/adapter"
	"github.com/bizsuite/backend/internal/domain/entity"
	"github.com/bizsuite/backend/internal/integration/persistence/model"
)

// businessSalesRepository implements the adapter.BusinessSalesSource interface.
type businessSalesRepository struct {
	db *gorm.DB
}

// NewBusinessSalesRepository creates a new business sales repository instance.
func NewBusinessSalesRepository(db *gorm.DB) adapter.BusinessSalesSource {
	return &businessSalesRepository{
		db: db,
	}
}

// FetchSales retrieves revenue and expense records inside the range,
// optionally limited to a single business unit.
func (r *businessSalesRepository) FetchSales(ctx context.Context, dateRange entity.DateRange, businessID *uuid.UUID) ([]entity.BusinessRecord, error) {
	query := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", dateRange.Start, dateRange.End)
	if businessID != nil {
		query = query.Where("business_id = ?", *businessID)
	}

	var recordModels []model.BusinessRecordModel
	result := query.Order("date ASC, created_at ASC").Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]entity.BusinessRecord, len(recordModels))
	for i, rm := range recordModels {
		records[i] = rm.ToEntity()
	}
	return records, nil
}

// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/bizsuite/backend/internal/application/adapter"
	"github.com/bizsuite/backend/internal/domain/entity"
	"github.com/bizsuite/backend/internal/integration/persistence/model"
)

// agencySalesRepository implements the adapter.AgencyCommissionSource interface.
type agencySalesRepository struct {
	db *gorm.DB
}

// NewAgencySalesRepository creates a new agency sales repository instance.
func NewAgencySalesRepository(db *gorm.DB) adapter.AgencyCommissionSource {
	return &agencySalesRepository{
		db: db,
	}
}

// FetchAgencySales retrieves agency sales inside the range.
func (r *agencySalesRepository) FetchAgencySales(ctx context.Context, dateRange entity.DateRange) ([]entity.AgencySale, error) {
	var saleModels []model.AgencySaleModel
	result := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", dateRange.Start, dateRange.End).
		Order("date ASC, created_at ASC").
		Find(&saleModels)
	if result.Error != nil {
		return nil, result.Error
	}

	sales := make([]entity.AgencySale, len(saleModels))
	for i, sm := range saleModels {
		sales[i] = sm.ToEntity()
	}
	return sales, nil
}

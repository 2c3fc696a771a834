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

// investmentRepository implements the adapter.InvestmentStore interface.
type investmentRepository struct {
	db *gorm.DB
}

// NewInvestmentRepository creates a new investment repository instance.
func NewInvestmentRepository(db *gorm.DB) adapter.InvestmentStore {
	return &investmentRepository{
		db: db,
	}
}

// FetchInvestments retrieves investment records inside the range,
// optionally limited to a single business unit.
func (r *investmentRepository) FetchInvestments(ctx context.Context, dateRange entity.DateRange, businessID *uuid.UUID) ([]entity.Investment, error) {
	query := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", dateRange.Start, dateRange.End)
	if businessID != nil {
		query = query.Where("business_id = ?", *businessID)
	}

	var investmentModels []model.InvestmentModel
	result := query.Order("date ASC, created_at ASC").Find(&investmentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	investments := make([]entity.Investment, len(investmentModels))
	for i, im := range investmentModels {
		investments[i] = im.ToEntity()
	}
	return investments, nil
}

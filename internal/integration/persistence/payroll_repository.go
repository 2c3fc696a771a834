// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/bizsuite/backend/internal/application/adapter"
	"github.com/bizsuite/backend/internal/domain/entity"
	"github.com/bizsuite/backend/internal/integration/persistence/model"
)

// payrollRepository implements the adapter.PayrollSource interface.
type payrollRepository struct {
	db *gorm.DB
}

// NewPayrollRepository creates a new payroll repository instance.
func NewPayrollRepository(db *gorm.DB) adapter.PayrollSource {
	return &payrollRepository{
		db: db,
	}
}

// FetchSalaries retrieves salary payments whose paid date falls inside the range.
func (r *payrollRepository) FetchSalaries(ctx context.Context, dateRange entity.DateRange) ([]entity.SalaryPayment, error) {
	var paymentModels []model.SalaryPaymentModel
	result := r.db.WithContext(ctx).
		Where("paid_date >= ? AND paid_date <= ?", dateRange.Start, dateRange.End).
		Order("paid_date ASC, created_at ASC").
		Find(&paymentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	payments := make([]entity.SalaryPayment, len(paymentModels))
	for i, pm := range paymentModels {
		payments[i] = pm.ToEntity()
	}
	return payments, nil
}

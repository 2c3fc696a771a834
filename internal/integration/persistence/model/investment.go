// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizsuite/backend/internal/domain/entity"
)

// InvestmentModel represents the investments table in the database.
type InvestmentModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BusinessID  *uuid.UUID      `gorm:"type:uuid;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Category    string          `gorm:"type:varchar(50)"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	Description string          `gorm:"type:varchar(255)"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the InvestmentModel.
func (InvestmentModel) TableName() string {
	return "investments"
}

// ToEntity converts an InvestmentModel to a domain Investment entity.
func (m *InvestmentModel) ToEntity() entity.Investment {
	return entity.Investment{
		ID:          m.ID,
		BusinessID:  m.BusinessID,
		Amount:      m.Amount,
		Category:    m.Category,
		Date:        m.Date,
		Description: m.Description,
	}
}

// InvestmentFromEntity creates an InvestmentModel from a domain entity.
func InvestmentFromEntity(investment entity.Investment) *InvestmentModel {
	return &InvestmentModel{
		ID:          investment.ID,
		BusinessID:  investment.BusinessID,
		Amount:      investment.Amount,
		Category:    investment.Category,
		Date:        investment.Date,
		Description: investment.Description,
	}
}

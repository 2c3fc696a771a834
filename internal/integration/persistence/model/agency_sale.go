// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizsuite/backend/internal/domain/entity"
)

// AgencySaleModel represents the agency_sales table in the database.
type AgencySaleModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AgencyName string          `gorm:"type:varchar(100);not null;index"`
	Revenue    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Commission decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date       time.Time       `gorm:"type:date;not null;index"`
	CreatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the AgencySaleModel.
func (AgencySaleModel) TableName() string {
	return "agency_sales"
}

// ToEntity converts an AgencySaleModel to a domain AgencySale entity.
func (m *AgencySaleModel) ToEntity() entity.AgencySale {
	return entity.AgencySale{
		ID:         m.ID,
		AgencyName: m.AgencyName,
		Revenue:    m.Revenue,
		Commission: m.Commission,
		Date:       m.Date,
	}
}

// AgencySaleFromEntity creates an AgencySaleModel from a domain entity.
func AgencySaleFromEntity(sale entity.AgencySale) *AgencySaleModel {
	return &AgencySaleModel{
		ID:         sale.ID,
		AgencyName: sale.AgencyName,
		Revenue:    sale.Revenue,
		Commission: sale.Commission,
		Date:       sale.Date,
	}
}

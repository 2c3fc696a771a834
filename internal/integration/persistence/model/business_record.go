// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizsuite/backend/internal/domain/entity"
)

// BusinessRecordModel represents the business_records table in the database.
type BusinessRecordModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BusinessID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type        string          `gorm:"type:varchar(10);not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	Description string          `gorm:"type:varchar(255)"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BusinessRecordModel.
func (BusinessRecordModel) TableName() string {
	return "business_records"
}

// ToEntity converts a BusinessRecordModel to a domain BusinessRecord entity.
func (m *BusinessRecordModel) ToEntity() entity.BusinessRecord {
	return entity.BusinessRecord{
		ID:          m.ID,
		BusinessID:  m.BusinessID,
		Type:        entity.BusinessRecordType(m.Type),
		Amount:      m.Amount,
		Date:        m.Date,
		Description: m.Description,
	}
}

// BusinessRecordFromEntity creates a BusinessRecordModel from a domain entity.
func BusinessRecordFromEntity(record entity.BusinessRecord) *BusinessRecordModel {
	return &BusinessRecordModel{
		ID:          record.ID,
		BusinessID:  record.BusinessID,
		Type:        string(record.Type),
		Amount:      record.Amount,
		Date:        record.Date,
		Description: record.Description,
	}
}

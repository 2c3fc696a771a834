// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizsuite/backend/internal/domain/entity"
)

// ManualEntryModel represents the manual_entries table in the database.
type ManualEntryModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	StatementType string          `gorm:"type:varchar(2);not null;index"`
	Category      string          `gorm:"type:varchar(50);not null;index"`
	SubCategory   string          `gorm:"type:varchar(50)"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date          time.Time       `gorm:"type:date;not null;index"`
	Description   string          `gorm:"type:varchar(255)"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ManualEntryModel.
func (ManualEntryModel) TableName() string {
	return "manual_entries"
}

// ToEntity converts a ManualEntryModel to a domain ManualEntry entity.
func (m *ManualEntryModel) ToEntity() entity.ManualEntry {
	return entity.ManualEntry{
		ID:            m.ID,
		StatementType: entity.StatementType(m.StatementType),
		Category:      m.Category,
		SubCategory:   m.SubCategory,
		Amount:        m.Amount,
		Date:          m.Date,
		Description:   m.Description,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ManualEntryFromEntity creates a ManualEntryModel from a domain entity.
func ManualEntryFromEntity(entry *entity.ManualEntry) *ManualEntryModel {
	return &ManualEntryModel{
		ID:            entry.ID,
		StatementType: string(entry.StatementType),
		Category:      entry.Category,
		SubCategory:   entry.SubCategory,
		Amount:        entry.Amount,
		Date:          entry.Date,
		Description:   entry.Description,
		CreatedAt:     entry.CreatedAt,
		UpdatedAt:     entry.UpdatedAt,
	}
}

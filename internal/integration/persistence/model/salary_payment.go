// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizsuite/backend/internal/domain/entity"
)

// SalaryPaymentModel represents the salary_payments table in the database.
type SalaryPaymentModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeName string          `gorm:"type:varchar(100);not null"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PaidDate     time.Time       `gorm:"type:date;not null;index"`
	CreatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SalaryPaymentModel.
func (SalaryPaymentModel) TableName() string {
	return "salary_payments"
}

// ToEntity converts a SalaryPaymentModel to a domain SalaryPayment entity.
func (m *SalaryPaymentModel) ToEntity() entity.SalaryPayment {
	return entity.SalaryPayment{
		ID:           m.ID,
		EmployeeName: m.EmployeeName,
		Amount:       m.Amount,
		PaidDate:     m.PaidDate,
	}
}

// SalaryPaymentFromEntity creates a SalaryPaymentModel from a domain entity.
func SalaryPaymentFromEntity(payment entity.SalaryPayment) *SalaryPaymentModel {
	return &SalaryPaymentModel{
		ID:           payment.ID,
		EmployeeName: payment.EmployeeName,
		Amount:       payment.Amount,
		PaidDate:     payment.PaidDate,
	}
}

// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/bizsuite/backend/internal/domain/entity"
)

// CreateManualEntryRequest represents the request body for manual entry creation.
type CreateManualEntryRequest struct {
	StatementType string  `json:"statement_type" binding:"required,oneof=pl bs cf"`
	Category      string  `json:"category" binding:"required"`
	SubCategory   string  `json:"sub_category,omitempty" binding:"omitempty,max=50"`
	Amount        float64 `json:"amount" binding:"required"`
	Date          string  `json:"date" binding:"required"`
	Description   string  `json:"description,omitempty" binding:"omitempty,max=255"`
}

// UpdateManualEntryRequest represents the request body for manual entry update.
type UpdateManualEntryRequest struct {
	Category    string  `json:"category" binding:"required"`
	SubCategory string  `json:"sub_category,omitempty" binding:"omitempty,max=50"`
	Amount      float64 `json:"amount" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description,omitempty" binding:"omitempty,max=255"`
}

// ManualEntryResponse represents a single manual entry in API responses.
type ManualEntryResponse struct {
	ID            string    `json:"id"`
	StatementType string    `json:"statement_type"`
	Category      string    `json:"category"`
	SubCategory   string    `json:"sub_category,omitempty"`
	Amount        string    `json:"amount"`
	Date          string    `json:"date"`
	Description   string    `json:"description,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ManualEntryListResponse represents a list of manual entries in API responses.
type ManualEntryListResponse struct {
	Entries []ManualEntryResponse `json:"entries"`
	Total   int                   `json:"total"`
}

// ToManualEntryResponse converts a domain ManualEntry entity to a response DTO.
func ToManualEntryResponse(entry *entity.ManualEntry) ManualEntryResponse {
	return ManualEntryResponse{
		ID:            entry.ID.String(),
		StatementType: string(entry.StatementType),
		Category:      entry.Category,
		SubCategory:   entry.SubCategory,
		Amount:        entry.Amount.StringFixed(2),
		Date:          entry.Date.Format("2006-01-02"),
		Description:   entry.Description,
		CreatedAt:     entry.CreatedAt,
		UpdatedAt:     entry.UpdatedAt,
	}
}

// ToManualEntryListResponse converts a list of manual entries to a response DTO.
func ToManualEntryListResponse(entries []entity.ManualEntry) ManualEntryListResponse {
	responses := make([]ManualEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToManualEntryResponse(&entries[i])
	}
	return ManualEntryListResponse{
		Entries: responses,
		Total:   len(responses),
	}
}

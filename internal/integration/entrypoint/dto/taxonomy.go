// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/bizsuite/backend/internal/domain/entity"
)

// CategoryResponse represents one taxonomy category in API responses.
type CategoryResponse struct {
	Code          string `json:"code"`
	StatementType string `json:"statement_type"`
	Group         string `json:"group"`
	Flow          string `json:"flow"`
	Label         string `json:"label"`
}

// CategoryListResponse represents the full taxonomy in API responses.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Total      int                `json:"total"`
}

// ToCategoryListResponse converts taxonomy categories to a response DTO.
func ToCategoryListResponse(categories []entity.Category) CategoryListResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		responses[i] = CategoryResponse{
			Code:          cat.Code,
			StatementType: string(cat.StatementType),
			Group:         string(cat.Group),
			Flow:          string(cat.Flow),
			Label:         cat.Label,
		}
	}
	return CategoryListResponse{
		Categories: responses,
		Total:      len(responses),
	}
}

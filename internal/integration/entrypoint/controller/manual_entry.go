// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizsuite/backend/internal/application/usecase/manualentry"
	"github.com/bizsuite/backend/internal/domain/entity"
	domainerror "github.com/bizsuite/backend/internal/domain/error"
	"github.com/bizsuite/backend/internal/integration/entrypoint/dto"
)

// ManualEntryController handles manual statement entry endpoints.
type ManualEntryController struct {
	createUseCase *manualentry.CreateEntryUseCase
	listUseCase   *manualentry.ListEntriesUseCase
	updateUseCase *manualentry.UpdateEntryUseCase
	deleteUseCase *manualentry.DeleteEntryUseCase
}

// NewManualEntryController creates a new manual entry controller instance.
func NewManualEntryController(
	createUseCase *manualentry.CreateEntryUseCase,
	listUseCase *manualentry.ListEntriesUseCase,
	updateUseCase *manualentry.UpdateEntryUseCase,
	deleteUseCase *manualentry.DeleteEntryUseCase,
) *ManualEntryController {
	return &ManualEntryController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /manual-entries requests.
func (c *ManualEntryController) Create(ctx *gin.Context) {
	var req dto.CreateManualEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), manualentry.CreateEntryInput{
		StatementType: entity.StatementType(req.StatementType),
		Category:      req.Category,
		SubCategory:   req.SubCategory,
		Amount:        decimal.NewFromFloat(req.Amount),
		Date:          date,
		Description:   req.Description,
	})
	if err != nil {
		handleManualEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToManualEntryResponse(output.Entry))
}

// List handles GET /manual-entries requests.
func (c *ManualEntryController) List(ctx *gin.Context) {
	statementType := entity.StatementType(ctx.Query("statement_type"))

	output, err := c.listUseCase.Execute(ctx.Request.Context(), manualentry.ListEntriesInput{
		StatementType: statementType,
	})
	if err != nil {
		handleManualEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToManualEntryListResponse(output.Entries))
}

// Update handles PUT /manual-entries/:id requests.
func (c *ManualEntryController) Update(ctx *gin.Context) {
	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	var req dto.UpdateManualEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), manualentry.UpdateEntryInput{
		EntryID:     entryID,
		Category:    req.Category,
		SubCategory: req.SubCategory,
		Amount:      decimal.NewFromFloat(req.Amount),
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		handleManualEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToManualEntryResponse(output.Entry))
}

// Delete handles DELETE /manual-entries/:id requests.
func (c *ManualEntryController) Delete(ctx *gin.Context) {
	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), manualentry.DeleteEntryInput{
		EntryID: entryID,
	}); err != nil {
		handleManualEntryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleManualEntryError maps manual entry errors to HTTP responses.
func handleManualEntryError(ctx *gin.Context, err error) {
	var entryErr *domainerror.ManualEntryError
	if errors.As(err, &entryErr) {
		ctx.JSON(getStatusCodeForManualEntryError(entryErr.Code), dto.ErrorResponse{
			Error: entryErr.Message,
			Code:  string(entryErr.Code),
		})
		return
	}

	// Statement-type validation is shared with the engine.
	var stmErr *domainerror.StatementError
	if errors.As(err, &stmErr) {
		ctx.JSON(getStatusCodeForStatementError(stmErr.Code), dto.ErrorResponse{
			Error: stmErr.Message,
			Code:  string(stmErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForManualEntryError maps manual entry error codes to HTTP status codes.
func getStatusCodeForManualEntryError(code domainerror.ManualEntryErrorCode) int {
	switch code {
	case domainerror.ErrCodeManualEntryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeManualEntryCategoryUnknown,
		domainerror.ErrCodeManualEntryCategoryMismatch,
		domainerror.ErrCodeManualEntryAmountInvalid,
		domainerror.ErrCodeManualEntryDateMissing,
		domainerror.ErrCodeManualEntryDescriptionLong:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

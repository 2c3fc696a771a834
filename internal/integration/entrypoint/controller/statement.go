// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bizsuite/backend/internal/application/usecase/statement"
	"github.com/bizsuite/backend/internal/domain/entity"
	domainerror "github.com/bizsuite/backend/internal/domain/error"
	"github.com/bizsuite/backend/internal/domain/taxonomy"
	"github.com/bizsuite/backend/internal/integration/entrypoint/dto"
)

// StatementController handles statement computation endpoints.
type StatementController struct {
	computeUseCase *statement.ComputeStatementUseCase
	summaryUseCase *statement.ComputeSummaryUseCase
}

// NewStatementController creates a new statement controller instance.
func NewStatementController(
	computeUseCase *statement.ComputeStatementUseCase,
	summaryUseCase *statement.ComputeSummaryUseCase,
) *StatementController {
	return &StatementController{
		computeUseCase: computeUseCase,
		summaryUseCase: summaryUseCase,
	}
}

// Compute handles GET /statements/:type requests.
func (c *StatementController) Compute(ctx *gin.Context) {
	statementType := entity.StatementType(ctx.Param("type"))

	dateRange, ok := parseDateRange(ctx)
	if !ok {
		return
	}

	var businessID *uuid.UUID
	if idStr := ctx.Query("business_id"); idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid business ID format",
			})
			return
		}
		businessID = &id
	}

	result, err := c.computeUseCase.Execute(ctx.Request.Context(), statement.ComputeStatementInput{
		StatementType: statementType,
		DateRange:     dateRange,
		BusinessID:    businessID,
	})
	if err != nil {
		handleStatementError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStatementResponse(result))
}

// Summary handles GET /statements/summary requests.
func (c *StatementController) Summary(ctx *gin.Context) {
	dateRange, ok := parseDateRange(ctx)
	if !ok {
		return
	}

	result, err := c.summaryUseCase.Execute(ctx.Request.Context(), statement.ComputeSummaryInput{
		DateRange: dateRange,
	})
	if err != nil {
		handleStatementError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(dateRange, result))
}

// Categories handles GET /categories requests. It lists the closed
// category taxonomy so clients never hardcode codes.
func (c *StatementController) Categories(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(taxonomy.All()))
}

// parseDateRange reads the start_date and end_date query parameters.
// Presence and ordering are validated by the use case; only the format is
// rejected here.
func parseDateRange(ctx *gin.Context) (entity.DateRange, bool) {
	var dateRange entity.DateRange

	if startStr := ctx.Query("start_date"); startStr != "" {
		start, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start_date format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return entity.DateRange{}, false
		}
		dateRange.Start = start
	}
	if endStr := ctx.Query("end_date"); endStr != "" {
		end, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end_date format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return entity.DateRange{}, false
		}
		dateRange.End = end
	}

	return dateRange, true
}

// handleStatementError maps statement engine errors to HTTP responses.
func handleStatementError(ctx *gin.Context, err error) {
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

// getStatusCodeForStatementError maps statement error codes to HTTP status codes.
func getStatusCodeForStatementError(code domainerror.StatementErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingStartDate,
		domainerror.ErrCodeMissingEndDate,
		domainerror.ErrCodeInvalidDateRange,
		domainerror.ErrCodeInvalidStatementType,
		domainerror.ErrCodeInvalidDateFormat,
		domainerror.ErrCodeUnknownCategory:
		return http.StatusBadRequest
	case domainerror.ErrCodeSourceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

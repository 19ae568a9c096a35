// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coinbag/backend/internal/application/usecase/cashflow"
	"github.com/coinbag/backend/internal/domain/entity"
	domainerror "github.com/coinbag/backend/internal/domain/error"
	"github.com/coinbag/backend/internal/integration/entrypoint/dto"
	"github.com/coinbag/backend/internal/integration/entrypoint/middleware"
)

// CashFlowController handles recurring cash flow endpoints.
type CashFlowController struct {
	listUseCase   *cashflow.ListCashFlowsUseCase
	createUseCase *cashflow.CreateCashFlowUseCase
	updateUseCase *cashflow.UpdateCashFlowUseCase
	deleteUseCase *cashflow.DeleteCashFlowUseCase
}

// NewCashFlowController creates a new cash flow controller instance.
func NewCashFlowController(
	listUseCase *cashflow.ListCashFlowsUseCase,
	createUseCase *cashflow.CreateCashFlowUseCase,
	updateUseCase *cashflow.UpdateCashFlowUseCase,
	deleteUseCase *cashflow.DeleteCashFlowUseCase,
) *CashFlowController {
	return &CashFlowController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /cash-flows requests.
func (c *CashFlowController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := cashflow.ListCashFlowsInput{
		UserID: userID,
	}

	// Filter by record type if provided
	if typeParam := ctx.Query("type"); typeParam != "" {
		cashFlowType := entity.CashFlowType(typeParam)
		input.Type = &cashFlowType
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve cash flows",
		})
		return
	}

	response := dto.ToCashFlowListResponse(output.CashFlows)
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /cash-flows requests.
func (c *CashFlowController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateCashFlowRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeCashFlowNameRequired),
		})
		return
	}

	categoryID, err := parseOptionalID(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}
	accountID, err := parseOptionalID(req.AccountID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}

	input := cashflow.CreateCashFlowInput{
		UserID:     userID,
		Name:       req.Name,
		Type:       entity.CashFlowType(req.Type),
		Amount:     decimal.NewFromFloat(req.Amount),
		Frequency:  entity.Frequency(req.Frequency),
		CategoryID: categoryID,
		AccountID:  accountID,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCashFlowError(ctx, err)
		return
	}

	response := dto.ToCashFlowResponse(output.CashFlow)
	ctx.JSON(http.StatusCreated, response)
}

// Update handles PATCH /cash-flows/:id requests.
func (c *CashFlowController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	cashFlowID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid cash flow ID format",
		})
		return
	}

	var req dto.UpdateCashFlowRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeCashFlowNameRequired),
		})
		return
	}

	categoryID, err := parseOptionalID(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}
	accountID, err := parseOptionalID(req.AccountID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}

	input := cashflow.UpdateCashFlowInput{
		CashFlowID: cashFlowID,
		UserID:     userID,
		Name:       req.Name,
		Amount:     decimal.NewFromFloat(req.Amount),
		Frequency:  entity.Frequency(req.Frequency),
		CategoryID: categoryID,
		AccountID:  accountID,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCashFlowError(ctx, err)
		return
	}

	response := dto.ToCashFlowResponse(output.CashFlow)
	ctx.JSON(http.StatusOK, response)
}

// Delete handles DELETE /cash-flows/:id requests.
func (c *CashFlowController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	cashFlowID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid cash flow ID format",
		})
		return
	}

	input := cashflow.DeleteCashFlowInput{
		CashFlowID: cashFlowID,
		UserID:     userID,
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCashFlowError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseOptionalID parses an optional string UUID from a request body.
func parseOptionalID(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// handleCashFlowError handles cash flow errors and returns appropriate HTTP responses.
func (c *CashFlowController) handleCashFlowError(ctx *gin.Context, err error) {
	var cshErr *domainerror.CashFlowError
	if errors.As(err, &cshErr) {
		statusCode := c.getStatusCodeForCashFlowError(cshErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: cshErr.Message,
			Code:  string(cshErr.Code),
		})
		return
	}

	// Link targets are validated through their own domains
	var accErr *domainerror.AccountError
	if errors.As(err, &accErr) && accErr.Code == domainerror.ErrCodeAccountNotFound {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: accErr.Message,
			Code:  string(accErr.Code),
		})
		return
	}
	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) && catErr.Code == domainerror.ErrCodeCategoryNotFound {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForCashFlowError maps cash flow error codes to HTTP status codes.
func (c *CashFlowController) getStatusCodeForCashFlowError(code domainerror.CashFlowErrorCode) int {
	switch code {
	case domainerror.ErrCodeCashFlowNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCashFlowNameRequired,
		domainerror.ErrCodeInvalidCashFlowType,
		domainerror.ErrCodeNegativeAmount,
		domainerror.ErrCodeInvalidFrequency,
		domainerror.ErrCodeCategoryOnIncome:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/coinbag/backend/internal/application/usecase/paycycle"
	"github.com/coinbag/backend/internal/domain/entity"
	domainerror "github.com/coinbag/backend/internal/domain/error"
	"github.com/coinbag/backend/internal/integration/entrypoint/dto"
	"github.com/coinbag/backend/internal/integration/entrypoint/middleware"
)

// PayCycleController handles pay cycle configuration endpoints.
type PayCycleController struct {
	getUseCase    *paycycle.GetPayCycleUseCase
	upsertUseCase *paycycle.UpsertPayCycleUseCase
}

// NewPayCycleController creates a new pay cycle controller instance.
func NewPayCycleController(
	getUseCase *paycycle.GetPayCycleUseCase,
	upsertUseCase *paycycle.UpsertPayCycleUseCase,
) *PayCycleController {
	return &PayCycleController{
		getUseCase:    getUseCase,
		upsertUseCase: upsertUseCase,
	}
}

// Get handles GET /pay-cycle requests.
func (c *PayCycleController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := paycycle.GetPayCycleInput{
		UserID: userID,
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePayCycleError(ctx, err)
		return
	}

	response := dto.ToPayCycleResponse(output.PayCycle)
	ctx.JSON(http.StatusOK, response)
}

// Upsert handles PUT /pay-cycle requests. Each user has at most one pay
// cycle, so the endpoint creates or replaces it in place.
func (c *PayCycleController) Upsert(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.UpsertPayCycleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidPayCycleFrequency),
		})
		return
	}

	primaryAccountID, err := uuid.Parse(req.PrimaryAccountID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid primary account ID format",
		})
		return
	}

	var savingsAccountID *uuid.UUID
	if req.SavingsAccountID != nil && *req.SavingsAccountID != "" {
		id, err := uuid.Parse(*req.SavingsAccountID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid savings account ID format",
			})
			return
		}
		savingsAccountID = &id
	}

	input := paycycle.UpsertPayCycleInput{
		UserID:           userID,
		Frequency:        entity.Frequency(req.Frequency),
		PrimaryAccountID: primaryAccountID,
		SavingsAccountID: savingsAccountID,
		NextPayDate:      req.NextPayDate,
	}

	output, err := c.upsertUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePayCycleError(ctx, err)
		return
	}

	response := dto.ToPayCycleResponse(output.PayCycle)
	ctx.JSON(http.StatusOK, response)
}

// handlePayCycleError handles pay cycle errors and returns appropriate HTTP responses.
func (c *PayCycleController) handlePayCycleError(ctx *gin.Context, err error) {
	var payErr *domainerror.PayCycleError
	if errors.As(err, &payErr) {
		statusCode := c.getStatusCodeForPayCycleError(payErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: payErr.Message,
			Code:  string(payErr.Code),
		})
		return
	}

	// Account references are validated through the account domain
	var accErr *domainerror.AccountError
	if errors.As(err, &accErr) && accErr.Code == domainerror.ErrCodeAccountNotFound {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: accErr.Message,
			Code:  string(accErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForPayCycleError maps pay cycle error codes to HTTP status codes.
func (c *PayCycleController) getStatusCodeForPayCycleError(code domainerror.PayCycleErrorCode) int {
	switch code {
	case domainerror.ErrCodePayCycleNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidPayCycleFrequency,
		domainerror.ErrCodeMissingPrimaryAccount,
		domainerror.ErrCodeMissingNextPayDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

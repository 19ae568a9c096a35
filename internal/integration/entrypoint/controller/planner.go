// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coinbag/backend/internal/application/usecase/digest"
	"github.com/coinbag/backend/internal/application/usecase/planner"
	domainerror "github.com/coinbag/backend/internal/domain/error"
	"github.com/coinbag/backend/internal/integration/entrypoint/dto"
	"github.com/coinbag/backend/internal/integration/entrypoint/middleware"
)

// PlannerController handles plan computation and digest endpoints.
type PlannerController struct {
	getPlanUseCase *planner.CachedGetPlanUseCase
	digestUseCase  *digest.SendPlanDigestUseCase
}

// NewPlannerController creates a new planner controller instance.
func NewPlannerController(
	getPlanUseCase *planner.CachedGetPlanUseCase,
	digestUseCase *digest.SendPlanDigestUseCase,
) *PlannerController {
	return &PlannerController{
		getPlanUseCase: getPlanUseCase,
		digestUseCase:  digestUseCase,
	}
}

// GetPlan handles GET /planner/plan requests.
func (c *PlannerController) GetPlan(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := planner.GetPlanInput{
		UserID: userID,
	}

	output, err := c.getPlanUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePlannerError(ctx, err)
		return
	}

	response := dto.ToPlanResponse(output)
	ctx.JSON(http.StatusOK, response)
}

// SendDigest handles POST /planner/digest requests. The digest is a
// best-effort email of the current plan; a user who disabled digests gets
// a successful response with sent set to false.
func (c *PlannerController) SendDigest(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := digest.SendPlanDigestInput{
		UserID: userID,
	}

	output, err := c.digestUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePlannerError(ctx, err)
		return
	}

	response := dto.ToDigestResponse(output)
	ctx.JSON(http.StatusOK, response)
}

// handlePlannerError handles planner errors and returns appropriate HTTP responses.
func (c *PlannerController) handlePlannerError(ctx *gin.Context, err error) {
	var plnErr *domainerror.PlannerError
	if errors.As(err, &plnErr) {
		statusCode := c.getStatusCodeForPlannerError(plnErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: plnErr.Message,
			Code:  string(plnErr.Code),
		})
		return
	}

	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) && authErr.Code == domainerror.ErrCodeUserNotFound {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForPlannerError maps planner error codes to HTTP status codes.
func (c *PlannerController) getStatusCodeForPlannerError(code domainerror.PlannerErrorCode) int {
	switch code {
	case domainerror.ErrCodeUnsupportedTargetFrequency:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

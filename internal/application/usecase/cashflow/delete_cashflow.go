// Package cashflow contains recurring cash flow use cases.
package cashflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/coinbag/backend/internal/application/adapter"
	domainerror "github.com/coinbag/backend/internal/domain/error"
)

// DeleteCashFlowInput represents the input for cash flow deletion.
type DeleteCashFlowInput struct {
	CashFlowID uuid.UUID
	UserID     uuid.UUID
}

// DeleteCashFlowOutput represents the output of cash flow deletion.
type DeleteCashFlowOutput struct {
	Success bool
}

// DeleteCashFlowUseCase handles cash flow deletion logic.
type DeleteCashFlowUseCase struct {
	cashFlowRepo adapter.CashFlowRepository
	planCache    adapter.PlanCache
}

// NewDeleteCashFlowUseCase creates a new DeleteCashFlowUseCase instance.
func NewDeleteCashFlowUseCase(cashFlowRepo adapter.CashFlowRepository, planCache adapter.PlanCache) *DeleteCashFlowUseCase {
	return &DeleteCashFlowUseCase{
		cashFlowRepo: cashFlowRepo,
		planCache:    planCache,
	}
}

// Execute performs the cash flow deletion.
func (uc *DeleteCashFlowUseCase) Execute(ctx context.Context, input DeleteCashFlowInput) (*DeleteCashFlowOutput, error) {
	cashFlow, err := uc.cashFlowRepo.FindByID(ctx, input.CashFlowID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCashFlowNotFound) {
			return nil, domainerror.NewCashFlowError(
				domainerror.ErrCodeCashFlowNotFound,
				"cash flow not found",
				domainerror.ErrCashFlowNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find cash flow: %w", err)
	}

	if cashFlow.UserID != input.UserID {
		return nil, domainerror.NewCashFlowError(
			domainerror.ErrCodeCashFlowNotFound,
			"cash flow not found",
			domainerror.ErrCashFlowNotFound,
		)
	}

	if err := uc.cashFlowRepo.Delete(ctx, input.CashFlowID); err != nil {
		return nil, fmt.Errorf("failed to delete cash flow: %w", err)
	}

	invalidatePlanCache(ctx, uc.planCache, input.UserID)

	return &DeleteCashFlowOutput{
		Success: true,
	}, nil
}

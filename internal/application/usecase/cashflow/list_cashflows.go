// Package cashflow contains recurring cash flow use cases.
package cashflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/coinbag/backend/internal/application/adapter"
	"github.com/coinbag/backend/internal/domain/entity"
)

// ListCashFlowsInput represents the input for listing cash flows.
type ListCashFlowsInput struct {
	UserID uuid.UUID
	Type   *entity.CashFlowType // Optional filter by record type
}

// ListCashFlowsOutput represents the output of listing cash flows.
type ListCashFlowsOutput struct {
	CashFlows []*entity.CashFlow
}

// ListCashFlowsUseCase handles listing a user's cash flows.
type ListCashFlowsUseCase struct {
	cashFlowRepo adapter.CashFlowRepository
}

// NewListCashFlowsUseCase creates a new ListCashFlowsUseCase instance.
func NewListCashFlowsUseCase(cashFlowRepo adapter.CashFlowRepository) *ListCashFlowsUseCase {
	return &ListCashFlowsUseCase{
		cashFlowRepo: cashFlowRepo,
	}
}

// Execute lists the user's cash flows in creation order, optionally
// filtered by type.
func (uc *ListCashFlowsUseCase) Execute(ctx context.Context, input ListCashFlowsInput) (*ListCashFlowsOutput, error) {
	var (
		cashFlows []*entity.CashFlow
		err       error
	)

	if input.Type != nil {
		cashFlows, err = uc.cashFlowRepo.FindByUserAndType(ctx, input.UserID, *input.Type)
	} else {
		cashFlows, err = uc.cashFlowRepo.FindByUser(ctx, input.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list cash flows: %w", err)
	}

	return &ListCashFlowsOutput{
		CashFlows: cashFlows,
	}, nil
}

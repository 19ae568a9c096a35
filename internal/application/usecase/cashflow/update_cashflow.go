// Package cashflow contains recurring cash flow use cases.
package cashflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coinbag/backend/internal/application/adapter"
	"github.com/coinbag/backend/internal/domain/entity"
	domainerror "github.com/coinbag/backend/internal/domain/error"
)

// UpdateCashFlowInput represents the input for cash flow update. The type of
// an existing record is immutable; convert by deleting and recreating.
type UpdateCashFlowInput struct {
	CashFlowID uuid.UUID
	UserID     uuid.UUID
	Name       string
	Amount     decimal.Decimal
	Frequency  entity.Frequency
	CategoryID *uuid.UUID
	AccountID  *uuid.UUID
}

// UpdateCashFlowOutput represents the output of cash flow update.
type UpdateCashFlowOutput struct {
	CashFlow *entity.CashFlow
}

// UpdateCashFlowUseCase handles cash flow update logic.
type UpdateCashFlowUseCase struct {
	cashFlowRepo adapter.CashFlowRepository
	accountRepo  adapter.AccountRepository
	categoryRepo adapter.CategoryRepository
	planCache    adapter.PlanCache
}

// NewUpdateCashFlowUseCase creates a new UpdateCashFlowUseCase instance.
func NewUpdateCashFlowUseCase(
	cashFlowRepo adapter.CashFlowRepository,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
	planCache adapter.PlanCache,
) *UpdateCashFlowUseCase {
	return &UpdateCashFlowUseCase{
		cashFlowRepo: cashFlowRepo,
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
		planCache:    planCache,
	}
}

// Execute performs the cash flow update.
func (uc *UpdateCashFlowUseCase) Execute(ctx context.Context, input UpdateCashFlowInput) (*UpdateCashFlowOutput, error) {
	cashFlow, err := uc.findOwnedCashFlow(ctx, input.CashFlowID, input.UserID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if err := validateCashFlowFields(name, cashFlow.Type, input.Amount, input.Frequency, input.CategoryID); err != nil {
		return nil, err
	}

	if err := verifyCashFlowLinks(ctx, uc.accountRepo, uc.categoryRepo, input.UserID, input.CategoryID, input.AccountID); err != nil {
		return nil, err
	}

	cashFlow.Name = name
	cashFlow.Amount = input.Amount
	cashFlow.Frequency = input.Frequency
	cashFlow.CategoryID = input.CategoryID
	cashFlow.AccountID = input.AccountID
	cashFlow.UpdatedAt = time.Now().UTC()

	if err := uc.cashFlowRepo.Update(ctx, cashFlow); err != nil {
		return nil, fmt.Errorf("failed to update cash flow: %w", err)
	}

	invalidatePlanCache(ctx, uc.planCache, input.UserID)

	return &UpdateCashFlowOutput{
		CashFlow: cashFlow,
	}, nil
}

// findOwnedCashFlow loads a cash flow and verifies ownership. A record
// belonging to another user is reported as not found.
func (uc *UpdateCashFlowUseCase) findOwnedCashFlow(ctx context.Context, cashFlowID, userID uuid.UUID) (*entity.CashFlow, error) {
	cashFlow, err := uc.cashFlowRepo.FindByID(ctx, cashFlowID)
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

	if cashFlow.UserID != userID {
		return nil, domainerror.NewCashFlowError(
			domainerror.ErrCodeCashFlowNotFound,
			"cash flow not found",
			domainerror.ErrCashFlowNotFound,
		)
	}

	return cashFlow, nil
}

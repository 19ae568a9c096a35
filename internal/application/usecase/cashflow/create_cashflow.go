// Package cashflow contains recurring cash flow use cases.
package cashflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coinbag/backend/internal/application/adapter"
	"github.com/coinbag/backend/internal/domain/entity"
	domainerror "github.com/coinbag/backend/internal/domain/error"
)

// MaxCashFlowNameLength is the maximum allowed length for cash flow names.
const MaxCashFlowNameLength = 100

// CreateCashFlowInput represents the input for cash flow creation.
type CreateCashFlowInput struct {
	UserID     uuid.UUID
	Name       string
	Type       entity.CashFlowType
	Amount     decimal.Decimal
	Frequency  entity.Frequency
	CategoryID *uuid.UUID
	AccountID  *uuid.UUID
}

// CreateCashFlowOutput represents the output of cash flow creation.
type CreateCashFlowOutput struct {
	CashFlow *entity.CashFlow
}

// CreateCashFlowUseCase handles cash flow creation logic.
type CreateCashFlowUseCase struct {
	cashFlowRepo adapter.CashFlowRepository
	accountRepo  adapter.AccountRepository
	categoryRepo adapter.CategoryRepository
	planCache    adapter.PlanCache
}

// NewCreateCashFlowUseCase creates a new CreateCashFlowUseCase instance.
func NewCreateCashFlowUseCase(
	cashFlowRepo adapter.CashFlowRepository,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
	planCache adapter.PlanCache,
) *CreateCashFlowUseCase {
	return &CreateCashFlowUseCase{
		cashFlowRepo: cashFlowRepo,
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
		planCache:    planCache,
	}
}

// Execute performs the cash flow creation.
func (uc *CreateCashFlowUseCase) Execute(ctx context.Context, input CreateCashFlowInput) (*CreateCashFlowOutput, error) {
	name := strings.TrimSpace(input.Name)
	if err := validateCashFlowFields(name, input.Type, input.Amount, input.Frequency, input.CategoryID); err != nil {
		return nil, err
	}

	if err := uc.verifyLinks(ctx, input.UserID, input.CategoryID, input.AccountID); err != nil {
		return nil, err
	}

	cashFlow := entity.NewCashFlow(
		input.UserID,
		name,
		input.Type,
		input.Amount,
		input.Frequency,
		input.CategoryID,
		input.AccountID,
	)

	if err := uc.cashFlowRepo.Create(ctx, cashFlow); err != nil {
		return nil, fmt.Errorf("failed to create cash flow: %w", err)
	}

	invalidatePlanCache(ctx, uc.planCache, input.UserID)

	return &CreateCashFlowOutput{
		CashFlow: cashFlow,
	}, nil
}

// verifyLinks checks that the optional category and account references
// resolve to records owned by the user.
func (uc *CreateCashFlowUseCase) verifyLinks(ctx context.Context, userID uuid.UUID, categoryID, accountID *uuid.UUID) error {
	return verifyCashFlowLinks(ctx, uc.accountRepo, uc.categoryRepo, userID, categoryID, accountID)
}

// validateCashFlowFields checks the field rules shared by create and update.
func validateCashFlowFields(
	name string,
	cashFlowType entity.CashFlowType,
	amount decimal.Decimal,
	frequency entity.Frequency,
	categoryID *uuid.UUID,
) error {
	if name == "" || len(name) > MaxCashFlowNameLength {
		return domainerror.NewCashFlowError(
			domainerror.ErrCodeCashFlowNameRequired,
			fmt.Sprintf("cash flow name is required and must not exceed %d characters", MaxCashFlowNameLength),
			domainerror.ErrCashFlowNameRequired,
		)
	}

	if cashFlowType != entity.CashFlowTypeIncome && cashFlowType != entity.CashFlowTypeExpense {
		return domainerror.NewCashFlowError(
			domainerror.ErrCodeInvalidCashFlowType,
			"cash flow type must be 'income' or 'expense'",
			domainerror.ErrInvalidCashFlowType,
		)
	}

	if amount.IsNegative() {
		return domainerror.NewCashFlowError(
			domainerror.ErrCodeNegativeAmount,
			"amount must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}

	if !frequency.IsValid() {
		return domainerror.NewCashFlowError(
			domainerror.ErrCodeInvalidFrequency,
			"frequency must be: weekly, fortnightly, monthly, quarterly, or yearly",
			domainerror.ErrInvalidFrequency,
		)
	}

	if cashFlowType == entity.CashFlowTypeIncome && categoryID != nil {
		return domainerror.NewCashFlowError(
			domainerror.ErrCodeCategoryOnIncome,
			"income records cannot have a category",
			domainerror.ErrCategoryOnIncome,
		)
	}

	return nil
}

// verifyCashFlowLinks resolves the optional account and category links
// against the owning user's records.
func verifyCashFlowLinks(
	ctx context.Context,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
	userID uuid.UUID,
	categoryID, accountID *uuid.UUID,
) error {
	if accountID != nil {
		account, err := accountRepo.FindByID(ctx, *accountID)
		if err != nil && !errors.Is(err, domainerror.ErrAccountNotFound) {
			return fmt.Errorf("failed to find account: %w", err)
		}
		if err != nil || account.UserID != userID {
			return domainerror.NewAccountError(
				domainerror.ErrCodeAccountNotFound,
				"account not found",
				domainerror.ErrAccountNotFound,
			)
		}
	}

	if categoryID != nil {
		category, err := categoryRepo.FindByID(ctx, *categoryID)
		if err != nil && !errors.Is(err, domainerror.ErrCategoryNotFound) {
			return fmt.Errorf("failed to find category: %w", err)
		}
		if err != nil || category.UserID != userID {
			return domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
	}

	return nil
}

// invalidatePlanCache drops the user's cached plan after a record write.
func invalidatePlanCache(ctx context.Context, planCache adapter.PlanCache, userID uuid.UUID) {
	if planCache == nil {
		return
	}
	if err := planCache.Invalidate(ctx, userID); err != nil {
		slog.Warn("plan cache invalidation failed", "userID", userID, "error", err)
	}
}

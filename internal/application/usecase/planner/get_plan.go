package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coinbag/backend/internal/application/adapter"
	"github.com/coinbag/backend/internal/domain/entity"
	domainerror "github.com/coinbag/backend/internal/domain/error"
)

// GetPlanInput represents the input for building a plan.
type GetPlanInput struct {
	UserID uuid.UUID
}

// GetPlanOutput represents the output of building a plan.
type GetPlanOutput struct {
	Plan Plan `json:"plan"`
}

// GetPlanUseCase builds the full planning result for a user: per-account
// monthly cash flows, unallocated expense warnings, and transfer
// suggestions derived from the pay cycle configuration.
type GetPlanUseCase struct {
	accountRepo  adapter.AccountRepository
	cashFlowRepo adapter.CashFlowRepository
	categoryRepo adapter.CategoryRepository
	payCycleRepo adapter.PayCycleRepository
}

// NewGetPlanUseCase creates a new GetPlanUseCase instance.
func NewGetPlanUseCase(
	accountRepo adapter.AccountRepository,
	cashFlowRepo adapter.CashFlowRepository,
	categoryRepo adapter.CategoryRepository,
	payCycleRepo adapter.PayCycleRepository,
) *GetPlanUseCase {
	return &GetPlanUseCase{
		accountRepo:  accountRepo,
		cashFlowRepo: cashFlowRepo,
		categoryRepo: categoryRepo,
		payCycleRepo: payCycleRepo,
	}
}

// Execute loads the user's records and runs the planning pipeline. A user
// without a pay cycle still gets the full per-account view, just with no
// suggestions.
func (uc *GetPlanUseCase) Execute(ctx context.Context, input GetPlanInput) (*GetPlanOutput, error) {
	accounts, err := uc.accountRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	cashFlows, err := uc.cashFlowRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cash flows: %w", err)
	}

	categories, err := uc.categoryRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	payCycle, err := uc.payCycleRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		if !errors.Is(err, domainerror.ErrPayCycleNotFound) {
			return nil, fmt.Errorf("failed to load pay cycle: %w", err)
		}
		payCycle = nil
	}

	incomes, expenses := splitByType(cashFlows)

	flows := CalculateAccountCashFlows(incomes, expenses, accounts, categories)

	unallocated := UnallocatedExpenses(expenses)
	unallocatedItems := make([]UnallocatedExpense, 0, len(unallocated))
	for _, expense := range unallocated {
		unallocatedItems = append(unallocatedItems, UnallocatedExpense{
			ID:            expense.ID,
			Name:          expense.Name,
			MonthlyAmount: NormalizeToMonthly(expense.Amount, expense.Frequency),
		})
	}

	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero
	for _, flow := range flows {
		totalIncome = totalIncome.Add(flow.MonthlyIncome)
		totalExpenses = totalExpenses.Add(flow.MonthlyExpenses)
	}

	plan := Plan{
		Accounts:                flows,
		UnallocatedExpenses:     unallocatedItems,
		UnallocatedMonthlyTotal: UnallocatedMonthlyTotal(expenses),
		TotalMonthlyIncome:      totalIncome,
		TotalMonthlyExpenses:    totalExpenses,
		MonthlySurplus:          totalIncome.Sub(totalExpenses),
		HasPayCycle:             payCycle != nil,
		Suggestions:             CalculateTransferSuggestions(payCycle, flows, accounts),
		GeneratedAt:             time.Now().UTC(),
	}

	return &GetPlanOutput{Plan: plan}, nil
}

// splitByType partitions records into incomes and expenses, preserving
// input order within each slice.
func splitByType(cashFlows []*entity.CashFlow) (incomes, expenses []*entity.CashFlow) {
	for _, cf := range cashFlows {
		if cf.IsIncome() {
			incomes = append(incomes, cf)
		} else {
			expenses = append(expenses, cf)
		}
	}
	return incomes, expenses
}

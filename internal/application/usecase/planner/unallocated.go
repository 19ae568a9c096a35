package planner

import (
	"github.com/shopspring/decimal"

	"github.com/coinbag/backend/internal/domain/entity"
)

// UnallocatedExpenses returns the expense records with no "paid from"
// account link. These are excluded from all per-account figures and drive a
// non-blocking warning in the caller; they never suppress suggestions.
func UnallocatedExpenses(expenses []*entity.CashFlow) []*entity.CashFlow {
	unallocated := make([]*entity.CashFlow, 0)
	for _, expense := range expenses {
		if expense.AccountID == nil {
			unallocated = append(unallocated, expense)
		}
	}
	return unallocated
}

// UnallocatedMonthlyTotal sums the monthly-equivalent amounts of all
// unallocated expenses. Returns zero when every expense has an account link.
func UnallocatedMonthlyTotal(expenses []*entity.CashFlow) decimal.Decimal {
	total := decimal.Zero
	for _, expense := range UnallocatedExpenses(expenses) {
		total = total.Add(NormalizeToMonthly(expense.Amount, expense.Frequency))
	}
	return total
}

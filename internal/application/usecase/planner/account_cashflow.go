package planner

import (
	"github.com/shopspring/decimal"

	"github.com/coinbag/backend/internal/domain/entity"
)

// CalculateAccountCashFlows computes the monthly-equivalent income, expenses
// and category breakdown attributed to every account. The result has exactly
// one entry per input account, in input order; accounts with no linked
// records appear with zero totals since callers render one row per account.
//
// Records with no account link are excluded from every account's figures.
// They must not silently inflate or deflate any single account; they surface
// only through the unallocated-expense warning.
func CalculateAccountCashFlows(
	incomes []*entity.CashFlow,
	expenses []*entity.CashFlow,
	accounts []*entity.Account,
	categories []*entity.Category,
) []AccountCashFlow {
	resolver := NewCategoryResolver(categories)

	flows := make([]AccountCashFlow, 0, len(accounts))
	for _, account := range accounts {
		monthlyIncome := decimal.Zero
		for _, income := range incomes {
			if income.AccountID == nil || *income.AccountID != account.ID {
				continue
			}
			monthlyIncome = monthlyIncome.Add(NormalizeToMonthly(income.Amount, income.Frequency))
		}

		accountExpenses := make([]*entity.CashFlow, 0, len(expenses))
		for _, expense := range expenses {
			if expense.AccountID == nil || *expense.AccountID != account.ID {
				continue
			}
			accountExpenses = append(accountExpenses, expense)
		}

		breakdown := AggregateByCategory(accountExpenses, resolver)
		monthlyExpenses := decimal.Zero
		for _, group := range breakdown {
			monthlyExpenses = monthlyExpenses.Add(group.MonthlyAmount)
		}

		flows = append(flows, AccountCashFlow{
			AccountID:        account.ID,
			AccountName:      account.Name,
			MonthlyIncome:    monthlyIncome,
			MonthlyExpenses:  monthlyExpenses,
			ExpenseBreakdown: breakdown,
		})
	}

	return flows
}

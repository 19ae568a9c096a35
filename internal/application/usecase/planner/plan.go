package planner

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UncategorizedName is the label used for expenses whose category is absent
// or no longer resolves.
const UncategorizedName = "Uncategorized"

// CategoryBreakdown is the monthly-equivalent spend of one category,
// with the expense records that contributed to it.
type CategoryBreakdown struct {
	CategoryID       *uuid.UUID      `json:"category_id"`
	CategoryName     string          `json:"category_name"`
	MonthlyAmount    decimal.Decimal `json:"monthly_amount"`
	SourceExpenseIDs []uuid.UUID     `json:"source_expense_ids"`
}

// AccountCashFlow summarizes the monthly-equivalent flows attributed to one
// account. Every tracked account gets exactly one entry, zero-flow accounts
// included.
type AccountCashFlow struct {
	AccountID        uuid.UUID           `json:"account_id"`
	AccountName      string              `json:"account_name"`
	MonthlyIncome    decimal.Decimal     `json:"monthly_income"`
	MonthlyExpenses  decimal.Decimal     `json:"monthly_expenses"`
	ExpenseBreakdown []CategoryBreakdown `json:"expense_breakdown"`
}

// TransferSuggestion is one recommended transfer from the primary income
// account. Coverage suggestions fund a non-primary account's known monthly
// expenses; the surplus suggestion forwards what remains to savings.
type TransferSuggestion struct {
	FromAccountID     uuid.UUID       `json:"from_account_id"`
	FromAccountName   string          `json:"from_account_name"`
	ToAccountID       uuid.UUID       `json:"to_account_id"`
	ToAccountName     string          `json:"to_account_name"`
	AmountMonthly     decimal.Decimal `json:"amount_monthly"`
	AmountWeekly      decimal.Decimal `json:"amount_weekly"`
	AmountFortnightly decimal.Decimal `json:"amount_fortnightly"`
	Reason            string          `json:"reason"`
	SourceExpenseIDs  []uuid.UUID     `json:"source_expense_ids"`
	IsSurplus         bool            `json:"is_surplus"`
}

// UnallocatedExpense is an expense record with no account link. It is
// excluded from the per-account flows and the plan totals and surfaced
// separately so the user can allocate it.
type UnallocatedExpense struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	MonthlyAmount decimal.Decimal `json:"monthly_amount"`
}

// Plan is the full planning result for one user. It is what the HTTP layer
// returns and what the plan cache stores, so every field carries a JSON tag.
type Plan struct {
	Accounts                []AccountCashFlow    `json:"accounts"`
	UnallocatedExpenses     []UnallocatedExpense `json:"unallocated_expenses"`
	UnallocatedMonthlyTotal decimal.Decimal      `json:"unallocated_monthly_total"`
	TotalMonthlyIncome      decimal.Decimal      `json:"total_monthly_income"`
	TotalMonthlyExpenses    decimal.Decimal      `json:"total_monthly_expenses"`
	MonthlySurplus          decimal.Decimal      `json:"monthly_surplus"`
	HasPayCycle             bool                 `json:"has_pay_cycle"`
	Suggestions             []TransferSuggestion `json:"suggestions"`
	GeneratedAt             time.Time            `json:"generated_at"`
}

package planner

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coinbag/backend/internal/domain/entity"
)

// SurplusReason is the reason attached to the surplus-forwarding suggestion.
const SurplusReason = "Surplus after expenses"

// CalculateTransferSuggestions derives the ordered list of recommended
// transfers from the primary income account.
//
// If the pay cycle's primary account cannot be resolved against the account
// list the result is empty: a dangling configuration reference suppresses
// recommendations until the user fixes it, it never raises. Detecting and
// explaining the dangling reference is the caller's concern.
//
// Coverage suggestions are emitted in account-input order, one per
// non-primary account with positive monthly expenses, each sized to that
// account's full monthly expenses. Income the sub-account incidentally
// receives is deliberately not netted off; the transfer conservatively funds
// all known obligations.
//
// A surplus suggestion is appended when total income exceeds total expenses
// across all accounts, a savings account is configured and resolvable, and
// the savings account is not the primary account itself.
func CalculateTransferSuggestions(
	payCycle *entity.PayCycle,
	flows []AccountCashFlow,
	accounts []*entity.Account,
) []TransferSuggestion {
	suggestions := make([]TransferSuggestion, 0)

	if payCycle == nil {
		return suggestions
	}

	primary := findAccount(accounts, payCycle.PrimaryAccountID)
	if primary == nil {
		return suggestions
	}

	for _, flow := range flows {
		if flow.AccountID == primary.ID {
			continue
		}
		if !flow.MonthlyExpenses.IsPositive() {
			continue
		}

		sourceIDs := make([]uuid.UUID, 0)
		for _, group := range flow.ExpenseBreakdown {
			sourceIDs = append(sourceIDs, group.SourceExpenseIDs...)
		}

		suggestions = append(suggestions, newSuggestion(
			primary,
			flow.AccountID,
			flow.AccountName,
			flow.MonthlyExpenses,
			fmt.Sprintf("Covers $%s/month of expenses", flow.MonthlyExpenses.StringFixed(2)),
			sourceIDs,
			false,
		))
	}

	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero
	for _, flow := range flows {
		totalIncome = totalIncome.Add(flow.MonthlyIncome)
		totalExpenses = totalExpenses.Add(flow.MonthlyExpenses)
	}

	surplus := totalIncome.Sub(totalExpenses)
	if surplus.IsPositive() && payCycle.SavingsAccountID != nil && *payCycle.SavingsAccountID != primary.ID {
		if savings := findAccount(accounts, *payCycle.SavingsAccountID); savings != nil {
			suggestions = append(suggestions, newSuggestion(
				primary,
				savings.ID,
				savings.Name,
				surplus,
				SurplusReason,
				[]uuid.UUID{},
				true,
			))
		}
	}

	return suggestions
}

// findAccount resolves an account ID against the account list.
func findAccount(accounts []*entity.Account, id uuid.UUID) *entity.Account {
	for _, account := range accounts {
		if account.ID == id {
			return account
		}
	}
	return nil
}

// newSuggestion builds a suggestion with its weekly and fortnightly
// conversions filled in. Both targets are inside ConvertFromMonthly's
// supported set, so the conversions cannot fail.
func newSuggestion(
	from *entity.Account,
	toID uuid.UUID,
	toName string,
	monthly decimal.Decimal,
	reason string,
	sourceIDs []uuid.UUID,
	isSurplus bool,
) TransferSuggestion {
	weekly, _ := ConvertFromMonthly(monthly, entity.FrequencyWeekly)
	fortnightly, _ := ConvertFromMonthly(monthly, entity.FrequencyFortnightly)

	return TransferSuggestion{
		FromAccountID:     from.ID,
		FromAccountName:   from.Name,
		ToAccountID:       toID,
		ToAccountName:     toName,
		AmountMonthly:     monthly,
		AmountWeekly:      weekly,
		AmountFortnightly: fortnightly,
		Reason:            reason,
		SourceExpenseIDs:  sourceIDs,
		IsSurplus:         isSurplus,
	}
}

package planner

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coinbag/backend/internal/domain/entity"
)

func TestCalculateAccountCashFlows(t *testing.T) {
	userID := uuid.New()
	everyday := entity.NewAccount(userID, "Everyday")
	bills := entity.NewAccount(userID, "Bills")
	savings := entity.NewAccount(userID, "Savings")
	accounts := []*entity.Account{everyday, bills, savings}

	housing := entity.NewCategory(userID, "Housing", entity.DefaultCategoryColor, entity.DefaultCategoryIcon)
	categories := []*entity.Category{housing}

	t.Run("one entry per account in input order", func(t *testing.T) {
		flows := CalculateAccountCashFlows(nil, nil, accounts, categories)

		if len(flows) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(flows))
		}
		for i, account := range accounts {
			if flows[i].AccountID != account.ID {
				t.Errorf("entry %d: expected account %s, got %s", i, account.Name, flows[i].AccountName)
			}
			if !flows[i].MonthlyIncome.IsZero() || !flows[i].MonthlyExpenses.IsZero() {
				t.Errorf("entry %d: expected zero totals for account with no records", i)
			}
		}
	})

	t.Run("sums normalized income and expenses per account", func(t *testing.T) {
		incomes := []*entity.CashFlow{
			income(userID, "Salary", "1500", entity.FrequencyFortnightly, &everyday.ID),
			income(userID, "Interest", "120", entity.FrequencyYearly, &savings.ID),
		}
		expenses := []*entity.CashFlow{
			expense(userID, "Rent", "1600", entity.FrequencyMonthly, &housing.ID, &bills.ID),
			expense(userID, "Power", "750", entity.FrequencyQuarterly, &housing.ID, &bills.ID),
		}

		flows := CalculateAccountCashFlows(incomes, expenses, accounts, categories)

		// 1500 fortnightly = 3250 monthly.
		if !flows[0].MonthlyIncome.Equal(decimal.NewFromInt(3250)) {
			t.Errorf("expected everyday income 3250, got %s", flows[0].MonthlyIncome)
		}
		// 1600 monthly + 750 quarterly (250 monthly) = 1850.
		if !flows[1].MonthlyExpenses.Equal(decimal.NewFromInt(1850)) {
			t.Errorf("expected bills expenses 1850, got %s", flows[1].MonthlyExpenses)
		}
		if len(flows[1].ExpenseBreakdown) != 1 {
			t.Fatalf("expected 1 breakdown group, got %d", len(flows[1].ExpenseBreakdown))
		}
		if flows[1].ExpenseBreakdown[0].CategoryName != "Housing" {
			t.Errorf("expected Housing group, got %s", flows[1].ExpenseBreakdown[0].CategoryName)
		}
		// 120 yearly = 10 monthly.
		if !flows[2].MonthlyIncome.Equal(decimal.NewFromInt(10)) {
			t.Errorf("expected savings income 10, got %s", flows[2].MonthlyIncome)
		}
	})

	t.Run("unlinked records touch no account", func(t *testing.T) {
		incomes := []*entity.CashFlow{
			income(userID, "Cash job", "500", entity.FrequencyMonthly, nil),
		}
		expenses := []*entity.CashFlow{
			expense(userID, "Cash spending", "200", entity.FrequencyMonthly, nil, nil),
		}

		flows := CalculateAccountCashFlows(incomes, expenses, accounts, categories)

		for _, flow := range flows {
			if !flow.MonthlyIncome.IsZero() {
				t.Errorf("account %s: expected zero income, got %s", flow.AccountName, flow.MonthlyIncome)
			}
			if !flow.MonthlyExpenses.IsZero() {
				t.Errorf("account %s: expected zero expenses, got %s", flow.AccountName, flow.MonthlyExpenses)
			}
		}
	})
}

func TestUnallocatedExpenses(t *testing.T) {
	userID := uuid.New()
	accountID := uuid.New()

	linked := expense(userID, "Rent", "1600", entity.FrequencyMonthly, nil, &accountID)
	floating := expense(userID, "Gym", "25", entity.FrequencyWeekly, nil, nil)
	subscription := expense(userID, "Streaming", "120", entity.FrequencyYearly, nil, nil)

	t.Run("returns only expenses without an account link", func(t *testing.T) {
		unallocated := UnallocatedExpenses([]*entity.CashFlow{linked, floating, subscription})

		if len(unallocated) != 2 {
			t.Fatalf("expected 2 unallocated expenses, got %d", len(unallocated))
		}
		if unallocated[0].ID != floating.ID || unallocated[1].ID != subscription.ID {
			t.Error("expected unallocated expenses in input order")
		}
	})

	t.Run("total is the monthly-equivalent sum", func(t *testing.T) {
		total := UnallocatedMonthlyTotal([]*entity.CashFlow{linked, floating, subscription})

		// 25 weekly = 108.33..; 120 yearly = 10.
		expected := NormalizeToMonthly(decimal.NewFromInt(25), entity.FrequencyWeekly).Add(decimal.NewFromInt(10))
		if !total.Equal(expected) {
			t.Errorf("expected %s, got %s", expected, total)
		}
	})

	t.Run("zero when every expense is linked", func(t *testing.T) {
		if !UnallocatedMonthlyTotal([]*entity.CashFlow{linked}).IsZero() {
			t.Error("expected zero total")
		}
	})
}

package digest

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coinbag/backend/internal/application/usecase/planner"
)

func TestRenderDigestHTML_EscapesUserContent(t *testing.T) {
	plan := planner.Plan{
		Suggestions: []planner.TransferSuggestion{
			{
				FromAccountID:   uuid.New(),
				FromAccountName: `<img src=x onerror=alert(1)>`,
				ToAccountID:     uuid.New(),
				ToAccountName:   `Bills & "Utilities"`,
				AmountMonthly:   decimal.NewFromInt(1850),
				Reason:          "Covers $1850.00/month of expenses",
			},
		},
		TotalMonthlyIncome:   decimal.NewFromInt(6000),
		TotalMonthlyExpenses: decimal.NewFromInt(1850),
		MonthlySurplus:       decimal.NewFromInt(4150),
	}

	got := renderDigestHTML("<script>alert(1)</script>", plan)

	for _, raw := range []string{"<script>", "<img"} {
		if strings.Contains(got, raw) {
			t.Errorf("rendered digest contains unescaped markup %q:\n%s", raw, got)
		}
	}

	for _, escaped := range []string{
		"&lt;script&gt;alert(1)&lt;/script&gt;",
		"&lt;img src=x onerror=alert(1)&gt;",
		"Bills &amp; &#34;Utilities&#34;",
	} {
		if !strings.Contains(got, escaped) {
			t.Errorf("rendered digest missing escaped content %q:\n%s", escaped, got)
		}
	}
}

func TestRenderDigestText_ListsSuggestionsAndTotals(t *testing.T) {
	plan := planner.Plan{
		Suggestions: []planner.TransferSuggestion{
			{
				FromAccountName: "Everyday",
				ToAccountName:   "Bills",
				AmountMonthly:   decimal.NewFromInt(1850),
				Reason:          "Covers $1850.00/month of expenses",
			},
		},
		UnallocatedExpenses: []planner.UnallocatedExpense{
			{ID: uuid.New(), Name: "Gym", MonthlyAmount: decimal.NewFromInt(50)},
		},
		UnallocatedMonthlyTotal: decimal.NewFromInt(50),
		TotalMonthlyIncome:      decimal.NewFromInt(6000),
		TotalMonthlyExpenses:    decimal.NewFromInt(1850),
		MonthlySurplus:          decimal.NewFromInt(4150),
	}

	got := renderDigestText("Alex", plan)

	for _, want := range []string{
		"Hi Alex,",
		"Everyday -> Bills: $1850.00/month",
		"1 expense(s) totalling $50.00/month",
		"Surplus: $4150.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered digest missing %q:\n%s", want, got)
		}
	}
}

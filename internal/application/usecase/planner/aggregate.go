package planner

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coinbag/backend/internal/domain/entity"
)

// CategoryResolver maps category IDs to display names.
type CategoryResolver map[uuid.UUID]string

// NewCategoryResolver builds a resolver from the user's categories.
func NewCategoryResolver(categories []*entity.Category) CategoryResolver {
	resolver := make(CategoryResolver, len(categories))
	for _, category := range categories {
		resolver[category.ID] = category.Name
	}
	return resolver
}

// Resolve returns the display name for a category ID. Absent and
// unresolvable IDs both resolve to UncategorizedName.
func (r CategoryResolver) Resolve(categoryID *uuid.UUID) string {
	if categoryID == nil {
		return UncategorizedName
	}
	if name, ok := r[*categoryID]; ok {
		return name
	}
	return UncategorizedName
}

// AggregateByCategory groups expenses by category, accumulating their
// monthly-equivalent amounts and collecting the contributing expense IDs.
// Every expense without a category lands in a single "Uncategorized" bucket.
// The result is sorted by monthly amount, largest first; ties keep encounter
// order so identical input always produces identical output.
func AggregateByCategory(expenses []*entity.CashFlow, resolver CategoryResolver) []CategoryBreakdown {
	// uuid.Nil keys the uncategorized bucket; a stored category never has
	// the zero UUID as its ID.
	groups := make(map[uuid.UUID]*CategoryBreakdown)
	order := make([]uuid.UUID, 0, len(expenses))

	for _, expense := range expenses {
		key := uuid.Nil
		if expense.CategoryID != nil {
			key = *expense.CategoryID
		}

		group, ok := groups[key]
		if !ok {
			group = &CategoryBreakdown{
				CategoryID:    expense.CategoryID,
				CategoryName:  resolver.Resolve(expense.CategoryID),
				MonthlyAmount: decimal.Zero,
			}
			groups[key] = group
			order = append(order, key)
		}

		group.MonthlyAmount = group.MonthlyAmount.Add(NormalizeToMonthly(expense.Amount, expense.Frequency))
		group.SourceExpenseIDs = append(group.SourceExpenseIDs, expense.ID)
	}

	breakdown := make([]CategoryBreakdown, 0, len(order))
	for _, key := range order {
		breakdown = append(breakdown, *groups[key])
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].MonthlyAmount.GreaterThan(breakdown[j].MonthlyAmount)
	})

	return breakdown
}

package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coinbag/backend/internal/domain/entity"
	domainerror "github.com/coinbag/backend/internal/domain/error"
)

// stubAccountRepo implements adapter.AccountRepository over a fixed slice.
type stubAccountRepo struct {
	accounts []*entity.Account
	err      error
}

func (s *stubAccountRepo) Create(ctx context.Context, account *entity.Account) error { return nil }
func (s *stubAccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return nil, domainerror.ErrAccountNotFound
}
func (s *stubAccountRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error) {
	return s.accounts, s.err
}
func (s *stubAccountRepo) ExistsByNameAndUser(ctx context.Context, name string, userID uuid.UUID) (bool, error) {
	return false, nil
}
func (s *stubAccountRepo) Update(ctx context.Context, account *entity.Account) error { return nil }
func (s *stubAccountRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }

// stubCashFlowRepo implements adapter.CashFlowRepository over a fixed slice.
type stubCashFlowRepo struct {
	cashFlows []*entity.CashFlow
	err       error
}

func (s *stubCashFlowRepo) Create(ctx context.Context, cashFlow *entity.CashFlow) error { return nil }
func (s *stubCashFlowRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.CashFlow, error) {
	return nil, domainerror.ErrCashFlowNotFound
}
func (s *stubCashFlowRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CashFlow, error) {
	return s.cashFlows, s.err
}
func (s *stubCashFlowRepo) FindByUserAndType(ctx context.Context, userID uuid.UUID, cashFlowType entity.CashFlowType) ([]*entity.CashFlow, error) {
	filtered := make([]*entity.CashFlow, 0, len(s.cashFlows))
	for _, cf := range s.cashFlows {
		if cf.Type == cashFlowType {
			filtered = append(filtered, cf)
		}
	}
	return filtered, s.err
}
func (s *stubCashFlowRepo) ExistsByAccount(ctx context.Context, accountID uuid.UUID) (bool, error) {
	return false, nil
}
func (s *stubCashFlowRepo) Update(ctx context.Context, cashFlow *entity.CashFlow) error { return nil }
func (s *stubCashFlowRepo) Delete(ctx context.Context, id uuid.UUID) error              { return nil }

// stubCategoryRepo implements adapter.CategoryRepository over a fixed slice.
type stubCategoryRepo struct {
	categories []*entity.Category
}

func (s *stubCategoryRepo) Create(ctx context.Context, category *entity.Category) error { return nil }
func (s *stubCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	return nil, domainerror.ErrCategoryNotFound
}
func (s *stubCategoryRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	return s.categories, nil
}
func (s *stubCategoryRepo) ExistsByNameAndUser(ctx context.Context, name string, userID uuid.UUID) (bool, error) {
	return false, nil
}
func (s *stubCategoryRepo) Update(ctx context.Context, category *entity.Category) error { return nil }
func (s *stubCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error              { return nil }

// stubPayCycleRepo implements adapter.PayCycleRepository over a fixed value.
type stubPayCycleRepo struct {
	payCycle *entity.PayCycle
	err      error
}

func (s *stubPayCycleRepo) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.PayCycle, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.payCycle == nil {
		return nil, domainerror.ErrPayCycleNotFound
	}
	return s.payCycle, nil
}
func (s *stubPayCycleRepo) Upsert(ctx context.Context, payCycle *entity.PayCycle) error { return nil }
func (s *stubPayCycleRepo) ReferencesAccount(ctx context.Context, userID, accountID uuid.UUID) (bool, error) {
	return false, nil
}

func TestGetPlanUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	f := newPlanFixture(t)

	housing := entity.NewCategory(f.userID, "Housing", entity.DefaultCategoryColor, entity.DefaultCategoryIcon)
	cashFlows := []*entity.CashFlow{
		income(f.userID, "Salary", "6000", entity.FrequencyMonthly, &f.everyday.ID),
		expense(f.userID, "Rent", "1600", entity.FrequencyMonthly, &housing.ID, &f.bills.ID),
		expense(f.userID, "Power", "250", entity.FrequencyMonthly, &housing.ID, &f.bills.ID),
		expense(f.userID, "Gym", "50", entity.FrequencyMonthly, nil, nil),
	}

	newUseCase := func(payCycle *entity.PayCycle) *GetPlanUseCase {
		return NewGetPlanUseCase(
			&stubAccountRepo{accounts: f.accounts},
			&stubCashFlowRepo{cashFlows: cashFlows},
			&stubCategoryRepo{categories: []*entity.Category{housing}},
			&stubPayCycleRepo{payCycle: payCycle},
		)
	}

	t.Run("builds the full plan", func(t *testing.T) {
		output, err := newUseCase(f.payCycle(&f.savings.ID)).Execute(ctx, GetPlanInput{UserID: f.userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		plan := output.Plan
		if len(plan.Accounts) != 3 {
			t.Fatalf("expected 3 account entries, got %d", len(plan.Accounts))
		}
		if !plan.TotalMonthlyIncome.Equal(decimal.NewFromInt(6000)) {
			t.Errorf("expected total income 6000, got %s", plan.TotalMonthlyIncome)
		}
		if !plan.TotalMonthlyExpenses.Equal(decimal.NewFromInt(1850)) {
			t.Errorf("expected total expenses 1850, got %s", plan.TotalMonthlyExpenses)
		}
		if !plan.MonthlySurplus.Equal(decimal.NewFromInt(4150)) {
			t.Errorf("expected surplus 4150, got %s", plan.MonthlySurplus)
		}
		if !plan.HasPayCycle {
			t.Error("expected HasPayCycle to be true")
		}
		if len(plan.Suggestions) != 2 {
			t.Errorf("expected 2 suggestions, got %d", len(plan.Suggestions))
		}
		if plan.GeneratedAt.IsZero() {
			t.Error("expected GeneratedAt to be set")
		}
	})

	t.Run("surfaces unallocated expenses without blocking", func(t *testing.T) {
		output, err := newUseCase(f.payCycle(&f.savings.ID)).Execute(ctx, GetPlanInput{UserID: f.userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		plan := output.Plan
		if len(plan.UnallocatedExpenses) != 1 {
			t.Fatalf("expected 1 unallocated expense, got %d", len(plan.UnallocatedExpenses))
		}
		if plan.UnallocatedExpenses[0].Name != "Gym" {
			t.Errorf("expected Gym, got %s", plan.UnallocatedExpenses[0].Name)
		}
		if !plan.UnallocatedMonthlyTotal.Equal(decimal.NewFromInt(50)) {
			t.Errorf("expected unallocated total 50, got %s", plan.UnallocatedMonthlyTotal)
		}
		// The unallocated warning never reaches the account totals.
		if !plan.TotalMonthlyExpenses.Equal(decimal.NewFromInt(1850)) {
			t.Errorf("expected account expenses to stay 1850, got %s", plan.TotalMonthlyExpenses)
		}
		if len(plan.Suggestions) != 2 {
			t.Errorf("expected suggestions to survive unallocated expenses, got %d", len(plan.Suggestions))
		}
	})

	t.Run("missing pay cycle degrades to a plan without suggestions", func(t *testing.T) {
		output, err := newUseCase(nil).Execute(ctx, GetPlanInput{UserID: f.userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Plan.HasPayCycle {
			t.Error("expected HasPayCycle to be false")
		}
		if len(output.Plan.Suggestions) != 0 {
			t.Errorf("expected no suggestions, got %d", len(output.Plan.Suggestions))
		}
		if len(output.Plan.Accounts) != 3 {
			t.Errorf("expected the per-account view to survive, got %d entries", len(output.Plan.Accounts))
		}
	})

	t.Run("repository failures propagate", func(t *testing.T) {
		repoErr := errors.New("connection refused")
		uc := NewGetPlanUseCase(
			&stubAccountRepo{err: repoErr},
			&stubCashFlowRepo{},
			&stubCategoryRepo{},
			&stubPayCycleRepo{},
		)

		_, err := uc.Execute(ctx, GetPlanInput{UserID: f.userID})
		if !errors.Is(err, repoErr) {
			t.Errorf("expected wrapped repository error, got %v", err)
		}
	})

	t.Run("unexpected pay cycle error propagates", func(t *testing.T) {
		repoErr := errors.New("connection refused")
		uc := NewGetPlanUseCase(
			&stubAccountRepo{accounts: f.accounts},
			&stubCashFlowRepo{cashFlows: cashFlows},
			&stubCategoryRepo{categories: []*entity.Category{housing}},
			&stubPayCycleRepo{err: repoErr},
		)

		_, err := uc.Execute(ctx, GetPlanInput{UserID: f.userID})
		if !errors.Is(err, repoErr) {
			t.Errorf("expected wrapped repository error, got %v", err)
		}
	})
}

// stubPlanCache implements adapter.PlanCache in memory.
type stubPlanCache struct {
	entries map[uuid.UUID][]byte
	getErr  error
}

func newStubPlanCache() *stubPlanCache {
	return &stubPlanCache{entries: make(map[uuid.UUID][]byte)}
}

func (s *stubPlanCache) Get(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.entries[userID], nil
}

func (s *stubPlanCache) Set(ctx context.Context, userID uuid.UUID, plan []byte) error {
	s.entries[userID] = plan
	return nil
}

func (s *stubPlanCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	delete(s.entries, userID)
	return nil
}

func TestCachedGetPlanUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	f := newPlanFixture(t)

	cashFlows := []*entity.CashFlow{
		income(f.userID, "Salary", "6000", entity.FrequencyMonthly, &f.everyday.ID),
		expense(f.userID, "Rent", "1850", entity.FrequencyMonthly, nil, &f.bills.ID),
	}

	inner := NewGetPlanUseCase(
		&stubAccountRepo{accounts: f.accounts},
		&stubCashFlowRepo{cashFlows: cashFlows},
		&stubCategoryRepo{},
		&stubPayCycleRepo{payCycle: f.payCycle(&f.savings.ID)},
	)

	t.Run("caches the computed plan", func(t *testing.T) {
		cache := newStubPlanCache()
		uc := NewCachedGetPlanUseCase(inner, cache)

		first, err := uc.Execute(ctx, GetPlanInput{UserID: f.userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cache.entries) != 1 {
			t.Fatalf("expected 1 cache entry, got %d", len(cache.entries))
		}

		second, err := uc.Execute(ctx, GetPlanInput{UserID: f.userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !second.Plan.GeneratedAt.Equal(first.Plan.GeneratedAt) {
			t.Error("expected the second call to serve the cached plan")
		}
		if !second.Plan.MonthlySurplus.Equal(first.Plan.MonthlySurplus) {
			t.Error("expected the cached plan to round-trip intact")
		}
	})

	t.Run("cache read failure falls back to computing", func(t *testing.T) {
		cache := newStubPlanCache()
		cache.getErr = errors.New("redis down")
		uc := NewCachedGetPlanUseCase(inner, cache)

		output, err := uc.Execute(ctx, GetPlanInput{UserID: f.userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Plan.Suggestions) != 2 {
			t.Errorf("expected a freshly computed plan, got %d suggestions", len(output.Plan.Suggestions))
		}
	})

	t.Run("corrupted cache entry is recomputed", func(t *testing.T) {
		cache := newStubPlanCache()
		cache.entries[f.userID] = []byte("{not json")
		uc := NewCachedGetPlanUseCase(inner, cache)

		output, err := uc.Execute(ctx, GetPlanInput{UserID: f.userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Plan.Accounts) != 3 {
			t.Errorf("expected a recomputed plan, got %d account entries", len(output.Plan.Accounts))
		}
	})
}

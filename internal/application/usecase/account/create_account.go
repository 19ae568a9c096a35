// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/coinbag/backend/internal/application/adapter"
	"github.com/coinbag/backend/internal/domain/entity"
	domainerror "github.com/coinbag/backend/internal/domain/error"
)

// MaxAccountNameLength is the maximum allowed length for account names.
const MaxAccountNameLength = 100

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	UserID uuid.UUID
	Name   string
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *entity.Account
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	accountRepo adapter.AccountRepository
	planCache   adapter.PlanCache
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepo adapter.AccountRepository, planCache adapter.PlanCache) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		accountRepo: accountRepo,
		planCache:   planCache,
	}
}

// Execute performs the account creation.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	name := strings.TrimSpace(input.Name)
	if err := validateAccountName(name); err != nil {
		return nil, err
	}

	exists, err := uc.accountRepo.ExistsByNameAndUser(ctx, name, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check account name existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNameExists,
			"an account with this name already exists",
			domainerror.ErrAccountNameExists,
		)
	}

	account := entity.NewAccount(input.UserID, name)

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	invalidatePlanCache(ctx, uc.planCache, input.UserID)

	return &CreateAccountOutput{
		Account: account,
	}, nil
}

// validateAccountName checks the common name rules shared by create and
// update.
func validateAccountName(name string) error {
	if name == "" {
		return domainerror.NewAccountError(
			domainerror.ErrCodeAccountNameRequired,
			"account name is required",
			domainerror.ErrAccountNameRequired,
		)
	}
	if len(name) > MaxAccountNameLength {
		return domainerror.NewAccountError(
			domainerror.ErrCodeAccountNameTooLong,
			fmt.Sprintf("account name must not exceed %d characters", MaxAccountNameLength),
			domainerror.ErrAccountNameTooLong,
		)
	}
	return nil
}

// invalidatePlanCache drops the user's cached plan after a write. Failures
// are logged and swallowed; the cache entry expires on its own anyway.
func invalidatePlanCache(ctx context.Context, planCache adapter.PlanCache, userID uuid.UUID) {
	if planCache == nil {
		return
	}
	if err := planCache.Invalidate(ctx, userID); err != nil {
		slog.Warn("plan cache invalidation failed", "userID", userID, "error", err)
	}
}

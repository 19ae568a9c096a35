// Package account contains account-related use cases.
package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/coinbag/backend/internal/application/adapter"
	"github.com/coinbag/backend/internal/domain/entity"
	domainerror "github.com/coinbag/backend/internal/domain/error"
)

// UpdateAccountInput represents the input for account update.
type UpdateAccountInput struct {
	AccountID uuid.UUID
	UserID    uuid.UUID
	Name      string
}

// UpdateAccountOutput represents the output of account update.
type UpdateAccountOutput struct {
	Account *entity.Account
}

// UpdateAccountUseCase handles account update logic.
type UpdateAccountUseCase struct {
	accountRepo adapter.AccountRepository
	planCache   adapter.PlanCache
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(accountRepo adapter.AccountRepository, planCache adapter.PlanCache) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{
		accountRepo: accountRepo,
		planCache:   planCache,
	}
}

// Execute performs the account update.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
	name := strings.TrimSpace(input.Name)
	if err := validateAccountName(name); err != nil {
		return nil, err
	}

	account, err := uc.findOwnedAccount(ctx, input.AccountID, input.UserID)
	if err != nil {
		return nil, err
	}

	if name != account.Name {
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
	}

	account.Name = name
	account.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	invalidatePlanCache(ctx, uc.planCache, input.UserID)

	return &UpdateAccountOutput{
		Account: account,
	}, nil
}

// findOwnedAccount loads an account and verifies ownership. An account
// belonging to another user is reported as not found.
func (uc *UpdateAccountUseCase) findOwnedAccount(ctx context.Context, accountID, userID uuid.UUID) (*entity.Account, error) {
	account, err := uc.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeAccountNotFound,
				"account not found",
				domainerror.ErrAccountNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	if account.UserID != userID {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}

	return account, nil
}

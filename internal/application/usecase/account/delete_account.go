// Package account contains account-related use cases.
package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/coinbag/backend/internal/application/adapter"
	domainerror "github.com/coinbag/backend/internal/domain/error"
)

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	AccountID uuid.UUID
	UserID    uuid.UUID
}

// DeleteAccountOutput represents the output of account deletion.
type DeleteAccountOutput struct {
	Success bool
}

// DeleteAccountUseCase handles account deletion logic. Deletion is blocked
// while cash flow records or the pay cycle still reference the account.
type DeleteAccountUseCase struct {
	accountRepo  adapter.AccountRepository
	cashFlowRepo adapter.CashFlowRepository
	payCycleRepo adapter.PayCycleRepository
	planCache    adapter.PlanCache
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(
	accountRepo adapter.AccountRepository,
	cashFlowRepo adapter.CashFlowRepository,
	payCycleRepo adapter.PayCycleRepository,
	planCache adapter.PlanCache,
) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		accountRepo:  accountRepo,
		cashFlowRepo: cashFlowRepo,
		payCycleRepo: payCycleRepo,
		planCache:    planCache,
	}
}

// Execute performs the account deletion.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) (*DeleteAccountOutput, error) {
	account, err := uc.accountRepo.FindByID(ctx, input.AccountID)
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

	if account.UserID != input.UserID {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}

	inUse, err := uc.cashFlowRepo.ExistsByAccount(ctx, input.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to check account usage: %w", err)
	}
	if inUse {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountInUse,
			"account has linked cash flows; unlink them first",
			domainerror.ErrAccountInUse,
		)
	}

	referenced, err := uc.payCycleRepo.ReferencesAccount(ctx, input.UserID, input.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to check pay cycle references: %w", err)
	}
	if referenced {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountInUse,
			"account is referenced by the pay cycle; reconfigure it first",
			domainerror.ErrAccountInUse,
		)
	}

	if err := uc.accountRepo.Delete(ctx, input.AccountID); err != nil {
		return nil, fmt.Errorf("failed to delete account: %w", err)
	}

	invalidatePlanCache(ctx, uc.planCache, input.UserID)

	return &DeleteAccountOutput{
		Success: true,
	}, nil
}

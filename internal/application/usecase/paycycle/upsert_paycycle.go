// Package paycycle contains pay cycle configuration use cases.
package paycycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/coinbag/backend/internal/application/adapter"
	"github.com/coinbag/backend/internal/domain/entity"
	domainerror "github.com/coinbag/backend/internal/domain/error"
)

// UpsertPayCycleInput represents the input for creating or replacing the
// pay cycle configuration.
type UpsertPayCycleInput struct {
	UserID           uuid.UUID
	Frequency        entity.Frequency
	PrimaryAccountID uuid.UUID
	SavingsAccountID *uuid.UUID
	NextPayDate      time.Time
}

// UpsertPayCycleOutput represents the output of the upsert.
type UpsertPayCycleOutput struct {
	PayCycle *entity.PayCycle
}

// UpsertPayCycleUseCase handles creating or replacing a user's pay cycle.
// There is at most one pay cycle per user, so a second write replaces the
// first.
type UpsertPayCycleUseCase struct {
	payCycleRepo adapter.PayCycleRepository
	accountRepo  adapter.AccountRepository
	planCache    adapter.PlanCache
}

// NewUpsertPayCycleUseCase creates a new UpsertPayCycleUseCase instance.
func NewUpsertPayCycleUseCase(
	payCycleRepo adapter.PayCycleRepository,
	accountRepo adapter.AccountRepository,
	planCache adapter.PlanCache,
) *UpsertPayCycleUseCase {
	return &UpsertPayCycleUseCase{
		payCycleRepo: payCycleRepo,
		accountRepo:  accountRepo,
		planCache:    planCache,
	}
}

// Execute performs the pay cycle upsert. Account references are validated
// at write time; they can still dangle later if an account is deleted, and
// the planner degrades gracefully when that happens.
func (uc *UpsertPayCycleUseCase) Execute(ctx context.Context, input UpsertPayCycleInput) (*UpsertPayCycleOutput, error) {
	if !input.Frequency.IsPayCycleFrequency() {
		return nil, domainerror.NewPayCycleError(
			domainerror.ErrCodeInvalidPayCycleFrequency,
			"pay cycle frequency must be: weekly, fortnightly, or monthly",
			domainerror.ErrInvalidPayCycleFrequency,
		)
	}

	if input.PrimaryAccountID == uuid.Nil {
		return nil, domainerror.NewPayCycleError(
			domainerror.ErrCodeMissingPrimaryAccount,
			"primary income account is required",
			domainerror.ErrMissingPrimaryAccount,
		)
	}

	if input.NextPayDate.IsZero() {
		return nil, domainerror.NewPayCycleError(
			domainerror.ErrCodeMissingNextPayDate,
			"next pay date is required",
			domainerror.ErrMissingNextPayDate,
		)
	}

	if err := uc.verifyAccount(ctx, input.UserID, input.PrimaryAccountID); err != nil {
		return nil, err
	}
	if input.SavingsAccountID != nil {
		if err := uc.verifyAccount(ctx, input.UserID, *input.SavingsAccountID); err != nil {
			return nil, err
		}
		if *input.SavingsAccountID == input.PrimaryAccountID {
			slog.Warn("savings account equals primary account; surplus suggestion will be suppressed",
				"userID", input.UserID)
		}
	}

	payCycle := entity.NewPayCycle(
		input.UserID,
		input.Frequency,
		input.PrimaryAccountID,
		input.SavingsAccountID,
		input.NextPayDate,
	)

	if err := uc.payCycleRepo.Upsert(ctx, payCycle); err != nil {
		return nil, fmt.Errorf("failed to save pay cycle: %w", err)
	}

	if uc.planCache != nil {
		if err := uc.planCache.Invalidate(ctx, input.UserID); err != nil {
			slog.Warn("plan cache invalidation failed", "userID", input.UserID, "error", err)
		}
	}

	return &UpsertPayCycleOutput{
		PayCycle: payCycle,
	}, nil
}

// verifyAccount resolves an account reference against the user's accounts.
func (uc *UpsertPayCycleUseCase) verifyAccount(ctx context.Context, userID, accountID uuid.UUID) error {
	account, err := uc.accountRepo.FindByID(ctx, accountID)
	if err != nil && !errors.Is(err, domainerror.ErrAccountNotFound) {
		return fmt.Errorf("failed to find account: %w", err)
	}
	if err != nil || account.UserID != userID {
		return domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}
	return nil
}

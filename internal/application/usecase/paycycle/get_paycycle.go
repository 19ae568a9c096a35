// Package paycycle contains pay cycle configuration use cases.
package paycycle

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/coinbag/backend/internal/application/adapter"
	"github.com/coinbag/backend/internal/domain/entity"
	domainerror "github.com/coinbag/backend/internal/domain/error"
)

// GetPayCycleInput represents the input for reading the pay cycle.
type GetPayCycleInput struct {
	UserID uuid.UUID
}

// GetPayCycleOutput represents the output of reading the pay cycle.
type GetPayCycleOutput struct {
	PayCycle *entity.PayCycle
}

// GetPayCycleUseCase handles reading a user's pay cycle configuration.
type GetPayCycleUseCase struct {
	payCycleRepo adapter.PayCycleRepository
}

// NewGetPayCycleUseCase creates a new GetPayCycleUseCase instance.
func NewGetPayCycleUseCase(payCycleRepo adapter.PayCycleRepository) *GetPayCycleUseCase {
	return &GetPayCycleUseCase{
		payCycleRepo: payCycleRepo,
	}
}

// Execute reads the user's pay cycle configuration.
func (uc *GetPayCycleUseCase) Execute(ctx context.Context, input GetPayCycleInput) (*GetPayCycleOutput, error) {
	payCycle, err := uc.payCycleRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPayCycleNotFound) {
			return nil, domainerror.NewPayCycleError(
				domainerror.ErrCodePayCycleNotFound,
				"pay cycle not configured",
				domainerror.ErrPayCycleNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find pay cycle: %w", err)
	}

	return &GetPayCycleOutput{
		PayCycle: payCycle,
	}, nil
}

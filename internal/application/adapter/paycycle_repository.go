// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/coinbag/backend/internal/domain/entity"
)

// PayCycleRepository defines the interface for pay cycle persistence operations.
type PayCycleRepository interface {
	// FindByUser retrieves the user's pay cycle configuration.
	// Returns domainerror.ErrPayCycleNotFound when none is configured.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.PayCycle, error)

	// Upsert creates or replaces the user's pay cycle configuration.
	Upsert(ctx context.Context, payCycle *entity.PayCycle) error

	// ReferencesAccount checks if the user's pay cycle references the given account.
	ReferencesAccount(ctx context.Context, userID, accountID uuid.UUID) (bool, error)
}

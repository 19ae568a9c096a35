// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/coinbag/backend/internal/domain/entity"
)

// CashFlowRepository defines the interface for cash flow persistence operations.
type CashFlowRepository interface {
	// Create creates a new cash flow record in the database.
	Create(ctx context.Context, cashFlow *entity.CashFlow) error

	// FindByID retrieves a cash flow record by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CashFlow, error)

	// FindByUser retrieves all cash flow records for a user, ordered by
	// creation time.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CashFlow, error)

	// FindByUserAndType retrieves a user's cash flow records of one type.
	FindByUserAndType(ctx context.Context, userID uuid.UUID, cashFlowType entity.CashFlowType) ([]*entity.CashFlow, error)

	// ExistsByAccount checks if any cash flow record links to the given account.
	ExistsByAccount(ctx context.Context, accountID uuid.UUID) (bool, error)

	// Update updates an existing cash flow record in the database.
	Update(ctx context.Context, cashFlow *entity.CashFlow) error

	// Delete removes a cash flow record from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

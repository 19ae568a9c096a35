// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coinbag/backend/internal/application/adapter"
	"github.com/coinbag/backend/internal/domain/entity"
	domainerror "github.com/coinbag/backend/internal/domain/error"
	"github.com/coinbag/backend/internal/integration/persistence/model"
)

// cashFlowRepository implements the adapter.CashFlowRepository interface.
type cashFlowRepository struct {
	db *gorm.DB
}

// NewCashFlowRepository creates a new cash flow repository instance.
func NewCashFlowRepository(db *gorm.DB) adapter.CashFlowRepository {
	return &cashFlowRepository{
		db: db,
	}
}

// Create creates a new cash flow record in the database.
func (r *cashFlowRepository) Create(ctx context.Context, cashFlow *entity.CashFlow) error {
	cashFlowModel := model.CashFlowFromEntity(cashFlow)
	result := r.db.WithContext(ctx).Create(cashFlowModel)
	return result.Error
}

// FindByID retrieves a cash flow record by its ID.
func (r *cashFlowRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CashFlow, error) {
	var cashFlowModel model.CashFlowModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&cashFlowModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCashFlowNotFound
		}
		return nil, result.Error
	}
	return cashFlowModel.ToEntity(), nil
}

// FindByUser retrieves all cash flow records for a user in creation order.
func (r *cashFlowRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CashFlow, error) {
	var cashFlowModels []model.CashFlowModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&cashFlowModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toCashFlowEntities(cashFlowModels), nil
}

// FindByUserAndType retrieves a user's cash flow records of one type.
func (r *cashFlowRepository) FindByUserAndType(ctx context.Context, userID uuid.UUID, cashFlowType entity.CashFlowType) ([]*entity.CashFlow, error) {
	var cashFlowModels []model.CashFlowModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, string(cashFlowType)).
		Order("created_at ASC").
		Find(&cashFlowModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toCashFlowEntities(cashFlowModels), nil
}

// ExistsByAccount checks if any cash flow record links to the given account.
func (r *cashFlowRepository) ExistsByAccount(ctx context.Context, accountID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CashFlowModel{}).
		Where("account_id = ?", accountID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates an existing cash flow record in the database.
func (r *cashFlowRepository) Update(ctx context.Context, cashFlow *entity.CashFlow) error {
	cashFlowModel := model.CashFlowFromEntity(cashFlow)
	result := r.db.WithContext(ctx).Save(cashFlowModel)
	return result.Error
}

// Delete removes a cash flow record from the database.
func (r *cashFlowRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CashFlowModel{}, "id = ?", id)
	return result.Error
}

func toCashFlowEntities(models []model.CashFlowModel) []*entity.CashFlow {
	cashFlows := make([]*entity.CashFlow, len(models))
	for i, cm := range models {
		cashFlows[i] = cm.ToEntity()
	}
	return cashFlows
}

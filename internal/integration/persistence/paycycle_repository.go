// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/coinbag/backend/internal/application/adapter"
	"github.com/coinbag/backend/internal/domain/entity"
	domainerror "github.com/coinbag/backend/internal/domain/error"
	"github.com/coinbag/backend/internal/integration/persistence/model"
)

// payCycleRepository implements the adapter.PayCycleRepository interface.
type payCycleRepository struct {
	db *gorm.DB
}

// NewPayCycleRepository creates a new pay cycle repository instance.
func NewPayCycleRepository(db *gorm.DB) adapter.PayCycleRepository {
	return &payCycleRepository{
		db: db,
	}
}

// FindByUser retrieves the user's pay cycle configuration.
func (r *payCycleRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.PayCycle, error) {
	var payCycleModel model.PayCycleModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&payCycleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPayCycleNotFound
		}
		return nil, result.Error
	}
	return payCycleModel.ToEntity(), nil
}

// Upsert creates or replaces the user's pay cycle configuration. The
// user_id unique index makes the write race-safe.
func (r *payCycleRepository) Upsert(ctx context.Context, payCycle *entity.PayCycle) error {
	payCycleModel := model.PayCycleFromEntity(payCycle)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"frequency", "primary_account_id", "savings_account_id", "next_pay_date", "updated_at",
			}),
		}).
		Create(payCycleModel)
	return result.Error
}

// ReferencesAccount checks if the user's pay cycle references the given
// account as primary or savings.
func (r *payCycleRepository) ReferencesAccount(ctx context.Context, userID, accountID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.PayCycleModel{}).
		Where("user_id = ? AND (primary_account_id = ? OR savings_account_id = ?)", userID, accountID, accountID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coinbag/backend/internal/application/adapter"
	"github.com/coinbag/backend/internal/integration/persistence/model"
)

// digestLogRepository implements the adapter.DigestLogRepository interface.
type digestLogRepository struct {
	db *gorm.DB
}

// NewDigestLogRepository creates a new digest log repository instance.
func NewDigestLogRepository(db *gorm.DB) adapter.DigestLogRepository {
	return &digestLogRepository{
		db: db,
	}
}

// Create records a sent digest.
func (r *digestLogRepository) Create(ctx context.Context, log *adapter.DigestLog) error {
	logModel := model.DigestLogFromAdapter(log)
	result := r.db.WithContext(ctx).Create(logModel)
	return result.Error
}

// FindLatestByUser retrieves the most recent digest log for a user.
func (r *digestLogRepository) FindLatestByUser(ctx context.Context, userID uuid.UUID) (*adapter.DigestLog, error) {
	var logModel model.DigestLogModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("sent_at DESC").
		First(&logModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return logModel.ToAdapter(), nil
}

// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/coinbag/backend/internal/application/adapter"
)

// DigestLogModel represents the digest_logs audit table. The source expense
// IDs are stored as a native Postgres text array.
type DigestLogModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	SuggestionCount  int             `gorm:"not null"`
	SurplusMonthly   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	SourceExpenseIDs pq.StringArray  `gorm:"type:text[]"`
	SentAt           time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for the DigestLogModel.
func (DigestLogModel) TableName() string {
	return "digest_logs"
}

// ToAdapter converts a DigestLogModel to the adapter-layer DigestLog.
func (m *DigestLogModel) ToAdapter() *adapter.DigestLog {
	return &adapter.DigestLog{
		ID:               m.ID,
		UserID:           m.UserID,
		SuggestionCount:  m.SuggestionCount,
		SurplusMonthly:   m.SurplusMonthly,
		SourceExpenseIDs: []string(m.SourceExpenseIDs),
		SentAt:           m.SentAt,
	}
}

// DigestLogFromAdapter creates a DigestLogModel from the adapter-layer
// DigestLog.
func DigestLogFromAdapter(log *adapter.DigestLog) *DigestLogModel {
	return &DigestLogModel{
		ID:               log.ID,
		UserID:           log.UserID,
		SuggestionCount:  log.SuggestionCount,
		SurplusMonthly:   log.SurplusMonthly,
		SourceExpenseIDs: pq.StringArray(log.SourceExpenseIDs),
		SentAt:           log.SentAt,
	}
}

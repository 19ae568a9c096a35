// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DigestLog records a plan digest email that was sent, including the expense
// records the suggested transfers traced back to.
type DigestLog struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	SuggestionCount  int
	SurplusMonthly   decimal.Decimal
	SourceExpenseIDs []string
	SentAt           time.Time
}

// DigestLogRepository defines the interface for digest audit persistence.
type DigestLogRepository interface {
	// Create records a sent digest.
	Create(ctx context.Context, log *DigestLog) error

	// FindLatestByUser retrieves the most recent digest log for a user.
	// Returns nil when the user has never been sent a digest.
	FindLatestByUser(ctx context.Context, userID uuid.UUID) (*DigestLog, error)
}

// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// PlanCache defines the interface for memoizing computed plans outside the
// planner engine. The engine itself stays pure; caching lives in a thin
// wrapper at the call site and is invalidated on every record write.
type PlanCache interface {
	// Get retrieves the cached plan JSON for a user. Returns (nil, nil) on a
	// cache miss.
	Get(ctx context.Context, userID uuid.UUID) ([]byte, error)

	// Set stores the plan JSON for a user.
	Set(ctx context.Context, userID uuid.UUID, plan []byte) error

	// Invalidate drops the cached plan for a user.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

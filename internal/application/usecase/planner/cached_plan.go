package planner

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/coinbag/backend/internal/application/adapter"
)

// CachedGetPlanUseCase wraps GetPlanUseCase with a read-through cache. The
// pipeline itself stays pure; memoization lives here, at the call site, and
// record-write use cases invalidate the entry. Cache failures are logged and
// otherwise ignored so a broken cache never takes the planner down.
type CachedGetPlanUseCase struct {
	inner *GetPlanUseCase
	cache adapter.PlanCache
}

// NewCachedGetPlanUseCase creates a new CachedGetPlanUseCase instance.
func NewCachedGetPlanUseCase(inner *GetPlanUseCase, cache adapter.PlanCache) *CachedGetPlanUseCase {
	return &CachedGetPlanUseCase{
		inner: inner,
		cache: cache,
	}
}

// Execute returns the cached plan when present, otherwise computes and
// stores it.
func (uc *CachedGetPlanUseCase) Execute(ctx context.Context, input GetPlanInput) (*GetPlanOutput, error) {
	cached, err := uc.cache.Get(ctx, input.UserID)
	if err != nil {
		slog.Warn("plan cache read failed", "userID", input.UserID, "error", err)
	} else if cached != nil {
		var output GetPlanOutput
		if err := json.Unmarshal(cached, &output); err == nil {
			return &output, nil
		}
		slog.Warn("plan cache entry corrupted, recomputing", "userID", input.UserID)
	}

	output, err := uc.inner.Execute(ctx, input)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(output); err == nil {
		if err := uc.cache.Set(ctx, input.UserID, encoded); err != nil {
			slog.Warn("plan cache write failed", "userID", input.UserID, "error", err)
		}
	}

	return output, nil
}

// Package statement implements the financial statement engine.
package statement

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bizsuite/backend/internal/domain/entity"
)

// SnapshotCache is an optional read-through cache over computed statement
// results. Recomputation is cheap and idempotent, so the only correctness
// obligation is freshness relative to the caller's own writes: manual
// entry mutations invalidate the cache. Implementations must treat their
// own failures as misses.
type SnapshotCache interface {
	// Get returns the cached result for the key, or found=false on a miss.
	Get(ctx context.Context, key string) (result *Result, found bool, err error)

	// Set stores a result under the key.
	Set(ctx context.Context, key string, result *Result) error

	// Invalidate drops every cached statement result.
	Invalidate(ctx context.Context) error
}

// cacheKey derives the cache key for one statement request. Requests are
// parameterized purely by statement type, date range, and scope.
func cacheKey(statementType entity.StatementType, dateRange entity.DateRange, businessID *uuid.UUID) string {
	scope := "all"
	if businessID != nil {
		scope = businessID.String()
	}
	return fmt.Sprintf("statement:%s:%s:%s:%s",
		statementType,
		dateRange.Start.Format("2006-01-02"),
		dateRange.End.Format("2006-01-02"),
		scope,
	)
}

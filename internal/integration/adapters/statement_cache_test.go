package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/bizsuite/backend/internal/application/usecase/statement"
	"github.com/bizsuite/backend/internal/domain/entity"
)

func newTestCache(t *testing.T) (statement.SnapshotCache, *miniredis.Miniredis) {
	t.Helper()

	mini := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisSnapshotCache(client, 5*time.Minute), mini
}

func sampleResult() *statement.Result {
	return &statement.Result{
		StatementType: entity.StatementTypePL,
		DateRange: entity.DateRange{
			Start: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		},
		CategoryTotals: []entity.CategoryTotal{
			{StatementType: entity.StatementTypePL, Category: "sales_revenue", Total: 100_000},
		},
		PL: &entity.PLSnapshot{Revenue: 100_000, GrossProfit: 100_000, OperatingProfit: 100_000, OrdinaryProfit: 100_000, NetProfit: 100_000},
	}
}

func TestRedisSnapshotCache(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trips a stored result", func(t *testing.T) {
		cache, _ := newTestCache(t)

		if err := cache.Set(ctx, "statement:pl:2026-01-01:2026-01-31:all", sampleResult()); err != nil {
			t.Fatalf("unexpected set error: %v", err)
		}

		got, found, err := cache.Get(ctx, "statement:pl:2026-01-01:2026-01-31:all")
		if err != nil {
			t.Fatalf("unexpected get error: %v", err)
		}
		if !found {
			t.Fatal("expected a hit")
		}
		if got.PL == nil || got.PL.NetProfit != 100_000 {
			t.Errorf("unexpected cached snapshot: %+v", got.PL)
		}
		if len(got.CategoryTotals) != 1 || got.CategoryTotals[0].Category != "sales_revenue" {
			t.Errorf("unexpected cached totals: %+v", got.CategoryTotals)
		}
	})

	t.Run("misses on an absent key", func(t *testing.T) {
		cache, _ := newTestCache(t)

		_, found, err := cache.Get(ctx, "statement:pl:2026-02-01:2026-02-28:all")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found {
			t.Error("expected a miss")
		}
	})

	t.Run("treats a corrupt payload as a miss and drops it", func(t *testing.T) {
		cache, mini := newTestCache(t)

		key := "statement:bs:2026-01-01:2026-01-31:all"
		mini.Set(snapshotKeyPrefix+key, "{not json")

		_, found, err := cache.Get(ctx, key)
		if err == nil {
			t.Fatal("expected a decode error")
		}
		if found {
			t.Error("expected a miss")
		}
		if mini.Exists(snapshotKeyPrefix + key) {
			t.Error("expected corrupt payload to be dropped")
		}
	})

	t.Run("entries expire after the TTL", func(t *testing.T) {
		cache, mini := newTestCache(t)

		key := "statement:cf:2026-01-01:2026-01-31:all"
		if err := cache.Set(ctx, key, sampleResult()); err != nil {
			t.Fatalf("unexpected set error: %v", err)
		}

		mini.FastForward(6 * time.Minute)

		_, found, err := cache.Get(ctx, key)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found {
			t.Error("expected entry to have expired")
		}
	})

	t.Run("invalidate drops every statement key", func(t *testing.T) {
		cache, mini := newTestCache(t)

		keys := []string{
			"statement:pl:2026-01-01:2026-01-31:all",
			"statement:bs:2026-01-01:2026-01-31:all",
		}
		for _, key := range keys {
			if err := cache.Set(ctx, key, sampleResult()); err != nil {
				t.Fatalf("unexpected set error: %v", err)
			}
		}
		mini.Set("unrelated", "survives")

		if err := cache.Invalidate(ctx); err != nil {
			t.Fatalf("unexpected invalidate error: %v", err)
		}

		for _, key := range keys {
			if mini.Exists(snapshotKeyPrefix + key) {
				t.Errorf("expected %s to be dropped", key)
			}
		}
		if !mini.Exists("unrelated") {
			t.Error("expected unrelated keys to survive")
		}
	})

	t.Run("invalidate on an empty cache succeeds", func(t *testing.T) {
		cache, _ := newTestCache(t)

		if err := cache.Invalidate(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

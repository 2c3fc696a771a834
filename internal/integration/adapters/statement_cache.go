// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bizsuite/backend/internal/application/usecase/statement"
)

// snapshotKeyPrefix namespaces statement cache keys so Invalidate can
// scan them without touching unrelated keys.
const snapshotKeyPrefix = "bizsuite:"

// redisSnapshotCache implements statement.SnapshotCache on redis. A
// cached statement is a plain JSON blob under a TTL; the engine treats
// every cache failure as a miss, so this adapter never needs to be
// available for correctness.
type redisSnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSnapshotCache creates a snapshot cache on an existing redis client.
func NewRedisSnapshotCache(client *redis.Client, ttl time.Duration) statement.SnapshotCache {
	return &redisSnapshotCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached result for the key, or found=false on a miss.
// Corrupt payloads are dropped and reported as misses.
func (c *redisSnapshotCache) Get(ctx context.Context, key string) (*statement.Result, bool, error) {
	payload, err := c.client.Get(ctx, snapshotKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read cached statement: %w", err)
	}

	var result statement.Result
	if err := json.Unmarshal(payload, &result); err != nil {
		c.client.Del(ctx, snapshotKeyPrefix+key)
		return nil, false, fmt.Errorf("failed to decode cached statement: %w", err)
	}
	return &result, true, nil
}

// Set stores a result under the key with the configured TTL.
func (c *redisSnapshotCache) Set(ctx context.Context, key string, result *statement.Result) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode statement for cache: %w", err)
	}

	if err := c.client.Set(ctx, snapshotKeyPrefix+key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cached statement: %w", err)
	}
	return nil
}

// Invalidate drops every cached statement result. Manual entry writes
// call this, so it scans by prefix rather than tracking keys.
func (c *redisSnapshotCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, snapshotKeyPrefix+"statement:*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cached statements: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to drop cached statements: %w", err)
	}
	return nil
}

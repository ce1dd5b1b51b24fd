// Package cache provides a redis-backed read-through cache for report
// responses. Reports are pure functions of stored transactions, so cached
// entries stay valid until the next write invalidates them.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces report cache entries so invalidation can scan them.
const keyPrefix = "reports:"

// ReportCache caches serialized report responses. Every redis failure
// degrades to a miss; reports are always computable from the database.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache creates a new ReportCache instance.
func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	return &ReportCache{
		client: client,
		ttl:    ttl,
	}
}

// Key builds a cache key from the report name and its query parameters.
func Key(parts ...string) string {
	return keyPrefix + strings.Join(parts, ":")
}

// Get loads a cached report into dest. It returns false on a miss or any
// redis/decoding failure.
func (c *ReportCache) Get(ctx context.Context, key string, dest any) bool {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("report cache read failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		slog.Warn("report cache entry corrupt", "key", key, "error", err)
		return false
	}
	return true
}

// Set stores a report response under the cache TTL. Failures are logged and
// otherwise ignored.
func (c *ReportCache) Set(ctx context.Context, key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		slog.Warn("report cache encode failed", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		slog.Warn("report cache write failed", "key", key, "error", err)
	}
}

// Invalidate drops every cached report. Called after any source or
// transaction write.
func (c *ReportCache) Invalidate(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		slog.Warn("report cache scan failed", "error", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("report cache invalidation failed", "error", err)
	}
}

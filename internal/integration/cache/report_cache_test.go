package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type cachedReport struct {
	Revenue string `json:"revenue"`
	Expense string `json:"expense"`
}

func newTestCache(t *testing.T, ttl time.Duration) (*ReportCache, *miniredis.Miniredis) {
	t.Helper()
	mini := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewReportCache(client, ttl), mini
}

func TestReportCache(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trips a report", func(t *testing.T) {
		cache, _ := newTestCache(t, time.Minute)
		key := Key("summary", "source-1", "2024", "3")

		cache.Set(ctx, key, cachedReport{Revenue: "150000", Expense: "20000"})

		var got cachedReport
		if !cache.Get(ctx, key, &got) {
			t.Fatal("expected cache hit")
		}
		if got.Revenue != "150000" || got.Expense != "20000" {
			t.Errorf("unexpected cached value: %+v", got)
		}
	})

	t.Run("misses an absent key", func(t *testing.T) {
		cache, _ := newTestCache(t, time.Minute)

		var got cachedReport
		if cache.Get(ctx, Key("summary", "nope"), &got) {
			t.Error("expected cache miss")
		}
	})

	t.Run("entries expire after the ttl", func(t *testing.T) {
		cache, mini := newTestCache(t, time.Minute)
		key := Key("monthly-stats", "2024")

		cache.Set(ctx, key, cachedReport{Revenue: "1"})
		mini.FastForward(2 * time.Minute)

		var got cachedReport
		if cache.Get(ctx, key, &got) {
			t.Error("expected expired entry to miss")
		}
	})

	t.Run("invalidate drops every report key", func(t *testing.T) {
		cache, _ := newTestCache(t, time.Minute)

		cache.Set(ctx, Key("summary", "a"), cachedReport{Revenue: "1"})
		cache.Set(ctx, Key("portfolio", "2024"), cachedReport{Revenue: "2"})

		cache.Invalidate(ctx)

		var got cachedReport
		if cache.Get(ctx, Key("summary", "a"), &got) || cache.Get(ctx, Key("portfolio", "2024"), &got) {
			t.Error("expected all report keys dropped")
		}
	})

	t.Run("redis outage degrades to a miss", func(t *testing.T) {
		cache, mini := newTestCache(t, time.Minute)
		key := Key("summary", "a")
		cache.Set(ctx, key, cachedReport{Revenue: "1"})
		mini.Close()

		var got cachedReport
		if cache.Get(ctx, key, &got) {
			t.Error("expected miss while redis is down")
		}
	})
}

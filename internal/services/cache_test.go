package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDisabledCacheIsNoOp(t *testing.T) {
	ctx := context.Background()
	cache := NewCacheService(nil)

	assert.False(t, cache.Enabled())
	assert.NoError(t, cache.Set(ctx, "k", "v", time.Minute))

	var out string
	assert.ErrorIs(t, cache.Get(ctx, "k", &out), ErrCacheMiss)
	assert.NoError(t, cache.Delete(ctx, "k"))
}

func TestCacheKeys(t *testing.T) {
	assert.Equal(t, "state:7", StateCacheKey(7))
	assert.Equal(t, "results:7:2026:3", WeekResultsCacheKey(7, 2026, 3))
	assert.Equal(t, "standings:7:2026", StandingsCacheKey(7, 2026))
}

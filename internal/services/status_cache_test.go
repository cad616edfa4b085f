package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wolverin0/crystal-fork-sub001/internal/clock"
	"github.com/wolverin0/crystal-fork-sub001/internal/domain"
)

func TestStatusCache_FreshWithinTTL(t *testing.T) {
	clk := clock.Fake(time.Unix(0, 0))
	cache := NewStatusCache(clk, 10*time.Second)

	cache.Put("s1", domain.GitStatus{State: domain.GitStateClean})

	clk.Advance(9999 * time.Millisecond)
	_, ok := cache.Fresh("s1")
	assert.True(t, ok)

	clk.Advance(time.Millisecond)
	_, ok = cache.Fresh("s1")
	assert.False(t, ok, "entry is stale once the TTL has fully elapsed")

	_, ok = cache.Get("s1")
	assert.True(t, ok, "stale entries are still readable")
}

func TestStatusCache_PutReportsChange(t *testing.T) {
	clk := clock.Fake(time.Unix(0, 0))
	cache := NewStatusCache(clk, 10*time.Second)

	assert.True(t, cache.Put("s1", domain.GitStatus{State: domain.GitStateClean}), "first write is a change")

	clk.Advance(time.Second)
	assert.False(t, cache.Put("s1", domain.GitStatus{State: domain.GitStateClean, LastChecked: clk.Now()}),
		"identical content is not a change")

	assert.True(t, cache.Put("s1", domain.GitStatus{State: domain.GitStateAhead, Ahead: 1}))

	entry, ok := cache.Get("s1")
	require.True(t, ok)
	assert.Equal(t, clk.Now(), entry.CheckedAt)
}

func TestStatusCache_Touch(t *testing.T) {
	clk := clock.Fake(time.Unix(0, 0))
	cache := NewStatusCache(clk, 10*time.Second)

	_, ok := cache.Touch("missing")
	assert.False(t, ok)

	cache.Put("s1", domain.GitStatus{State: domain.GitStateClean})
	clk.Advance(15 * time.Second)

	status, ok := cache.Touch("s1")
	require.True(t, ok)
	assert.Equal(t, clk.Now(), status.LastChecked)

	_, fresh := cache.Fresh("s1")
	assert.True(t, fresh)
}

func TestStatusCache_Invalidate(t *testing.T) {
	cache := NewStatusCache(clock.Fake(time.Unix(0, 0)), 10*time.Second)
	cache.Put("s1", domain.GitStatus{State: domain.GitStateClean})
	cache.Put("s2", domain.GitStatus{State: domain.GitStateClean})

	cache.Invalidate("s1")
	_, ok := cache.Get("s1")
	assert.False(t, ok)
	assert.Len(t, cache.Snapshot(), 1)

	cache.InvalidateAll()
	assert.Empty(t, cache.Snapshot())
}

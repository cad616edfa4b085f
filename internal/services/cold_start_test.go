package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wolverin0/crystal-fork-sub001/internal/clock"
)

func TestColdStartQueue_StaggersBatches(t *testing.T) {
	start := time.Unix(0, 0)
	clk := clock.Fake(start)

	var mu sync.Mutex
	loadedAt := make(map[string]time.Duration)
	var enqueued []string

	q := NewColdStartQueue(clk, 2, 200*time.Millisecond,
		func(key string) {
			mu.Lock()
			defer mu.Unlock()
			enqueued = append(enqueued, key)
		},
		func(_ context.Context, key string) {
			mu.Lock()
			defer mu.Unlock()
			loadedAt[key] = clk.Now().Sub(start)
		},
	)
	defer q.Close()

	keys := make([]string, 10)
	for i := range keys {
		keys[i] = fmt.Sprintf("s%d", i)
		require.True(t, q.Enqueue(keys[i]))
	}
	assert.False(t, q.Enqueue("s9"), "duplicates are ignored while queued")

	for _i := 0; _i < 4; _i++ {
		clk.WaitForTimers(1)
		clk.Advance(200 * time.Millisecond)
	}

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(loadedAt) == 10
	}, time.Second, time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, keys, enqueued)
	for i, key := range keys {
		batch := i / 2
		assert.Equal(t, time.Duration(batch)*200*time.Millisecond, loadedAt[key], key)
	}
}

func TestColdStartQueue_Remove(t *testing.T) {
	clk := clock.Fake(time.Unix(0, 0))
	loaded := make(chan string, 10)
	block := make(chan struct{})

	q := NewColdStartQueue(clk, 1, 200*time.Millisecond,
		func(string) {},
		func(_ context.Context, key string) {
			<-block
			loaded <- key
		},
	)

	q.Enqueue("a")
	q.Enqueue("b")
	q.Enqueue("c")

	// "a" is taken by the drain loop; remove "b" while it is still queued
	require.Eventually(t, func() bool { return q.Len() == 2 }, time.Second, time.Millisecond)
	assert.True(t, q.Remove("b"))
	assert.False(t, q.Remove("b"))
	close(block)

	clk.WaitForTimers(1)
	clk.Advance(200 * time.Millisecond)

	assert.Equal(t, "a", <-loaded)
	assert.Equal(t, "c", <-loaded)
	q.Close()
	assert.Empty(t, loaded)
}

func TestColdStartQueue_EnqueueAfterCloseIsIgnored(t *testing.T) {
	q := NewColdStartQueue(clock.Fake(time.Unix(0, 0)), 2, time.Millisecond,
		func(string) { t.Fatal("unexpected enqueue") },
		func(context.Context, string) { t.Fatal("unexpected load") },
	)
	q.Close()
	assert.False(t, q.Enqueue("a"))
}

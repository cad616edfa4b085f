package services

import (
	"context"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wolverin0/crystal-fork-sub001/internal/clock"
	"github.com/wolverin0/crystal-fork-sub001/internal/logging"
)

// ColdStartQueue staggers the first inspection of many sessions. Keys are
// loaded in batches, with a fixed pause between batches.
type ColdStartQueue struct {
	batchSize int
	cancel    context.CancelFunc
	clock     clock.Clock
	ctx       context.Context
	draining  bool
	load      func(ctx context.Context, key string)
	mu        sync.Mutex
	onEnqueue func(key string)
	queue     []string
	stagger   time.Duration
	wg        sync.WaitGroup
}

// NewColdStartQueue creates a queue. onEnqueue runs for every newly queued
// key, load runs once per key from the drain loop.
func NewColdStartQueue(
	clk clock.Clock,
	batchSize int,
	stagger time.Duration,
	onEnqueue func(key string),
	load func(ctx context.Context, key string),
) *ColdStartQueue {
	ctx, cancel := context.WithCancel(context.Background())
	return &ColdStartQueue{
		batchSize: max(batchSize, 1),
		cancel:    cancel,
		clock:     clk,
		ctx:       ctx,
		load:      load,
		onEnqueue: onEnqueue,
		stagger:   stagger,
	}
}

// Enqueue adds key unless it is already queued. Returns false for duplicates
// or after Close.
func (q *ColdStartQueue) Enqueue(key string) bool {
	q.mu.Lock()
	if q.ctx.Err() != nil || slices.Contains(q.queue, key) {
		q.mu.Unlock()
		return false
	}
	q.queue = append(q.queue, key)
	start := !q.draining
	if start {
		q.draining = true
		q.wg.Add(1)
	}
	q.mu.Unlock()

	q.onEnqueue(key)

	if start {
		go q.drain()
	}
	return true
}

// Remove drops key from the queue if it has not been taken yet
func (q *ColdStartQueue) Remove(key string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	i := slices.Index(q.queue, key)
	if i < 0 {
		return false
	}
	q.queue = slices.Delete(q.queue, i, i+1)
	return true
}

// Len returns the number of keys waiting
func (q *ColdStartQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.queue)
}

func (q *ColdStartQueue) drain() {
	defer q.wg.Done()

	for {
		batch, ok := q.nextBatch()
		if !ok {
			return
		}

		logging.Logger.Debug("Cold start batch", "keys", batch)
		g := new(errgroup.Group)
		for _, key := range batch {
			key := key
			g.Go(func() error {
				q.load(q.ctx, key)
				return nil
			})
		}
		_ = g.Wait()

		if !q.hasMore() {
			continue
		}
		select {
		case <-q.ctx.Done():
		case <-q.clock.After(q.stagger):
		}
	}
}

// nextBatch takes up to batchSize keys, or marks the loop stopped when the
// queue is empty or closed
func (q *ColdStartQueue) nextBatch() ([]string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.queue) == 0 || q.ctx.Err() != nil {
		q.draining = false
		return nil, false
	}
	n := min(q.batchSize, len(q.queue))
	batch := slices.Clone(q.queue[:n])
	q.queue = q.queue[n:]
	return batch, true
}

func (q *ColdStartQueue) hasMore() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.queue) > 0
}

// Close stops the drain loop and waits for the current batch to settle
func (q *ColdStartQueue) Close() {
	q.cancel()
	q.wg.Wait()
}

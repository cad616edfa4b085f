package services

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// ConcurrencyLimiter bounds how many inspection operations run at once.
// Excess callers wait in FIFO order for a free slot.
type ConcurrencyLimiter struct {
	active atomic.Int64
	limit  int64
	peak   atomic.Int64
	sem    *semaphore.Weighted
}

// NewConcurrencyLimiter creates a limiter admitting at most limit operations
func NewConcurrencyLimiter(limit int) *ConcurrencyLimiter {
	if limit < 1 {
		limit = 1
	}
	return &ConcurrencyLimiter{
		limit: int64(limit),
		sem:   semaphore.NewWeighted(int64(limit)),
	}
}

// Run waits for a slot, runs op, and releases the slot whatever op returns.
// Returns ctx.Err() without running op if ctx ends while waiting.
func (l *ConcurrencyLimiter) Run(ctx context.Context, op func(ctx context.Context) error) error {
	if err := l.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer l.sem.Release(1)

	l.recordPeak(l.active.Add(1))
	defer l.active.Add(-1)

	return op(ctx)
}

func (l *ConcurrencyLimiter) recordPeak(n int64) {
	for {
		peak := l.peak.Load()
		if n <= peak || l.peak.CompareAndSwap(peak, n) {
			return
		}
	}
}

// Active returns the number of operations currently running
func (l *ConcurrencyLimiter) Active() int { return int(l.active.Load()) }

// Peak returns the highest number of operations that ran at once
func (l *ConcurrencyLimiter) Peak() int { return int(l.peak.Load()) }

// Limit returns the configured maximum
func (l *ConcurrencyLimiter) Limit() int { return int(l.limit) }

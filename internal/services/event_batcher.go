package services

import (
	"sync"
	"time"

	"github.com/wolverin0/crystal-fork-sub001/internal/clock"
	"github.com/wolverin0/crystal-fork-sub001/internal/domain"
)

// pendingRecord is the latest notification held for one key until flush
type pendingRecord interface {
	pending()
}

type pendingLoading struct{}

type pendingUpdated struct {
	status *domain.GitStatus
}

func (pendingLoading) pending() {}
func (pendingUpdated) pending() {}

// EventBatcher buffers per-key notifications and flushes them on a fixed
// tick, publishing batched events followed by the individual ones.
type EventBatcher struct {
	clock     clock.Clock
	epoch     uint64
	interval  time.Duration
	mu        sync.Mutex
	order     []string
	pending   map[string]pendingRecord
	publish   func(domain.StatusEvent)
	scheduled bool
}

// NewEventBatcher creates a batcher that hands flushed events to publish
func NewEventBatcher(clk clock.Clock, interval time.Duration, publish func(domain.StatusEvent)) *EventBatcher {
	return &EventBatcher{
		clock:    clk,
		interval: interval,
		pending:  make(map[string]pendingRecord),
		publish:  publish,
	}
}

// PostLoading records that key is being inspected. It never replaces a
// pending update, so the final state of a key is not lost.
func (b *EventBatcher) PostLoading(key string) {
	b.post(key, pendingLoading{})
}

// PostUpdated records a new status for key. A nil status clears the
// loading indicator without reporting a status.
func (b *EventBatcher) PostUpdated(key string, status *domain.GitStatus) {
	if status != nil {
		copied := *status
		status = &copied
	}
	b.post(key, pendingUpdated{status: status})
}

func (b *EventBatcher) post(key string, rec pendingRecord) {
	b.mu.Lock()
	existing, ok := b.pending[key]
	switch {
	case !ok:
		b.order = append(b.order, key)
		b.pending[key] = rec
	case isUpdated(existing) && !isUpdated(rec):
		// keep the pending update
	default:
		b.pending[key] = rec
	}

	if b.interval <= 0 {
		b.mu.Unlock()
		b.Flush()
		return
	}

	schedule := !b.scheduled
	b.scheduled = true
	epoch := b.epoch
	b.mu.Unlock()

	if schedule {
		b.clock.AfterFunc(b.interval, func() { b.flushEpoch(epoch) })
	}
}

func isUpdated(rec pendingRecord) bool {
	_, ok := rec.(pendingUpdated)
	return ok
}

// flushEpoch flushes only if no flush happened since the timer was armed
func (b *EventBatcher) flushEpoch(epoch uint64) {
	b.mu.Lock()
	current := b.epoch == epoch
	b.mu.Unlock()
	if current {
		b.Flush()
	}
}

// Flush publishes everything pending now. Batched events come first,
// then one individual event per key, in posting order.
func (b *EventBatcher) Flush() {
	b.mu.Lock()
	order, pending := b.order, b.pending
	b.order = nil
	b.pending = make(map[string]pendingRecord)
	b.scheduled = false
	b.epoch++
	b.mu.Unlock()

	if len(order) == 0 {
		return
	}

	var loading []string
	var updates []domain.UpdatedEvent
	individual := make([]domain.StatusEvent, 0, len(order))

	for _, key := range order {
		switch rec := pending[key].(type) {
		case pendingLoading:
			loading = append(loading, key)
			individual = append(individual, domain.LoadingEvent{SessionID: key})
		case pendingUpdated:
			ev := domain.UpdatedEvent{SessionID: key, Status: rec.status}
			updates = append(updates, ev)
			individual = append(individual, ev)
		}
	}

	if len(loading) > 0 {
		b.publish(domain.LoadingBatchEvent{SessionIDs: loading})
	}
	if len(updates) > 0 {
		b.publish(domain.UpdatedBatchEvent{Updates: updates})
	}
	for _, ev := range individual {
		b.publish(ev)
	}
}

// PendingCount returns the number of keys waiting for the next flush
func (b *EventBatcher) PendingCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}

package services

import (
	"context"
	"sync"

	"github.com/wolverin0/crystal-fork-sub001/internal/domain"
	"github.com/wolverin0/crystal-fork-sub001/internal/events"
	"github.com/wolverin0/crystal-fork-sub001/internal/logging"
	"github.com/wolverin0/crystal-fork-sub001/internal/ports"
)

const recorderQueueSize = 256

type recordedStatus struct {
	sessionID string
	status    domain.GitStatus
}

// StatusRecorder persists every status update the engine publishes so
// other processes can read the last known state. Writes happen off the
// publishing goroutine; updates arriving while the queue is full are dropped.
type StatusRecorder struct {
	closed      bool
	mu          sync.Mutex
	queue       chan recordedStatus
	store       ports.StatusStore
	unsubscribe func()
	wg          sync.WaitGroup
}

// StatusPublisher is satisfied by GitStatusService and events.Bus
type StatusPublisher interface {
	Subscribe(kind domain.EventKind, handler events.Handler) (unsubscribe func())
}

// NewStatusRecorder subscribes to updated events of source
func NewStatusRecorder(source StatusPublisher, store ports.StatusStore) *StatusRecorder {
	r := &StatusRecorder{
		queue: make(chan recordedStatus, recorderQueueSize),
		store: store,
	}
	r.unsubscribe = source.Subscribe(domain.EventUpdated, r.handle)

	r.wg.Add(1)
	go r.run()
	return r
}

func (r *StatusRecorder) handle(event domain.StatusEvent) {
	update, ok := event.(domain.UpdatedEvent)
	if !ok || update.Status == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	select {
	case r.queue <- recordedStatus{sessionID: update.SessionID, status: *update.Status}:
	default:
		logging.Logger.Warn("Status recorder queue full, dropping update", "session", update.SessionID)
	}
}

func (r *StatusRecorder) run() {
	defer r.wg.Done()
	for rec := range r.queue {
		if err := r.store.SaveStatus(context.Background(), rec.sessionID, rec.status); err != nil {
			logging.Logger.Debug("Failed to persist status", "session", rec.sessionID, "error", err)
		}
	}
}

// Close stops recording and waits for queued writes
func (r *StatusRecorder) Close() {
	r.unsubscribe()

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	close(r.queue)
	r.mu.Unlock()

	r.wg.Wait()
}

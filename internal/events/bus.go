// Package events delivers engine notifications to registered observers.
package events

import (
	"runtime/debug"
	"sync"

	"github.com/google/uuid"

	"github.com/wolverin0/crystal-fork-sub001/internal/domain"
	"github.com/wolverin0/crystal-fork-sub001/internal/logging"
)

// Handler receives published events
type Handler func(domain.StatusEvent)

type subscription struct {
	handler Handler
	id      string
	kind    domain.EventKind
}

// anyKind subscribes to every event kind
const anyKind domain.EventKind = "*"

// Bus is a synchronous observer registry. Handlers run on the publishing
// goroutine and must not block.
type Bus struct {
	mu            sync.RWMutex
	subscriptions map[domain.EventKind][]subscription
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{subscriptions: make(map[domain.EventKind][]subscription)}
}

// Subscribe registers handler for one event kind. The returned function
// removes the subscription and is safe to call more than once.
func (b *Bus) Subscribe(kind domain.EventKind, handler Handler) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := subscription{handler: handler, id: uuid.New().String(), kind: kind}
	b.subscriptions[kind] = append(b.subscriptions[kind], sub)

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(kind, sub.id) })
	}
}

// SubscribeAll registers handler for every event kind
func (b *Bus) SubscribeAll(handler Handler) (unsubscribe func()) {
	return b.Subscribe(anyKind, handler)
}

func (b *Bus) remove(kind domain.EventKind, id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subscriptions[kind]
	for i, sub := range subs {
		if sub.id == id {
			b.subscriptions[kind] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Publish dispatches the event to kind-specific handlers, then to
// SubscribeAll handlers. A panicking handler is logged and skipped.
func (b *Bus) Publish(event domain.StatusEvent) {
	b.mu.RLock()
	specific := append([]subscription(nil), b.subscriptions[event.Kind()]...)
	wildcard := append([]subscription(nil), b.subscriptions[anyKind]...)
	b.mu.RUnlock()

	for _, sub := range specific {
		safeCall(sub.handler, event)
	}
	for _, sub := range wildcard {
		safeCall(sub.handler, event)
	}
}

// SubscriptionCount returns the number of active subscriptions
func (b *Bus) SubscriptionCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	n := 0
	for _, subs := range b.subscriptions {
		n += len(subs)
	}
	return n
}

func safeCall(handler Handler, event domain.StatusEvent) {
	defer func() {
		if r := recover(); r != nil {
			logging.Logger.Error("Event handler panicked",
				"event", event.Kind(),
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()
	handler(event)
}

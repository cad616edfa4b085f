package services

import (
	"sync"
	"time"

	"github.com/wolverin0/crystal-fork-sub001/internal/clock"
)

type debounceEntry struct {
	timer *clock.Timer
}

func (e *debounceEntry) stop() {
	if e.timer != nil {
		e.timer.Stop()
	}
}

// Debouncer keeps at most one pending timer per key. Scheduling a key
// again replaces its timer, so only the last action fires.
type Debouncer struct {
	clock  clock.Clock
	mu     sync.Mutex
	timers map[string]*debounceEntry
}

// NewDebouncer creates a Debouncer
func NewDebouncer(clk clock.Clock) *Debouncer {
	return &Debouncer{clock: clk, timers: make(map[string]*debounceEntry)}
}

// Schedule runs action after delay unless key is scheduled again or cancelled first
func (d *Debouncer) Schedule(key string, delay time.Duration, action func()) {
	entry := &debounceEntry{}

	d.mu.Lock()
	if old, ok := d.timers[key]; ok {
		old.stop()
	}
	d.timers[key] = entry
	d.mu.Unlock()

	timer := d.clock.AfterFunc(delay, func() { d.fire(key, entry, action) })

	d.mu.Lock()
	entry.timer = timer
	if d.timers[key] != entry {
		timer.Stop()
	}
	d.mu.Unlock()
}

func (d *Debouncer) fire(key string, entry *debounceEntry, action func()) {
	d.mu.Lock()
	if d.timers[key] != entry {
		d.mu.Unlock()
		return
	}
	delete(d.timers, key)
	d.mu.Unlock()

	action()
}

// Cancel removes the pending timer for key. Returns false if none was pending.
func (d *Debouncer) Cancel(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	entry, ok := d.timers[key]
	if !ok {
		return false
	}
	entry.stop()
	delete(d.timers, key)
	return true
}

// CancelAll removes every pending timer
func (d *Debouncer) CancelAll() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for key, entry := range d.timers {
		entry.stop()
		delete(d.timers, key)
	}
}

// Pending reports whether key has a live timer
func (d *Debouncer) Pending(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.timers[key]
	return ok
}

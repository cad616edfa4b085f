// Package clock abstracts time so schedulers can be driven
// deterministically in tests.
package clock

import "time"

// Clock provides the time operations used by the status engine
type Clock interface {
	// Now returns the current time
	Now() time.Time

	// After returns a channel that receives the time once d has elapsed
	After(d time.Duration) <-chan time.Time

	// AfterFunc calls f in its own goroutine (real) or synchronously
	// during Advance (fake) once d has elapsed
	AfterFunc(d time.Duration, f func()) *Timer
}

// Timer is a handle to a pending AfterFunc call
type Timer struct {
	stopFunc func() bool
}

// Stop prevents the timer from firing. Returns false if it already fired
// or was stopped.
func (t *Timer) Stop() bool { return t.stopFunc() }

// Real returns a Clock backed by the time package
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

func (realClock) AfterFunc(d time.Duration, f func()) *Timer {
	timer := time.AfterFunc(d, f)
	return &Timer{stopFunc: timer.Stop}
}

package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFakeClock_AfterFuncFiresInDeadlineOrder(t *testing.T) {
	c := Fake(time.Unix(0, 0))
	var order []string

	c.AfterFunc(300*time.Millisecond, func() { order = append(order, "late") })
	c.AfterFunc(100*time.Millisecond, func() { order = append(order, "early") })

	c.Advance(99 * time.Millisecond)
	assert.Empty(t, order)

	c.Advance(time.Second)
	assert.Equal(t, []string{"early", "late"}, order)
	assert.Zero(t, c.PendingCount())
}

func TestFakeClock_StopPreventsFire(t *testing.T) {
	c := Fake(time.Unix(0, 0))
	fired := false

	timer := c.AfterFunc(time.Second, func() { fired = true })
	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	c.Advance(2 * time.Second)
	assert.False(t, fired)
}

func TestFakeClock_After(t *testing.T) {
	c := Fake(time.Unix(0, 0))
	ch := c.After(time.Second)

	select {
	case <-ch:
		t.Fatal("fired early")
	default:
	}

	c.Advance(time.Second)
	select {
	case got := <-ch:
		assert.Equal(t, time.Unix(1, 0), got)
	default:
		t.Fatal("did not fire")
	}
}

func TestFakeClock_CallbackCanScheduleWithinSameAdvance(t *testing.T) {
	c := Fake(time.Unix(0, 0))
	count := 0

	c.AfterFunc(10*time.Millisecond, func() {
		count++
		c.AfterFunc(10*time.Millisecond, func() { count++ })
	})

	c.Advance(50 * time.Millisecond)
	assert.Equal(t, 2, count)
}

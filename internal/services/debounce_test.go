package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wolverin0/crystal-fork-sub001/internal/clock"
)

func TestDebouncer_CoalescesBursts(t *testing.T) {
	clk := clock.Fake(time.Unix(0, 0))
	d := NewDebouncer(clk)
	fired := 0

	for _i := 0; _i < 5; _i++ {
		d.Schedule("s1", 5*time.Second, func() { fired++ })
		clk.Advance(time.Second)
	}
	assert.Zero(t, fired)
	assert.True(t, d.Pending("s1"))

	// last schedule was 1s ago
	clk.Advance(3999 * time.Millisecond)
	assert.Zero(t, fired, "delay resets on every schedule")

	clk.Advance(time.Millisecond)
	assert.Equal(t, 1, fired)
	assert.False(t, d.Pending("s1"))
}

func TestDebouncer_LastActionWins(t *testing.T) {
	clk := clock.Fake(time.Unix(0, 0))
	d := NewDebouncer(clk)
	var got string

	d.Schedule("s1", time.Second, func() { got = "first" })
	d.Schedule("s1", time.Second, func() { got = "second" })

	clk.Advance(time.Second)
	assert.Equal(t, "second", got)
}

func TestDebouncer_Cancel(t *testing.T) {
	clk := clock.Fake(time.Unix(0, 0))
	d := NewDebouncer(clk)
	fired := false

	d.Schedule("s1", time.Second, func() { fired = true })
	assert.True(t, d.Cancel("s1"))
	assert.False(t, d.Cancel("s1"))

	clk.Advance(2 * time.Second)
	assert.False(t, fired)
}

func TestDebouncer_KeysAreIndependent(t *testing.T) {
	clk := clock.Fake(time.Unix(0, 0))
	d := NewDebouncer(clk)
	var fired []string

	d.Schedule("a", time.Second, func() { fired = append(fired, "a") })
	d.Schedule("b", 2*time.Second, func() { fired = append(fired, "b") })
	d.CancelAll()
	d.Schedule("c", time.Second, func() { fired = append(fired, "c") })

	clk.Advance(3 * time.Second)
	assert.Equal(t, []string{"c"}, fired)
}

package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSimulatedClock(t *testing.T) {
	c := NewSimulatedClockMillis(1_000)
	assert.Equal(t, int64(1_000), Millis(c))

	c.AdvanceMillis(29_999)
	assert.Equal(t, int64(30_999), Millis(c))

	c.Advance(time.Second)
	assert.Equal(t, int64(31_999), Millis(c))

	c.Set(FromMillis(5))
	assert.Equal(t, int64(5), Millis(c))
}

func TestRealClock(t *testing.T) {
	before := time.Now().UnixMilli()
	got := Millis(NewRealClock())
	assert.GreaterOrEqual(t, got, before)
}

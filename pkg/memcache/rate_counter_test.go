package memcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIncrementWithExpiry(t *testing.T) {
	counters := NewRateCounters()

	assert.Equal(t, 1, counters.IncrementWithExpiry("ip:1.2.3.4", time.Minute))
	assert.Equal(t, 2, counters.IncrementWithExpiry("ip:1.2.3.4", time.Minute))
	assert.Equal(t, 1, counters.IncrementWithExpiry("ip:5.6.7.8", time.Minute))

	count, ok := counters.Peek("ip:1.2.3.4")
	assert.True(t, ok)
	assert.Equal(t, 2, count)
}

func TestWindowRestartsAfterExpiry(t *testing.T) {
	counters := NewRateCounters()

	counters.IncrementWithExpiry("k", 10*time.Millisecond)
	counters.IncrementWithExpiry("k", 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	_, ok := counters.Peek("k")
	assert.False(t, ok)
	assert.Equal(t, 1, counters.IncrementWithExpiry("k", time.Minute))
}

func TestPeekUnknownKey(t *testing.T) {
	counters := NewRateCounters()
	count, ok := counters.Peek("missing")
	assert.False(t, ok)
	assert.Zero(t, count)
}

package memcache

import (
	"sync"
	"time"
)

// RateCounterStore is the capability the rate-limit middleware needs:
// a per-key counter that resets after its window expires.
type RateCounterStore interface {
	// IncrementWithExpiry bumps the counter for key and returns the new
	// value. The first increment of a window starts the ttl clock.
	IncrementWithExpiry(key string, ttl time.Duration) int

	// Peek reads the current counter without bumping it.
	Peek(key string) (int, bool)
}

type counterEntry struct {
	count     int
	expiresAt time.Time
}

type RateCounters struct {
	mu   sync.Mutex
	data map[string]counterEntry
}

func NewRateCounters() *RateCounters {
	return &RateCounters{
		data: make(map[string]counterEntry),
	}
}

func (s *RateCounters) IncrementWithExpiry(key string, ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[key]
	if !ok || time.Now().After(e.expiresAt) {
		e = counterEntry{count: 0, expiresAt: time.Now().Add(ttl)}
	}
	e.count++
	s.data[key] = e
	return e.count
}

func (s *RateCounters) Peek(key string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[key]
	if !ok {
		return 0, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, key) // cleanup expired
		return 0, false
	}
	return e.count, true
}

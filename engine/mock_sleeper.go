package engine

import (
	"context"
	"sync"
	"time"
)

// MockSleeper records requested sleeps without waiting
// Cancels via the provided hook after Limit sleeps when Limit > 0
type MockSleeper struct {
	mu     sync.Mutex
	sleeps []time.Duration

	Limit  int
	Cancel context.CancelFunc
}

// Sleep records d and returns immediately
func (m *MockSleeper) Sleep(ctx context.Context, d time.Duration) error {
	m.mu.Lock()
	m.sleeps = append(m.sleeps, d)
	n := len(m.sleeps)
	m.mu.Unlock()

	if m.Limit > 0 && n >= m.Limit && m.Cancel != nil {
		m.Cancel()
	}
	return ctx.Err()
}

// Sleeps returns the recorded durations
func (m *MockSleeper) Sleeps() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]time.Duration, len(m.sleeps))
	copy(out, m.sleeps)
	return out
}

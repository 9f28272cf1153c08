package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.t = f.t.Add(d)
}

func TestCountdownTicksDown(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	c := NewCountdown(30*time.Second, clock.Now)

	assert.Equal(t, 30, c.RemainingSeconds())

	clock.Advance(500 * time.Millisecond)
	assert.Equal(t, 30, c.RemainingSeconds())

	clock.Advance(10500 * time.Millisecond)
	assert.Equal(t, 19, c.RemainingSeconds())
	assert.Equal(t, 11, c.ElapsedSeconds())
	assert.False(t, c.Expired())

	clock.Advance(time.Minute)
	assert.Equal(t, 0, c.RemainingSeconds())
	assert.True(t, c.Expired())
}

func TestCountdownPauseResume(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	c := NewCountdown(time.Minute, clock.Now)

	clock.Advance(10 * time.Second)
	c.Pause()
	c.Pause()
	assert.True(t, c.Paused())

	clock.Advance(5 * time.Minute)
	assert.Equal(t, 50, c.RemainingSeconds())
	assert.False(t, c.Expired())

	c.Resume()
	clock.Advance(20 * time.Second)
	assert.Equal(t, 30, c.RemainingSeconds())
	assert.Equal(t, clock.Now().Add(30*time.Second), c.Deadline())
}

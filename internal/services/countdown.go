package services

import (
	"sync"
	"time"
)

// Countdown is a pausable timer read on demand. It never fires callbacks;
// callers check Expired when they next touch the owning session.
type Countdown struct {
	mu        sync.Mutex
	total     time.Duration
	remaining time.Duration
	since     time.Time
	paused    bool
	now       func() time.Time
}

// NewCountdown starts a running countdown of total. A nil now uses time.Now.
func NewCountdown(total time.Duration, now func() time.Time) *Countdown {
	if now == nil {
		now = time.Now
	}
	return &Countdown{
		total:     total,
		remaining: total,
		since:     now(),
		now:       now,
	}
}

func (c *Countdown) remainingLocked() time.Duration {
	if c.paused {
		return c.remaining
	}
	left := c.remaining - c.now().Sub(c.since)
	if left < 0 {
		return 0
	}
	return left
}

func (c *Countdown) Remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remainingLocked()
}

// RemainingSeconds rounds up, so a fresh 30s countdown reads 30 until a full
// second has passed.
func (c *Countdown) RemainingSeconds() int {
	left := c.Remaining()
	return int((left + time.Second - 1) / time.Second)
}

// ElapsedSeconds is total seconds minus RemainingSeconds.
func (c *Countdown) ElapsedSeconds() int {
	return int(c.total/time.Second) - c.RemainingSeconds()
}

func (c *Countdown) Expired() bool {
	return c.Remaining() == 0
}

// Pause freezes the countdown. Pausing twice is a no-op.
func (c *Countdown) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		return
	}
	c.remaining = c.remainingLocked()
	c.paused = true
}

func (c *Countdown) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.paused {
		return
	}
	c.since = c.now()
	c.paused = false
}

func (c *Countdown) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// Stop freezes the countdown at its current value for good.
func (c *Countdown) Stop() {
	c.Pause()
}

// Deadline is when a running countdown reaches zero.
func (c *Countdown) Deadline() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now().Add(c.remainingLocked())
}

package logger

import (
	"sync"
	"time"
)

// Clock remembers when the last line was emitted by any logger sharing it.
// It is safe for concurrent use.
type Clock struct {
	mu   sync.Mutex
	last time.Time
	now  func() time.Time
}

// NewClock returns a Clock whose first lap starts now.
func NewClock() *Clock {
	c := &Clock{now: time.Now}
	c.last = c.now()
	return c
}

// Lap returns the time since the previous lap and starts a new one.
func (c *Clock) Lap() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.now()
	d := t.Sub(c.last)
	c.last = t
	return d
}

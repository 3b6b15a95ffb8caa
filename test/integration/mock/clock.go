package mock

import (
	"sync"
	"time"
)

var clockOnce sync.Once
var clock *Clock

// Clock is a settable clock shared between the scenarios and the server
// under test. Scenarios pin "today" so calendar-day logic is deterministic.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock returns the shared test clock, initialized to the wall clock.
func NewClock() *Clock {
	clockOnce.Do(func() {
		clock = &Clock{now: time.Now().UTC()}
	})
	return clock
}

// SetNow pins the clock to the given instant.
func (c *Clock) SetNow(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Advance moves the clock forward by the given duration.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Now returns the pinned instant.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

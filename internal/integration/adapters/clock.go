package adapters

import (
	"time"

	"github.com/habit-tracker/backend/internal/application/adapter"
)

// zoneClock implements adapter.Clock in a fixed policy time zone. All
// calendar-day decisions (streak days, daily upserts, deadlines) flow through
// this zone so they do not shift with the server's locale.
type zoneClock struct {
	location *time.Location
}

// NewZoneClock creates a clock for the named IANA zone, falling back to UTC
// when the name is empty or unknown.
func NewZoneClock(zone string) adapter.Clock {
	location, err := time.LoadLocation(zone)
	if err != nil || zone == "" {
		location = time.UTC
	}
	return &zoneClock{location: location}
}

// Now returns the current time in the policy zone.
func (c *zoneClock) Now() time.Time {
	return time.Now().In(c.location)
}

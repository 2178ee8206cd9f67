package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/warbot/internal/common/clock Clock
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock,
// reported in a fixed location so date-stamped sheet names follow the guild's
// calendar rather than the host's.
type DefaultClock struct {
	location *time.Location
}

// New creates a clock reporting times in loc. A nil loc means time.Local.
func New(loc *time.Location) *DefaultClock {
	if loc == nil {
		loc = time.Local
	}
	return &DefaultClock{location: loc}
}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	if c.location == nil {
		return time.Now()
	}
	return time.Now().In(c.location)
}

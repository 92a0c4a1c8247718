package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/drinktracker/internal/common/clock Clock
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock,
// reporting times in a fixed location
type DefaultClock struct {
	location *time.Location
}

// New creates a clock that reports times in loc, or in local time when loc is nil
func New(loc *time.Location) *DefaultClock {
	if loc == nil {
		loc = time.Local
	}
	return &DefaultClock{location: loc}
}

// Now returns the current time in the clock's location
func (c *DefaultClock) Now() time.Time {
	if c.location == nil {
		return time.Now()
	}
	return time.Now().In(c.location)
}

// Location returns the location the clock reports times in
func (c *DefaultClock) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

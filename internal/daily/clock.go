package daily

import "time"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant. Useful for tests and replaying a day.
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time { return time.Time(c) }

// Calendar resolves "today" in a fixed time zone so every player shares the
// same day boundary regardless of where the server runs.
type Calendar struct {
	clock Clock
	loc   *time.Location
}

// NewCalendar returns a Calendar for loc (UTC when nil) driven by clock
// (the system clock when nil).
func NewCalendar(clock Clock, loc *time.Location) *Calendar {
	if clock == nil {
		clock = RealClock{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Calendar{clock: clock, loc: loc}
}

// Today is the current instant expressed in the calendar's zone.
func (c *Calendar) Today() time.Time { return c.clock.Now().In(c.loc) }

// TodayKey is DateKey(Today()).
func (c *Calendar) TodayKey() string { return DateKey(c.Today()) }

// Location is the calendar's zone.
func (c *Calendar) Location() *time.Location { return c.loc }

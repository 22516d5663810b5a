package timezone

import "time"

const DefaultTimezone = "UTC"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location falls back to UTC for empty or unknown names.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.UTC
}

// Clock reads wall time in the clinic's location. "Today" for the upcoming
// and past views is always taken from here.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

func NewClock(tz string) *Clock {
	return &Clock{loc: Location(tz), now: time.Now}
}

// Fixed returns a clock frozen at t, for tests and the CLI --today flag.
func Fixed(t time.Time) *Clock {
	return &Clock{loc: t.Location(), now: func() time.Time { return t }}
}

func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

func (c *Clock) Location() *time.Location {
	return c.loc
}

// Today is the current calendar date as YYYY-MM-DD.
func (c *Clock) Today() string {
	return c.Now().Format(time.DateOnly)
}

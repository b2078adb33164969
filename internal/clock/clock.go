// Package clock supplies "today" to the orchestration layer. Age arithmetic
// never reads the clock itself; it receives the date from here.
package clock

import (
	"time"

	"github.com/specialistvlad/age/internal/calendar"
)

// Clock yields the current calendar date in a fixed reference zone.
type Clock interface {
	Today() calendar.Date
}

type systemClock struct {
	loc *time.Location
	now func() time.Time
}

// NewSystem returns a clock backed by time.Now, evaluated in loc.
// A nil loc means UTC.
func NewSystem(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return systemClock{loc: loc, now: time.Now}
}

func (c systemClock) Today() calendar.Date {
	return calendar.FromTime(c.now().In(c.loc))
}

type fixedClock struct {
	today calendar.Date
}

// NewFixed returns a clock that always reports the same date.
func NewFixed(d calendar.Date) Clock {
	return fixedClock{today: d}
}

func (f fixedClock) Today() calendar.Date {
	return f.today
}

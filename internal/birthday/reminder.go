package birthday

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/specialistvlad/age/internal/calendar"
)

// WarnWindow is the default number of days ahead for which an upcoming
// birthday is reported.
const WarnWindow = 14

// Reminder is an upcoming birthday that falls inside the warn window.
type Reminder struct {
	Person   Person
	DaysLeft int
}

// When renders the reminder's distance as "today", "tomorrow" or
// "in N days".
func (r Reminder) When() string {
	switch r.DaysLeft {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	default:
		return fmt.Sprintf("in %d days", r.DaysLeft)
	}
}

// Upcoming reports p's next birthday if it is within WarnWindow days.
func Upcoming(p Person, today calendar.Date) (Reminder, bool) {
	return UpcomingWithin(p, today, WarnWindow)
}

// UpcomingWithin reports p's next birthday if it is at most window days
// away. A window of 0 reports only birthdays falling today.
func UpcomingWithin(p Person, today calendar.Date, window int) (Reminder, bool) {
	left := DaysUntilNextBirthday(p, today)
	if left > window {
		return Reminder{}, false
	}
	return Reminder{Person: p, DaysLeft: left}, true
}

// SortByAnniversary orders people by birth (month, day), ignoring the year.
// Records with the same anniversary keep their relative order.
func SortByAnniversary(people []Person) {
	slices.SortStableFunc(people, func(a, b Person) int {
		am, ad := a.Birth.MonthDay()
		bm, bd := b.Birth.MonthDay()
		if c := cmp.Compare(am, bm); c != 0 {
			return c
		}
		return cmp.Compare(ad, bd)
	})
}

// Filter returns the primary user's records, or a copy of all of them when
// all is set. The input slice is not modified.
func Filter(people []Person, all bool) []Person {
	if all {
		return slices.Clone(people)
	}
	out := make([]Person, 0, len(people))
	for _, p := range people {
		if p.IsPrimary() {
			out = append(out, p)
		}
	}
	return out
}

package birthday

import (
	"time"

	"github.com/specialistvlad/age/internal/calendar"
)

// maxAnniversarySearch bounds the year-by-year search for a valid
// anniversary. Feb 29 needs at most 8 candidate years (1897 through 1904);
// every other month/day is valid in the first one.
const maxAnniversarySearch = 8

// DaysOld returns today minus the birth date in whole days. It is negative
// for a birth date in the future.
func DaysOld(p Person, today calendar.Date) int {
	return today.DaysSince(p.Birth)
}

// YearsOld returns the number of full years elapsed since the birth date.
// The year difference is reduced by one while today's (month, day) still
// sorts before the birth (month, day).
func YearsOld(p Person, today calendar.Date) int {
	years := today.Year - p.Birth.Year
	if today.Month < p.Birth.Month ||
		(today.Month == p.Birth.Month && today.Day < p.Birth.Day) {
		years--
	}
	return years
}

// NextBirthdayOnOrAfter returns the earliest valid date in or after fromYear
// whose month and day equal birth's. Feb 29 birthdays skip non-leap years.
func NextBirthdayOnOrAfter(birth calendar.Date, fromYear int) calendar.Date {
	for year := fromYear; year < fromYear+maxAnniversarySearch; year++ {
		if d, err := calendar.New(year, birth.Month, birth.Day); err == nil {
			return d
		}
	}
	return clampToMonth(fromYear, birth.Month, birth.Day)
}

// DaysUntilNextBirthday returns how many days remain until the soonest
// anniversary on or after today. It is zero on the birthday itself and
// never negative.
func DaysUntilNextBirthday(p Person, today calendar.Date) int {
	next := NextBirthdayOnOrAfter(p.Birth, today.Year)
	if next.Before(today) {
		next = NextBirthdayOnOrAfter(p.Birth, next.Year+1)
	}
	return next.DaysSince(today)
}

// clampToMonth is the fallback for a month/day that never validates, which
// only happens for a Date built without calendar.New.
func clampToMonth(year int, month time.Month, day int) calendar.Date {
	if month < time.January || month > time.December {
		month = time.December
	}
	if last := calendar.DaysIn(year, month); day > last || day < 1 {
		day = last
	}
	return calendar.Date{Year: year, Month: month, Day: day}
}

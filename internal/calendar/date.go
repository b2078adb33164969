// Package calendar provides Date, a proleptic Gregorian calendar date with
// no time-of-day and no timezone.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is returned by New when the year/month/day triple does not
// name a real calendar date.
var ErrInvalidDate = errors.New("invalid calendar date")

const secondsPerDay = 24 * 60 * 60

// MaxYear bounds the year in either direction. Dates beyond it would
// overflow the Unix-second arithmetic in DaysSince.
const MaxYear = 1_000_000_000

// Date is a year/month/day triple. The zero value is not a valid date; use
// New to construct one from untrusted parts.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New returns the Date for year, month and day, or ErrInvalidDate if the
// triple is not a real date (month outside 1-12, or a day the month does not
// have in that year, e.g. Feb 29 of a non-leap year). Years beyond MaxYear
// in either direction are rejected too.
func New(year int, month time.Month, day int) (Date, error) {
	if !IsValid(year, month, day) {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, int(month), day)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// MustNew is like New but panics on an invalid triple. Intended for
// constants and tests.
func MustNew(year int, month time.Month, day int) Date {
	d, err := New(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// IsValid reports whether year, month and day form a real calendar date.
func IsValid(year int, month time.Month, day int) bool {
	if year < -MaxYear || year > MaxYear {
		return false
	}
	if month < time.January || month > time.December {
		return false
	}
	return day >= 1 && day <= DaysIn(year, month)
}

// IsLeapYear reports whether year has a February 29.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days in month of year. The month must be in
// range.
func DaysIn(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// Layout is the textual form of a Date, in time package notation.
const Layout = "2006-01-02"

// Parse reads a zero-padded YYYY-MM-DD date.
func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}
	return FromTime(t), nil
}

// FromTime returns the calendar date of t in t's own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns midnight UTC on d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String renders d as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MonthDay returns the anniversary key of d.
func (d Date) MonthDay() (time.Month, int) {
	return d.Month, d.Day
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(int(d.Month), int(o.Month))
	default:
		return cmpInt(d.Day, o.Day)
	}
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }
func (d Date) Equal(o Date) bool  { return d.Compare(o) == 0 }

// DaysSince returns d minus o in whole days. Negative when d is before o.
func (d Date) DaysSince(o Date) int {
	// Unix seconds, not time.Duration: Sub saturates at ~292 years.
	// UTC midnights are exactly secondsPerDay apart.
	return int((d.Time().Unix() - o.Time().Unix()) / secondsPerDay)
}

// AddDays returns the date n days after d (before, for negative n).
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

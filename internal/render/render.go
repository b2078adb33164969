// Package render formats birthday records for the terminal.
package render

import (
	"fmt"
	"io"

	"github.com/specialistvlad/age/internal/birthday"
	"github.com/specialistvlad/age/internal/calendar"
)

const (
	tableHeaderFormat = "%-20s%5s%15s%18s\n"
	tableRowFormat    = "%-20s%5d%15s%18d\n"
)

// Age returns p's age in days or in years.
func Age(p birthday.Person, today calendar.Date, asDays bool) int {
	if asDays {
		return birthday.DaysOld(p, today)
	}
	return birthday.YearsOld(p, today)
}

// Compact writes one sentence per person, e.g. "Anne is 44 years old".
func Compact(w io.Writer, people []birthday.Person, today calendar.Date, asDays bool) error {
	unit := "year"
	if asDays {
		unit = "day"
	}
	for _, p := range people {
		verb := "is"
		if p.IsPrimary() {
			verb = "are"
		}
		n := Age(p, today, asDays)
		plural := "s"
		if n == 1 {
			plural = ""
		}
		if _, err := fmt.Fprintf(w, "%s %s %d %s%s old\n", p.Name, verb, n, unit, plural); err != nil {
			return err
		}
	}
	return nil
}

// Table writes a header row followed by name, age, birthdate and days until
// the next birthday for each person.
func Table(w io.Writer, people []birthday.Person, today calendar.Date, asDays bool) error {
	if _, err := fmt.Fprintf(w, tableHeaderFormat, "Name", "Age", "Birthdate", "Days remaining"); err != nil {
		return err
	}
	for _, p := range people {
		_, err := fmt.Fprintf(w, tableRowFormat,
			p.Name,
			Age(p, today, asDays),
			p.Birth.String(),
			birthday.DaysUntilNextBirthday(p, today))
		if err != nil {
			return err
		}
	}
	return nil
}

// Warnings writes a line for every person whose birthday is at most window
// days away, in input order.
func Warnings(w io.Writer, people []birthday.Person, today calendar.Date, window int) error {
	for _, p := range people {
		r, ok := birthday.UpcomingWithin(p, today, window)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "Warning: %s's birthday is %s\n", p.Name, r.When()); err != nil {
			return err
		}
	}
	return nil
}

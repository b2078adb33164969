// Package birthday parses birthdate records and does the age and
// anniversary arithmetic on them. Every function here is pure: "today" is
// always passed in by the caller.
package birthday

import (
	"strconv"
	"strings"
	"time"

	"github.com/specialistvlad/age/internal/calendar"
)

// PrimaryUser is the name given to a record that has none. It stands for
// the owner of the data file.
const PrimaryUser = "You"

const dateSeparator = "-"

// Person is one parsed record. It is a value; nothing mutates it after Parse.
type Person struct {
	Name  string
	Birth calendar.Date
}

// IsPrimary reports whether p is the data file's owner.
func (p Person) IsPrimary() bool {
	return p.Name == PrimaryUser
}

// Parse turns one line of the form "YYYY-MM-DD [NAME [ignored...]]" into a
// Person. Failures are *ParseError values matching ErrEmptyRecord,
// ErrInvalidDateFormat or ErrInvalidDate.
func Parse(line string) (Person, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Person{}, &ParseError{Kind: KindEmptyRecord}
	}

	raw := fields[0]
	parts := strings.Split(raw, dateSeparator)
	if len(parts) != 3 {
		return Person{}, &ParseError{Kind: KindInvalidDateFormat, Input: raw}
	}

	var nums [3]int
	for i, part := range parts {
		n, err := parseUint(part)
		if err != nil {
			return Person{}, &ParseError{Kind: KindInvalidDateFormat, Input: raw, Err: err}
		}
		nums[i] = n
	}

	birth, err := calendar.New(nums[0], time.Month(nums[1]), nums[2])
	if err != nil {
		return Person{}, &ParseError{Kind: KindInvalidDate, Input: raw, Err: err}
	}

	name := PrimaryUser
	if len(fields) > 1 {
		name = fields[1]
	}
	return Person{Name: name, Birth: birth}, nil
}

// parseUint accepts only plain ASCII digits: no sign, no decimal point, no
// spaces. strconv.Atoi alone would let "+5" and "-5" through.
func parseUint(s string) (int, error) {
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, &strconv.NumError{Func: "parseUint", Num: s, Err: strconv.ErrSyntax}
		}
	}
	return strconv.Atoi(s)
}

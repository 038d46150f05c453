package day

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// ErrUnknownDay is returned when a string does not name a day of the week.
var ErrUnknownDay = errors.New("unknown day")

// Day is a day of the week. The zero value is not a valid day.
type Day int

const (
	Monday Day = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

type attributes struct {
	name    string
	label   string
	weekend bool
}

var table = map[Day]attributes{
	Monday:    {name: "MONDAY", label: "Monday"},
	Tuesday:   {name: "TUESDAY", label: "Tuesday"},
	Wednesday: {name: "WEDNESDAY", label: "Wednesday"},
	Thursday:  {name: "THURSDAY", label: "Thursday"},
	Friday:    {name: "FRIDAY", label: "Friday"},
	Saturday:  {name: "SATURDAY", label: "Weekend", weekend: true},
	Sunday:    {name: "SUNDAY", label: "Weekend", weekend: true},
}

// All returns every day in week order, starting on Monday.
func All() []Day {
	return []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// Valid reports whether d is one of the seven defined days.
func (d Day) Valid() bool {
	_, ok := table[d]
	return ok
}

// String returns the canonical upper-case name, e.g. "SUNDAY".
func (d Day) String() string {
	if attr, ok := table[d]; ok {
		return attr.name
	}
	return fmt.Sprintf("Day(%d)", int(d))
}

// Label returns the descriptive label attached to the day: its own name for
// work days and "Weekend" for Saturday and Sunday.
func (d Day) Label() string {
	return table[d].label
}

// IsWeekend reports whether d falls on the weekend.
func (d Day) IsWeekend() bool {
	return table[d].weekend
}

// IsWorkday reports whether d is a valid day outside the weekend.
func (d Day) IsWorkday() bool {
	return d.Valid() && !d.IsWeekend()
}

// Parse resolves a day name regardless of case, e.g. "sunday" or "Sunday".
func Parse(s string) (Day, error) {
	folded := cases.Fold().String(strings.TrimSpace(s))
	if folded == "" {
		return 0, fmt.Errorf("%w: empty value", ErrUnknownDay)
	}

	fold := cases.Fold()
	for _, d := range All() {
		if fold.String(table[d].name) == folded {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDay, s)
}

// MarshalText encodes the day by name.
func (d Day) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDay, int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText decodes a day name; matching is case-insensitive.
func (d *Day) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

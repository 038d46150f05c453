package person

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/zhouzirui/roster/backend/internal/model/day"
)

// ErrUnknownGender is returned when a string does not name a Gender.
var ErrUnknownGender = errors.New("unknown gender")

// Gender groups people for counting. The zero value is not a valid gender.
type Gender int

const (
	Male Gender = iota + 1
	Female
	Other
)

var genderNames = map[Gender]string{
	Male:   "MALE",
	Female: "FEMALE",
	Other:  "OTHER",
}

// Genders returns every defined gender.
func Genders() []Gender {
	return []Gender{Male, Female, Other}
}

// Valid reports whether g is a defined gender.
func (g Gender) Valid() bool {
	_, ok := genderNames[g]
	return ok
}

// String returns the canonical upper-case name, e.g. "FEMALE".
func (g Gender) String() string {
	if name, ok := genderNames[g]; ok {
		return name
	}
	return fmt.Sprintf("Gender(%d)", int(g))
}

// ParseGender resolves a gender name regardless of case.
func ParseGender(s string) (Gender, error) {
	fold := cases.Fold()
	folded := fold.String(strings.TrimSpace(s))
	if folded == "" {
		return 0, fmt.Errorf("%w: empty value", ErrUnknownGender)
	}
	for _, g := range Genders() {
		if fold.String(genderNames[g]) == folded {
			return g, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGender, s)
}

// MarshalText encodes the gender by name.
func (g Gender) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownGender, int(g))
	}
	return []byte(g.String()), nil
}

// UnmarshalText decodes a gender name; matching is case-insensitive.
func (g *Gender) UnmarshalText(text []byte) error {
	parsed, err := ParseGender(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Person is a directory entry. Stores hand out copies, so a Person obtained
// from a Store never aliases stored state.
type Person struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	FavoriteDay day.Day `json:"favoriteDay"`
	Gender      Gender  `json:"gender"`
}

func (p Person) validate() error {
	if !p.FavoriteDay.Valid() {
		return fmt.Errorf("%w: person %d has favorite day %s", ErrInvalidPerson, p.ID, p.FavoriteDay)
	}
	if !p.Gender.Valid() {
		return fmt.Errorf("%w: person %d has gender %s", ErrInvalidPerson, p.ID, p.Gender)
	}
	return nil
}

// Seed provides the reference directory.
func Seed() []Person {
	return []Person{
		{ID: 1, Name: "Emre", FavoriteDay: day.Tuesday, Gender: Male},
		{ID: 2, Name: "Niels", FavoriteDay: day.Saturday, Gender: Male},
		{ID: 3, Name: "Chiara", FavoriteDay: day.Sunday, Gender: Female},
		{ID: 4, Name: "Jane", FavoriteDay: day.Sunday, Gender: Female},
	}
}

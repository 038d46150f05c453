package person

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/text/cases"

	"github.com/zhouzirui/roster/backend/internal/model/day"
)

var (
	ErrDuplicateID   = errors.New("duplicate person id")
	ErrInvalidPerson = errors.New("invalid person")
)

// Store exposes read-only person queries for HTTP handlers.
type Store interface {
	List() []Person
	FindByID(id int) mo.Option[Person]
	FindByName(name string) mo.Option[Person]
	CountByGender(gender Gender) int
	WithFavoriteDay(d day.Day) []Person
	GroupByFavoriteDay() map[day.Day][]Person
}

// MemoryStore implements Store over a map that is written once, in
// NewMemoryStore, and only read afterwards. Concurrent readers need no
// locking.
type MemoryStore struct {
	items map[int]Person
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns a MemoryStore holding the supplied people. Ids must
// be unique and every enum field must hold a defined value.
func NewMemoryStore(items []Person) (*MemoryStore, error) {
	byID := make(map[int]Person, len(items))
	for _, item := range items {
		if _, exists := byID[item.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, item.ID)
		}
		if err := item.validate(); err != nil {
			return nil, err
		}
		byID[item.ID] = item
	}
	return &MemoryStore{items: byID}, nil
}

// NewSeededStore returns a MemoryStore preloaded with Seed.
func NewSeededStore() *MemoryStore {
	store, err := NewMemoryStore(Seed())
	if err != nil {
		panic(fmt.Sprintf("person: malformed seed data: %v", err))
	}
	return store
}

// List returns every person ordered by id.
func (s *MemoryStore) List() []Person {
	people := lo.Values(s.items)
	slices.SortFunc(people, func(a, b Person) int { return a.ID - b.ID })
	return people
}

// FindByID looks up a person by identifier.
func (s *MemoryStore) FindByID(id int) mo.Option[Person] {
	p, ok := s.items[id]
	return mo.TupleToOption(p, ok)
}

// FindByName matches names case-insensitively. If several people share a
// name, which one is returned is unspecified.
func (s *MemoryStore) FindByName(name string) mo.Option[Person] {
	fold := cases.Fold()
	want := fold.String(name)
	p, ok := lo.Find(lo.Values(s.items), func(item Person) bool {
		return fold.String(item.Name) == want
	})
	return mo.TupleToOption(p, ok)
}

// CountByGender returns how many people have the given gender.
func (s *MemoryStore) CountByGender(gender Gender) int {
	return lo.CountBy(lo.Values(s.items), func(item Person) bool {
		return item.Gender == gender
	})
}

// WithFavoriteDay returns the people whose favorite day is d. The result is
// never nil; order is unspecified.
func (s *MemoryStore) WithFavoriteDay(d day.Day) []Person {
	return lo.Filter(lo.Values(s.items), func(item Person, _ int) bool {
		return item.FavoriteDay == d
	})
}

// GroupByFavoriteDay buckets people by favorite day. Days nobody picked are
// left out.
func (s *MemoryStore) GroupByFavoriteDay() map[day.Day][]Person {
	return lo.GroupBy(s.List(), func(item Person) day.Day {
		return item.FavoriteDay
	})
}

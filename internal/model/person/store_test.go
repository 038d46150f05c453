package person_test

import (
	"sync"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhouzirui/roster/backend/internal/model/day"
	"github.com/zhouzirui/roster/backend/internal/model/person"
)

func names(people []person.Person) []string {
	return lo.Map(people, func(p person.Person, _ int) string { return p.Name })
}

func TestFindByIDPresent(t *testing.T) {
	store := person.NewSeededStore()
	for id := 1; id <= 4; id++ {
		got, ok := store.FindByID(id).Get()
		require.True(t, ok, "id %d", id)
		assert.Equal(t, id, got.ID)
	}

	emre := store.FindByID(1).MustGet()
	assert.Equal(t, "Emre", emre.Name)
	assert.Equal(t, day.Tuesday, emre.FavoriteDay)
	assert.Equal(t, person.Male, emre.Gender)
}

func TestFindByIDAbsent(t *testing.T) {
	store := person.NewSeededStore()
	for _, id := range []int{0, 5, -1} {
		assert.True(t, store.FindByID(id).IsAbsent(), "id %d", id)
	}

	fallback := person.Person{Name: "UNKNOWN"}
	assert.Equal(t, "UNKNOWN", store.FindByID(5).OrElse(fallback).Name)
}

func TestFindByNameIsCaseInsensitive(t *testing.T) {
	store := person.NewSeededStore()
	for _, name := range []string{"Chiara", "chiara", "CHIARA"} {
		got, ok := store.FindByName(name).Get()
		require.True(t, ok, name)
		assert.Equal(t, 3, got.ID)
	}
}

func TestFindByNameAbsent(t *testing.T) {
	store := person.NewSeededStore()
	assert.True(t, store.FindByName("Coralee").IsAbsent())
	assert.True(t, store.FindByName("").IsAbsent())
	assert.True(t, store.FindByName("Chiar").IsAbsent())
	assert.True(t, store.FindByName(" Chiara ").IsAbsent())
}

func TestFindByNameWithDuplicatesReturnsOne(t *testing.T) {
	store, err := person.NewMemoryStore([]person.Person{
		{ID: 7, Name: "Alex", FavoriteDay: day.Monday, Gender: person.Male},
		{ID: 8, Name: "alex", FavoriteDay: day.Friday, Gender: person.Female},
	})
	require.NoError(t, err)

	got, ok := store.FindByName("ALEX").Get()
	require.True(t, ok)
	assert.Contains(t, []int{7, 8}, got.ID)
}

func TestCountByGender(t *testing.T) {
	store := person.NewSeededStore()
	assert.Equal(t, 2, store.CountByGender(person.Male))
	assert.Equal(t, 2, store.CountByGender(person.Female))
	assert.Equal(t, 0, store.CountByGender(person.Other))
	assert.Equal(t, 0, store.CountByGender(person.Gender(99)))
}

func TestWithFavoriteDay(t *testing.T) {
	store := person.NewSeededStore()

	sunday := store.WithFavoriteDay(day.Sunday)
	assert.ElementsMatch(t, []string{"Chiara", "Jane"}, names(sunday))

	monday := store.WithFavoriteDay(day.Monday)
	require.NotNil(t, monday)
	assert.Empty(t, monday)
}

func TestEmptyStore(t *testing.T) {
	store, err := person.NewMemoryStore(nil)
	require.NoError(t, err)

	assert.True(t, store.FindByID(1).IsAbsent())
	assert.True(t, store.FindByName("Jane").IsAbsent())
	assert.Zero(t, store.CountByGender(person.Female))
	assert.NotNil(t, store.WithFavoriteDay(day.Sunday))
	assert.Empty(t, store.List())
	assert.Empty(t, store.GroupByFavoriteDay())
}

func TestListIsOrderedByID(t *testing.T) {
	store := person.NewSeededStore()
	ids := lo.Map(store.List(), func(p person.Person, _ int) int { return p.ID })
	assert.Equal(t, []int{1, 2, 3, 4}, ids)
}

func TestGroupByFavoriteDay(t *testing.T) {
	groups := person.NewSeededStore().GroupByFavoriteDay()

	require.Len(t, groups, 3)
	assert.Equal(t, []string{"Emre"}, names(groups[day.Tuesday]))
	assert.Equal(t, []string{"Niels"}, names(groups[day.Saturday]))
	assert.ElementsMatch(t, []string{"Chiara", "Jane"}, names(groups[day.Sunday]))
	_, ok := groups[day.Monday]
	assert.False(t, ok)
}

func TestQueriesAreIdempotent(t *testing.T) {
	store := person.NewSeededStore()

	assert.Equal(t, store.FindByID(2), store.FindByID(2))
	assert.Equal(t, store.FindByID(9), store.FindByID(9))
	assert.Equal(t, store.FindByName("jane"), store.FindByName("jane"))
	assert.Equal(t, store.CountByGender(person.Male), store.CountByGender(person.Male))
	assert.ElementsMatch(t, store.WithFavoriteDay(day.Sunday), store.WithFavoriteDay(day.Sunday))
}

func TestReturnedSlicesDoNotAliasStore(t *testing.T) {
	store := person.NewSeededStore()

	sunday := store.WithFavoriteDay(day.Sunday)
	sunday[0].Name = "Mutated"
	all := store.List()
	all[0].FavoriteDay = day.Monday

	assert.ElementsMatch(t, []string{"Chiara", "Jane"}, names(store.WithFavoriteDay(day.Sunday)))
	assert.Equal(t, day.Tuesday, store.FindByID(1).MustGet().FavoriteDay)
}

func TestConcurrentReads(t *testing.T) {
	store := person.NewSeededStore()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.True(t, store.FindByID(3).IsPresent())
				assert.True(t, store.FindByName("niels").IsPresent())
				assert.Equal(t, 2, store.CountByGender(person.Female))
				assert.Len(t, store.WithFavoriteDay(day.Sunday), 2)
			}
		}()
	}
	wg.Wait()
}

func TestNewMemoryStoreRejectsDuplicateIDs(t *testing.T) {
	_, err := person.NewMemoryStore([]person.Person{
		{ID: 1, Name: "A", FavoriteDay: day.Monday, Gender: person.Male},
		{ID: 1, Name: "B", FavoriteDay: day.Monday, Gender: person.Female},
	})
	assert.ErrorIs(t, err, person.ErrDuplicateID)
}

func TestNewMemoryStoreRejectsInvalidEnums(t *testing.T) {
	_, err := person.NewMemoryStore([]person.Person{
		{ID: 1, Name: "A", Gender: person.Male},
	})
	assert.ErrorIs(t, err, person.ErrInvalidPerson)

	_, err = person.NewMemoryStore([]person.Person{
		{ID: 1, Name: "A", FavoriteDay: day.Monday},
	})
	assert.ErrorIs(t, err, person.ErrInvalidPerson)
}

package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roster/internal/directory/models"
)

func usersWithAges(ages ...int) []models.User {
	users := make([]models.User, len(ages))
	for i, age := range ages {
		users[i] = models.User{Name: "U", Age: age, Email: "u@example.com"}
	}
	return users
}

func TestAverageAge(t *testing.T) {
	t.Run("empty collection is 0.0", func(t *testing.T) {
		assert.Equal(t, 0.0, AverageAge(nil))
		assert.Equal(t, 0.0, AverageAge([]models.User{}))
	})

	t.Run("single user", func(t *testing.T) {
		assert.InDelta(t, 25.0, AverageAge(usersWithAges(25)), 1e-9)
	})

	t.Run("mean of several ages", func(t *testing.T) {
		assert.InDelta(t, 27.5, AverageAge(usersWithAges(25, 30)), 1e-9)
		assert.InDelta(t, 26.0, AverageAge(usersWithAges(20, 25, 33)), 1e-9)
	})
}

func TestFilterByAgeRange(t *testing.T) {
	users := usersWithAges(17, 20, 25, 30, 35)

	t.Run("bounds are inclusive", func(t *testing.T) {
		filtered := FilterByAgeRange(users, 20, 30)
		require.Len(t, filtered, 3)
		assert.Equal(t, 20, filtered[0].Age)
		assert.Equal(t, 25, filtered[1].Age)
		assert.Equal(t, 30, filtered[2].Age)
	})

	t.Run("empty result when nothing matches", func(t *testing.T) {
		assert.Empty(t, FilterByAgeRange(users, 100, 150))
	})

	t.Run("input untouched", func(t *testing.T) {
		FilterByAgeRange(users, 20, 30)
		assert.Equal(t, usersWithAges(17, 20, 25, 30, 35), users)
	})
}

func TestSortByAge(t *testing.T) {
	t.Run("ascending", func(t *testing.T) {
		sorted := SortByAge(usersWithAges(35, 17, 25), true)
		assert.Equal(t, []int{17, 25, 35}, agesOf(sorted))
	})

	t.Run("descending", func(t *testing.T) {
		sorted := SortByAge(usersWithAges(35, 17, 25), false)
		assert.Equal(t, []int{35, 25, 17}, agesOf(sorted))
	})

	t.Run("stable for equal ages", func(t *testing.T) {
		users := []models.User{
			{Name: "First", Age: 30, Email: "first@example.com"},
			{Name: "Second", Age: 30, Email: "second@example.com"},
			{Name: "Young", Age: 20, Email: "young@example.com"},
		}

		sorted := SortByAge(users, true)
		require.Len(t, sorted, 3)
		assert.Equal(t, "Young", sorted[0].Name)
		assert.Equal(t, "First", sorted[1].Name)
		assert.Equal(t, "Second", sorted[2].Name)
	})

	t.Run("input untouched", func(t *testing.T) {
		users := usersWithAges(35, 17, 25)
		SortByAge(users, true)
		assert.Equal(t, []int{35, 17, 25}, agesOf(users))
	})
}

func agesOf(users []models.User) []int {
	ages := make([]int, len(users))
	for i, u := range users {
		ages[i] = u.Age
	}
	return ages
}

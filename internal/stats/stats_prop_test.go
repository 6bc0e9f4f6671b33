package stats

import (
	"testing"

	"pgregory.net/rapid"

	"roster/internal/directory/models"
)

func genUsers(t *rapid.T) []models.User {
	ages := rapid.SliceOfN(rapid.IntRange(0, 200), 0, 50).Draw(t, "ages")
	users := make([]models.User, len(ages))
	for i, age := range ages {
		users[i] = models.User{Name: "U", Age: age, Email: "u@example.com"}
	}
	return users
}

func TestSortByAgeOrdered(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		users := genUsers(t)
		ascending := rapid.Bool().Draw(t, "ascending")

		sorted := SortByAge(users, ascending)
		if len(sorted) != len(users) {
			t.Fatalf("length changed: %d != %d", len(sorted), len(users))
		}
		for i := 1; i < len(sorted); i++ {
			if ascending && sorted[i-1].Age > sorted[i].Age {
				t.Fatalf("not ascending at %d: %d > %d", i, sorted[i-1].Age, sorted[i].Age)
			}
			if !ascending && sorted[i-1].Age < sorted[i].Age {
				t.Fatalf("not descending at %d: %d < %d", i, sorted[i-1].Age, sorted[i].Age)
			}
		}
	})
}

func TestFilterByAgeRangeBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		users := genUsers(t)
		minAge := rapid.IntRange(0, 200).Draw(t, "min")
		maxAge := rapid.IntRange(minAge, 200).Draw(t, "max")

		filtered := FilterByAgeRange(users, minAge, maxAge)

		want := 0
		for _, u := range users {
			if u.Age >= minAge && u.Age <= maxAge {
				want++
			}
		}
		if len(filtered) != want {
			t.Fatalf("kept %d users, want %d", len(filtered), want)
		}
		for _, u := range filtered {
			if u.Age < minAge || u.Age > maxAge {
				t.Fatalf("age %d outside [%d, %d]", u.Age, minAge, maxAge)
			}
		}
	})
}

func TestAverageAgeWithinBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		users := genUsers(t)
		avg := AverageAge(users)

		if len(users) == 0 {
			if avg != 0.0 {
				t.Fatalf("empty collection average = %f, want 0.0", avg)
			}
			return
		}

		minAge, maxAge := users[0].Age, users[0].Age
		for _, u := range users {
			if u.Age < minAge {
				minAge = u.Age
			}
			if u.Age > maxAge {
				maxAge = u.Age
			}
		}
		if avg < float64(minAge) || avg > float64(maxAge) {
			t.Fatalf("average %f outside [%d, %d]", avg, minAge, maxAge)
		}
	})
}

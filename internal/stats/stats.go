// Package stats holds pure query and aggregate functions over user
// collections. Nothing here mutates its input; every function works on a
// snapshot and returns fresh slices.
package stats

import (
	"sort"

	"roster/internal/directory/models"
)

// AverageAge returns the arithmetic mean of ages, or 0.0 for an empty
// collection. The empty case is an explicit edge case, not an error.
func AverageAge(users []models.User) float64 {
	if len(users) == 0 {
		return 0.0
	}
	total := 0
	for _, u := range users {
		total += u.Age
	}
	return float64(total) / float64(len(users))
}

// FilterByAgeRange keeps users with minAge <= age <= maxAge, both bounds
// inclusive, preserving relative input order.
func FilterByAgeRange(users []models.User, minAge, maxAge int) []models.User {
	var filtered []models.User
	for _, u := range users {
		if u.Age >= minAge && u.Age <= maxAge {
			filtered = append(filtered, u)
		}
	}
	return filtered
}

// SortByAge returns a copy of users ordered by age, ascending or descending.
// The sort is stable: users with equal ages keep their relative input order.
func SortByAge(users []models.User, ascending bool) []models.User {
	sorted := append([]models.User{}, users...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if ascending {
			return sorted[i].Age < sorted[j].Age
		}
		return sorted[i].Age > sorted[j].Age
	})
	return sorted
}

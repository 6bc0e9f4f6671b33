package store

import "roster/internal/directory/models"

// DemoUsers returns the fixed candidate set used by demos and tests. Charlie
// is deliberately under age: pushing these through registration policy
// exercises both the accept and reject paths.
func DemoUsers() []models.User {
	return []models.User{
		{Name: "Alice", Age: 25, Email: "alice@example.com"},
		{Name: "Bob", Age: 30, Email: "bob@example.com"},
		{Name: "Charlie", Age: 17, Email: "charlie@example.com"},
	}
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	dErrors "roster/pkg/domain-errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		user  User
		valid bool
	}{
		{
			name:  "all invariants hold",
			user:  User{Name: "Alice", Age: 25, Email: "alice@example.com"},
			valid: true,
		},
		{
			name:  "empty name",
			user:  User{Name: "", Age: 25, Email: "alice@example.com"},
			valid: false,
		},
		{
			name:  "age below minimum",
			user:  User{Name: "Bob", Age: 17, Email: "bob@example.com"},
			valid: false,
		},
		{
			name:  "age at lower bound",
			user:  User{Name: "Bob", Age: 18, Email: "bob@example.com"},
			valid: true,
		},
		{
			name:  "age at upper bound",
			user:  User{Name: "Elder", Age: 150, Email: "elder@example.com"},
			valid: true,
		},
		{
			name:  "age above maximum",
			user:  User{Name: "Elder", Age: 151, Email: "elder@example.com"},
			valid: false,
		},
		{
			name:  "email without at sign",
			user:  User{Name: "Carol", Age: 30, Email: "carol.example.com"},
			valid: false,
		},
		{
			name:  "multiple violations report the first",
			user:  User{Name: "", Age: 5, Email: "nope"},
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
			}
		})
	}
}

func TestIsAdult(t *testing.T) {
	tests := []struct {
		name  string
		user  User
		adult bool
	}{
		{name: "minor", user: User{Name: "Kid", Age: 17, Email: "kid@example.com"}, adult: false},
		{name: "exactly eighteen", user: User{Name: "Teen", Age: 18, Email: "teen@example.com"}, adult: true},
		{name: "adult", user: User{Name: "Alice", Age: 25, Email: "alice@example.com"}, adult: true},
		{name: "invalid record still reports adulthood", user: User{Name: "", Age: 40, Email: "broken"}, adult: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.adult, tt.user.IsAdult())
		})
	}
}

func TestSummary(t *testing.T) {
	u := NewUser("Alice", 25, "alice@example.com")
	assert.Equal(t, "Alice (25 years old) - alice@example.com", u.Summary())
}

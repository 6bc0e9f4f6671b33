package models

import (
	"fmt"
	"strings"

	dErrors "roster/pkg/domain-errors"
)

// Age bounds accepted by Validate. The lower bound doubles as the adult
// threshold.
const (
	MinAge = 18
	MaxAge = 150
)

// User is the record tracked by the directory.
//
// Invariants (checked by Validate, not at construction):
//   - Name is non-empty
//   - Age is within [MinAge, MaxAge]
//   - Email contains '@'
//
// A User may exist in an unvalidated state: fields are plain exported values
// and remain independently settable after construction. Validity is a derived
// property queried through Validate, so parsers can produce candidate records
// and let the directory decide whether to accept them.
type User struct {
	Name  string
	Age   int
	Email string
}

// NewUser builds a candidate record. It performs no validation; callers run
// Validate before trusting the result.
func NewUser(name string, age int, email string) User {
	return User{Name: name, Age: age, Email: email}
}

// Validate returns nil when all record invariants hold. Violations come back
// as coded invariant errors naming the offending field; the first failing
// check wins.
func (u User) Validate() error {
	if u.Name == "" {
		return dErrors.New(dErrors.CodeInvariantViolation, "user name cannot be empty")
	}
	if u.Age < MinAge || u.Age > MaxAge {
		return dErrors.Newf(dErrors.CodeInvariantViolation, "user age must be between %d and %d", MinAge, MaxAge)
	}
	if !strings.Contains(u.Email, "@") {
		return dErrors.New(dErrors.CodeInvariantViolation, "user email must contain '@'")
	}
	return nil
}

// IsAdult reports whether the user is at least MinAge years old. It is
// independent of full validity: a record with a broken email still reports
// adulthood from its age alone.
func (u User) IsAdult() bool {
	return u.Age >= MinAge
}

// Summary renders the canonical one-line description of the user.
func (u User) Summary() string {
	return fmt.Sprintf("%s (%d years old) - %s", u.Name, u.Age, u.Email)
}

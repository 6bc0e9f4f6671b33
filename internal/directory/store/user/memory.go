package user

import (
	"context"
	"sort"
	"sync"

	"roster/internal/directory/models"
	"roster/pkg/platform/sentinel"
)

// InMemory keeps the directory's authoritative user mapping, keyed by email.
// It intentionally favors clarity over performance.
//
// Records are stored and returned by value, so anything handed out is an
// independent snapshot: callers cannot mutate stored state through it. The
// write lock serializes Create/Delete/Clear against concurrent readers and
// keeps the one-record-per-email invariant atomic.
type InMemory struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewInMemory() *InMemory {
	return &InMemory{users: make(map[string]models.User)}
}

// Create stores the user under its email key. Returns sentinel.ErrAlreadyUsed
// when the email is already taken; the store is untouched in that case.
// Record validity is service policy, not enforced here.
func (s *InMemory) Create(_ context.Context, u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[u.Email]; exists {
		return sentinel.ErrAlreadyUsed
	}
	s.users[u.Email] = u
	return nil
}

// FindByEmail returns the record for an exact email match, or
// sentinel.ErrNotFound. No partial or case-insensitive matching.
func (s *InMemory) FindByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users[email]; ok {
		return u, nil
	}
	return models.User{}, sentinel.ErrNotFound
}

// Delete removes the record for email. Returns sentinel.ErrNotFound when the
// key is absent.
func (s *InMemory) Delete(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[email]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.users, email)
	return nil
}

// Clear removes every record unconditionally.
func (s *InMemory) Clear(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = make(map[string]models.User)
}

// Count returns the number of stored records.
func (s *InMemory) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// List returns value copies of every record, sorted by email key. The store
// commits to this order so enumeration stays deterministic.
func (s *InMemory) List(_ context.Context) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out
}

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"roster/internal/audit"
	"roster/internal/directory/metrics"
	"roster/internal/directory/models"
	"roster/pkg/attrs"
	dErrors "roster/pkg/domain-errors"
	"roster/pkg/platform/sentinel"
)

// UserStore is the persistence boundary for the directory. The in-memory
// implementation lives in store/user; keeping the interface here keeps the
// domain logic testable without wiring a concrete store.
type UserStore interface {
	Create(ctx context.Context, u models.User) error
	FindByEmail(ctx context.Context, email string) (models.User, error)
	Delete(ctx context.Context, email string) error
	Clear(ctx context.Context)
	Count(ctx context.Context) int
	List(ctx context.Context) []models.User
}

// AuditPublisher records directory actions for later inspection.
type AuditPublisher interface {
	Emit(ctx context.Context, base audit.Event) error
}

// Service owns registration policy for the directory: records must validate
// and emails must be unique. Storage mechanics live in the store; this layer
// translates store facts into coded domain errors and emits notifications.
type Service struct {
	users          UserStore
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *metrics.Metrics
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs a Service.
func New(users UserStore, opts ...Option) *Service {
	s := &Service{users: users}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register stores a user keyed by email. It fails with CodeValidation when
// the record breaks an invariant and CodeConflict when the email is already
// taken; the store is untouched in both cases. Failures are notified at
// error level, successes at info level.
func (s *Service) Register(ctx context.Context, u models.User) error {
	start := time.Now()
	defer s.observeRegister(start)

	if err := u.Validate(); err != nil {
		s.logError(ctx, "invalid user data", "email", u.Email, "reason", err.Error())
		s.incrementRejected("invalid")
		return dErrors.Wrap(err, dErrors.CodeValidation, "user failed validation")
	}

	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			s.logError(ctx, "user already exists", "email", u.Email)
			s.incrementRejected("duplicate")
			return dErrors.New(dErrors.CodeConflict, "user email must be unique")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to store user")
	}

	s.logAudit(ctx, audit.ActionUserRegistered, "email", u.Email)
	s.incrementRegistered()
	return nil
}

// Lookup returns the stored record for an exact email match. Absence is a
// CodeNotFound error, not a notified failure.
func (s *Service) Lookup(ctx context.Context, email string) (models.User, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return models.User{}, dErrors.New(dErrors.CodeNotFound, "user not found")
		}
		return models.User{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load user")
	}
	return u, nil
}

// Adults returns every stored record reporting IsAdult, in the store's list
// order (sorted by email).
func (s *Service) Adults(ctx context.Context) []models.User {
	var adults []models.User
	for _, u := range s.users.List(ctx) {
		if u.IsAdult() {
			adults = append(adults, u)
		}
	}
	return adults
}

// Count returns the number of stored records.
func (s *Service) Count(ctx context.Context) int {
	return s.users.Count(ctx)
}

// Remove deletes the record for email. Absence is a CodeNotFound error and
// not notified.
func (s *Service) Remove(ctx context.Context, email string) error {
	if err := s.users.Delete(ctx, email); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "user not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete user")
	}
	s.logAudit(ctx, audit.ActionUserRemoved, "email", email)
	s.incrementRemoved()
	return nil
}

// Clear removes every record unconditionally.
func (s *Service) Clear(ctx context.Context) {
	s.users.Clear(ctx)
}

// WriteAll dumps every stored record's summary to w, one per line under an
// "All users:" header. This is the reporting operation; data queries go
// through List on the store or Adults here.
func (s *Service) WriteAll(ctx context.Context, w io.Writer) error {
	if _, err := fmt.Fprintln(w, "All users:"); err != nil {
		return err
	}
	for _, u := range s.users.List(ctx) {
		if _, err := fmt.Fprintf(w, "  %s\n", u.Summary()); err != nil {
			return err
		}
	}
	return nil
}

// List returns value copies of every stored record, sorted by email.
func (s *Service) List(ctx context.Context) []models.User {
	return s.users.List(ctx)
}

func (s *Service) logAudit(ctx context.Context, event string, attributes ...any) {
	if s.logger != nil {
		args := append(attributes, "event", event, "log_type", "audit")
		s.logger.InfoContext(ctx, event, args...)
	}
	if s.auditPublisher == nil {
		return
	}
	email := attrs.ExtractString(attributes, "email")
	_ = s.auditPublisher.Emit(ctx, audit.Event{
		Action: event,
		Email:  email,
	})
}

func (s *Service) logError(ctx context.Context, msg string, attributes ...any) {
	if s.logger != nil {
		s.logger.ErrorContext(ctx, msg, attributes...)
	}
}

func (s *Service) incrementRegistered() {
	if s.metrics != nil {
		s.metrics.IncrementRegistered()
	}
}

func (s *Service) incrementRejected(reason string) {
	if s.metrics != nil {
		s.metrics.IncrementRejected(reason)
	}
}

func (s *Service) incrementRemoved() {
	if s.metrics != nil {
		s.metrics.IncrementRemoved()
	}
}

func (s *Service) observeRegister(start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveRegister(start)
	}
}

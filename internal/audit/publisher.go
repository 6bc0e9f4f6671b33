package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Store is the append-only sink behind the publisher.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByEmail(ctx context.Context, email string) ([]Event, error)
}

// Publisher captures structured audit events. It is append-only and uses the
// storage layer for persistence so tests can swap sinks easily.
type Publisher struct {
	store Store
}

func NewPublisher(store Store) *Publisher {
	return &Publisher{store: store}
}

// Emit assigns an ID and timestamp when the caller left them empty, then
// appends the event.
func (p *Publisher) Emit(ctx context.Context, base Event) error {
	if base.ID == "" {
		base.ID = uuid.NewString()
	}
	if base.Timestamp.IsZero() {
		base.Timestamp = time.Now()
	}
	return p.store.Append(ctx, base)
}

// List returns the events recorded for a user's email.
func (p *Publisher) List(ctx context.Context, email string) ([]Event, error) {
	return p.store.ListByEmail(ctx, email)
}

package audit

import "time"

// Actions emitted by the directory service.
const (
	ActionUserRegistered = "user_registered"
	ActionUserRemoved    = "user_removed"
)

// Event is emitted from domain logic to capture key directory actions. Keep
// it transport-agnostic so stores and sinks can fan out.
type Event struct {
	ID        string
	Timestamp time.Time
	Action    string
	Email     string
	Detail    string
}

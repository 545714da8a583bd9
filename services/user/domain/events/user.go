package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicUserRegistered is the Watermill topic published when a user registers.
const TopicUserRegistered = "user.registered"

// UserRegisteredEvent is published after a new User is persisted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicUserRegistered).
// The password hash is never part of the payload.
type UserRegisteredEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	UserID     uuid.UUID `json:"user_id"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics for item lifecycle events.
const (
	TopicItemCreated = "item.created"
	TopicItemUpdated = "item.updated"
	TopicItemDeleted = "item.deleted"
)

// ItemCreatedEvent is published after a new Item is persisted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicItemCreated).
type ItemCreatedEvent struct {
	EventID    uuid.UUID  `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int        `json:"version"`  // Schema version; increment on breaking changes
	ItemID     uuid.UUID  `json:"item_id"`
	Name       string     `json:"name"`
	Price      float64    `json:"price"`
	CreatedBy  *uuid.UUID `json:"created_by,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// ItemUpdatedEvent is published after an existing Item is mutated.
type ItemUpdatedEvent struct {
	EventID    uuid.UUID  `json:"event_id"`
	Version    int        `json:"version"`
	ItemID     uuid.UUID  `json:"item_id"`
	Name       string     `json:"name"`
	Price      float64    `json:"price"`
	UpdatedBy  *uuid.UUID `json:"updated_by,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// ItemDeletedEvent is published after an Item is physically removed.
type ItemDeletedEvent struct {
	EventID    uuid.UUID  `json:"event_id"`
	Version    int        `json:"version"`
	ItemID     uuid.UUID  `json:"item_id"`
	DeletedBy  *uuid.UUID `json:"deleted_by,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

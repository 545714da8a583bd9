package models

import (
	"time"

	"github.com/google/uuid"
)

// Item is the core aggregate for this bounded context. CreatedBy/UpdatedBy
// record the authenticated identity behind each mutation; UpdatedBy and
// UpdatedAt stay nil until the first update.
type Item struct {
	ID        uuid.UUID
	Name      ItemName
	Price     Price
	CreatedBy *uuid.UUID
	CreatedAt time.Time
	UpdatedBy *uuid.UUID
	UpdatedAt *time.Time
}

// NewItem constructs a valid Item aggregate with generated ID and current timestamp.
func NewItem(name ItemName, price Price, createdBy uuid.UUID) *Item {
	return &Item{
		ID:        uuid.New(),
		Name:      name,
		Price:     price,
		CreatedBy: &createdBy,
		CreatedAt: time.Now().UTC(),
	}
}

package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/storefront/services/item/domain/models"
)

// ItemRepository is the persistence interface for the Item aggregate.
// The domain layer owns this interface; infrastructure implements it.
type ItemRepository interface {
	// Save persists a new Item.
	Save(ctx context.Context, item *models.Item) error

	// GetByID retrieves an Item by ID. Returns ErrItemNotFound when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error)

	// FindAll retrieves every item. Order is store-defined; the contract
	// guarantees no ordering and no pagination.
	FindAll(ctx context.Context) ([]*models.Item, error)

	// Update persists changes to an existing Item.
	Update(ctx context.Context, item *models.Item) error

	// Delete removes an item by ID. The deletion is physical and immediate.
	Delete(ctx context.Context, id uuid.UUID, deletedBy *uuid.UUID) error

	// Exists reports whether an item with the given ID exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
